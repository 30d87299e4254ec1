package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/agenda/internal/alerts"
	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/cpf"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/ui"
	"github.com/julianstephens/agenda/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case NotificationsChangedMsg:
		// Redraw only; the stack is read from the environment in View.
		return m, nil

	case CPFCheckedMsg:
		// Ignore results for a value the user has already changed.
		if msg.Value != m.field(FieldCPF).Value() {
			return m, nil
		}
		if msg.Valid {
			m.cpfState = cpfValid
		} else {
			m.cpfState = cpfInvalid
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus((m.focus + 1) % len(m.fields))
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
			return m, cmd
		case key.Matches(msg, m.keys.Submit):
			m.book()
			return m, nil
		case key.Matches(msg, m.keys.Reveal):
			if err := ui.TogglePasswordVisibility(m.env, FieldPassword, m.eye); err != nil {
				logger.Error("failed to toggle password visibility", "error", err)
			}
			return m, nil
		case key.Matches(msg, m.keys.Dismiss):
			if active := m.notifier.Active(); len(active) > 0 {
				m.notifier.Dismiss(active[len(active)-1].ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.fields[m.focus]
	before := f.Value()

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if f.id == FieldCPF && f.Value() != before {
		m.cpfState = cpfUnchecked
		if f.Value() == "" {
			m.cpfCheck.Stop()
		} else {
			m.cpfCheck.Call(f.Value())
		}
	}
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.fields[m.focus].input.Blur()
	m.focus = i
	return m.fields[i].input.Focus()
}

// appointment is the booking read back from the form.
type appointment struct {
	patient  string
	start    string // ISO datetime
	endTime  string // HH:MM
	duration int
}

// readAppointment validates the form. The returned message is user-facing.
func (m Model) readAppointment() (appointment, string) {
	patient := utils.CapitalizeWords(strings.TrimSpace(m.field(FieldName).Value()))
	if patient == "" {
		return appointment{}, "Informe o nome do paciente"
	}
	if !cpf.Validate(m.field(FieldCPF).Value()) {
		return appointment{}, "CPF inválido"
	}

	date := strings.TrimSpace(m.field(FieldDate).Value())
	clock := strings.TrimSpace(m.field(FieldTime).Value())
	if date == "" || clock == "" {
		return appointment{}, "Informe data e hora da consulta"
	}
	at, err := utils.CombineDateAndTime(date, clock, m.formatter.Location())
	if err != nil {
		return appointment{}, "Data ou hora inválida"
	}
	// Re-rendered so that "9:15" is stored as 09:15.
	clock = at.Format(constants.TimeFormat)
	start, _ := utils.ToISODateTime(at.Format(constants.DateFormat), clock)

	duration := constants.DefaultAppointmentMinutes
	if raw := strings.TrimSpace(m.field(FieldDuration).Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return appointment{}, "Duração deve ser um número positivo de minutos"
		}
		duration = n
	}

	return appointment{
		patient:  patient,
		start:    start,
		endTime:  utils.EndTime(clock, duration),
		duration: duration,
	}, ""
}

func (m Model) book() {
	appt, problem := m.readAppointment()
	if problem != "" {
		m.show(problem, alerts.KindError)
		return
	}

	logger.Info("appointment booked", "start", appt.start, "duration", appt.duration)
	m.show(fmt.Sprintf("Consulta de %s agendada: %s–%s",
		appt.patient, m.formatter.FormatDateTime(appt.start), appt.endTime), alerts.KindSuccess)
}

func (m Model) show(message string, kind alerts.Kind) {
	if _, err := m.notifier.Show(message, kind); err != nil {
		logger.Error("failed to show notification", "error", err)
	}
}
