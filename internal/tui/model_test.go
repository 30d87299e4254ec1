package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/locale"
	"github.com/julianstephens/agenda/internal/ui"
	"github.com/julianstephens/agenda/internal/utils"
)

func newTestModel(t *testing.T) (Model, *Environment) {
	t.Helper()
	env := NewEnvironment()
	m := NewModel(env, utils.NewFormatter(time.UTC, locale.Default()))
	t.Cleanup(m.Close)
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got
}

func fill(m Model, values map[string]string) {
	for id, v := range values {
		m.field(id).input.SetValue(v)
	}
}

func TestNewModel(t *testing.T) {
	m, env := newTestModel(t)

	if m.field(FieldPassword).InputType() != constants.InputTypePassword {
		t.Errorf("password field starts unmasked")
	}
	if !utils.ValidateDateFormat(m.field(FieldDate).Value()) {
		t.Errorf("date field default = %q, want today as YYYY-MM-DD", m.field(FieldDate).Value())
	}
	for _, id := range []string{FieldName, FieldCPF, FieldDate, FieldTime, FieldDuration, FieldPassword} {
		if _, err := env.FindElementByID(id); err != nil {
			t.Errorf("field %q not registered: %v", id, err)
		}
	}
}

func TestRevealTogglesPassword(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.field(FieldPassword).InputType() != constants.InputTypeText {
		t.Errorf("password still masked after ctrl+r")
	}
	if !m.eye.Contains(constants.IconEyeSlash) {
		t.Errorf("eye classes = %q, want eye-slash", m.eye)
	}
	if !strings.Contains(m.View(), "ocultar") {
		t.Errorf("view does not offer to hide the password")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.field(FieldPassword).InputType() != constants.InputTypePassword {
		t.Errorf("password unmasked after second ctrl+r")
	}
}

func TestFocusCycles(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != len(m.fields)-1 {
		t.Fatalf("focus after shift+tab = %d, want last field", m.focus)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Fatalf("focus after tab = %d, want 0", m.focus)
	}
}

func TestSubmitInvalidCPF(t *testing.T) {
	m, _ := newTestModel(t)
	fill(m, map[string]string{
		FieldName: "maria silva",
		FieldCPF:  "111.111.111-11",
		FieldDate: "2024-03-01",
		FieldTime: "09:15",
	})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	active := m.notifier.Active()
	if len(active) != 1 {
		t.Fatalf("Active() = %+v, want one notification", active)
	}
	if active[0].Kind != ui.KindError || active[0].Message != "CPF inválido" {
		t.Errorf("notification = %+v, want CPF error", active[0])
	}
}

func TestSubmitBooksAppointment(t *testing.T) {
	m, env := newTestModel(t)
	fill(m, map[string]string{
		FieldName:     "maria  SILVA",
		FieldCPF:      "111.444.777-35",
		FieldDate:     "2024-03-01",
		FieldTime:     "23:45",
		FieldDuration: "45",
	})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	active := m.notifier.Active()
	if len(active) != 1 || active[0].Kind != ui.KindSuccess {
		t.Fatalf("Active() = %+v, want one success", active)
	}
	want := "Consulta de Maria Silva agendada: 01/03/2024 23:45–00:30"
	if active[0].Message != want {
		t.Errorf("message = %q, want %q", active[0].Message, want)
	}
	if len(env.Notifications()) != 1 {
		t.Errorf("environment shows %d banners, want 1", len(env.Notifications()))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.notifier.Active()) != 0 {
		t.Errorf("esc did not dismiss the banner")
	}
}

func TestReadAppointmentPadsHour(t *testing.T) {
	m, _ := newTestModel(t)
	fill(m, map[string]string{
		FieldName: "ana",
		FieldCPF:  "11144477735",
		FieldDate: "2024-03-01",
		FieldTime: "9:15",
	})

	appt, problem := m.readAppointment()
	if problem != "" {
		t.Fatalf("readAppointment() problem = %q", problem)
	}
	if appt.start != "2024-03-01T09:15:00" {
		t.Errorf("start = %q, want 2024-03-01T09:15:00", appt.start)
	}
	if got := utils.ExtractTime(appt.start); got != "09:15" {
		t.Errorf("ExtractTime(start) = %q, want 09:15", got)
	}
	if appt.endTime != "09:45" {
		t.Errorf("endTime = %q, want 09:45", appt.endTime)
	}
}

func TestSubmitValidation(t *testing.T) {
	base := map[string]string{
		FieldName: "joão",
		FieldCPF:  "11144477735",
		FieldDate: "2024-03-01",
		FieldTime: "10:00",
	}

	tests := []struct {
		name     string
		override map[string]string
		want     string
	}{
		{name: "missing name", override: map[string]string{FieldName: "  "}, want: "Informe o nome do paciente"},
		{name: "missing time", override: map[string]string{FieldTime: ""}, want: "Informe data e hora da consulta"},
		{name: "bad date", override: map[string]string{FieldDate: "2024-02-30"}, want: "Data ou hora inválida"},
		{name: "bad time", override: map[string]string{FieldTime: "25:00"}, want: "Data ou hora inválida"},
		{name: "bad duration", override: map[string]string{FieldDuration: "-5"}, want: "Duração deve ser um número positivo de minutos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			fill(m, base)
			fill(m, tt.override)

			_, problem := m.readAppointment()
			if problem != tt.want {
				t.Errorf("readAppointment() problem = %q, want %q", problem, tt.want)
			}
		})
	}
}

func TestPreviewUsesDefaultDuration(t *testing.T) {
	m, _ := newTestModel(t)
	fill(m, map[string]string{
		FieldName: "ana",
		FieldCPF:  "11144477735",
		FieldDate: "2024-03-01",
		FieldTime: "10:00",
	})

	if got := m.viewPreview(); !strings.Contains(got, "Início: 01/03/2024 10:00 · Término: 10:30") {
		t.Errorf("viewPreview() = %q", got)
	}
}

func TestCPFLiveCheck(t *testing.T) {
	m, env := newTestModel(t)
	ch := collect(env)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("11144477735")})

	if !m.cpfCheck.Pending() {
		t.Fatal("typing into the CPF field did not schedule a check")
	}
	m.cpfCheck.Flush()

	checked := expectMsg[CPFCheckedMsg](t, ch)
	if !checked.Valid || checked.Value != "11144477735" {
		t.Fatalf("CPFCheckedMsg = %+v", checked)
	}

	m = update(t, m, checked)
	if m.cpfState != cpfValid {
		t.Errorf("cpfState = %v, want valid", m.cpfState)
	}

	m = update(t, m, CPFCheckedMsg{Value: "stale", Valid: false})
	if m.cpfState != cpfValid {
		t.Errorf("stale check changed cpfState to %v", m.cpfState)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c command did not quit")
	}
	if next.(Model).View() != "" {
		t.Errorf("View() after quit is not empty")
	}
}

func TestRenderStack(t *testing.T) {
	notes := []ui.Notification{
		{ID: "1", Message: "salvo", Kind: ui.KindSuccess, Phase: ui.PhaseVisible},
		{ID: "2", Message: "falhou", Kind: ui.KindError, Phase: ui.PhaseExiting},
	}
	out := RenderStack(notes, 80)
	if !strings.Contains(out, "salvo") || !strings.Contains(out, "falhou") {
		t.Errorf("RenderStack() = %q", out)
	}
	if strings.Index(out, "salvo") > strings.Index(out, "falhou") {
		t.Errorf("older banner is not on top")
	}
	if RenderStack(nil, 80) != "" {
		t.Errorf("RenderStack(nil) not empty")
	}
}
