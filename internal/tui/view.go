package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/agenda/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, 0, len(m.fields))
	for i, f := range m.fields {
		label := labelStyle.Render(f.label)
		if i == m.focus {
			label = focusedLabelStyle.Render(f.label)
		}
		row := label + f.input.View()
		switch f.id {
		case FieldCPF:
			row += "  " + m.viewCPFStatus()
		case FieldPassword:
			row += "  " + m.viewEye()
		}
		rows = append(rows, row)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Agendar consulta"),
		"",
		strings.Join(rows, "\n"),
		"",
		m.viewPreview(),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderStack(m.env.Notifications(), m.width),
		docStyle.Render(body),
	)
}

func (m Model) viewCPFStatus() string {
	switch m.cpfState {
	case cpfValid:
		return validStyle.Render("✓ válido")
	case cpfInvalid:
		return dangerStyle.Render("✗ inválido")
	default:
		return ""
	}
}

func (m Model) viewEye() string {
	if m.eye.Contains(constants.IconEyeSlash) {
		return mutedStyle.Render("◎ ocultar")
	}
	return mutedStyle.Render("◉ mostrar")
}

func (m Model) viewPreview() string {
	appt, problem := m.readAppointment()
	if problem != "" {
		return mutedStyle.Render(problem)
	}
	return "Início: " + m.formatter.FormatDateTime(appt.start) + " · Término: " + appt.endTime
}
