package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/agenda/internal/alerts"
	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/cpf"
	"github.com/julianstephens/agenda/internal/debounce"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/ui"
	"github.com/julianstephens/agenda/internal/utils"
)

const (
	FieldName     = "nome"
	FieldCPF      = "cpf"
	FieldDate     = "data"
	FieldTime     = "hora"
	FieldDuration = "duracao"
	FieldPassword = "senha"
)

// CPFCheckedMsg carries the result of the debounced CPF check.
type CPFCheckedMsg struct {
	Value string
	Valid bool
}

type cpfStatus int

const (
	cpfUnchecked cpfStatus = iota
	cpfValid
	cpfInvalid
)

// Model is the appointment booking screen.
type Model struct {
	env       *Environment
	notifier  *alerts.Notifier
	formatter *utils.Formatter
	cpfCheck  *debounce.Debouncer[string]

	fields   []*Field
	focus    int
	eye      *ui.ClassList
	cpfState cpfStatus

	keys     KeyMap
	help     help.Model
	width    int
	quitting bool
}

func NewModel(env *Environment, formatter *utils.Formatter) Model {
	fields := []*Field{
		newField(FieldName, "Paciente", "nome completo", 80),
		newField(FieldCPF, "CPF", "000.000.000-00", 14),
		newField(FieldDate, "Data", "AAAA-MM-DD", 10),
		newField(FieldTime, "Hora", "HH:MM", 5),
		newField(FieldDuration, "Duração (min)", "30", 4),
		newField(FieldPassword, "Senha", "senha do portal", 64),
	}
	for _, f := range fields {
		env.Register(f)
	}

	password := fields[len(fields)-1]
	password.SetInputType(constants.InputTypePassword)

	fields[2].input.SetValue(utils.Today(formatter.Location()))
	fields[0].input.Focus()

	check := debounce.New(func(v string) {
		env.Send(CPFCheckedMsg{Value: v, Valid: cpf.Validate(v)})
	}, constants.FieldValidationDebounce, debounce.WithScheduler(env))

	return Model{
		env:       env,
		notifier:  alerts.New(env, env),
		formatter: formatter,
		cpfCheck:  check,
		fields:    fields,
		eye:       ui.NewClassList("fa", constants.IconEye),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close stops pending timers and clears the banner stack.
func (m Model) Close() {
	m.cpfCheck.Stop()
	if err := m.notifier.Close(); err != nil {
		logger.Warn("failed to clear notifications", "error", err)
	}
}

func (m Model) field(id string) *Field {
	for _, f := range m.fields {
		if f.id == id {
			return f
		}
	}
	return nil
}

// Run starts the booking screen on the alternate screen buffer.
func Run(formatter *utils.Formatter) error {
	env := NewEnvironment()
	m := NewModel(env, formatter)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	env.Attach(p.Send)

	_, err := p.Run()
	return err
}
