package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/julianstephens/agenda/internal/constants"
)

// Field is a labelled text input addressable by ID.
type Field struct {
	id    string
	label string
	input textinput.Model
}

func newField(id, label, placeholder string, limit int) *Field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 32
	return &Field{id: id, label: label, input: in}
}

func (f *Field) ID() string { return f.id }

func (f *Field) Value() string { return f.input.Value() }

func (f *Field) InputType() string {
	if f.input.EchoMode == textinput.EchoPassword {
		return constants.InputTypePassword
	}
	return constants.InputTypeText
}

func (f *Field) SetInputType(inputType string) {
	if inputType == constants.InputTypePassword {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}
