package cli

import (
	"strings"

	"github.com/julianstephens/agenda/internal/cpf"
	"github.com/julianstephens/agenda/internal/utils"
)

type CPFValidateCmd struct {
	Number string `arg:"" help:"CPF, with or without punctuation."`
}

// Run prints the verdict and fails on an invalid number so scripts can test
// the exit status.
func (c *CPFValidateCmd) Run(ctx *Context) error {
	if !cpf.Validate(c.Number) {
		ctx.println("CPF inválido")
		return cpf.ErrInvalid
	}
	ctx.println("CPF válido")
	return nil
}

type CPFFormatCmd struct {
	Number string `arg:"" help:"CPF, with or without punctuation."`
}

func (c *CPFFormatCmd) Run(ctx *Context) error {
	formatted, err := cpf.Format(c.Number)
	if err != nil {
		return err
	}
	ctx.println(formatted)
	return nil
}

type CapitalizeCmd struct {
	Text  []string `arg:"" help:"Text to capitalize."`
	Words bool     `short:"w" help:"Capitalize every word instead of only the first letter."`
}

func (c *CapitalizeCmd) Run(ctx *Context) error {
	text := strings.Join(c.Text, " ")
	if c.Words {
		ctx.println(utils.CapitalizeWords(text))
		return nil
	}
	ctx.println(utils.Capitalize(text))
	return nil
}
