package cli

import "github.com/julianstephens/agenda/internal/tui"

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	return tui.Run(ctx.Formatter)
}
