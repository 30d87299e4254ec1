package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/agenda/internal/utils"
)

// Context is handed to every command's Run method.
type Context struct {
	Formatter *utils.Formatter
	Stdout    io.Writer
}

// NewContext returns a Context printing to os.Stdout.
func NewContext(formatter *utils.Formatter) *Context {
	return &Context{Formatter: formatter, Stdout: os.Stdout}
}

func (c *Context) println(a ...any) {
	fmt.Fprintln(c.Stdout, a...)
}
