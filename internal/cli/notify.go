package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/agenda/internal/alerts"
	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/notifier"
	"github.com/julianstephens/agenda/internal/tui"
	"github.com/julianstephens/agenda/internal/ui"
)

var trayAvailable = notifier.Available

type NotifyCmd struct {
	Message string        `arg:"" help:"Message to show."`
	Kind    string        `short:"k" enum:"success,error" default:"success" help:"Notification kind (success|error)."`
	Display time.Duration `help:"How long the banner stays visible." default:"4s"`
	Stdout  bool          `help:"Print the banner instead of sending it to the tray app."`
	Wait    bool          `help:"Block until the banner has expired."`
}

func (c *NotifyCmd) Validate() error {
	if c.Display <= 0 {
		return fmt.Errorf("display duration must be positive")
	}
	return nil
}

func (c *NotifyCmd) Run(ctx *Context) error {
	n := alerts.New(c.surface(ctx), ui.SystemScheduler{}, alerts.WithDisplayDuration(c.Display))
	defer func() {
		if err := n.Close(); err != nil {
			logger.Warn("failed to clear notifications", "error", err)
		}
	}()

	if _, err := n.Show(c.Message, alerts.ParseKind(c.Kind)); err != nil {
		return err
	}
	if !c.Wait {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), c.Display+constants.AlertExitDuration+time.Second)
	defer cancel()
	return n.Wait(waitCtx)
}

// surface prefers the tray app and falls back to stdout when it is not running.
func (c *NotifyCmd) surface(ctx *Context) ui.Surface {
	if c.Stdout {
		return tui.NewPrinter(ctx.Stdout)
	}
	if err := trayAvailable(); err != nil {
		if !errors.Is(err, notifier.ErrTrayNotRunning) {
			logger.Warn("tray app unreachable", "error", err)
		}
		logger.Debug("printing notification to stdout", "reason", err)
		return tui.NewPrinter(ctx.Stdout)
	}
	return notifier.New(c.Display)
}
