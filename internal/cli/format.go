package cli

import (
	"fmt"

	"github.com/julianstephens/agenda/internal/utils"
)

type DateCmd struct {
	Value string `arg:"" help:"Date or datetime (YYYY-MM-DD, ISO 8601)."`
}

func (c *DateCmd) Run(ctx *Context) error {
	ctx.println(ctx.Formatter.FormatDate(c.Value))
	return nil
}

type TimeCmd struct {
	Value string `arg:"" help:"Clock time (HH:MM or HH:MM:SS)."`
}

func (c *TimeCmd) Run(ctx *Context) error {
	ctx.println(utils.FormatTime(c.Value))
	return nil
}

type DateTimeCmd struct {
	Value string `arg:"" help:"Datetime (ISO 8601, with or without offset)."`
}

func (c *DateTimeCmd) Run(ctx *Context) error {
	ctx.println(ctx.Formatter.FormatDateTime(c.Value))
	return nil
}

type ISOCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD)."`
	Time string `arg:"" help:"Time (HH:MM)."`
}

func (c *ISOCmd) Run(ctx *Context) error {
	iso, ok := utils.ToISODateTime(c.Date, c.Time)
	if !ok {
		return fmt.Errorf("both date and time are required")
	}
	ctx.println(iso)
	return nil
}

type ExtractCmd struct {
	Part  string `arg:"" enum:"date,time" help:"Part to extract (date|time)."`
	Value string `arg:"" help:"ISO datetime (YYYY-MM-DDTHH:MM:SS)."`
}

func (c *ExtractCmd) Run(ctx *Context) error {
	if c.Part == "time" {
		ctx.println(utils.ExtractTime(c.Value))
		return nil
	}
	ctx.println(utils.ExtractDate(c.Value))
	return nil
}

type EndCmd struct {
	Start    string `arg:"" help:"Start time (HH:MM)."`
	Duration int    `short:"d" help:"Duration in minutes." default:"30"`
}

func (c *EndCmd) Run(ctx *Context) error {
	end := utils.EndTime(c.Start, c.Duration)
	if end == "" {
		return fmt.Errorf("invalid start time: %q", c.Start)
	}
	ctx.println(end)
	return nil
}
