package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/agenda/internal/cli"
	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/errors"
	"github.com/julianstephens/agenda/internal/locale"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/utils"
)

var CLI struct {
	Version   kong.VersionFlag
	Timezone  string `help:"IANA timezone used to display datetimes. Defaults to the system zone." env:"AGENDA_TIMEZONE"`
	Locale    string `help:"Display locale." default:"${locale}"`
	Debug     bool   `help:"Log to stderr at debug level." env:"AGENDA_DEBUG"`
	LogLevel  string `help:"Log level (debug|info|warn|error)." env:"AGENDA_LOG_LEVEL"`
	ConfigDir string `help:"Directory for logs and settings." type:"path" default:"${config_dir}" env:"AGENDA_CONFIG_DIR"`

	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive booking screen." default:"1"`
	Book       cli.BookCmd       `cmd:"" help:"Book an appointment through a guided form."`
	Date       cli.DateCmd       `cmd:"" help:"Format a date as DD/MM/YYYY."`
	Time       cli.TimeCmd       `cmd:"" help:"Truncate a clock time to HH:MM."`
	Datetime   cli.DateTimeCmd   `cmd:"" help:"Format a datetime as DD/MM/YYYY HH:MM."`
	ISO        cli.ISOCmd        `cmd:"" name:"iso" help:"Join a date and a time into an ISO datetime."`
	Extract    cli.ExtractCmd    `cmd:"" help:"Extract the date or time of an ISO datetime."`
	End        cli.EndCmd        `cmd:"" help:"Compute an appointment end time."`
	Capitalize cli.CapitalizeCmd `cmd:"" help:"Capitalize text."`
	CPF        struct {
		Validate cli.CPFValidateCmd `cmd:"" help:"Check a CPF's verification digits."`
		Format   cli.CPFFormatCmd   `cmd:"" help:"Print a CPF as XXX.XXX.XXX-XX."`
	} `cmd:"" name:"cpf" help:"CPF utilities."`
	Notify cli.NotifyCmd `cmd:"" help:"Show a notification banner."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Appointment booking helpers for pt-BR front-ends"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"config_dir": constants.DefaultConfigDir,
			"locale":     constants.DefaultLocaleName,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: CLI.ConfigDir,
		Level:     CLI.LogLevel,
	}); err != nil {
		errors.Fatal(err)
	}
	defer logger.Close()

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		errors.Fatalf("invalid timezone %q: %v", CLI.Timezone, err)
	}
	l, err := locale.Parse(CLI.Locale)
	if err != nil {
		errors.Fatal(err)
	}

	utils.SetDefaultLocation(loc)
	formatter := utils.NewFormatter(loc, l)
	logger.Debug("starting", "command", ctx.Command(),
		"timezone", formatter.Location().String(), "locale", formatter.Locale().String())

	if err := ctx.Run(cli.NewContext(formatter)); err != nil {
		errors.Fatal(err)
	}
}
