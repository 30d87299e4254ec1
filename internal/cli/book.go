package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/cpf"
	"github.com/julianstephens/agenda/internal/logger"
	"github.com/julianstephens/agenda/internal/utils"
)

var durationChoices = []int{15, 30, 45, 60, 90}

// booking holds the answers of the booking form.
type booking struct {
	Patient  string
	CPF      string
	Date     string
	Time     string
	Duration int
	Password string
}

type BookCmd struct {
	Date       string `help:"Prefill the date (YYYY-MM-DD). Defaults to today."`
	Duration   int    `short:"d" help:"Prefill the duration in minutes." default:"30"`
	Accessible bool   `help:"Use plain prompts instead of the interactive form."`
}

func (c *BookCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	return nil
}

func (c *BookCmd) Run(ctx *Context) error {
	b := booking{Date: c.Date, Duration: c.Duration}
	if b.Date == "" {
		b.Date = utils.Today(ctx.Formatter.Location())
	}

	// Prompts read line by line when stdin is piped.
	accessible := c.Accessible || !isatty.IsTerminal(os.Stdin.Fd())
	form := newBookingForm(&b).WithAccessible(accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("booking form: %w", err)
	}

	summary, err := b.summary(ctx.Formatter)
	if err != nil {
		return err
	}
	if at, err := b.start(ctx.Formatter.Location()); err == nil {
		logger.Info("appointment booked", "start", at.Format(constants.ISODateTimeFormat), "duration", b.Duration)
	}
	ctx.println(summary)
	return nil
}

func newBookingForm(b *booking) *huh.Form {
	durations := make([]huh.Option[int], 0, len(durationChoices)+1)
	for _, d := range durationChoices {
		durations = append(durations, huh.NewOption(strconv.Itoa(d)+" min", d))
	}
	if !slices.Contains(durationChoices, b.Duration) {
		durations = append(durations, huh.NewOption(strconv.Itoa(b.Duration)+" min", b.Duration))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Paciente").
				Value(&b.Patient).
				Validate(validatePatient),
			huh.NewInput().
				Title("CPF").
				Placeholder("000.000.000-00").
				CharLimit(14).
				Value(&b.CPF).
				Validate(validateCPF),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Data").
				Placeholder("AAAA-MM-DD").
				Value(&b.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Hora").
				Placeholder("HH:MM").
				Value(&b.Time).
				Validate(validateTime),
			huh.NewSelect[int]().
				Title("Duração").
				Options(durations...).
				Value(&b.Duration),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Senha").
				Description("Senha do portal para confirmar o agendamento").
				EchoMode(huh.EchoModePassword).
				Value(&b.Password).
				Validate(validatePassword),
		),
	).WithTheme(huh.ThemeDracula())
}

func validatePatient(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("informe o nome do paciente")
	}
	return nil
}

func validateCPF(s string) error {
	if !cpf.Validate(s) {
		return errors.New("CPF inválido")
	}
	return nil
}

func validateDate(s string) error {
	if !utils.ValidateDateFormat(strings.TrimSpace(s)) {
		return errors.New("use o formato AAAA-MM-DD")
	}
	return nil
}

func validateTime(s string) error {
	if !utils.ValidateTimeFormat(strings.TrimSpace(s)) {
		return errors.New("use o formato HH:MM")
	}
	return nil
}

func validatePassword(s string) error {
	if s == "" {
		return errors.New("informe a senha")
	}
	return nil
}

// start is the appointment start read as wall clock time in loc.
func (b booking) start(loc *time.Location) (time.Time, error) {
	at, err := utils.CombineDateAndTime(strings.TrimSpace(b.Date), strings.TrimSpace(b.Time), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("data ou hora inválida: %w", err)
	}
	return at, nil
}

// summary renders the confirmation printed after the form. The password is
// never part of it.
func (b booking) summary(f *utils.Formatter) (string, error) {
	for _, check := range []error{
		validatePatient(b.Patient),
		validateCPF(b.CPF),
		validateDate(b.Date),
		validateTime(b.Time),
	} {
		if check != nil {
			return "", check
		}
	}

	at, err := b.start(f.Location())
	if err != nil {
		return "", err
	}
	clock := at.Format(constants.TimeFormat)
	start, _ := utils.ToISODateTime(at.Format(constants.DateFormat), clock)

	masked, err := cpf.Format(b.CPF)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Consulta agendada\n")
	fmt.Fprintf(&sb, "Paciente: %s\n", utils.CapitalizeWords(b.Patient))
	fmt.Fprintf(&sb, "CPF:      %s\n", masked)
	fmt.Fprintf(&sb, "Início:   %s\n", f.FormatDateTime(start))
	fmt.Fprintf(&sb, "Término:  %s (%d min)", utils.EndTime(clock, b.Duration), b.Duration)
	return sb.String(), nil
}
