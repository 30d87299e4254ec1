// Package locale holds the single display locale supported by agenda (pt-BR):
// its language tag, date/time layouts and case mappings.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/julianstephens/agenda/internal/constants"
)

// Locale renders dates and maps case for one language.
type Locale struct {
	Tag        language.Tag
	DateLayout string
	TimeLayout string
}

// PtBR is Brazilian Portuguese: DD/MM/YYYY and 24h HH:MM.
var PtBR = Locale{
	Tag:        language.BrazilianPortuguese,
	DateLayout: "02/01/2006",
	TimeLayout: "15:04",
}

var supported = language.NewMatcher([]language.Tag{PtBR.Tag})

// Default returns the locale used when none is configured.
func Default() Locale {
	return PtBR
}

// Parse resolves a BCP 47 name to a supported locale. Anything that does not
// match pt-BR at least with high confidence is rejected.
func Parse(name string) (Locale, error) {
	if name == "" {
		return Default(), nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", name, err)
	}
	if _, _, conf := supported.Match(tag); conf < language.High {
		return Locale{}, fmt.Errorf("unsupported locale %q (only %s is available)", name, constants.DefaultLocaleName)
	}
	return PtBR, nil
}

func (l Locale) String() string {
	return l.Tag.String()
}

// FormatDate renders the calendar date of t.
func (l Locale) FormatDate(t time.Time) string {
	return t.Format(l.DateLayout)
}

// FormatTime renders the hour and minute of t.
func (l Locale) FormatTime(t time.Time) string {
	return t.Format(l.TimeLayout)
}

// FormatDateTime renders "<date> <time>".
func (l Locale) FormatDateTime(t time.Time) string {
	return l.FormatDate(t) + " " + l.FormatTime(t)
}

// Upper and Lower build a fresh Caser per call: casers keep state and must
// not be shared between goroutines.
func (l Locale) Upper(s string) string {
	return cases.Upper(l.Tag).String(s)
}

func (l Locale) Lower(s string) string {
	return cases.Lower(l.Tag).String(s)
}
