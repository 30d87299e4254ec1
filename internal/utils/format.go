package utils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/locale"
	"github.com/julianstephens/agenda/internal/logger"
)

// naiveLayouts are tried, in order, for inputs without a zone offset.
var naiveLayouts = []string{
	constants.DateFormat,
	constants.ISODateTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Formatter renders date-like strings for a viewer in a given timezone.
type Formatter struct {
	loc    *time.Location
	locale locale.Locale
}

// NewFormatter returns a Formatter for loc. A nil loc means time.Local.
func NewFormatter(loc *time.Location, l locale.Locale) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{loc: loc, locale: l}
}

// Location returns the viewer's timezone.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Locale returns the display locale.
func (f *Formatter) Locale() locale.Locale {
	return f.locale
}

// FormatDate renders a date-like string as DD/MM/YYYY. The day shown is the day
// written in the input: zoned values are read in UTC, naive ones by their wall
// clock, so the viewer's offset never moves the date. Unparseable input is
// logged and returned unchanged.
func (f *Formatter) FormatDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	t, zoned, err := f.parse(dateStr)
	if err != nil {
		logger.Error("failed to format date", "input", dateStr, "error", err)
		return dateStr
	}
	if zoned {
		t = t.UTC()
	}
	return f.locale.FormatDate(t)
}

// FormatDateTime renders a datetime as "DD/MM/YYYY HH:MM" in the viewer's
// timezone. Naive input is taken as wall clock in that timezone.
func (f *Formatter) FormatDateTime(dateTimeStr string) string {
	if dateTimeStr == "" {
		return ""
	}
	t, _, err := f.parse(dateTimeStr)
	if err != nil {
		logger.Error("failed to format datetime", "input", dateTimeStr, "error", err)
		return dateTimeStr
	}
	return f.locale.FormatDateTime(t.In(f.loc))
}

func (f *Formatter) parse(s string) (t time.Time, zoned bool, err error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, f.loc); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized date %q", s)
}

var defaultFormatter atomic.Pointer[Formatter]

func init() {
	defaultFormatter.Store(NewFormatter(time.Local, locale.Default()))
}

// SetDefaultLocation rebinds the package-level formatting functions to loc.
func SetDefaultLocation(loc *time.Location) {
	defaultFormatter.Store(NewFormatter(loc, locale.Default()))
}

// DefaultFormatter returns the formatter behind FormatDate and FormatDateTime.
func DefaultFormatter() *Formatter {
	return defaultFormatter.Load()
}

// FormatDate formats with the default formatter. See Formatter.FormatDate.
func FormatDate(dateStr string) string {
	return DefaultFormatter().FormatDate(dateStr)
}

// FormatDateTime formats with the default formatter. See Formatter.FormatDateTime.
func FormatDateTime(dateTimeStr string) string {
	return DefaultFormatter().FormatDateTime(dateTimeStr)
}
