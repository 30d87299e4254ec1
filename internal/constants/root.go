package constants

import "time"

const (
	AppName           = "agenda"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/agenda"
	DefaultLocaleName = "pt-BR"

	// DateFormat is the canonical date layout (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the canonical time layout (HH:MM)
	TimeFormat = "15:04"

	// ISODateTimeFormat is the combined representation exchanged with the API (no zone suffix)
	ISODateTimeFormat = "2006-01-02T15:04:05"

	// ISODateTimeSeparator splits an ISO datetime into its date and time parts
	ISODateTimeSeparator = "T"

	// DefaultAppointmentMinutes is the duration used when no explicit one is given
	DefaultAppointmentMinutes = 30

	MinutesPerHour = 60
	HoursPerDay    = 24
	MinutesPerDay  = MinutesPerHour * HoursPerDay

	// Alert constants
	AlertDisplayDuration = 4 * time.Second
	AlertExitDuration    = 500 * time.Millisecond
	AlertClassSuccess    = "alert-success"
	AlertClassError      = "alert-error"

	// Password field constants
	InputTypePassword = "password"
	InputTypeText     = "text"
	IconEye           = "fa-eye"
	IconEyeSlash      = "fa-eye-slash"

	// Debounce applied to live field validation in the TUI
	FieldValidationDebounce = 300 * time.Millisecond

	// Notify constants
	NotifierLockfileName = "agenda-notifier.lock"
	TrayAppIdentifier    = "com.julianstephens.agenda"
	TrayExecutablePrefix = "agenda-tray"
	TraySecretHeader     = "X-Agenda-Secret"
)
