// Package ui describes the rendering environment the helpers need: a surface
// that shows notifications, a document holding addressable elements and a
// timer scheduler. Formatting and validation code never touches it.
package ui

import (
	"errors"
	"time"

	"github.com/julianstephens/agenda/internal/constants"
)

// ErrElementNotFound is returned when a document has no element with the requested ID.
var ErrElementNotFound = errors.New("element not found")

// Kind is the severity of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// ParseKind maps "error" to KindError; anything else is a success.
func ParseKind(s string) Kind {
	if Kind(s) == KindError {
		return KindError
	}
	return KindSuccess
}

// Class is the surface style class for the kind.
func (k Kind) Class() string {
	if k == KindError {
		return constants.AlertClassError
	}
	return constants.AlertClassSuccess
}

// Phase is where a notification is in its lifecycle.
type Phase string

const (
	PhaseVisible Phase = "visible"
	PhaseExiting Phase = "exiting"
)

// Notification is a dismissible banner pinned to the top-right of the surface.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	Phase     Phase
	CreatedAt time.Time
}

// Class is the surface style class of the notification.
func (n Notification) Class() string {
	return n.Kind.Class()
}

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call. It reports false if the call already ran or was stopped.
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	ScheduleTimer(d time.Duration, fn func()) Timer
}

// Surface displays notifications.
type Surface interface {
	CreateNotification(n Notification) error
	// ExitNotification starts the exit animation of a shown notification.
	ExitNotification(id string) error
	RemoveNotification(id string) error
}

// Element is an addressable input field.
type Element interface {
	ID() string
	InputType() string
	SetInputType(inputType string)
}

// IconElement is anything carrying style classes.
type IconElement interface {
	AddClass(class string)
	RemoveClass(class string)
}

// Document looks up elements by ID.
type Document interface {
	FindElementByID(id string) (Element, error)
}

// Environment is everything the notification stack and the field helpers use.
type Environment interface {
	Surface
	Document
	Scheduler
}

// SystemScheduler schedules on the Go runtime timers.
type SystemScheduler struct{}

func (SystemScheduler) ScheduleTimer(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
