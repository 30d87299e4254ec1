package uitest

import (
	"fmt"
	"slices"
	"sync"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/ui"
)

var _ ui.Environment = (*Environment)(nil)

// Event is one surface call recorded by Environment.
type Event struct {
	Op string // "create", "exit" or "remove"
	ID string
}

// Environment is an in-memory ui.Environment driven by a ManualScheduler.
type Environment struct {
	*ManualScheduler

	mu            sync.Mutex
	notifications []ui.Notification
	events        []Event
	elements      map[string]*Input

	// CreateErr, when set, is returned by CreateNotification.
	CreateErr error
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		ManualScheduler: NewManualScheduler(),
		elements:        make(map[string]*Input),
	}
}

func (e *Environment) CreateNotification(n ui.Notification) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.CreateErr != nil {
		return e.CreateErr
	}
	e.notifications = append(e.notifications, n)
	e.events = append(e.events, Event{Op: "create", ID: n.ID})
	return nil
}

func (e *Environment) ExitNotification(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.index(id)
	if i < 0 {
		return fmt.Errorf("notification %s: %w", id, ui.ErrElementNotFound)
	}
	e.notifications[i].Phase = ui.PhaseExiting
	e.events = append(e.events, Event{Op: "exit", ID: id})
	return nil
}

func (e *Environment) RemoveNotification(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.index(id)
	if i < 0 {
		return fmt.Errorf("notification %s: %w", id, ui.ErrElementNotFound)
	}
	e.notifications = slices.Delete(e.notifications, i, i+1)
	e.events = append(e.events, Event{Op: "remove", ID: id})
	return nil
}

// Shown returns the notifications currently on the surface.
func (e *Environment) Shown() []ui.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.notifications)
}

// Events returns every surface call in order.
func (e *Environment) Events() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.events)
}

// AddInput registers an input element.
func (e *Environment) AddInput(id, inputType string) *Input {
	e.mu.Lock()
	defer e.mu.Unlock()
	in := &Input{id: id, inputType: inputType}
	e.elements[id] = in
	return in
}

func (e *Environment) FindElementByID(id string) (ui.Element, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	in, ok := e.elements[id]
	if !ok {
		return nil, fmt.Errorf("#%s: %w", id, ui.ErrElementNotFound)
	}
	return in, nil
}

func (e *Environment) index(id string) int {
	return slices.IndexFunc(e.notifications, func(n ui.Notification) bool { return n.ID == id })
}

// Input is a plain input element.
type Input struct {
	id        string
	inputType string
}

func (i *Input) ID() string                    { return i.id }
func (i *Input) InputType() string             { return i.inputType }
func (i *Input) SetInputType(inputType string) { i.inputType = inputType }

// Masked reports whether the input hides its value.
func (i *Input) Masked() bool {
	return i.inputType == constants.InputTypePassword
}
