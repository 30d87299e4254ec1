package tui

import (
	"fmt"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/agenda/internal/ui"
)

// NotificationsChangedMsg asks the program to redraw the banner stack.
type NotificationsChangedMsg struct{}

var _ ui.Environment = (*Environment)(nil)

// Environment is the terminal rendition of ui.Environment: banners are drawn
// by the model from Notifications, and fields are looked up by ID.
type Environment struct {
	ui.SystemScheduler

	mu            sync.Mutex
	notifications []ui.Notification
	elements      map[string]ui.Element
	send          func(tea.Msg)
}

func NewEnvironment() *Environment {
	return &Environment{elements: make(map[string]ui.Element)}
}

// Attach connects the environment to a running program, usually tea.Program.Send.
func (e *Environment) Attach(send func(tea.Msg)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.send = send
}

// Send delivers msg to the attached program without blocking the caller.
func (e *Environment) Send(msg tea.Msg) {
	e.mu.Lock()
	send := e.send
	e.mu.Unlock()
	if send != nil {
		// Callers may be inside Update; Program.Send would deadlock there.
		go send(msg)
	}
}

// Register makes el reachable through FindElementByID.
func (e *Environment) Register(el ui.Element) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.elements[el.ID()] = el
}

func (e *Environment) FindElementByID(id string) (ui.Element, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	el, ok := e.elements[id]
	if !ok {
		return nil, fmt.Errorf("#%s: %w", id, ui.ErrElementNotFound)
	}
	return el, nil
}

func (e *Environment) CreateNotification(n ui.Notification) error {
	e.mu.Lock()
	e.notifications = append(e.notifications, n)
	e.mu.Unlock()
	e.Send(NotificationsChangedMsg{})
	return nil
}

func (e *Environment) ExitNotification(id string) error {
	e.mu.Lock()
	i := e.index(id)
	if i < 0 {
		e.mu.Unlock()
		return fmt.Errorf("notification %s: %w", id, ui.ErrElementNotFound)
	}
	e.notifications[i].Phase = ui.PhaseExiting
	e.mu.Unlock()
	e.Send(NotificationsChangedMsg{})
	return nil
}

func (e *Environment) RemoveNotification(id string) error {
	e.mu.Lock()
	i := e.index(id)
	if i < 0 {
		e.mu.Unlock()
		return fmt.Errorf("notification %s: %w", id, ui.ErrElementNotFound)
	}
	e.notifications = slices.Delete(e.notifications, i, i+1)
	e.mu.Unlock()
	e.Send(NotificationsChangedMsg{})
	return nil
}

// Notifications returns the banners to draw, oldest first.
func (e *Environment) Notifications() []ui.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.notifications)
}

func (e *Environment) index(id string) int {
	return slices.IndexFunc(e.notifications, func(n ui.Notification) bool { return n.ID == id })
}
