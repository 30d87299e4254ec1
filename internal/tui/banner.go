package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/agenda/internal/ui"
)

// RenderBanner draws one notification. Exiting banners are dimmed.
func RenderBanner(n ui.Notification) string {
	style := successBannerStyle
	icon := "✓"
	if n.Kind == ui.KindError {
		style = errorBannerStyle
		icon = "✗"
	}
	if n.Phase == ui.PhaseExiting {
		style = style.Faint(true)
	}
	return style.Render(fmt.Sprintf("%s %s  ×", icon, n.Message))
}

// RenderStack draws notifications top to bottom, right-aligned to width.
func RenderStack(notes []ui.Notification, width int) string {
	if len(notes) == 0 {
		return ""
	}
	banners := make([]string, len(notes))
	for i, n := range notes {
		banners[i] = RenderBanner(n)
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, banners...)
	if width <= 0 {
		return stack
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}

// Printer is a ui.Surface that writes each new banner to w. Exit and removal
// have nothing to undo on a plain stream.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) CreateNotification(n ui.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintln(p.w, RenderBanner(n))
	return err
}

func (p *Printer) ExitNotification(string) error   { return nil }
func (p *Printer) RemoveNotification(string) error { return nil }
