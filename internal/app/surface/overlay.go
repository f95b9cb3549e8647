package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"veil/internal/app/indicator"
	"veil/internal/app/ui/components"
)

// advancer is a view that animates frame by frame
type advancer interface {
	Advance()
}

// Overlay is the topmost layer of a full-screen TUI
type Overlay struct {
	visible bool
	blocked bool
	views   []indicator.View
}

// NewOverlay creates a hidden overlay
func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetVisible raises or lowers the overlay
func (o *Overlay) SetVisible(visible bool) {
	o.visible = visible
}

// SetInteractionBlocked sets whether the overlay absorbs input while visible
func (o *Overlay) SetInteractionBlocked(blocked bool) {
	o.blocked = blocked
}

// Attach adds a view on top of the overlay
func (o *Overlay) Attach(view indicator.View) {
	o.views = append(o.views, view)
}

// Detach removes a view from the overlay
func (o *Overlay) Detach(view indicator.View) {
	for i, v := range o.views {
		if v == view {
			o.views = append(o.views[:i], o.views[i+1:]...)
			return
		}
	}
}

// Visible reports whether the overlay is raised
func (o *Overlay) Visible() bool {
	return o.visible
}

// Blocked reports the interaction-blocking flag
func (o *Overlay) Blocked() bool {
	return o.blocked
}

// Absorbs reports whether input must be swallowed right now
func (o *Overlay) Absorbs() bool {
	return o.visible && o.blocked
}

// Views returns the attached views
func (o *Overlay) Views() []indicator.View {
	return o.views
}

// Tick advances every attached view one animation frame
func (o *Overlay) Tick() {
	for _, v := range o.views {
		if a, ok := v.(advancer); ok {
			a.Advance()
		}
	}
}

// Compose draws the overlay over base, which is returned unchanged while the overlay is down
func (o *Overlay) Compose(base string, width, height int) string {
	if !o.visible {
		return base
	}

	lines := dim(base, height)

	content := o.render()
	if content == "" {
		return strings.Join(lines, "\n")
	}

	box := strings.Split(components.OverlayStyle.Render(content), "\n")

	top := (len(lines) - len(box)) / 2
	if top < 0 {
		top = 0
	}

	for i, row := range box {
		if top+i >= len(lines) {
			break
		}

		lines[top+i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	}

	return strings.Join(lines, "\n")
}

// render joins the renders of every visible attached view
func (o *Overlay) render() string {
	var parts []string

	for _, v := range o.views {
		if v.Hidden() {
			continue
		}

		if r := v.Render(); r != "" {
			parts = append(parts, r)
		}
	}

	return strings.Join(parts, "\n")
}

// dim strips styling from base and redraws it in the dimmed color, padded to height rows
func dim(base string, height int) []string {
	raw := strings.Split(ansi.Strip(base), "\n")

	for len(raw) < height {
		raw = append(raw, "")
	}

	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = components.DimmedStyle.Render(line)
	}

	return lines
}
