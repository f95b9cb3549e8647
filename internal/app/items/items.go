package items

import (
	"fmt"

	"veil/internal/app/errors"
	"veil/internal/app/indicator"
	"veil/internal/app/ui/components"
	"veil/internal/config"
)

// View is an indicator view that animates one frame per Advance
type View interface {
	indicator.View
	Advance()
}

// animation is the frame source behind a view
type animation interface {
	Start()
	Resume()
	Stop()
	Update()
	Frame() string
	IsActive() bool
}

// view renders an animation frame next to a label
type view struct {
	anim   animation
	label  string
	hidden bool
}

// Render returns the current frame and label, or nothing while hidden
func (v *view) Render() string {
	if v.hidden {
		return ""
	}

	if v.label == "" {
		return v.anim.Frame()
	}

	return v.anim.Frame() + " " + components.LabelStyle.Render(v.label)
}

// SetHidden toggles the view's hidden flag
func (v *view) SetHidden(hidden bool) {
	v.hidden = hidden
}

// Hidden reports the view's hidden flag
func (v *view) Hidden() bool {
	return v.hidden
}

// Advance moves the animation one frame forward
func (v *view) Advance() {
	if v.hidden {
		return
	}

	v.anim.Update()
}

// Item is a named indicator item built from an animation
type Item struct {
	name string
	view *view
}

// View returns the item's view
func (i *Item) View() indicator.View {
	return i.view
}

// AnimateShow starts the appearance animation
func (i *Item) AnimateShow() {
	i.view.anim.Start()
}

// Resume puts the item straight into its running state, skipping the appearance animation.
// Used when the item replaces one that is already on screen.
func (i *Item) Resume() {
	i.view.anim.Resume()
}

// AnimateHide starts the disappearance animation
func (i *Item) AnimateHide() {
	i.view.anim.Stop()
}

// Name returns the name the item was created with
func (i *Item) Name() string {
	return i.name
}

// Animating reports whether the item's animation is running
func (i *Item) Animating() bool {
	return i.view.anim.IsActive()
}

// New creates a built-in item by name
func New(name, label string) (*Item, error) {
	var anim animation

	switch name {
	case config.ItemSpinner:
		anim = newSpinner()
	case config.ItemPulse:
		anim = newPulse()
	case config.ItemBar:
		anim = newBar()
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownItem, name)
	}

	return &Item{name: name, view: &view{anim: anim, label: label}}, nil
}

// Names lists the built-in items in cycling order
func Names() []string {
	names := make([]string, len(config.ItemNames))
	copy(names, config.ItemNames)

	return names
}

// Next returns the item name that follows name in cycling order
func Next(name string) string {
	for i, candidate := range config.ItemNames {
		if candidate == name {
			return config.ItemNames[(i+1)%len(config.ItemNames)]
		}
	}

	return config.DefaultItem
}
