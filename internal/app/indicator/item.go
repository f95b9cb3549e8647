//go:generate mockgen -source=item.go -destination=item_mock.go -package=indicator
package indicator

// View is the displayable part of an indicator item
type View interface {
	Render() string
	SetHidden(hidden bool)
	Hidden() bool
}

// Item is a swappable visual representation of activity in progress.
// AnimateShow and AnimateHide are called outside of any animation context and
// must settle within the controller delay, otherwise the tail of the
// animation is cut by the surface teardown.
type Item interface {
	View() View
	AnimateShow()
	AnimateHide()
}
