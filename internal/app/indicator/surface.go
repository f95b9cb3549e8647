//go:generate mockgen -source=surface.go -destination=surface_mock.go -package=indicator
package indicator

// Surface is the topmost layer the controller toggles.
// A surface that is not visible never intercepts input, whatever its blocking flag says.
type Surface interface {
	SetVisible(visible bool)
	SetInteractionBlocked(blocked bool)
	Attach(view View)
	Detach(view View)
}
