package items

import (
	"veil/internal/app/indicator"
	"veil/internal/config"
)

// Apply pushes cfg's indicator settings into a running controller; the item is only rebuilt when its name or label changed.
// A replacement shown mid-run resumes without its appearance animation.
func Apply(ctrl *indicator.Controller, cfg *config.Config) error {
	if err := ctrl.SetDelay(cfg.Indicator.Delay); err != nil {
		return err
	}

	ctrl.SetInteractionBlocked(cfg.Indicator.BlockInteraction)

	if current, ok := ctrl.Item().(*Item); ok && current.name == cfg.Indicator.Item && current.view.label == cfg.Indicator.Label {
		return nil
	}

	item, err := New(cfg.Indicator.Item, cfg.Indicator.Label)
	if err != nil {
		return err
	}

	if err := ctrl.SetItem(item); err != nil {
		return err
	}

	if ctrl.IsShowing() {
		item.Resume()
	}

	return nil
}
