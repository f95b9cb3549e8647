package loop

import (
	"context"

	"go.uber.org/fx"

	"veil/internal/config/logger"
)

// Module provides the event loop and closes it on shutdown
var Module = fx.Module("loop",
	fx.Provide(func(lc fx.Lifecycle, log logger.Logger) Loop {
		l := New(log)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				l.Close()
				return nil
			},
		})

		return l
	}),
)
