package telemetry

import (
	"context"

	"go.uber.org/fx"

	"veil/internal/app/bus"
)

// Module provides the telemetry reporter, subscribed to the bus for the app's lifetime
var Module = fx.Module("telemetry",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, r Reporter, b bus.Bus) {
		ctx, cancel := context.WithCancel(context.Background())

		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				r.Watch(ctx, b)
				return nil
			},
			OnStop: func(context.Context) error {
				cancel()
				r.Flush()

				return nil
			},
		})
	}),
)
