package tasks

import "go.uber.org/fx"

// Module provides the task runner
var Module = fx.Options(
	fx.Provide(NewRunner),
)
