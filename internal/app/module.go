package app

import (
	"go.uber.org/fx"

	"veil/internal/app/bus"
	"veil/internal/app/cli"
	"veil/internal/app/generator"
	"veil/internal/app/lifecycle"
	"veil/internal/app/loop"
	"veil/internal/app/monitor"
	"veil/internal/app/tasks"
	"veil/internal/app/telemetry"
	"veil/internal/app/ui/wire"
	"veil/internal/app/watcher"
	"veil/internal/app/worker"
)

// Module wires every package the commands need; config, options and logger are supplied by main
var Module = fx.Options(
	bus.Module,
	loop.Module,
	worker.Module,
	monitor.Module,
	lifecycle.Module,
	watcher.Module,
	telemetry.Module,
	tasks.Module,
	generator.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
