package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToLoadEnv     = errors.New("failed to load env file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigExists        = errors.New("config file already exists")

	ErrInvalidDelay           = errors.New("delay must be positive")
	ErrInvalidWorkers         = errors.New("concurrency workers must be positive")
	ErrInvalidWatchDebounce   = errors.New("watch debounce must not be negative")
	ErrTaskNameRequired       = errors.New("task name is required")
	ErrTaskCommandRequired    = errors.New("task command is required")
	ErrDuplicateTask          = errors.New("duplicate task name")
	ErrInvalidTaskPattern     = errors.New("invalid task pattern")
	ErrNoTasksMatched         = errors.New("no tasks matched")
	ErrTaskFailed             = errors.New("task failed")
	ErrFailedToAcquireWorker  = errors.New("failed to acquire worker")
	ErrUnknownItem            = errors.New("unknown indicator item")
	ErrNilItem                = errors.New("indicator item must not be nil")
	ErrContractViolation      = errors.New("indicator contract violation")
	ErrLoopClosed             = errors.New("event loop closed")
	ErrFailedToCreateWatcher  = errors.New("failed to create watcher")
	ErrFailedToInitTelemetry  = errors.New("failed to initialize telemetry")
	ErrUnknownCommand         = errors.New("unknown command")
	ErrDemoRequiresUI         = errors.New("demo requires a terminal UI")
	ErrFailedToWriteTemplate  = errors.New("failed to write config template")
	ErrFailedToStartCommand   = errors.New("failed to start command")
	ErrFailedToRenderTemplate = errors.New("failed to render config template")

	ErrFailedToCreatePipe       = errors.New("failed to create pipe")
	ErrFailedToTerminateProcess = errors.New("failed to terminate process")
	ErrFailedToGetWorkingDir    = errors.New("failed to get working directory")
	ErrTaskDirectoryNotExist    = errors.New("task directory does not exist")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
