package extractsos

import "errors"

// Sentinel errors returned by the Runner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCommRequired is returned when the coordination transport is nil.
	ErrCommRequired = errors.New("coordination transport is required")

	// ErrReachSourceRequired is returned when the reach source is nil.
	ErrReachSourceRequired = errors.New("reach source is required")

	// ErrProcessorRequired is returned when the processor is nil.
	ErrProcessorRequired = errors.New("processor is required")

	// ErrLogSinkRequired is returned when no log directory is configured
	// and no explicit log sinks were supplied.
	ErrLogSinkRequired = errors.New("log directory or explicit log sinks are required")

	// ErrAlreadyRun is returned when Run is called twice on the same Runner.
	ErrAlreadyRun = errors.New("runner has already completed a run")
)
