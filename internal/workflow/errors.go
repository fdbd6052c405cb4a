package workflow

import "errors"

var (
	// ErrMissingArgument is returned when `add styles` is called without a style name.
	ErrMissingArgument = errors.New("please specify a style name, e.g. dora-styles add styles button")

	// ErrConfigNotFound is returned when a command needs dora.config.json and it is absent.
	ErrConfigNotFound = errors.New("dora.config.json not found, run `dora-styles init` first")
)
