package registry

import "errors"

var (
	// ErrUnknownCommand is returned when aliasing a command that was never
	// registered.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNameTaken is returned when the requested alias name is already a
	// registered primary command. Primaries must be unregistered before
	// their name can be reused as an alias.
	ErrNameTaken = errors.New("name already registered as a command")
)
