package itembuilder

import (
	"errors"
	"strconv"
)

var (
	// ErrUnresolved is matched by every *ResolutionError.
	ErrUnresolved = errors.New("itembuilder: material could not be resolved")

	// ErrInvalidOperation is returned by Builder.WithColor when the item is not leather armour.
	ErrInvalidOperation = errors.New("withColor is only applicable for leather armor!")

	// ErrUnknownFormat is returned when a config document has an unsupported extension or format.
	ErrUnknownFormat = errors.New("itembuilder: unknown config format")
)

// ResolutionError reports a material name, or head texture, that could not be
// turned into an item. Name is empty if the section had no material at all.
type ResolutionError struct {
	Name string
	Err  error
}

// Error ...
func (e *ResolutionError) Error() string {
	msg := "itembuilder: cannot resolve material " + strconv.Quote(e.Name)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrUnresolved so callers need not type-assert.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnresolved
}
