// Package errors provides sentinel errors for the chess-editor tool.
// It defines the few failure conditions the editor can report and small
// wrapping helpers that preserve error inspection with errors.Is() and
// errors.As(). Cell operations on the board itself never produce errors;
// they report success through boolean results instead.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnknownPiece indicates a piece colour/kind combination outside
	// the enumerated sets. Pieces built from the exported constants can
	// never trigger it.
	ErrUnknownPiece = errors.New("unknown piece combination")

	// ErrUnknownTheme indicates a render theme name with no definition.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
