package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrFetch matches any FetchError via errors.Is.
	ErrFetch = errors.New("fetch failed")

	// ErrWrite matches any WriteError via errors.Is.
	ErrWrite = errors.New("write failed")
)

// Resource kinds reported by FetchError.
const (
	KindBot      = "bot"
	KindIntent   = "intent"
	KindSlotType = "slot type"
)

// FetchError reports a failed remote read of a bot, intent or slot type.
type FetchError struct {
	Kind    string
	Name    string
	Version string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s %s (version %s): %v", e.Kind, e.Name, e.Version, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetch) true for every FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// WriteError reports that the export document could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrWrite) true for every WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
