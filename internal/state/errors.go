package state

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalid    = errors.New("invalid input")
	ErrConflict   = errors.New("already exists")
	ErrSelfDelete = errors.New("you cannot delete your own account")

	// ErrSync wraps every storage failure. Memory is left unchanged.
	ErrSync = errors.New("sync failed")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func syncFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrSync, err)
}
