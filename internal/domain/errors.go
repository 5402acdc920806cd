package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when something is not found
	ErrNotFound     = errors.New("item not found")
	ErrInvalidInput = errors.New("invalid input")
)

// PersistenceError reports a store failure during a find or a commit.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
