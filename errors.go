package pom

import (
	"errors"
	"fmt"
	"time"
)

// Failure classes. Concrete errors returned by wrappers unwrap to one of
// these, so callers can use errors.Is.
var (
	ErrTimeout          = errors.New("timeout")
	ErrNotFound         = errors.New("not found")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// TimeoutError is returned when a wait's condition was not satisfied within
// its budget.
type TimeoutError struct {
	// Element is the display name of the wrapper that waited.
	Element string
	// Action describes what was awaited, e.g. "displayed".
	Action  string
	Timeout time.Duration
	// Message is the caller-supplied timeout message, if any.
	Message string
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("%q: wait for %s timed out after %v", e.Element, e.Action, e.Timeout)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// NotFoundError is returned when a named lookup (list item, dropdown option,
// upload file) has no match.
type NotFoundError struct {
	Element string
	// Kind is what was looked up, e.g. "item" or "option".
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in %q", e.Kind, e.Key, e.Element)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IndexError is returned when a positional lookup exceeds the current size
// of a collection.
type IndexError struct {
	Element string
	// Kind is the collection member, e.g. "row", "column" or "item".
	Kind  string
	Index int
	// Count is the observed collection size at the time of the lookup.
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d is out of bounds in %q: found %d", e.Kind, e.Index, e.Element, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// checkIndex returns an *IndexError unless 0 <= i < n.
func checkIndex(element, kind string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Element: element, Kind: kind, Index: i, Count: n}
	}
	return nil
}
