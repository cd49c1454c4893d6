package core

import (
	"errors"
	"fmt"
	"time"
)

var ErrTimeout = errors.New("Timeout. Condition not met on page")
var ErrNavigation = errors.New("Cannot open page")

const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultNavTimeout   = 30 * time.Second
)

// AssertionError describes a page assertion that did not hold within its timeout.
type AssertionError struct {
	Assertion string // eg. "to be visible", "to contain text"
	Selector  string
	Expected  string
	Actual    string
	Timeout   time.Duration
	Err       error
}

func (e *AssertionError) Error() string {
	msg := fmt.Sprintf("expect %s %s: timed out after %s", e.Selector, e.Assertion, e.Timeout)
	if e.Expected != "" {
		msg += fmt.Sprintf("\n  expected: %q\n  actual:   %q", e.Expected, e.Actual)
	} else if e.Actual != "" {
		msg += fmt.Sprintf(" (%s)", e.Actual)
	}
	return msg
}

func (e *AssertionError) Unwrap() error {
	return e.Err
}
