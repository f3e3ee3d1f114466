package domain

import "errors"

// ErrInvalidInput is returned when a capacity or the wanted amount is not a positive integer.
var ErrInvalidInput = errors.New("all inputs must be positive integers")

// ErrUnknownAction is returned when an action label does not name one of the six actions.
var ErrUnknownAction = errors.New("unknown action")

// ErrInvalidTrace is returned by Trace.Verify when a trace breaks the replay rules.
var ErrInvalidTrace = errors.New("invalid trace")
