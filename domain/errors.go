package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrQuoteUnavailable neither the direct nor the inverse ticker produced a usable price
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrInvalidCycle two or more currencies of a cycle coincide, or one is missing
	ErrInvalidCycle = errors.New("invalid cycle")

	// ErrNonFiniteRate a rate or product is zero, negative, infinite or NaN
	ErrNonFiniteRate = errors.New("non-finite rate")

	// ErrProviderFailure the provider could not be reached or answered with a server error
	ErrProviderFailure = errors.New("provider failure")
)

// LegError identifies the leg of a cycle that could not be resolved.
type LegError struct {
	// Index zero based position of the leg in the cycle
	Index int
	Pair  Pair
	Err   error
}

func (e *LegError) Error() string {
	return fmt.Sprintf("leg %d (%v): %v", e.Index+1, e.Pair, e.Err)
}

func (e *LegError) Unwrap() error {
	return e.Err
}
