package flatten

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBitsPerInstance is returned when bits per instance is not positive.
	ErrInvalidBitsPerInstance = errors.New("flatten: bits per instance must be positive")

	// ErrInvalidInstances is returned when a direct plan has a non-positive instance count.
	ErrInvalidInstances = errors.New("flatten: number of instances must be positive")

	// ErrNonDivisibleSplit is returned when the port width is not a multiple of
	// the requested bits per instance.
	ErrNonDivisibleSplit = errors.New("flatten: total bits not divisible by bits per instance")

	// ErrUnknownPort is returned for requests naming a port the entity does not declare.
	ErrUnknownPort = errors.New("flatten: unknown port")

	// ErrDuplicateRequest is returned when one port is requested twice.
	ErrDuplicateRequest = errors.New("flatten: duplicate request")

	// ErrInvalidRequest is returned for malformed request text.
	ErrInvalidRequest = errors.New("flatten: invalid request")
)

// SplitError reports a width that cannot be split evenly.
type SplitError struct {
	Port            string
	TotalBits       int
	BitsPerInstance int
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("flatten: port %s has %d bits, which is not divisible by %d bits per instance (remainder %d)",
		e.Port, e.TotalBits, e.BitsPerInstance, e.TotalBits%e.BitsPerInstance)
}

func (e *SplitError) Unwrap() error {
	return ErrNonDivisibleSplit
}
