package vhdl

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSignalsFound is returned when the text contains no port declarations.
	ErrNoSignalsFound = errors.New("vhdl: no signal found, check the VHDL entity")

	// ErrInvalidRangeFormat is returned when a range does not hold exactly two integer bounds.
	ErrInvalidRangeFormat = errors.New("vhdl: invalid range format")

	// ErrUnsupportedDirection is returned by the strict parser for inout/buffer/linkage ports.
	ErrUnsupportedDirection = errors.New("vhdl: unsupported port direction")
)

// RangeFormatError describes a range whose bounds could not be resolved.
type RangeFormatError struct {
	Text   string
	Count  int
	Reason string
}

func (e *RangeFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("vhdl: invalid range format %q: %s", e.Text, e.Reason)
	}
	return fmt.Sprintf("vhdl: invalid range format %q: expected 2 integers, found %d", e.Text, e.Count)
}

func (e *RangeFormatError) Unwrap() error {
	return ErrInvalidRangeFormat
}

// DirectionError reports a port whose mode cannot be wrapped.
type DirectionError struct {
	Port string
	Mode string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("vhdl: port %s has unsupported direction %q (only in and out can be wrapped)", e.Port, e.Mode)
}

func (e *DirectionError) Unwrap() error {
	return ErrUnsupportedDirection
}
