package flatten

import (
	"fmt"

	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
)

// Plan splits a port into Instances elements of BitsPerInstance bits each.
type Plan struct {
	Instances       int
	BitsPerInstance int
}

// Width returns the width of the flat bus, Instances * BitsPerInstance.
func (p Plan) Width() int {
	return p.Instances * p.BitsPerInstance
}

// TypeName returns the name of the array type carrying this plan.
func (p Plan) TypeName() string {
	return fmt.Sprintf("array%dx%d_t", p.Instances, p.BitsPerInstance)
}

// String formats the plan as "<instances>x<bits>".
func (p Plan) String() string {
	return fmt.Sprintf("%dx%d", p.Instances, p.BitsPerInstance)
}

// Validate checks that both dimensions are positive.
func (p Plan) Validate() error {
	if p.BitsPerInstance <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBitsPerInstance, p.BitsPerInstance)
	}
	if p.Instances <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidInstances, p.Instances)
	}
	return nil
}

// FromBitsPerInstance derives the instance count from the port's declared
// range. The port width must be a multiple of bits.
func FromBitsPerInstance(port vhdl.Port, bits int) (Plan, error) {
	if bits <= 0 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrInvalidBitsPerInstance, bits)
	}

	r, err := port.Bounds()
	if err != nil {
		return Plan{}, fmt.Errorf("port %s: %w", port.Name, err)
	}

	total := r.TotalBits()
	if total%bits != 0 {
		return Plan{}, &SplitError{Port: port.Name, TotalBits: total, BitsPerInstance: bits}
	}

	return Plan{Instances: total / bits, BitsPerInstance: bits}, nil
}

// Direct builds a plan from caller-supplied dimensions. There is no declared
// width to check against, so the product of the two becomes the bus width.
func Direct(instances, bits int) (Plan, error) {
	p := Plan{Instances: instances, BitsPerInstance: bits}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}
