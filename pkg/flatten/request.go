package flatten

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
)

// Request asks for one port to be flattened. When Instances is zero the
// instance count is derived from the port range (FromBitsPerInstance),
// otherwise both dimensions are taken as given (Direct).
type Request struct {
	Port            string
	Instances       int
	BitsPerInstance int
}

// Derived reports whether the request relies on the port's declared range.
func (r Request) Derived() bool {
	return r.Instances == 0
}

func (r Request) String() string {
	if r.Derived() {
		return fmt.Sprintf("%s=%d", r.Port, r.BitsPerInstance)
	}
	return fmt.Sprintf("%s=%dx%d", r.Port, r.Instances, r.BitsPerInstance)
}

// ParseRequest parses "name=bits" or "name=instancesxbits".
func ParseRequest(s string) (Request, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !ok || name == "" || value == "" {
		return Request{}, fmt.Errorf("%w %q: expected name=bits or name=NxB", ErrInvalidRequest, s)
	}

	req := Request{Port: name}
	if n, b, split := strings.Cut(strings.ToLower(value), "x"); split {
		instances, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return Request{}, fmt.Errorf("%w %q: instances: %v", ErrInvalidRequest, s, err)
		}
		if instances <= 0 {
			return Request{}, fmt.Errorf("%w: got %d in %q", ErrInvalidInstances, instances, s)
		}
		bits, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return Request{}, fmt.Errorf("%w %q: bits: %v", ErrInvalidRequest, s, err)
		}
		req.Instances = instances
		req.BitsPerInstance = bits
		return req, nil
	}

	bits, err := strconv.Atoi(value)
	if err != nil {
		return Request{}, fmt.Errorf("%w %q: bits: %v", ErrInvalidRequest, s, err)
	}
	req.BitsPerInstance = bits
	return req, nil
}

// ParseRequests parses each string with ParseRequest.
func ParseRequests(specs []string) ([]Request, error) {
	reqs := make([]Request, 0, len(specs))
	for _, s := range specs {
		req, err := ParseRequest(s)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Merge returns the default requests not superseded by an override,
// followed by the overrides. Ports are compared case-insensitively.
func Merge(defaults, overrides []Request) []Request {
	overridden := make(map[string]bool, len(overrides))
	for _, req := range overrides {
		overridden[strings.ToLower(req.Port)] = true
	}

	merged := make([]Request, 0, len(defaults)+len(overrides))
	for _, req := range defaults {
		if !overridden[strings.ToLower(req.Port)] {
			merged = append(merged, req)
		}
	}
	return append(merged, overrides...)
}

// Plans maps port names, as declared by the entity, to their flatten plan.
type Plans map[string]Plan

// Lookup returns the plan attached to the named port.
func (p Plans) Lookup(port string) (Plan, bool) {
	plan, ok := p[port]
	return plan, ok
}

// Annotate resolves each request against the entity and returns the plans
// keyed by declared port name. The entity itself is not modified.
func Annotate(entity vhdl.Entity, reqs []Request) (Plans, error) {
	plans := make(Plans, len(reqs))
	for _, req := range reqs {
		port, ok := entity.Port(req.Port)
		if !ok {
			return nil, fmt.Errorf("%w %q in entity %s", ErrUnknownPort, req.Port, entity.Name)
		}
		if _, dup := plans[port.Name]; dup {
			return nil, fmt.Errorf("%w for port %s", ErrDuplicateRequest, port.Name)
		}

		var (
			plan Plan
			err  error
		)
		if req.Derived() {
			plan, err = FromBitsPerInstance(port, req.BitsPerInstance)
		} else {
			plan, err = Direct(req.Instances, req.BitsPerInstance)
		}
		if err != nil {
			return nil, fmt.Errorf("flatten %s: %w", req, err)
		}
		plans[port.Name] = plan
	}
	return plans, nil
}
