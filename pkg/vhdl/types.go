package vhdl

import "strings"

// UnknownEntity is the name used when no "entity <name> is" header is found.
const UnknownEntity = "Unknown"

// Direction is the port mode as written in the source text.
type Direction string

// Port directions understood by the wrapper generator.
const (
	DirIn  Direction = "in"
	DirOut Direction = "out"
)

// IsIn reports whether the direction is "in", ignoring case.
func (d Direction) IsIn() bool {
	return strings.EqualFold(string(d), string(DirIn))
}

// IsOut reports whether the direction is "out", ignoring case.
func (d Direction) IsOut() bool {
	return strings.EqualFold(string(d), string(DirOut))
}

// Upper returns the direction keyword in upper case, as emitted in port clauses.
func (d Direction) Upper() string {
	return strings.ToUpper(string(d))
}

// Port is a single port declaration of an entity.
type Port struct {
	Name      string
	Direction Direction
	Type      string
	// Range is the raw text inside the type's parentheses, e.g. "7 downto 0".
	// Empty when the port is a scalar.
	Range string
}

// HasRange reports whether the port declared a parenthesized range.
func (p Port) HasRange() bool {
	return strings.TrimSpace(p.Range) != ""
}

// Bounds resolves the port's range text to numeric bounds.
func (p Port) Bounds() (Range, error) {
	return ParseRange(p.Range)
}

// TypeClause returns "<type>(<range>)", or just the type for scalar ports.
func (p Port) TypeClause() string {
	if !p.HasRange() {
		return p.Type
	}
	return p.Type + "(" + p.Range + ")"
}

// Entity is a parsed entity interface. Ports are in declaration order.
type Entity struct {
	Name  string
	Ports []Port
}

// Port looks up a port by name. VHDL identifiers are case-insensitive.
func (e Entity) Port(name string) (Port, bool) {
	for _, p := range e.Ports {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Port{}, false
}

// Resolved reports whether the entity name was found in the source text.
func (e Entity) Resolved() bool {
	return e.Name != "" && e.Name != UnknownEntity
}

// WrapperName returns the name of the generated wrapper entity.
func (e Entity) WrapperName() string {
	name := e.Name
	if name == "" {
		name = UnknownEntity
	}
	return name + "_wrapper"
}
