package wrapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/vhdlwrap/pkg/flatten"
	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
)

// ErrUnknownPort is returned when a plan names a port the entity does not declare.
var ErrUnknownPort = errors.New("wrapper: plan for unknown port")

// ErrNameClash is returned when the internal signal of a flattened port
// would reuse the name of a declared port.
var ErrNameClash = errors.New("wrapper: flat signal name clashes with a port")

// Options controls naming and layout of the generated units.
type Options struct {
	// Architecture is the wrapper architecture name.
	Architecture string
	// Library holds both the original entity and the type package.
	Library string
	// PackageName overrides the type package name, "<entity>_types_pkg" by default.
	PackageName string
	// Indent is one level of indentation.
	Indent string
}

// DefaultOptions returns the options used by Generate.
func DefaultOptions() Options {
	return Options{
		Architecture: "Behavioral",
		Library:      "work",
		Indent:       "    ",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Architecture == "" {
		o.Architecture = def.Architecture
	}
	if o.Library == "" {
		o.Library = def.Library
	}
	if o.Indent == "" {
		o.Indent = def.Indent
	}
	return o
}

// ArrayType is a custom "array of std_logic_vector" type used by flattened ports.
type ArrayType struct {
	Name      string
	Instances int
	Bits      int
}

// Declaration renders the VHDL type declaration.
func (t ArrayType) Declaration() (string, error) {
	return render("typeDecl", struct {
		Name string
		Last int
		High int
	}{t.Name, t.Instances - 1, t.Bits - 1})
}

// Result holds the generated source units.
type Result struct {
	// Wrapper is the wrapper entity and architecture.
	Wrapper string
	// Package declares the array types referenced by Wrapper.
	Package string
	// PackageName is the name of the package unit.
	PackageName string
	// Types lists the distinct array types, in order of first use.
	Types []ArrayType
}

// Generator renders wrappers. It holds no state between calls.
type Generator struct {
	opts Options
}

// New creates a Generator. Empty option fields take their defaults.
func New(opts Options) *Generator {
	return &Generator{opts: opts.withDefaults()}
}

// Generate renders a wrapper with DefaultOptions.
func Generate(entity vhdl.Entity, plans flatten.Plans) (*Result, error) {
	return New(DefaultOptions()).Generate(entity, plans)
}

// Generate renders the wrapper and type package for entity. Ports with an
// entry in plans are exposed as arrays; all others are passed through.
func (g *Generator) Generate(entity vhdl.Entity, plans flatten.Plans) (*Result, error) {
	planned, err := resolvePlans(entity, plans)
	if err != nil {
		return nil, err
	}

	name := entity.Name
	if name == "" {
		name = vhdl.UnknownEntity
	}
	pkgName := g.opts.PackageName
	if pkgName == "" {
		pkgName = name + "_types_pkg"
	}

	var (
		portClauses []string
		signals     []string
		blocks      []string
		portMap     []string
		types       []ArrayType
		seen        = make(map[flatten.Plan]bool)
	)

	for i, port := range entity.Ports {
		plan := planned[i]

		clause, err := portClause(port, plan)
		if err != nil {
			return nil, err
		}
		portClauses = append(portClauses, clause)

		entry, err := portMapEntry(port, plan)
		if err != nil {
			return nil, err
		}
		portMap = append(portMap, entry)

		if plan == nil {
			continue
		}

		sig, err := signalDecl(port, *plan)
		if err != nil {
			return nil, err
		}
		signals = append(signals, sig)

		block, err := generateBlock(port, *plan, g.opts.Indent)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)

		if !seen[*plan] {
			seen[*plan] = true
			types = append(types, ArrayType{
				Name:      plan.TypeName(),
				Instances: plan.Instances,
				Bits:      plan.BitsPerInstance,
			})
		}
	}

	wrapperSrc, err := render("wrapper", struct {
		I            string
		Library      string
		Package      string
		Wrapper      string
		Entity       string
		Architecture string
		Ports        []string
		Signals      []string
		Blocks       []string
		PortMap      []string
	}{
		I:            g.opts.Indent,
		Library:      g.opts.Library,
		Package:      pkgName,
		Wrapper:      name + "_wrapper",
		Entity:       name,
		Architecture: g.opts.Architecture,
		Ports:        portClauses,
		Signals:      signals,
		Blocks:       blocks,
		PortMap:      portMap,
	})
	if err != nil {
		return nil, fmt.Errorf("render wrapper: %w", err)
	}

	decls := make([]string, 0, len(types))
	for _, t := range types {
		decl, err := t.Declaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	pkgSrc, err := render("package", struct {
		I       string
		Package string
		Types   []string
	}{g.opts.Indent, pkgName, decls})
	if err != nil {
		return nil, fmt.Errorf("render package: %w", err)
	}

	return &Result{
		Wrapper:     wrapperSrc,
		Package:     pkgSrc,
		PackageName: pkgName,
		Types:       types,
	}, nil
}

// resolvePlans returns the plan of each port by position, nil for ports that
// pass through unchanged.
func resolvePlans(entity vhdl.Entity, plans flatten.Plans) ([]*flatten.Plan, error) {
	byName := make(map[string]flatten.Plan, len(plans))
	for name, plan := range plans {
		if _, ok := entity.Port(name); !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownPort, name)
		}
		if err := plan.Validate(); err != nil {
			return nil, fmt.Errorf("port %s: %w", name, err)
		}
		byName[strings.ToLower(name)] = plan
	}

	planned := make([]*flatten.Plan, len(entity.Ports))
	for i, port := range entity.Ports {
		plan, ok := byName[strings.ToLower(port.Name)]
		if !ok {
			continue
		}
		if !port.Direction.IsIn() && !port.Direction.IsOut() {
			return nil, &vhdl.DirectionError{Port: port.Name, Mode: string(port.Direction)}
		}
		if other, clash := entity.Port(flatSignal(port)); clash {
			return nil, fmt.Errorf("%w: port %s needs signal %s, declared as port %s",
				ErrNameClash, port.Name, flatSignal(port), other.Name)
		}
		planned[i] = &plan
	}
	return planned, nil
}
