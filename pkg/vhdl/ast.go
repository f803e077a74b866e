package vhdl

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// DesignFile is the strict grammar root: context clauses followed by one
// entity declaration. Architectures and other units after the entity are
// ignored.
type DesignFile struct {
	Context []*ContextItem `@@*`
	Entity  *EntityDecl    `@@`
}

// ContextItem is a library or use clause preceding the entity.
type ContextItem struct {
	Library *LibraryClause `  @@`
	Use     *UseClause     `| @@`
}

// LibraryClause, e.g. "library ieee;"
type LibraryClause struct {
	Names []string `KwLibrary @Ident ( Comma @Ident )* Semicolon`
}

// UseClause, e.g. "use ieee.std_logic_1164.all;"
type UseClause struct {
	Path []string `KwUse @Ident ( Dot @( Ident | KwAll ) )* Semicolon`
}

// String returns the dotted selected name.
func (u *UseClause) String() string {
	return strings.Join(u.Path, ".")
}

// EntityDecl represents "entity NAME is port (...); end [entity] [NAME];"
type EntityDecl struct {
	Name    string      `KwEntity @Ident KwIs`
	Port    *PortClause `@@?`
	EndName string      `KwEnd KwEntity? @Ident? Semicolon`
}

// PortClause represents the port list. The separator after each declaration
// is optional so a trailing semicolon before the closing parenthesis parses.
type PortClause struct {
	Ports []*PortDecl `KwPort LParen ( @@ Semicolon? )* RParen Semicolon`
}

// PortDecl is one interface declaration, possibly naming several ports.
// Example: a, b : in std_logic_vector(7 downto 0)
type PortDecl struct {
	Pos lexer.Position

	Names []string         `@Ident ( Comma @Ident )*`
	Mode  string           `Colon @( KwInout | KwIn | KwOut | KwBuffer | KwLinkage )`
	Type  string           `@Ident`
	Range *RangeConstraint `@@?`
}

// RangeConstraint holds the tokens between the type's parentheses.
type RangeConstraint struct {
	Tokens []string `LParen @( ~RParen )+ RParen`
}

// Text joins the constraint tokens with single spaces.
func (r *RangeConstraint) Text() string {
	if r == nil {
		return ""
	}
	return strings.Join(r.Tokens, " ")
}

// toEntity converts the parse tree into the Entity model.
func (f *DesignFile) toEntity() (*Entity, error) {
	decl := f.Entity
	entity := &Entity{Name: decl.Name}
	if decl.Port == nil {
		return nil, ErrNoSignalsFound
	}

	for _, pd := range decl.Port.Ports {
		dir := Direction(pd.Mode)
		if !dir.IsIn() && !dir.IsOut() {
			return nil, &DirectionError{Port: pd.Names[0], Mode: pd.Mode}
		}
		for _, name := range pd.Names {
			entity.Ports = append(entity.Ports, Port{
				Name:      name,
				Direction: dir,
				Type:      pd.Type,
				Range:     pd.Range.Text(),
			})
		}
	}

	if len(entity.Ports) == 0 {
		return nil, ErrNoSignalsFound
	}
	return entity, nil
}
