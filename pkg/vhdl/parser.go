package vhdl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Mode selects the parser front end.
type Mode int

const (
	// ModeScan finds port-shaped fragments anywhere in the text.
	ModeScan Mode = iota
	// ModeStrict parses context clauses and one entity declaration.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeScan:
		return "scan"
	case ModeStrict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "scan" or "strict" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scan":
		return ModeScan, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModeScan, fmt.Errorf("vhdl: unknown parser mode %q", s)
	}
}

// Parser extracts entities from VHDL text.
type Parser struct {
	mode    Mode
	grammar *participle.Parser[DesignFile]
}

// Option configures a Parser.
type Option func(*Parser)

// WithMode selects the front end. The default is ModeScan.
func WithMode(mode Mode) Option {
	return func(p *Parser) {
		p.mode = mode
	}
}

// NewParser creates a new entity parser.
func NewParser(opts ...Option) (*Parser, error) {
	grammar, err := participle.Build[DesignFile](
		participle.Lexer(EntityLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	p := &Parser{grammar: grammar}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Mode returns the front end in use.
func (p *Parser) Mode() Mode {
	return p.mode
}

// Parse parses an entity from a reader.
func (p *Parser) Parse(r io.Reader) (*Entity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return p.ParseString(string(data))
}

// ParseString parses an entity from a string.
func (p *Parser) ParseString(input string) (*Entity, error) {
	if p.mode == ModeScan {
		return scanEntity(input)
	}

	file, err := p.grammar.ParseString("", input, participle.AllowTrailing(true))
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file.toEntity()
}

// ParseFile parses an entity from a file path.
func (p *Parser) ParseFile(filename string) (*Entity, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
