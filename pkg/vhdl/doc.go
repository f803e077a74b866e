// Package vhdl extracts a structural port description from VHDL entity text.
//
// Two front ends produce the same Entity model:
//
//   - ModeScan walks the text with a tolerant regular expression and accepts
//     any fragment shaped like "name : in|out type(range);". It is the default
//     and copes with pasted snippets that are not complete design units.
//   - ModeStrict builds a participle grammar for the entity declaration
//     (context clauses, port clause, identifier lists) and reports syntax
//     errors with line and column.
//
// Basic usage:
//
//	parser, err := vhdl.NewParser()
//	entity, err := parser.ParseString(src)
//	if errors.Is(err, vhdl.ErrNoSignalsFound) {
//		// nothing to wrap
//	}
//
// Range text such as "7 downto 0" is kept verbatim on the Port and resolved
// to numeric bounds on demand with ParseRange.
package vhdl
