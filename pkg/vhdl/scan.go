package vhdl

import (
	"regexp"
	"strings"
)

var (
	// Pattern: -- comment to end of line
	commentRegexp = regexp.MustCompile(`--[^\n]*`)

	// Pattern: entity <name> is
	entityRegexp = regexp.MustCompile(`(?i)\bentity\s+(\w+)\s+is\b`)

	// Pattern: <name> : in|out <type> [(<range>)] [;]
	// The range may span lines and the trailing semicolon is optional so the
	// last port of a list still matches.
	portRegexp = regexp.MustCompile(`(?is)\b(\w+)\s*:\s*(in|out)\s+(\w+)(\s*\((.*?)\))?;?`)

	// Pattern: <name>, ... <name> : in|out
	identListRegexp = regexp.MustCompile(`(?is)\b((?:\w+\s*,\s*)+)(\w+)\s*:\s*(in|out)\s`)
)

// stripComments removes VHDL line comments.
func stripComments(src string) string {
	return commentRegexp.ReplaceAllString(src, "")
}

// normalizeRange collapses the whitespace of a range that may span lines.
func normalizeRange(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// scanEntityName returns the first "entity <name> is" identifier, or
// UnknownEntity when there is none.
func scanEntityName(src string) string {
	if m := entityRegexp.FindStringSubmatch(src); m != nil {
		return m[1]
	}
	return UnknownEntity
}

// scanPorts returns every port-shaped fragment in src, in text order.
func scanPorts(src string) []Port {
	matches := portRegexp.FindAllStringSubmatch(src, -1)
	ports := make([]Port, 0, len(matches))
	for _, m := range matches {
		ports = append(ports, Port{
			Name:      m[1],
			Direction: Direction(m[2]),
			Type:      m[3],
			Range:     normalizeRange(m[5]),
		})
	}
	return ports
}

// scanEntity is the regex front end.
func scanEntity(src string) (*Entity, error) {
	src = stripComments(src)

	ports := scanPorts(src)
	if len(ports) == 0 {
		return nil, ErrNoSignalsFound
	}

	return &Entity{
		Name:  scanEntityName(src),
		Ports: ports,
	}, nil
}

// IdentifierLists returns the names of every port declaration in src that
// lists more than one identifier, such as "a, b : in std_logic". The scan
// front end keeps only the last name of each list.
func IdentifierLists(src string) [][]string {
	var lists [][]string
	for _, m := range identListRegexp.FindAllStringSubmatch(stripComments(src), -1) {
		var names []string
		for _, name := range strings.Split(m[1], ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		lists = append(lists, append(names, m[2]))
	}
	return lists
}
