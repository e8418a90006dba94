package compiler

import "strings"

// trimSentinel holds the characters a constraint pattern is trimmed of
// before it is embedded into a capture group. These are the characters the
// original route-template syntax reserves for literal path separators and
// percent-encoding, so a pattern accidentally copy-pasted with them attached
// (e.g. from a URL) does not silently change the group's semantics.
const trimSentinel = "/~@;%`#"

// Constraint restricts a single named segment of a route template: Pattern
// is a regular expression fragment (no anchors, no capture group wrapper —
// the compiler supplies both), and Required overrides whether the segment
// must be present. A nil Required means "absent": the template's own `{?name}`
// vs `{name}` marker decides.
type Constraint struct {
	Pattern  string
	Required *bool
}

// Bool returns a pointer to b, for building a Constraint's Required field
// inline: Constraint{Pattern: `\d+`, Required: compiler.Bool(true)}.
func Bool(b bool) *bool { return &b }

// normalizedPattern returns c.Pattern trimmed of the sentinel characters and
// defaulted to `\w+` when empty.
func (c Constraint) normalizedPattern() string {
	p := strings.Trim(c.Pattern, trimSentinel)
	if p == "" {
		return `\w+`
	}
	return p
}

// resolveRequired decides whether a segment is required given the
// constraint (if any) and whether the template used the `{?name}` marker.
func resolveRequired(c *Constraint, templateOptional bool) bool {
	if c != nil && c.Required != nil {
		return *c.Required
	}
	return !templateOptional
}
