package compiler

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches one `{name}` or `{?name}` placeholder in a raw
// route template.
var placeholderPattern = regexp.MustCompile(`\{(\??)(\w+)\}`)

// CompiledMatcher is the output of Compile: an anchored regular expression
// with one named capture group per template placeholder, plus the ordered
// list of segment names as declared in the template (not sorted).
type CompiledMatcher struct {
	re       *regexp.Regexp
	segments []string
}

// Segments returns the ordered list of segment names as they appear in the
// compiled template.
func (m *CompiledMatcher) Segments() []string {
	out := make([]string, len(m.segments))
	copy(out, m.segments)
	return out
}

// String returns the underlying regular expression source, mostly useful
// for diagnostics and tests.
func (m *CompiledMatcher) String() string {
	return m.re.String()
}

// Compile turns a route template into a CompiledMatcher.
//
// Literal segments are quoted via regexp.QuoteMeta so regex metacharacters
// in them (e.g. a literal "." in "/files/archive.tar") are inert. Each
// `{name}` / `{?name}` placeholder becomes a named capture group whose body
// is the constraint's pattern (default `\w+`).
//
// An optional segment's immediately preceding literal slash, if any, is
// folded into the optional group along with the capture itself — so
// "/search/{?q}" matches both "/search" and "/search/hello" — rather than
// only suffixing the bare capture group with "?", which would leave a
// dangling required slash that "/search" alone could never satisfy. A
// required segment's surrounding literals are always required.
func Compile(template string, constraints map[string]Constraint) (*CompiledMatcher, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)

	seen := make(map[string]bool)
	var segments []string
	var b strings.Builder
	last := 0

	for _, loc := range matches {
		start, end := loc[0], loc[1]
		literal := template[last:start]
		optionalMarker := template[loc[2]:loc[3]] == "?"
		name := template[loc[4]:loc[5]]

		if seen[name] {
			return nil, fmt.Errorf("invalid route template %q: duplicate segment %q", template, name)
		}
		seen[name] = true
		segments = append(segments, name)

		var c *Constraint
		if constraint, ok := constraints[name]; ok {
			c = &constraint
		}
		pattern := `\w+`
		if c != nil {
			pattern = c.normalizedPattern()
		}
		required := resolveRequired(c, optionalMarker)

		group := fmt.Sprintf("(?P<%s>%s)", name, pattern)

		switch {
		case !required && strings.HasSuffix(literal, "/"):
			b.WriteString(regexp.QuoteMeta(literal[:len(literal)-1]))
			b.WriteString("(?:/" + group + ")?")
		case !required:
			b.WriteString(regexp.QuoteMeta(literal))
			b.WriteString(group + "?")
		default:
			b.WriteString(regexp.QuoteMeta(literal))
			b.WriteString(group)
		}

		last = end
	}
	b.WriteString(regexp.QuoteMeta(template[last:]))

	re, err := regexp.Compile("^" + b.String() + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid route template %q: %w", template, err)
	}

	return &CompiledMatcher{re: re, segments: segments}, nil
}

// MatchResult is the outcome of applying a CompiledMatcher to a request
// path: whether it matched, a name-keyed view of captured segments, and the
// same values in the template's declaration order.
type MatchResult struct {
	Matched bool

	named map[string]string
	order []string
}

// Named returns the captured value for a segment name and whether it was
// present in the path (false for an absent optional segment).
func (m *MatchResult) Named(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.named[name]
	return v, ok
}

// Values returns the captured values in the matcher's declaration order.
// An absent optional segment contributes no entry, mirroring the
// "string|absent" semantics of the data model without padding the slice
// with empty placeholders.
func (m *MatchResult) Values() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Match applies the matcher to path and returns a populated MatchResult.
func (m *CompiledMatcher) Match(path string) *MatchResult {
	loc := m.re.FindStringSubmatchIndex(path)
	if loc == nil {
		return &MatchResult{Matched: false, named: map[string]string{}}
	}

	names := m.re.SubexpNames()
	result := &MatchResult{Matched: true, named: make(map[string]string, len(m.segments))}

	for _, seg := range m.segments {
		idx := indexOf(names, seg)
		if idx == -1 {
			continue
		}
		start, end := loc[2*idx], loc[2*idx+1]
		if start == -1 {
			continue // optional group did not participate in the match
		}
		val := path[start:end]
		result.named[seg] = val
		result.order = append(result.order, val)
	}
	return result
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
