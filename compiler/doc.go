// Package compiler turns a URI template ("/users/{id}/posts/{?slug}") plus
// a per-segment constraint map into a deterministic matcher: an anchored,
// Unicode-aware regular expression with one named capture group per
// placeholder, and the ordered list of segment names as they appear in the
// template.
//
// Matching is a single regexp.Regexp.FindStringSubmatchIndex call; there is no
// trie or radix structure here — callers that hold many routes scan them in
// declaration order (see the root router package's RouteCollection).
package compiler
