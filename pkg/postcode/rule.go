package postcode

import (
	"regexp"
	"strings"
)

// Rule is a single named pattern over a normalized code or outward code.
type Rule struct {
	// Name is a short semantic label, e.g. "zero-district-area".
	Name string
	// Pattern is anchored at the start of the input. Patterns without a
	// trailing $ accept any input that begins with a match.
	Pattern *regexp.Regexp
	// Exclude lists prefixes that make the rule fail before Pattern is tried.
	Exclude []string
}

// NewRule compiles pattern into a Rule. It panics if the pattern is invalid;
// rules are package-level tables built at init.
func NewRule(name, pattern string, exclude ...string) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(pattern),
		Exclude: exclude,
	}
}

// Match reports whether s satisfies the rule. A rule without a pattern
// matches nothing.
func (r Rule) Match(s string) bool {
	if r.Pattern == nil {
		return false
	}
	for _, prefix := range r.Exclude {
		if strings.HasPrefix(s, prefix) {
			return false
		}
	}
	return r.Pattern.MatchString(s)
}

// String returns the rule name.
func (r Rule) String() string {
	return r.Name
}

// MatchAll reports whether s satisfies every rule. On failure it returns the
// first rule that did not match.
func MatchAll(rules []Rule, s string) (Rule, bool) {
	for _, r := range rules {
		if !r.Match(s) {
			return r, false
		}
	}
	return Rule{}, true
}

// MatchAny reports whether s satisfies at least one rule and returns the
// first one that did.
func MatchAny(rules []Rule, s string) (Rule, bool) {
	for _, r := range rules {
		if r.Match(s) {
			return r, true
		}
	}
	return Rule{}, false
}
