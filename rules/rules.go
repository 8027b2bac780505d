// Package rules defines pattern/replacement rules for cleaning music
// metadata strings, along with predefined rule tables for common
// normalization tasks.
//
// A Rule compiles its pattern at construction time, so building the
// predefined tables repeatedly (for example inside a loop) is wasteful;
// the accessor functions in this package build each table once and share it.
package rules

import (
	"regexp"
	"strings"
)

// Rule is a single pattern/replacement transformation. A Rule is immutable
// after construction and safe for concurrent use.
type Rule struct {
	re          *regexp.Regexp
	replacement string
}

// NewRule compiles pattern as a regular expression and returns a Rule that
// replaces every match with replacement. The replacement is a template in
// Go's regexp syntax: $1 and ${name} expand to captured groups, $$ is a
// literal dollar sign. If the pattern does not compile, the returned error
// is a *InvalidPatternError.
func NewRule(pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return Rule{re: re, replacement: replacement}, nil
}

// NewLiteralRule returns a Rule that replaces every occurrence of the
// substring literal with replacement. Both arguments are treated as plain
// text, never as regexp or template syntax.
func NewLiteralRule(literal, replacement string) Rule {
	return Rule{
		re:          regexp.MustCompile(regexp.QuoteMeta(literal)),
		replacement: strings.ReplaceAll(replacement, "$", "$$"),
	}
}

// MustRule is like NewRule but panics if the pattern does not compile.
// It simplifies defining rule tables from known-good patterns, in the same
// way regexp.MustCompile does for plain expressions.
func MustRule(pattern, replacement string) Rule {
	rule, err := NewRule(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

// Apply replaces all non-overlapping matches of the rule's pattern in text
// with the rule's replacement, expanding group references against each
// match. References to groups that did not participate in a match, or that
// do not exist in the pattern, expand to the empty string. If the pattern
// matches nowhere, text is returned unchanged.
func (r Rule) Apply(text string) string {
	if r.re == nil {
		return text
	}
	return r.re.ReplaceAllString(text, r.replacement)
}

// Pattern returns the source text of the rule's pattern. The zero Rule
// returns the empty string.
func (r Rule) Pattern() string {
	if r.re == nil {
		return ""
	}
	return r.re.String()
}

// Replacement returns the rule's replacement template.
func (r Rule) Replacement() string {
	return r.replacement
}

// RuleSet is an ordered collection of Rules. The order given at construction
// is the application order; no operation reorders, deduplicates, or filters
// the rules. The zero value is an empty set, which applies as the identity.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a RuleSet from the given rules, preserving their order.
// The slice is copied, so callers may reuse or modify it afterwards.
func NewRuleSet(rules ...Rule) RuleSet {
	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return RuleSet{rules: owned}
}

// Combine returns a new RuleSet holding s's rules followed by each of the
// given sets' rules, in argument order. Combination is associative and never
// deduplicates or reorders.
func (s RuleSet) Combine(others ...RuleSet) RuleSet {
	size := len(s.rules)
	for _, other := range others {
		size += len(other.rules)
	}

	combined := make([]Rule, 0, size)
	combined = append(combined, s.rules...)
	for _, other := range others {
		combined = append(combined, other.rules...)
	}
	return RuleSet{rules: combined}
}

// Len returns the number of rules in the set.
func (s RuleSet) Len() int {
	return len(s.rules)
}

// At returns the rule at position i in application order.
func (s RuleSet) At(i int) Rule {
	return s.rules[i]
}

// Rules returns a copy of the set's rules in application order.
func (s RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}
