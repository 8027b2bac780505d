// Package filters applies ordered rule sets to artist, album and track
// names.
package filters

import "github.com/InputUsername/metadata-filter/rules"

// ApplyRules applies every rule in set to text in order, feeding each rule's
// output to the next. Order is significant: later rules see the output of
// earlier rules, so a rule that trims whitespace relies on any earlier
// removals having already run. An empty set returns text unchanged.
func ApplyRules(text string, set rules.RuleSet) string {
	result := text
	for i := 0; i < set.Len(); i++ {
		result = set.At(i).Apply(result)
	}
	return result
}

// ApplyAll applies several rule sets to text in argument order. It is
// equivalent to applying the combination of the sets.
func ApplyAll(text string, sets ...rules.RuleSet) string {
	result := text
	for _, set := range sets {
		result = ApplyRules(result, set)
	}
	return result
}
