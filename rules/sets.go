package rules

import "sort"

// PredefinedSets returns the predefined rule tables keyed by name. The map
// is freshly allocated on each call so callers may modify it; the RuleSets
// themselves are built once and shared.
func PredefinedSets() map[string]RuleSet {
	return map[string]RuleSet{
		"youtube":           YouTubeTrackRules(),
		"trim_symbols":      TrimSymbolRules(),
		"trim_whitespace":   TrimWhitespaceRules(),
		"remastered":        RemasteredRules(),
		"live":              LiveRules(),
		"clean_explicit":    CleanExplicitRules(),
		"feature":           FeatureRules(),
		"normalize_feature": NormalizeFeatureRules(),
		"version":           VersionRules(),
		"suffix":            SuffixRules(),
	}
}

// PredefinedSet looks up a predefined rule table by name.
func PredefinedSet(name string) (RuleSet, bool) {
	set, ok := PredefinedSets()[name]
	return set, ok
}

// PredefinedSetNames returns the names of all predefined rule tables in
// sorted order.
func PredefinedSetNames() []string {
	sets := PredefinedSets()
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
