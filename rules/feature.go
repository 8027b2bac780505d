package rules

import "sync"

var featureRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// [Feat. Artist] or (Feat. Artist)
		MustRule(`(?i)\s[(\[]feat. .+[)\]]`, ""),
	)
})

// FeatureRules returns rules that remove featured-artist information from a
// track title.
func FeatureRules() RuleSet {
	return featureRules()
}

var normalizeFeatureRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// [Feat. Artist] or (Feat. Artist) -> Feat. Artist
		MustRule(`(?i)\s[(\[](feat. .+)[)\]]`, " $1"),
	)
})

// NormalizeFeatureRules returns rules that rewrite bracketed featured-artist
// information to a bare "Feat. Artist" suffix.
func NormalizeFeatureRules() RuleSet {
	return normalizeFeatureRules()
}

var cleanExplicitRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// (Explicit) or [Explicit]
		MustRule(`(?i)\s[(\[]Explicit[)\]]`, ""),
		// (Clean) or [Clean]
		MustRule(`(?i)\s[(\[]Clean[)\]]`, ""),
	)
})

// CleanExplicitRules returns rules that remove "Explicit" and "Clean"
// markers from a track title.
func CleanExplicitRules() RuleSet {
	return cleanExplicitRules()
}
