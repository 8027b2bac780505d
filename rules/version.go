package rules

import "sync"

var versionRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// Love Will Come To You (Album Version)
		MustRule(`[(\[]Album Version[)\]]$`, ""),
		// I Melt With You (Rerecorded)
		// When I Need You [Re-Recorded]
		MustRule(`[(\[]Re-?[Rr]ecorded[)\]]$`, ""),
		// Your Cheatin' Heart (Single Version)
		MustRule(`[(\[]Single Version[)\]]$`, ""),
		// All Over Now (Edit)
		MustRule(`[(\[]Edit[)\]]$`, ""),
		// (I Can't Get No) Satisfaction - Mono Version
		MustRule(`-\sMono Version$`, ""),
		// Ruby Tuesday - Stereo Version
		MustRule(`-\sStereo Version$`, ""),
		// Pure McCartney (Deluxe Edition)
		MustRule(`\(Deluxe Edition\)$`, ""),
		// 6 Foot 7 Foot (Explicit Version)
		MustRule(`(?i)[(\[]Explicit Version[)\]]`, ""),
	)
})

// VersionRules returns rules that remove version information such as
// "(Album Version)" or "(Deluxe Edition)" from a title.
func VersionRules() RuleSet {
	return versionRules()
}

var suffixRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// "- X Remix" -> "(X Remix)" and similar
		MustRule(`(?i)-\s(.+?)\s((Re)?mix|edit|dub|mix|vip|version)$`, "($1 $2)"),
		MustRule(`(?i)-\s(Remix|VIP)$`, "($1)"),
	)
})

// SuffixRules returns rules that normalize "- suffix" notation to
// "(suffix)", for example "- X Remix" to "(X Remix)".
func SuffixRules() RuleSet {
	return suffixRules()
}
