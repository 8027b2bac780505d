package rules

import "sync"

var trimSymbolRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// leftovers after e.g. (official video)
		MustRule(`\(+\s*\)+`, ""),
		// leading white chars, separators and dash
		MustRule(`^[\s"/,:;~-]+`, ""),
		// trailing white chars, separators and dash
		MustRule(`[\s"/,:;~-]+$`, ""),
	)
})

// TrimSymbolRules returns rules that remove leftover symbols after other
// filtering, such as empty parentheses and leading or trailing separator
// runs.
func TrimSymbolRules() RuleSet {
	return trimSymbolRules()
}

var trimWhitespaceRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		MustRule(`^\s+`, ""),
		MustRule(`\s+$`, ""),
	)
})

// TrimWhitespaceRules returns rules that remove leading and trailing
// whitespace.
func TrimWhitespaceRules() RuleSet {
	return trimWhitespaceRules()
}
