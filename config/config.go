// Package config loads user-defined rule tables from YAML files.
//
// A rule file declares named sets of pattern/replacement rules. Sets may
// include predefined tables or sets defined earlier in the same file, so a
// service-specific table can extend the shipped ones without repeating them.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v2"

	"github.com/InputUsername/metadata-filter/rules"
)

// RuleConfig is a single pattern/replacement entry. When Literal is set the
// pattern and replacement are treated as plain text rather than regexp and
// template syntax.
type RuleConfig struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Literal     bool   `yaml:"literal,omitempty"`
}

// SetConfig is a named rule table. Includes are resolved in the order
// listed, before the set's own rules, and may name predefined tables or
// sets defined earlier in the same file.
type SetConfig struct {
	Name    string       `yaml:"name"`
	Include []string     `yaml:"include,omitempty"`
	Rules   []RuleConfig `yaml:"rules,omitempty"`
}

// Config is the top-level structure of a rule file.
type Config struct {
	Sets []SetConfig `yaml:"sets"`
}

// Load reads and parses a YAML rule file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	return Parse(data)
}

// Parse parses rule file contents and validates their structure. Pattern
// compilation happens later, in Build.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule file: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration structure: set names must be non-empty
// and unique, every set must contribute at least one rule or include, and
// includes must name a predefined table or an earlier set in the file.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Sets))

	for i, set := range c.Sets {
		if set.Name == "" {
			return fmt.Errorf("sets[%d]: name cannot be empty", i)
		}
		if seen[set.Name] {
			return fmt.Errorf("sets[%d]: duplicate set name %q", i, set.Name)
		}
		if len(set.Include) == 0 && len(set.Rules) == 0 {
			return fmt.Errorf("sets[%d](%s): set has no rules and no includes", i, set.Name)
		}

		for _, include := range set.Include {
			if _, ok := rules.PredefinedSet(include); ok {
				continue
			}
			if seen[include] {
				continue
			}
			return fmt.Errorf("sets[%d](%s): unknown include %q", i, set.Name, include)
		}

		seen[set.Name] = true
	}

	return nil
}

// Build compiles every set into a RuleSet, keyed by set name. A pattern
// that fails to compile aborts the whole build; the error names the set and
// rule index and wraps the *rules.InvalidPatternError, so a malformed
// user-supplied pattern is caught at the point of definition.
func (c *Config) Build() (map[string]rules.RuleSet, error) {
	built := make(map[string]rules.RuleSet, len(c.Sets))

	for _, set := range c.Sets {
		result := rules.NewRuleSet()

		for _, include := range set.Include {
			included, ok := built[include]
			if !ok {
				included, ok = rules.PredefinedSet(include)
			}
			if !ok {
				return nil, fmt.Errorf("sets(%s): unknown include %q", set.Name, include)
			}
			result = result.Combine(included)
		}

		compiled := make([]rules.Rule, 0, len(set.Rules))
		for i, rc := range set.Rules {
			if rc.Literal {
				compiled = append(compiled, rules.NewLiteralRule(rc.Pattern, rc.Replacement))
				continue
			}
			rule, err := rules.NewRule(rc.Pattern, rc.Replacement)
			if err != nil {
				return nil, fmt.Errorf("sets(%s).rules[%d]: %w", set.Name, i, err)
			}
			compiled = append(compiled, rule)
		}

		built[set.Name] = result.Combine(rules.NewRuleSet(compiled...))
	}

	return built, nil
}
