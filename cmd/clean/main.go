// Command clean filters metadata strings from the command line or stdin
// through named rule sets, one line per input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/InputUsername/metadata-filter/config"
	"github.com/InputUsername/metadata-filter/filters"
	"github.com/InputUsername/metadata-filter/rules"
)

func main() {
	setsFlag := flag.String("sets", "youtube,trim_symbols,trim_whitespace", "comma-separated rule sets to apply, in order")
	rulesFile := flag.String("config", "", "YAML rule file with additional sets")
	list := flag.Bool("list", false, "list available rule sets and exit")
	flag.Parse()

	sets := rules.PredefinedSets()
	if *rulesFile != "" {
		cfg, err := config.Load(*rulesFile)
		if err != nil {
			fatal(err)
		}
		built, err := cfg.Build()
		if err != nil {
			fatal(err)
		}
		for name, set := range built {
			sets[name] = set
		}
	}

	if *list {
		names := make([]string, 0, len(sets))
		for name := range sets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	var chain []rules.RuleSet
	for _, name := range strings.Split(*setsFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set, ok := sets[name]
		if !ok {
			fatal(fmt.Errorf("unknown rule set %q", name))
		}
		chain = append(chain, set)
	}

	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			fmt.Println(filters.ApplyAll(arg, chain...))
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(filters.ApplyAll(scanner.Text(), chain...))
	}
	if err := scanner.Err(); err != nil {
		fatal(fmt.Errorf("failed to read stdin: %w", err))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "clean:", err)
	os.Exit(1)
}
