package attachment

import (
	"slices"
	"strings"
)

// Rule maps a clause list to one attachment file name.
// Match holds comma-separated KEY=VALUE clauses, e.g.
// "REGION=NZ, DESTINATION=LON".
type Rule struct {
	Match string
	File  string
}

// Options gates the wildcard clauses. Both default off; brand policies
// enable them per product line.
type Options struct {
	AllRegions      bool
	AllDestinations bool
}

const (
	keyRegion      = "REGION"
	keyDestination = "DESTINATION"

	wildcardRegion      = "ALL REGIONS"
	wildcardDestination = "ALL DESTINATIONS"
)

// Select evaluates every rule against the booking's region and trip cities
// and returns the matching file names, deduplicated in first-seen order.
// Cities must already exclude domestic trips - a domestic trip passes nil.
func Select(rules []Rule, region string, cities []string, opts Options) []string {
	var files []string

	add := func(f string) {
		if !slices.Contains(files, f) {
			files = append(files, f)
		}
	}

clauses:
	for _, rule := range rules {
		for clause := range strings.SplitSeq(rule.Match, ",") {
			clause = strings.ToUpper(strings.TrimSpace(clause))

			key, value, found := strings.Cut(clause, "=")
			if !found {
				continue
			}
			value = strings.TrimSpace(value)

			switch strings.TrimSpace(key) {
			case keyRegion:
				if value == region {
					add(rule.File)
					continue clauses
				}
				if opts.AllRegions && strings.EqualFold(value, wildcardRegion) {
					add(rule.File)
					continue clauses
				}
			case keyDestination:
				if slices.Contains(cities, value) {
					add(rule.File)
					continue clauses
				}
				if opts.AllDestinations && strings.EqualFold(value, wildcardDestination) {
					add(rule.File)
					continue clauses
				}
			}
		}
	}

	return files
}
