package control

import (
	"regexp"
	"strings"
)

// versionRE matches a parenthesized version constraint, e.g. "(>= 1.2)".
var versionRE = regexp.MustCompile(`\(.*?\)`)

// ParseDepends parses one record's raw, already-folded Depends field into an
// ordered, duplicate-free list of dependency names.
//
// The field is a comma-separated list of conjunctive terms. Parenthesized
// version constraints are stripped entirely. A term containing "|" is a
// disjunctive alternative group; every distinct alternative becomes its own
// entry rather than resolving to a single candidate, so the resulting graph
// is a superset of any real resolution. The first occurrence of a name wins
// and fixes its position.
func ParseDepends(field string) []string {
	field = strings.Join(strings.Fields(field), " ")
	if field == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, term := range strings.Split(field, ",") {
		term = strings.TrimSpace(versionRE.ReplaceAllString(term, ""))
		if term == "" {
			continue
		}
		if strings.Contains(term, "|") {
			for _, alt := range strings.Split(term, "|") {
				add(strings.TrimSpace(alt))
			}
			continue
		}
		add(term)
	}

	return out
}
