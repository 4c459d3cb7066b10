package match

import "strings"

// Table is a versioned alias configuration mapping a normalized SOP task
// name to the normalized activity-text variants field staff are known to
// type for it. It is injected, never a hidden global, so tests can swap it.
type Table struct {
	Version string              `yaml:"version"`
	Aliases map[string][]string `yaml:"aliases"`
}

// Normalize lowercases and collapses internal whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Matches reports whether a logged activity description satisfies an SOP
// task name. Rules apply in order, first hit wins:
//
//  1. exact normalized equality
//  2. alias table: activity equals or starts with a listed variant of task
//  3. activity is a more specific form of task ("sowing media preparation"
//     satisfies "sowing")
//  4. task is a compound of several activities ("spraying/drenching" is
//     satisfied by "spraying")
//
// Prefix boundaries are a space or slash; plain substrings never match,
// so "harvesting fine beans" does not satisfy "harvest".
func (t *Table) Matches(activity, task string) bool {
	a := Normalize(activity)
	s := Normalize(task)
	if a == "" || s == "" {
		return false
	}
	if a == s {
		return true
	}
	for _, v := range t.Aliases[s] {
		if a == v || strings.HasPrefix(a, v) {
			return true
		}
	}
	if strings.HasPrefix(a, s+" ") || strings.HasPrefix(a, s+"/") {
		return true
	}
	if strings.HasPrefix(s, a+" ") || strings.HasPrefix(s, a+"/") {
		return true
	}
	return false
}
