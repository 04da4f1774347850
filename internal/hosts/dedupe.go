package hosts

import (
	"sort"
	"strings"
)

// Dedupe keeps the first entry seen for every lowercase domain. Later
// duplicates are dropped, whatever their case or address.
func Dedupe(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := e.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Sort orders entries ascending by lowercase domain. The sort is stable, so
// entries whose keys compare equal keep their relative order.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key() < entries[j].Key()
	})
}

// UniqueLines removes exact duplicate lines and sorts the rest by their
// lowercase form. Lines that only differ in case are both kept; between them
// plain byte order decides.
func UniqueLines(lines []string) []string {
	set := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := set[l]; ok {
			continue
		}
		set[l] = struct{}{}
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool {
		ki, kj := foldKey(out[i]), foldKey(out[j])
		if ki != kj {
			return ki < kj
		}
		return out[i] < out[j]
	})
	return out
}

func foldKey(s string) string {
	return strings.ToLower(s)
}
