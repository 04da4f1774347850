package hosts

import (
	"strings"
	"unicode"
)

// DefaultTarget is the sinkhole address written for every domain.
const DefaultTarget = "0.0.0.0"

// NormalizeLine turns one raw blocklist line into an Entry pointing at target.
// It reports false for lines that do not look like a hosts entry or a bare
// domain: blanks, comments, single IPs and anything else.
//
// This is a heuristic, not a hosts-file parser. Any token with a letter is
// taken as a domain, so "0.0.0.0 ads.example # tracker" keeps ads.example and
// an IPv6 line like "::1 localhost" is rejected because "::1" has no dot.
func NormalizeLine(line, target string) (Entry, bool) {
	s := strings.TrimFunc(line, isSpace)
	if s == "" || s[0] == '#' {
		return Entry{}, false
	}

	parts := strings.FieldsFunc(s, isSpace)
	switch {
	case len(parts) >= 2 && strings.Contains(parts[0], ".") && hasLetter(parts[1]):
		// "IP domain ...": the address is replaced, the rest is dropped.
		return Entry{Address: target, Domain: parts[1]}, true
	case len(parts) == 1 && hasLetter(parts[0]):
		return Entry{Address: target, Domain: parts[0]}, true
	}
	return Entry{}, false
}

// NormalizeAll normalizes every line of every batch in order, dropping rejects.
func NormalizeAll(batches [][]string, target string) []Entry {
	var n int
	for _, b := range batches {
		n += len(b)
	}
	out := make([]Entry, 0, n)
	for _, b := range batches {
		for _, line := range b {
			if e, ok := NormalizeLine(line, target); ok {
				out = append(out, e)
			}
		}
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isSpace is unicode.IsSpace plus the ASCII separators \x1c-\x1f.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
