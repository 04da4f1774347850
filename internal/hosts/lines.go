package hosts

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by ReadLines for input that is not UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// SplitLines splits downloaded text into lines. Besides \n, \r\n and \r it
// breaks on the other Unicode line boundaries (\v, \f, \x1c-\x1e, U+0085,
// U+2028, U+2029). A trailing terminator does not produce an empty last line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// ReadLines reads a whole text file worth of lines. \r\n and lone \r are
// treated as \n, and only the terminator is stripped from each line: leading
// and trailing spaces are part of the line.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	if len(b) == 0 {
		return nil, nil
	}

	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n"), nil
}
