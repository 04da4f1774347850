package hosts

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "lf", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", text: "a\r\nb", want: []string{"a", "b"}},
		{name: "lone cr", text: "a\rb\r", want: []string{"a", "b"}},
		{name: "blank lines kept", text: "a\n\n\nb", want: []string{"a", "", "", "b"}},
		{name: "unicode separators", text: "a\u2028b\u0085c\fd", want: []string{"a", "b", "c", "d"}},
		{name: "cr then crlf", text: "a\r\r\nb", want: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single newline", text: "\n", want: []string{""}},
		{name: "no final newline", text: "a\nb", want: []string{"a", "b"}},
		{name: "whitespace preserved", text: "  a \t\n b  \n", want: []string{"  a \t", " b  "}},
		{name: "universal newlines", text: "a\r\nb\rc\n", want: []string{"a", "b", "c"}},
		{name: "trailing blank line", text: "a\n\n", want: []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.text))
			if err != nil {
				t.Fatalf("ReadLines error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ReadLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestReadLines_InvalidUTF8(t *testing.T) {
	_, err := ReadLines(strings.NewReader("ok\n\xff\xfe\n"))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}
