package grammar_test

import (
	"testing"

	"github.com/ghettovoice/godid/internal/grammar"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		cb   func(byte) bool
		want string
	}{
		{"empty", "", nil, ""},
		{"no escape", "abc-qwe.~", nil, "abc-qwe.~"},
		{"escape all", "abc++qwe!", nil, "abc%2B%2Bqwe%21"},
		{"escape some", "abc+?qwe", func(c byte) bool { return c != '+' && !grammar.IsCharUnreserved(c) }, "abc+%3Fqwe"},
		{"space", "hello world", nil, "hello%20world"},
		{"percent is ordinary text", "a%41b", nil, "a%2541b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Escape(c.str, c.cb), c.want; got != want {
				t.Errorf("grammar.Escape(%q, %p) = %q, want %q", c.str, c.cb, got, want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no escapes", "abc-123", "abc-123"},
		{"malformed passthrough", "abc%ax%", "abc%ax%"},
		{"truncated escape", "abc%4", "abc%4"},
		{"unescape all", "hello%20w%6Frld", "hello world"},
		{"lowercase hex", "%2b%2f", "+/"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{"", "plain", "with space", "a=b&c=d", "100%", "a%41b", "c%20d", "#frag/part?"}

	for _, s := range cases {
		if got, want := grammar.Unescape(grammar.Escape(s, nil)), s; got != want {
			t.Errorf("grammar.Unescape(grammar.Escape(%q, nil)) = %q, want %q", s, got, want)
		}
	}
}
