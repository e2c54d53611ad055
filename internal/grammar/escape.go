package grammar

import (
	"bytes"

	"github.com/ghettovoice/godid/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form
// "% HEXDIG HEXDIG" into the hex-decoded byte. Malformed escapes are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to
// the hex form "% HEXDIG HEXDIG". The input is decoded text: "%" is an
// ordinary char and gets escaped like any other, so [Unescape] of the result
// always restores s exactly.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsCharUnreserved checks the RFC 3986 unreserved rule:
// ALPHA / DIGIT / "-" / "." / "_" / "~".
func IsCharUnreserved(c byte) bool {
	return IsAlphanumChar(c) || c == '-' || c == '.' || c == '_' || c == '~'
}
