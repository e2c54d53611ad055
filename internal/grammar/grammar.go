// Package grammar implements the character grammars of the W3C DID Core
// recommendation needed to recognize DIDs and DID URL fronts.
package grammar

import (
	"github.com/ghettovoice/godid/internal/constraints"
)

const didPrefix = "did:"

// IsMethodChar checks the method-char rule: %x61-7A / DIGIT.
func IsMethodChar(c byte) bool {
	return 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// IsIDChar checks the idchar rule of the method-specific-id part:
// ALPHA / DIGIT / "." / "-" / "_" / ":".
func IsIDChar(c byte) bool {
	return IsAlphanumChar(c) || c == '.' || c == '-' || c == '_' || c == ':'
}

// IsAlphanumChar checks the alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// MatchDIDFront matches the DID grammar "did:" method ":" method-specific-id
// anchored at the start of s. The method-specific-id run is greedy, so it
// stops only at the first byte outside the idchar class, usually a path,
// query or fragment delimiter. It returns the length of the matched prefix.
func MatchDIDFront[T constraints.Byteseq](s T) (int, bool) {
	if len(s) < len(didPrefix) || string(s[:len(didPrefix)]) != didPrefix {
		return 0, false
	}
	i := len(didPrefix)
	j := i
	for j < len(s) && IsMethodChar(s[j]) {
		j++
	}
	if j == i || j == len(s) || s[j] != ':' {
		return 0, false
	}
	j++
	k := j
	for k < len(s) && IsIDChar(s[k]) {
		k++
	}
	if k == j {
		return 0, false
	}
	return k, true
}

// IsDID reports whether s is entirely a DID. Unlike the front match inside a
// DID URL, a standalone DID must not end with ":".
func IsDID[T constraints.Byteseq](s T) bool {
	n, ok := MatchDIDFront(s)
	return ok && n == len(s) && s[n-1] != ':'
}

// HasRelativeFront reports whether s starts with one of the delimiters that
// may open a relative DID URL: "/", "?" or "#".
func HasRelativeFront[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	switch s[0] {
	case '/', '?', '#':
		return true
	}
	return false
}
