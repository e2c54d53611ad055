package didurl

import "github.com/ghettovoice/godid/internal/grammar"

// shouldEscapeQueryChar reports whether the given byte for query keys and values needs escaping.
func shouldEscapeQueryChar(c byte) bool { return !grammar.IsCharUnreserved(c) }

// shouldEscapeFragmentChar reports whether the given byte for the fragment needs escaping.
func shouldEscapeFragmentChar(c byte) bool { return !grammar.IsCharUnreserved(c) }
