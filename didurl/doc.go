// Package didurl provides parsing, composition and rendering of Decentralized
// Identifier (DID) URLs according to the W3C DID Core recommendation.
//
// # Overview
//
// The package centers on two immutable value types:
//
//   - [URL]: an absolute or relative DID URL. Absolute URLs open with a DID
//     ("did:example:123/some/path?query=test#fragment"); relative URLs carry
//     only a path, query and/or fragment ("/some/path?query=test") and are
//     meant to be resolved against a base DID later.
//
//   - [DID]: a bare Decentralized Identifier ("did:example:123") with access
//     to its method and method-specific identifier. The method-specific
//     identifier is treated as opaque text.
//
// # Parsing
//
//	u, err := didurl.Parse("did:example:123/some/path?query=test#fragment")
//	if err != nil {
//	    // not a valid absolute or relative DID URL
//	}
//	did, _ := u.DID()       // "did:example:123"
//	u.Path()                // "/some/path"
//	u.Query().Get("query")  // "test", true
//	u.Fragment()            // "fragment"
//
// Every string is either an absolute DID URL, a relative DID URL, or invalid.
// Invalid inputs fail with an error matching [ErrInvalidDIDURL]. [IsValid]
// answers the same question as a predicate; [Validate] is the parse alias
// external validation frameworks hook into.
//
// A parsed URL retains its source text as the canonical form: String returns
// exactly the parsed string, and equality and ordering delegate to it.
//
// # Composition
//
// [Unparse] builds a URL from parts and re-parses the result, so a composed
// value is always itself a valid parse result:
//
//	u, err := didurl.Unparse("did:example:123", "some/path",
//	    didurl.NewQuery().Set("query", "test"), "fragment")
//	// did:example:123/some/path?query=test#fragment
//
// [URL.AsAbsolute] resolves a relative URL against a [DID], and [DID.URL] and
// [DID.Ref] compose URLs rooted at a DID.
//
// # Queries
//
// The [Query] type holds decoded query parameters in insertion order. During
// parsing a raw query decomposes on "&" then "=" with both sides
// percent-decoded; an empty raw query yields no query at all, never an empty
// one. Percent-decoding is lenient everywhere it happens: malformed escapes
// pass through byte-for-byte. The path component is carried verbatim in both
// directions.
//
// # Serialization
//
// Both value types implement [encoding.TextMarshaler] and
// [encoding.TextUnmarshaler], so they embed directly into JSON or XML
// structures and re-validate on decode.
//
// # Thread Safety
//
// Parsed values are immutable and safe for concurrent use. [Query] values
// built by hand are not safe for concurrent modification.
package didurl
