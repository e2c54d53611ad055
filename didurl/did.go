package didurl

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/godid/internal/grammar"
)

// DID represents a Decentralized Identifier of the form
// "did:" method ":" method-specific-id.
//
// The method-specific-id is opaque to this package: it is pattern-checked on
// parse and never interpreted further. The zero DID is invalid.
type DID struct {
	did string
}

// ParseDID parses a DID from the given input src (string or []byte).
func ParseDID[T ~string | ~[]byte](src T) (DID, error) {
	if !grammar.IsDID(src) {
		return DID{}, errtrace.Wrap(newInvalidDIDErr(src))
	}
	return DID{did: string(src)}, nil
}

// IsValidDID reports whether the given input is a valid DID.
func IsValidDID[T ~string | ~[]byte](src T) bool {
	return grammar.IsDID(src)
}

// Method returns the method of this DID.
func (d DID) Method() string {
	p := strings.SplitN(d.did, ":", 3)
	if len(p) < 3 {
		return ""
	}
	return p[1]
}

// MethodSpecificID returns the method-specific identifier of this DID.
func (d DID) MethodSpecificID() string {
	p := strings.SplitN(d.did, ":", 3)
	if len(p) < 3 {
		return ""
	}
	return p[2]
}

// URL returns a DID URL rooted at this DID with the given path, query and
// fragment. See [Unparse].
func (d DID) URL(path string, query *Query, fragment any) (*URL, error) {
	return errtrace.Wrap2(Unparse(d.did, path, query, fragment))
}

// Ref returns a fragment-only DID URL for use as an identifier reference
// inside a DID document.
func (d DID) Ref(ident string) (*URL, error) {
	return errtrace.Wrap2(Unparse(d.did, "", nil, ident))
}

// String returns the canonical text of the DID.
func (d DID) String() string { return d.did }

// IsZero checks whether the DID is empty.
func (d DID) IsZero() bool { return d.did == "" }

// IsValid checks whether the DID is syntactically valid.
func (d DID) IsValid() bool { return grammar.IsDID(d.did) }

// Equal compares this DID with another for equality by canonical text.
func (d DID) Equal(val any) bool {
	var other DID
	switch v := val.(type) {
	case DID:
		other = v
	case *DID:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return d.did == other.did
}

// Format implements fmt.Formatter for custom formatting of the DID.
func (d DID) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, d.did)
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(d.did))
		return
	default:
		type hideMethods DID
		type DID hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), DID(d))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (d DID) MarshalText() ([]byte, error) {
	return []byte(d.did), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *DID) UnmarshalText(text []byte) error {
	d1, err := ParseDID(text)
	if err != nil {
		*d = DID{}
		return errtrace.Wrap(err)
	}
	*d = d1
	return nil
}
