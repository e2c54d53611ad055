package didurl

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/godid/internal/grammar"
	"github.com/ghettovoice/godid/internal/types"
	"github.com/ghettovoice/godid/internal/util"
)

// RenderOptions contains options for rendering DIDs and DID URLs.
type RenderOptions = types.RenderOptions

// URL represents an absolute or relative DID URL.
//
// A URL is immutable: it is fully built by [Parse] or [Unparse] and retains
// the exact string it was parsed from as its canonical text form. Equality,
// ordering and serialization all delegate to that canonical string.
type URL struct {
	url      string
	did      string // empty for relative URLs
	path     string
	query    *Query // nil when absent
	fragment string
}

// Parse parses a DID URL from the given input src (string or []byte).
//
// An input is absolute when it opens with a DID prefix, relative when it
// opens with "/", "?" or "#", and invalid otherwise. The remainder after the
// DID prefix decomposes into path, query and fragment: the path is kept
// verbatim, while query parameters and the fragment are percent-decoded.
// Malformed percent escapes pass through unchanged.
func Parse[T ~string | ~[]byte](src T) (*URL, error) {
	s := string(src)
	n, ok := grammar.MatchDIDFront(s)
	if !ok && !grammar.HasRelativeFront(s) {
		return nil, errtrace.Wrap(newInvalidDIDURLErr(s))
	}

	path, rawQuery, fragment := splitURLComponent(s[n:])
	return &URL{
		url:      s,
		did:      s[:n],
		path:     path,
		query:    parseRawQuery(rawQuery),
		fragment: grammar.Unescape(fragment),
	}, nil
}

// splitURLComponent splits the part of a DID URL after the DID prefix:
// everything after the first "#" is the fragment, everything after the first
// "?" before it is the raw query, and what precedes both is the path.
func splitURLComponent(s string) (path, rawQuery, fragment string) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s, fragment = s[:i], s[i+1:]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s, rawQuery = s[:i], s[i+1:]
	}
	return s, rawQuery, fragment
}

// Validate parses the given input as a DID URL. It is the entry point for
// external validation frameworks and is equivalent to [Parse].
func Validate[T ~string | ~[]byte](src T) (*URL, error) {
	return errtrace.Wrap2(Parse(src))
}

// IsValid reports whether the given input is a valid absolute or relative DID URL.
func IsValid[T ~string | ~[]byte](src T) bool {
	_, err := Parse(src)
	return err == nil
}

// Unparse composes a DID URL from its parts.
//
// The did is taken as is and is not checked against the DID grammar by the
// composition itself. A non-empty path gets a leading "/" when missing. A
// non-empty query contributes its percent-encoded parameters in insertion
// order. The fragment is stringified first and contributes its
// percent-encoded text when the result is non-empty, so a fragment of 0
// still renders as "#0". Query parameters and the fragment are decoded text:
// a literal "%" in them is escaped, so re-parsing restores them exactly. The
// concatenation is re-parsed through [Parse], so every composed URL is
// itself a valid parse result.
func Unparse(did, path string, query *Query, fragment any) (*URL, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(did)
	if path != "" {
		if path[0] != '/' {
			sb.WriteByte('/')
		}
		sb.WriteString(path)
	}
	if query.Len() > 0 {
		sb.WriteByte('?')
		sb.WriteString(query.Encode())
	}
	if frag := stringify(fragment); frag != "" {
		sb.WriteByte('#')
		sb.WriteString(grammar.Escape(frag, shouldEscapeFragmentChar))
	}
	return errtrace.Wrap2(Parse(sb.String()))
}

// stringify renders a fragment argument to text before any presence check.
func stringify(v any) string {
	switch f := v.(type) {
	case nil:
		return ""
	case string:
		return f
	case fmt.Stringer:
		return f.String()
	default:
		return fmt.Sprint(v)
	}
}

// AsAbsolute returns an absolute DID URL rooted at the given DID, keeping the
// path, query and fragment of this URL. An existing DID prefix is replaced.
func (u *URL) AsAbsolute(did DID) (*URL, error) {
	if u == nil {
		return errtrace.Wrap2(Unparse(did.String(), "", nil, nil))
	}
	var frag any
	if u.fragment != "" {
		frag = u.fragment
	}
	return errtrace.Wrap2(Unparse(did.String(), u.path, u.query, frag))
}

// DID returns the DID prefix of an absolute DID URL and a flag reporting its
// presence. Relative URLs have no DID prefix.
func (u *URL) DID() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.did, u.did != ""
}

// IsAbsolute reports whether the URL has a DID prefix.
func (u *URL) IsAbsolute() bool {
	if u == nil {
		return false
	}
	return u.did != ""
}

// IsRelative reports whether the URL lacks a DID prefix.
func (u *URL) IsRelative() bool {
	if u == nil {
		return false
	}
	return u.did == ""
}

// Path returns the path component, or "" when absent. A present path always
// starts with "/".
func (u *URL) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns a copy of the decoded query parameters, or nil when the URL
// has no query.
func (u *URL) Query() *Query {
	if u == nil {
		return nil
	}
	return u.query.Clone()
}

// Fragment returns the decoded fragment component, or "" when absent.
func (u *URL) Fragment() string {
	if u == nil {
		return ""
	}
	return u.fragment
}

// RenderTo writes the canonical text of the URL to the provided writer.
func (u *URL) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, u.url))
}

// Render returns the canonical text of the URL.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical text of the URL, equal to the string it was
// parsed from.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Equal compares this URL with another for equality by canonical text.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.url == other.url
}

// Compare orders this URL against another by canonical text.
func (u *URL) Compare(other *URL) int {
	return strings.Compare(u.String(), other.String())
}

// IsValid checks whether the URL carries a parsed value.
func (u *URL) IsValid() bool {
	return u != nil && u.url != ""
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.query = u.query.Clone()
	return &u2
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

var (
	_ types.Renderer        = (*URL)(nil)
	_ types.ValidFlag       = (*URL)(nil)
	_ types.Equalable       = (*URL)(nil)
	_ types.Cloneable[*URL] = (*URL)(nil)
)
