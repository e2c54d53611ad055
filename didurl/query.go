package didurl

import (
	"iter"
	"strings"

	"github.com/ghettovoice/godid/internal/grammar"
	"github.com/ghettovoice/godid/internal/util"
)

// Query is an ordered collection of decoded DID URL query parameters.
// Keys are case-sensitive and unique; iteration follows insertion order.
type Query struct {
	keys []string
	vals map[string]string
}

// NewQuery creates an empty Query.
func NewQuery() *Query { return &Query{} }

// Len returns the number of parameters.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.keys)
}

// Keys returns the parameter keys in insertion order.
func (q *Query) Keys() []string {
	if q == nil || len(q.keys) == 0 {
		return nil
	}
	keys := make([]string, len(q.keys))
	copy(keys, q.keys)
	return keys
}

// Has checks whether a given key is present.
func (q *Query) Has(key string) bool {
	if q == nil {
		return false
	}
	_, ok := q.vals[key]
	return ok
}

// Get returns the value associated with the given key and a flag indicating
// whether the key is present.
func (q *Query) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	v, ok := q.vals[key]
	return v, ok
}

// Set sets the key to value. An existing key keeps its original position.
// A nil receiver allocates, so callers must use the returned query.
func (q *Query) Set(key, value string) *Query {
	if q == nil {
		q = NewQuery()
	}
	if q.vals == nil {
		q.vals = make(map[string]string)
	}
	if _, ok := q.vals[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.vals[key] = value
	return q
}

// Del deletes the parameter associated with the key.
func (q *Query) Del(key string) *Query {
	if q == nil || q.vals == nil {
		return q
	}
	if _, ok := q.vals[key]; !ok {
		return q
	}
	delete(q.vals, key)
	for i, k := range q.keys {
		if k == key {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)
			break
		}
	}
	return q
}

// All iterates over the parameters in insertion order.
func (q *Query) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if q == nil {
			return
		}
		for _, k := range q.keys {
			if !yield(k, q.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of the query.
func (q *Query) Clone() *Query {
	if q == nil {
		return nil
	}
	q2 := &Query{}
	for k, v := range q.All() {
		q2.Set(k, v)
	}
	return q2
}

// Equal compares this query with another for equality, including parameter order.
func (q *Query) Equal(val any) bool {
	var other *Query
	switch v := val.(type) {
	case Query:
		other = &v
	case *Query:
		other = v
	default:
		return false
	}

	if q == other {
		return true
	}
	if q.Len() != other.Len() {
		return false
	}
	if q.Len() == 0 {
		return true
	}
	for i, k := range q.keys {
		if other.keys[i] != k || other.vals[k] != q.vals[k] {
			return false
		}
	}
	return true
}

// Encode renders the query to the "key=value&..." form with each key and value
// percent-encoded, preserving insertion order.
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, k := range q.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(grammar.Escape(k, shouldEscapeQueryChar))
		sb.WriteByte('=')
		sb.WriteString(grammar.Escape(q.vals[k], shouldEscapeQueryChar))
	}
	return sb.String()
}

// String returns the encoded form of the query.
func (q *Query) String() string { return q.Encode() }

// parseRawQuery decodes a raw query string into a Query by splitting on "&"
// then "=" and percent-decoding both sides. Parameters without a "=" or with
// an empty value are dropped, an empty key is kept, and an input without any
// surviving parameter yields nil.
func parseRawQuery(raw string) *Query {
	if raw == "" {
		return nil
	}

	var q *Query
	for seg := range strings.SplitSeq(raw, "&") {
		k, v, ok := strings.Cut(seg, "=")
		if !ok || v == "" {
			continue
		}
		if q == nil {
			q = NewQuery()
		}
		q.Set(grammar.Unescape(k), grammar.Unescape(v))
	}
	return q
}
