package didurl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/godid/didurl"
)

func TestQuerySetGet(t *testing.T) {
	t.Parallel()

	q := didurl.NewQuery().
		Set("b", "2").
		Set("a", "1").
		Set("c", "3")

	if got, want := q.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if diff := cmp.Diff(q.Keys(), []string{"b", "a", "c"}); diff != "" {
		t.Errorf("Keys() mismatch\ndiff (-got +want):\n%v", diff)
	}
	if v, ok := q.Get("a"); !ok || v != "1" {
		t.Errorf("Get(\"a\") = (%q, %v), want (%q, true)", v, ok, "1")
	}
	if v, ok := q.Get("missing"); ok || v != "" {
		t.Errorf("Get(\"missing\") = (%q, %v), want (\"\", false)", v, ok)
	}
	if !q.Has("b") || q.Has("missing") {
		t.Errorf("Has(\"b\") = %v, Has(\"missing\") = %v", q.Has("b"), q.Has("missing"))
	}

	// overwriting keeps the original position
	q.Set("b", "22")
	if diff := cmp.Diff(q.Keys(), []string{"b", "a", "c"}); diff != "" {
		t.Errorf("Keys() after overwrite mismatch\ndiff (-got +want):\n%v", diff)
	}
	if v, _ := q.Get("b"); v != "22" {
		t.Errorf("Get(\"b\") after overwrite = %q, want %q", v, "22")
	}

	var nilQuery *didurl.Query
	q2 := nilQuery.Set("a", "1")
	if q2.Len() != 1 {
		t.Errorf("(*Query)(nil).Set().Len() = %d, want 1", q2.Len())
	}
	if v, ok := q2.Get("a"); !ok || v != "1" {
		t.Errorf("(*Query)(nil).Set().Get(\"a\") = (%q, %v), want (%q, true)", v, ok, "1")
	}
}

func TestQueryDel(t *testing.T) {
	t.Parallel()

	q := didurl.NewQuery().
		Set("a", "1").
		Set("b", "2").
		Set("c", "3").
		Del("b").
		Del("missing")

	if diff := cmp.Diff(q.Keys(), []string{"a", "c"}); diff != "" {
		t.Errorf("Keys() mismatch\ndiff (-got +want):\n%v", diff)
	}
	if q.Has("b") {
		t.Error("Has(\"b\") = true, want false")
	}

	var nilQuery *didurl.Query
	if got := nilQuery.Del("a"); got != nil {
		t.Errorf("(*Query)(nil).Del() = %v, want nil", got)
	}
}

func TestQueryAll(t *testing.T) {
	t.Parallel()

	q := didurl.NewQuery().Set("a", "1").Set("b", "2")

	var keys, vals []string
	for k, v := range q.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	if diff := cmp.Diff(keys, []string{"a", "b"}); diff != "" {
		t.Errorf("keys mismatch\ndiff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(vals, []string{"1", "2"}); diff != "" {
		t.Errorf("values mismatch\ndiff (-got +want):\n%v", diff)
	}

	for range q.All() {
		break
	}

	var nilQuery *didurl.Query
	for range nilQuery.All() {
		t.Fatal("(*Query)(nil).All() yielded a pair")
	}
}

func TestQueryClone(t *testing.T) {
	t.Parallel()

	q := didurl.NewQuery().Set("a", "1").Set("b", "2")
	q2 := q.Clone()

	if !q.Equal(q2) {
		t.Errorf("Clone() = %v, want %v", q2, q)
	}

	q2.Set("c", "3")
	if q.Has("c") {
		t.Error("mutating a clone changed the original")
	}

	var nilQuery *didurl.Query
	if got := nilQuery.Clone(); got != nil {
		t.Errorf("(*Query)(nil).Clone() = %v, want nil", got)
	}
}

func TestQueryEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    *didurl.Query
		val  any
		want bool
	}{
		{"both empty", didurl.NewQuery(), didurl.NewQuery(), true},
		{"nil vs empty", nil, didurl.NewQuery(), true},
		{
			"same pairs same order",
			didurl.NewQuery().Set("a", "1").Set("b", "2"),
			didurl.NewQuery().Set("a", "1").Set("b", "2"),
			true,
		},
		{
			"same pairs different order",
			didurl.NewQuery().Set("a", "1").Set("b", "2"),
			didurl.NewQuery().Set("b", "2").Set("a", "1"),
			false,
		},
		{
			"different values",
			didurl.NewQuery().Set("a", "1"),
			didurl.NewQuery().Set("a", "2"),
			false,
		},
		{
			"different lengths",
			didurl.NewQuery().Set("a", "1"),
			didurl.NewQuery().Set("a", "1").Set("b", "2"),
			false,
		},
		{
			"query value",
			didurl.NewQuery().Set("a", "1"),
			*didurl.NewQuery().Set("a", "1"),
			true,
		},
		{"not a query", didurl.NewQuery(), "a=1", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.q.Equal(c.val); got != c.want {
				t.Errorf("Equal() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestQueryEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    *didurl.Query
		want string
	}{
		{"nil", nil, ""},
		{"empty", didurl.NewQuery(), ""},
		{"single pair", didurl.NewQuery().Set("query", "test"), "query=test"},
		{
			"insertion order",
			didurl.NewQuery().Set("b", "2").Set("a", "1"),
			"b=2&a=1",
		},
		{
			"reserved characters escaped",
			didurl.NewQuery().Set("a b", "c/d").Set("x", "1&2=3"),
			"a%20b=c%2Fd&x=1%262%3D3",
		},
		{
			"percent escaped",
			didurl.NewQuery().Set("k", "a%41b"),
			"k=a%2541b",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.q.Encode(); got != c.want {
				t.Errorf("Encode() = %q, want %q", got, c.want)
			}
			if got := c.q.String(); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}
