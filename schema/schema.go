// Package schema provides goskema bindings for DID and DID URL values, so
// they can participate in larger document schemas as string fields with
// domain validation.
package schema

import (
	"context"

	"github.com/reoring/goskema"
	"github.com/reoring/goskema/i18n"
	js "github.com/reoring/goskema/jsonschema"

	"github.com/ghettovoice/godid/didurl"
)

// Example values used in validation hints.
const (
	ExampleDIDURL = "did:example:123/some/path?query=test#fragment"
	ExampleDID    = "did:example:123"
)

// DIDURL returns a schema that validates a string input as an absolute or
// relative DID URL and parses it into [didurl.URL].
func DIDURL() goskema.Schema[*didurl.URL] { return didURLSchema{} }

type didURLSchema struct{}

func (didURLSchema) Parse(ctx context.Context, v any) (*didurl.URL, error) {
	s, ok := v.(string)
	if !ok {
		return nil, goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: i18n.T(goskema.CodeInvalidType, nil)}}
	}
	u, err := didurl.Parse(s)
	if err != nil {
		return nil, goskema.Issues{{
			Path:    "/",
			Code:    goskema.CodePattern,
			Message: i18n.T(goskema.CodePattern, nil),
			Hint:    "absolute or relative DID URL, e.g. " + ExampleDIDURL,
			Cause:   err,
		}}
	}
	return u, nil
}

func (didURLSchema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[*didurl.URL], error) {
	u, err := (didURLSchema{}).Parse(ctx, v)
	return goskema.Decoded[*didurl.URL]{Value: u, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (didURLSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: i18n.T(goskema.CodeInvalidType, nil)}}
	}
	return nil
}

func (didURLSchema) RuleCheck(ctx context.Context, v any) error {
	if s, ok := v.(string); ok && !didurl.IsValid(s) {
		return goskema.Issues{{
			Path:    "/",
			Code:    goskema.CodePattern,
			Message: i18n.T(goskema.CodePattern, nil),
			Hint:    "absolute or relative DID URL, e.g. " + ExampleDIDURL,
		}}
	}
	return nil
}

func (didURLSchema) Validate(ctx context.Context, v any) error {
	if err := (didURLSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (didURLSchema{}).RuleCheck(ctx, v)
}

func (didURLSchema) ValidateValue(ctx context.Context, v *didurl.URL) error {
	if !v.IsValid() {
		return goskema.Issues{{Path: "/", Code: goskema.CodePattern, Message: i18n.T(goskema.CodePattern, nil)}}
	}
	return nil
}

func (didURLSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "did-url"}, nil
}

// DID returns a schema that validates a string input as a bare DID and
// parses it into [didurl.DID].
func DID() goskema.Schema[didurl.DID] { return didSchema{} }

type didSchema struct{}

func (didSchema) Parse(ctx context.Context, v any) (didurl.DID, error) {
	s, ok := v.(string)
	if !ok {
		return didurl.DID{}, goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: i18n.T(goskema.CodeInvalidType, nil)}}
	}
	d, err := didurl.ParseDID(s)
	if err != nil {
		return didurl.DID{}, goskema.Issues{{
			Path:    "/",
			Code:    goskema.CodePattern,
			Message: i18n.T(goskema.CodePattern, nil),
			Hint:    "DID of the form " + ExampleDID,
			Cause:   err,
		}}
	}
	return d, nil
}

func (didSchema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[didurl.DID], error) {
	d, err := (didSchema{}).Parse(ctx, v)
	return goskema.Decoded[didurl.DID]{Value: d, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (didSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: i18n.T(goskema.CodeInvalidType, nil)}}
	}
	return nil
}

func (didSchema) RuleCheck(ctx context.Context, v any) error {
	if s, ok := v.(string); ok && !didurl.IsValidDID(s) {
		return goskema.Issues{{
			Path:    "/",
			Code:    goskema.CodePattern,
			Message: i18n.T(goskema.CodePattern, nil),
			Hint:    "DID of the form " + ExampleDID,
		}}
	}
	return nil
}

func (didSchema) Validate(ctx context.Context, v any) error {
	if err := (didSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (didSchema{}).RuleCheck(ctx, v)
}

func (didSchema) ValidateValue(ctx context.Context, v didurl.DID) error {
	if !v.IsValid() {
		return goskema.Issues{{Path: "/", Code: goskema.CodePattern, Message: i18n.T(goskema.CodePattern, nil)}}
	}
	return nil
}

func (didSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "did"}, nil
}

var (
	_ goskema.Schema[*didurl.URL] = didURLSchema{}
	_ goskema.Schema[didurl.DID]  = didSchema{}
)
