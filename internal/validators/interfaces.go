// Package validators checks user input before it reaches a codec, the
// store or the server.
//
// Request validation is field-scoped: callers name the fields they care
// about (see the Field* constants), and an empty list checks everything
// the value type knows about.
package validators

import "context"

// Validator checks v, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
