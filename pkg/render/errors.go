package render

import "errors"

var (
	// ErrInvalidHelper reports that the value resolved as a helper is not a
	// *helper.Helper. Helpers arrive loosely typed from caller context, so
	// this is a programmer error surfaced immediately, never retried.
	ErrInvalidHelper = errors.New("render: helper must be a *helper.Helper")

	// ErrMissingTemplate reports that a pack template lookup failed. There is
	// no fallback markup; the error propagates to the caller.
	ErrMissingTemplate = errors.New("render: template not found")
)
