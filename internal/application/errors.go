// Package application contains the core services: registration, sign-in,
// engagement counting, and the detection proxy. Services depend only on the
// driven port interfaces.
package application

import "errors"

// Sentinel errors forming the service-level failure taxonomy. Storage and
// transport errors are folded into these before crossing the HTTP boundary.
var (
	// ErrValidation indicates missing or malformed input, rejected before
	// touching storage or the upstream vision service.
	ErrValidation = errors.New("invalid input")

	// ErrRegistrationFailed covers every registration failure: duplicate
	// identity, hashing failure, and storage errors. Causes are deliberately
	// not distinguished so a caller cannot probe whether an identity is
	// already registered.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrAuthFailed covers every sign-in failure: unknown identity, wrong
	// secret, and storage errors. Deliberately indistinguishable for the same
	// enumeration-resistance reason.
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrVisionNotConfigured indicates the vision service credentials are
	// absent. Raised before any network activity, distinct from a runtime
	// call failure.
	ErrVisionNotConfigured = errors.New("vision service not configured")
)
