package postcode

import "errors"

var (
	// ErrNotString is reported when the candidate is not a string value.
	ErrNotString = errors.New("postcode must be a string")

	// ErrEmpty is reported for an empty candidate.
	ErrEmpty = errors.New("postcode is empty")

	// ErrMalformed is reported when a structural rule does not match.
	ErrMalformed = errors.New("postcode is malformed")

	// ErrUnknownOutward is reported when no area rule accepts the outward code.
	ErrUnknownOutward = errors.New("outward code is not recognised")
)
