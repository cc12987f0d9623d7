package postcodes

import "errors"

var (
	// ErrMalformedBody is reported when a batch request body is not valid JSON.
	ErrMalformedBody = errors.New("request body must be a JSON object with a postcodes array")

	// ErrSelfCheck is reported by Ready when a known-good postcode is rejected.
	ErrSelfCheck = errors.New("postcode rules self-check failed")
)
