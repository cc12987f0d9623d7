// Package validator provides small composable validation rules with
// translation-friendly error metadata.
//
// A Rule pairs a deferred Check with the ValidationError reported when the
// check fails. Apply evaluates rules and aggregates failures into
// ValidationErrors, which implements error and matches ErrValidationFailed
// via errors.Is.
//
// Postcode rules wrap the postcode package:
//
//	err := validator.Apply(
//	    validator.UKPostcode("postcode", req.Postcode),
//	    validator.UKOutwardCode("district", req.District),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Map() is ready for a JSON error body
//	}
package validator
