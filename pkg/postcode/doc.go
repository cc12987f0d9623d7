// Package postcode validates the format of UK postal codes.
//
// Validation is a two-stage match over fixed rule tables. The candidate is
// normalized (spaces removed, letters upper-cased) and checked against the
// structural rules, all of which must match. The outward part (everything
// except the last three characters) is then checked against the area rules,
// any one of which is sufficient.
//
// The package does not check that a postcode exists. Validators are
// immutable and safe for concurrent use.
//
// # Usage
//
//	if postcode.IsValid("DN55 1PT") {
//	    // well-formed
//	}
//
//	res := postcode.Check("FY11 1PY")
//	if !res.Valid {
//	    log.Println(res.Err)
//	}
//
// # Known gaps
//
// The area rules accept a single-digit-only area written with two digits
// (for example FY11) through the generic two-letter, two-digit alternative
// of the special-case rule. New(WithStrictDistricts()) rejects such codes.
package postcode
