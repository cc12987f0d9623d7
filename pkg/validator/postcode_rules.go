package validator

import "github.com/dmitrymomot/ukpostcode/pkg/postcode"

// UKPostcode validates a full UK postcode. Empty values fail; combine with
// an optional check upstream if the field may be blank.
func UKPostcode(field, value string, opts ...postcode.Option) Rule {
	v := postcode.Default()
	if len(opts) > 0 {
		v = postcode.New(opts...)
	}
	return Rule{
		Check: func() bool {
			return v.IsValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UK postcode",
			TranslationKey: "validation.uk_postcode",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// UKPostcodes validates every element of values; the rule fails on the first
// malformed entry and reports its index.
func UKPostcodes(field string, values []string, opts ...postcode.Option) Rule {
	v := postcode.Default()
	if len(opts) > 0 {
		v = postcode.New(opts...)
	}

	failed := -1
	for i, code := range values {
		if !v.IsValid(code) {
			failed = i
			break
		}
	}

	translation := map[string]any{"field": field}
	if failed >= 0 {
		translation["index"] = failed
		translation["value"] = values[failed]
	}
	return Rule{
		Check: func() bool {
			return failed < 0
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must contain only valid UK postcodes",
			TranslationKey:    "validation.uk_postcodes",
			TranslationValues: translation,
		},
	}
}

// UKOutwardCode validates an outward code on its own, e.g. "DN55" or "EC1A".
func UKOutwardCode(field, value string, opts ...postcode.Option) Rule {
	v := postcode.Default()
	if len(opts) > 0 {
		v = postcode.New(opts...)
	}
	return Rule{
		Check: func() bool {
			return v.IsValidOutward(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UK outward code",
			TranslationKey: "validation.uk_outward_code",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
