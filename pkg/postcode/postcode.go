package postcode

import (
	"fmt"
	"reflect"
)

// Result describes the outcome of a single check.
type Result struct {
	Input      string `json:"postcode" yaml:"postcode"`
	Normalized string `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Outward    string `json:"outward,omitempty" yaml:"outward,omitempty"`
	Inward     string `json:"inward,omitempty" yaml:"inward,omitempty"`
	Valid      bool   `json:"valid" yaml:"valid"`
	// Rule is the area rule that accepted the outward code, or the
	// structural rule that rejected the whole code.
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Err  error  `json:"-" yaml:"-"`
}

// Reason returns the failure message, or an empty string for valid codes.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Option configures a Validator.
type Option func(*Validator)

// WithStrictDistricts rejects single-digit-only areas written with two
// digits (FY11 and the like), which the default rule set accepts.
func WithStrictDistricts() Option {
	return func(v *Validator) {
		v.area = strictAreaRules
		v.strict = true
	}
}

// WithAreaRules replaces the area rule table. It panics on an empty table
// or a rule without a pattern.
func WithAreaRules(rules ...Rule) Option {
	if len(rules) == 0 {
		panic("WithAreaRules: at least one rule is required")
	}
	for _, r := range rules {
		if r.Pattern == nil {
			panic(fmt.Sprintf("WithAreaRules: rule %q has no pattern", r.Name))
		}
	}
	return func(v *Validator) {
		v.area = cloneRules(rules)
	}
}

// Validator checks postcodes against fixed rule tables. The zero value is not
// usable; create one with New. A Validator is immutable and safe for
// concurrent use.
type Validator struct {
	structural []Rule
	area       []Rule
	strict     bool
}

// New returns a Validator using the standard rule tables.
func New(opts ...Option) *Validator {
	v := &Validator{
		structural: structuralRules,
		area:       areaRules,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Strict reports whether the validator was built with WithStrictDistricts.
func (v *Validator) Strict() bool {
	return v.strict
}

// IsValid reports whether value is a well-formed UK postcode. Values that are
// not strings are never valid.
func (v *Validator) IsValid(value any) bool {
	return v.Check(value).Valid
}

// Check validates value and reports which rule decided the outcome.
func (v *Validator) Check(value any) Result {
	code, ok := asString(value)
	if !ok {
		return Result{Err: ErrNotString}
	}
	res := Result{Input: code}
	if code == "" {
		res.Err = ErrEmpty
		return res
	}

	res.Normalized = Normalize(code)
	if failed, ok := MatchAll(v.structural, res.Normalized); !ok {
		res.Rule = failed.Name
		res.Err = fmt.Errorf("%w: %s", ErrMalformed, failed.Name)
		return res
	}

	res.Outward, res.Inward = Split(res.Normalized)
	matched, ok := MatchAny(v.area, res.Outward)
	if !ok {
		res.Err = fmt.Errorf("%w: %s", ErrUnknownOutward, res.Outward)
		return res
	}

	res.Rule = matched.Name
	res.Valid = true
	return res
}

// IsValidOutward reports whether outward is a well-formed outward code on its
// own, such as "DN55" or "EC1A". It is checked as if followed by a neutral
// inward code, so both matching stages apply.
func (v *Validator) IsValidOutward(outward string) bool {
	n := Normalize(outward)
	if n == "" {
		return false
	}
	return v.IsValid(n + neutralInward)
}

// asString accepts string values, including named string types.
func asString(value any) (string, bool) {
	switch s := value.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// neutralInward uses only letters every structural rule permits.
const neutralInward = "0AA"

var defaultValidator = New()

// Default returns the shared validator built from the standard rule tables.
func Default() *Validator {
	return defaultValidator
}

// IsValid reports whether value is a well-formed UK postcode using the
// default rule tables.
func IsValid(value any) bool {
	return defaultValidator.IsValid(value)
}

// Check validates value using the default rule tables.
func Check(value any) Result {
	return defaultValidator.Check(value)
}
