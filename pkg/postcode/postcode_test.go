package postcode_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ukpostcode/pkg/postcode"
)

func TestIsValid_NonString(t *testing.T) {
	t.Parallel()

	type code string

	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"int", 1},
		{"float", 1.5},
		{"bool", true},
		{"slice", []string{"DN55 1PT"}},
		{"bytes", []byte("DN55 1PT")},
		{"string pointer", func() *string { s := "DN55 1PT"; return &s }()},
		{"map", map[string]string{"postcode": "DN55 1PT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, postcode.IsValid(tt.value))
			res := postcode.Check(tt.value)
			assert.ErrorIs(t, res.Err, postcode.ErrNotString)
		})
	}

	t.Run("named string type is a string", func(t *testing.T) {
		t.Parallel()
		assert.True(t, postcode.IsValid(code("DN55 1PT")))
	})
}

func TestIsValid_Empty(t *testing.T) {
	t.Parallel()

	assert.False(t, postcode.IsValid(""))
	assert.ErrorIs(t, postcode.Check("").Err, postcode.ErrEmpty)
}

func TestIsValid_Accepts(t *testing.T) {
	t.Parallel()

	codes := []string{
		"EC1A 1BB",
		"W1A 0AX",
		"B8 0AX", "E8 0AX", "G8 0AX", "L8 0AX", "M8 0AX", "N8 0AX", "S8 0AX", "W8 0AX",
		"B33 8TH",
		"CR2 6XH",
		"FY1 1PY",
		"BL0 0AB",
		"DN55 1PT",
		"LL15 1PY",
		"SW1A 1AA",
		"WC2N 5DU",
		"NW1W 1AA",
		"SE1P 1AA",
		"N1C 4AA",
		"N1P 1AA",
		"E1W 1AA",
		"HA0 1AA",
		"AB10 1AA",
		"SO14 1AA",
		"M1 1AA",
		"E14 5AB",
		"JE2 3AB",
		"ZE1 0AA",
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			res := postcode.Check(code)
			require.NoError(t, res.Err)
			assert.True(t, res.Valid)
			assert.NotEmpty(t, res.Rule)
		})
	}
}

func TestIsValid_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		err  error
	}{
		{"A99A shape does not exist", "B33A 0EF", postcode.ErrMalformed},
		{"too long", "LL8880055 1PT", postcode.ErrMalformed},
		{"missing inward code", "W1A", postcode.ErrMalformed},
		{"incomplete inward code", "B33 8T", postcode.ErrMalformed},
		{"Q in first position", "QL1 0PY", postcode.ErrMalformed},
		{"V in first position", "VL1 0PY", postcode.ErrMalformed},
		{"X in first position", "XL1 0PY", postcode.ErrMalformed},
		{"I in second position", "BI1 0PY", postcode.ErrMalformed},
		{"J in second position", "BJ1 0PY", postcode.ErrMalformed},
		{"Z in second position", "BZ1 0PY", postcode.ErrMalformed},
		{"double-digit-only area with one digit", "LL1 1PY", postcode.ErrUnknownOutward},
		{"zero district in ineligible area", "BB0 1PY", postcode.ErrUnknownOutward},
		{"AA9A outside central London", "BL1A 1BB", postcode.ErrUnknownOutward},
		{"EC subdivision with C", "EC1C 0BB", postcode.ErrUnknownOutward},
		{"EC subdivision with D", "EC1D 0BB", postcode.ErrUnknownOutward},
		{"single-letter area not enumerated", "Y8 1PY", postcode.ErrUnknownOutward},
		{"single-letter area with zero in district", "B10 1AA", postcode.ErrUnknownOutward},
		{"AB with one digit", "AB1 1AA", postcode.ErrUnknownOutward},
		{"tab is not removed", "W1A\t0AX", postcode.ErrMalformed},
		{"hyphen is not removed", "W1A-0AX", postcode.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := postcode.Check(tt.code)
			assert.False(t, res.Valid)
			assert.ErrorIs(t, res.Err, tt.err)
			assert.False(t, postcode.IsValid(tt.code))
		})
	}
}

func TestIsValid_A9ASubdivisionLetters(t *testing.T) {
	t.Parallel()

	for _, code := range []string{
		"W1I 0AX", "W1L 0AX", "W1M 0AX", "W1N 0AX", "W1O 0AX", "W1Q 0AX",
		"W1R 0AX", "W1V 0AX", "W1X 0AX", "W1Y 0AX", "W1Z 0AX",
	} {
		assert.False(t, postcode.IsValid(code), code)
	}
}

func TestIsValid_InwardLetters(t *testing.T) {
	t.Parallel()

	for _, code := range []string{
		"W1I 0CX", "W1L 0IX", "W1M 0KX", "W1N 0MX", "W1O 0OX", "W1Q 0VX",
		"W1I 0XC", "W1L 0XI", "W1M 0XK", "W1N 0XM", "W1O 0XO", "W1Q 0XV",
		"W1A 0CX", "W1A 0XV",
	} {
		assert.False(t, postcode.IsValid(code), code)
	}
}

func TestIsValid_Normalization(t *testing.T) {
	t.Parallel()

	variants := []string{"dn551pt", "DN55 1PT", "DN551PT", "  dn 55 1pt ", "Dn55 1pT"}
	for _, v := range variants {
		assert.True(t, postcode.IsValid(v), v)
		assert.Equal(t, postcode.IsValid(postcode.Normalize(v)), postcode.IsValid(v), v)
	}

	for _, v := range []string{"ec1a1bb", "Ec1A 1bB", "b33 8th"} {
		n := postcode.Normalize(v)
		assert.Equal(t, n, postcode.Normalize(n), "normalization must be idempotent")
		assert.Equal(t, postcode.IsValid(v), postcode.IsValid(n))
	}
}

// FY is a single-digit-only area, yet the generic two-letter, two-digit
// alternative of the special-case rule accepts FY11. Kept as-is by default.
func TestIsValid_SingleDigitAreaWithTwoDigits(t *testing.T) {
	t.Parallel()

	t.Run("default rule set accepts through special-case", func(t *testing.T) {
		t.Parallel()
		res := postcode.Check("FY11 1PY")
		assert.True(t, res.Valid)
		assert.Equal(t, "special-case", res.Rule)
	})

	t.Run("strict districts reject", func(t *testing.T) {
		t.Parallel()
		v := postcode.New(postcode.WithStrictDistricts())
		require.True(t, v.Strict())

		res := v.Check("FY11 1PY")
		assert.False(t, res.Valid)
		assert.ErrorIs(t, res.Err, postcode.ErrUnknownOutward)
		assert.False(t, v.IsValid("BR11 1AA"))
	})

	t.Run("strict districts keep everything else", func(t *testing.T) {
		t.Parallel()
		v := postcode.New(postcode.WithStrictDistricts())
		for _, code := range []string{"FY1 1PY", "FY0 1PY", "DN55 1PT", "LL15 1PY", "EC1A 1BB", "B33 8TH", "CR2 6XH"} {
			assert.True(t, v.IsValid(code), code)
		}
		assert.False(t, v.IsValid("LL1 1PY"))
	})
}

func TestCheck_Result(t *testing.T) {
	t.Parallel()

	res := postcode.Check("dn55 1pt")
	assert.Equal(t, postcode.Result{
		Input:      "dn55 1pt",
		Normalized: "DN551PT",
		Outward:    "DN55",
		Inward:     "1PT",
		Valid:      true,
		Rule:       "two-letter-area-double-digit",
	}, res)
	assert.Empty(t, res.Reason())

	bad := postcode.Check("QL1 0PY")
	assert.Equal(t, "letter-exclusions", bad.Rule)
	assert.Contains(t, bad.Reason(), "letter-exclusions")
}

func TestIsValid_Repeatable(t *testing.T) {
	t.Parallel()

	codes := []string{"EC1A 1BB", "BB0 1PY", "DN551PT", "W1A"}
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = postcode.IsValid(c)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				for _, c := range codes {
					assert.Equal(t, want[c], postcode.IsValid(c), c)
				}
			}
		}()
	}
	wg.Wait()
}

func TestWithAreaRules(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { postcode.WithAreaRules() })
	assert.Panics(t, func() { postcode.WithAreaRules(postcode.Rule{Name: "x"}) })

	v := postcode.New(postcode.WithAreaRules(postcode.NewRule("london-east", `^E[1-9]$`)))
	assert.True(t, v.IsValid("E8 0AX"))
	assert.False(t, v.IsValid("B8 0AX"))
}

func TestValidator_IsValidOutward(t *testing.T) {
	t.Parallel()

	v := postcode.Default()
	for _, code := range []string{"DN55", "ec1a", "W1A", "B8", "BL0", "LL15", "N1C"} {
		assert.True(t, v.IsValidOutward(code), code)
	}
	for _, code := range []string{"", "LL1", "BB0", "QL1", "B33A", "EC1C", "DN55 1PT"} {
		assert.False(t, v.IsValidOutward(code), code)
	}
}
