package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ukpostcode/pkg/postcode"
	"github.com/dmitrymomot/ukpostcode/pkg/validator"
)

func TestUKPostcode(t *testing.T) {
	t.Run("valid postcodes", func(t *testing.T) {
		for _, code := range []string{"EC1A 1BB", "dn551pt", "W1A 0AX", "FY11 1PY"} {
			assert.NoError(t, validator.Apply(validator.UKPostcode("postcode", code)), code)
		}
	})

	t.Run("invalid postcodes", func(t *testing.T) {
		for _, code := range []string{"", "   ", "W1A", "QL1 0PY", "BB0 1PY"} {
			err := validator.Apply(validator.UKPostcode("postcode", code))
			require.Error(t, err, code)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "postcode", verrs[0].Field)
			assert.Equal(t, "validation.uk_postcode", verrs[0].TranslationKey)
			assert.Equal(t, code, verrs[0].TranslationValues["value"])
		}
	})

	t.Run("strict districts", func(t *testing.T) {
		err := validator.Apply(validator.UKPostcode("postcode", "FY11 1PY", postcode.WithStrictDistricts()))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestUKPostcodes(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.UKPostcodes("postcodes", []string{"EC1A 1BB", "B33 8TH"})))
	assert.NoError(t, validator.Apply(validator.UKPostcodes("postcodes", nil)))

	err := validator.Apply(validator.UKPostcodes("postcodes", []string{"EC1A 1BB", "LL1 1PY", "W1A"}))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.uk_postcodes", verrs[0].TranslationKey)
	assert.Equal(t, 1, verrs[0].TranslationValues["index"])
	assert.Equal(t, "LL1 1PY", verrs[0].TranslationValues["value"])
}

func TestUKPostcodes_ConcurrentApply(t *testing.T) {
	rule := validator.UKPostcodes("postcodes", []string{"bad1", "bad2"})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				verrs := validator.ExtractValidationErrors(validator.Apply(rule))
				if assert.Len(t, verrs, 1) {
					assert.Equal(t, 0, verrs[0].TranslationValues["index"])
					assert.Equal(t, "bad1", verrs[0].TranslationValues["value"])
				}
			}
		}()
	}
	wg.Wait()
}

func TestUKOutwardCode(t *testing.T) {
	for _, code := range []string{"DN55", "ec1a", "W1A", "BL0"} {
		assert.NoError(t, validator.Apply(validator.UKOutwardCode("district", code)), code)
	}

	err := validator.Apply(
		validator.UKOutwardCode("district", "LL1"),
		validator.UKOutwardCode("area", ""),
	)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)
	assert.Equal(t, []string{"district", "area"}, verrs.Fields())
	assert.Equal(t, "validation.uk_outward_code", verrs[0].TranslationKey)
}
