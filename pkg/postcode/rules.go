package postcode

// Areas whose districts are always a single digit.
var singleDigitAreas = []string{
	"BR", "FY", "HA", "HD", "HG", "HR", "HS", "HX", "JE", "LD", "SM", "SR", "WN", "ZE",
}

// Areas whose districts are always two digits.
var doubleDigitAreas = []string{"AB", "LL", "SO"}

// Alternatives of the special-case rule. The generic two-letter, two-digit
// form is kept separate so the strict variant can exclude single-digit areas
// from it.
const (
	specialCasePattern = `^(([A-Z]{1,2}[0-9][A-Z0-9]?|ASCN|STHL|TDCU|BBND|[BFS]IQQ|PCRN|TKCA) ?[0-9][A-Z]{2}` +
		`|BFPO ?[0-9]{1,4}` +
		`|(KY[0-9]|MSR|VG|AI)[ -]?[0-9]{4}` +
		`|[A-Z]{2} ?[0-9]{2}` +
		`|GE ?CX` +
		`|GIR ?0A{2}` +
		`|SAN ?TA1)$`

	territoryPattern = `^(([A-Z]{1,2}[0-9][A-Z0-9]?|ASCN|STHL|TDCU|BBND|[BFS]IQQ|PCRN|TKCA) ?[0-9][A-Z]{2}` +
		`|BFPO ?[0-9]{1,4}` +
		`|(KY[0-9]|MSR|VG|AI)[ -]?[0-9]{4}` +
		`|GE ?CX` +
		`|GIR ?0A{2}` +
		`|SAN ?TA1)$`

	genericDoubleDigitPattern = `^[A-Z]{2} ?[0-9]{2}$`
)

// structuralRules must all match the normalized code.
var structuralRules = []Rule{
	NewRule("general-shape", `^[A-Z]{1,2}[0-9][A-Z0-9]? ?[0-9][A-Z]{2}$`),
	// Q, V, X never lead; I, J, Z never follow the first letter;
	// C, I, K, M, O, V never appear in the last two positions.
	NewRule("letter-exclusions", `^([A-PR-UWYZ][A-HK-Y1-9]?([0-9][A-Z0-9]?) ?[0-9][ABD-HJLNP-UW-Z]{2})$`),
}

// areaRules are tried against the outward code; any match accepts it.
var areaRules = []Rule{
	// AA9A
	NewRule("ec-subdivision", `^((?:EC1|EC2|EC3|EC4|SW1)[ABEHMNPRVWXY])$`),
	NewRule("wc-subdivision", `^((?:WC1|WC2)[ABEHMNPRVWXY])$`),
	NewRule("nw1w", `^NW1W`),
	NewRule("se1p", `^SE1P`),

	// A9A
	NewRule("w1-subdivision", `^(W1[ABCDEFGHJKPSTUW])$`),
	NewRule("n1c", `^N1C`),
	NewRule("n1p", `^N1P`),
	NewRule("e1w", `^E1W`),

	// A9
	NewRule("single-letter-area-single-digit", `^([BEGLMNSW][1-9])$`),

	// A99
	NewRule("single-letter-area-double-digit", `^([BEGLMNSW][1-9]{2})$`),

	// AA9
	NewRule("zero-district-area", `^((?:BL|BS|CM|CR|FY|HA|PR|SL|SS)0)$`),
	NewRule("single-digit-only-area", `^((?:BR|FY|HA|HD|HG|HR|HS|HX|JE|LD|SM|SR|WN|ZE)[1-9])$`),
	NewRule("two-letter-area-single-digit", `^([a-zA-Z]{2}[1-9])$`, doubleDigitAreas...),

	// AA99
	NewRule("double-digit-only-area", `^((?:AB|LL|SO)[1-9]{2})$`),
	NewRule("two-letter-area-double-digit", `^([a-zA-Z]{2}[1-9]{2})$`, singleDigitAreas...),

	// Accepts FY11 and the like through its generic two-digit alternative.
	NewRule("special-case", specialCasePattern),
}

// strictAreaRules replace the special-case rule with two rules so that
// single-digit-only areas cannot pass with two digits.
var strictAreaRules = append(
	append([]Rule(nil), areaRules[:len(areaRules)-1]...),
	NewRule("special-territory", territoryPattern),
	NewRule("generic-double-digit", genericDoubleDigitPattern, singleDigitAreas...),
)

// StructuralRules returns a copy of the structural rule table.
func StructuralRules() []Rule {
	return cloneRules(structuralRules)
}

// AreaRules returns a copy of the area rule table.
func AreaRules() []Rule {
	return cloneRules(areaRules)
}

// StrictAreaRules returns a copy of the area rule table used by
// WithStrictDistricts.
func StrictAreaRules() []Rule {
	return cloneRules(strictAreaRules)
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Name:    r.Name,
			Pattern: r.Pattern,
			Exclude: append([]string(nil), r.Exclude...),
		}
	}
	return out
}
