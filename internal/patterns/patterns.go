// Package patterns holds the fixed pattern library used to pull fields out of
// normalized Portuguese farm-activity utterances.
//
// Every pattern is compiled once at package init and is read-only afterwards,
// so a *Library can be shared by any number of goroutines. Inputs are expected
// to be normalized (lowercase, NFC) before matching.
package patterns

import (
	"regexp"
	"strconv"
	"strings"
)

// wordEnd matches a Unicode-aware end of word. RE2's \b only understands ASCII
// word characters, which would split "algodão" or "lá" in the middle.
const wordEnd = `(?:[^\p{L}\p{N}_]|$)`

// decimalBR is the amount grammar shared by the monetary patterns: up to six
// leading digits, optional thousands groups, optional two-digit cents.
const decimalBR = `(\d{1,6}(?:[.,]\d{3})*(?:[.,]\d{2})?)`

// QuantityPattern matches a number followed by one unit family.
type QuantityPattern struct {
	Unit  string
	Regex *regexp.Regexp
}

// Library is the named set of patterns, grouped by the field they feed.
// Where a field has fallbacks, they are tried in the order listed here.
type Library struct {
	// Person: contracting context first, then any "com o / pelo / pela".
	PersonContracting *regexp.Regexp
	PersonGeneral     *regexp.Regexp

	ActivityVerbs *KeywordSet
	Crops         *KeywordSet

	Plot *regexp.Regexp

	// Monetary value tiers: currency word, context verb, then any 3+ digit
	// number after a payment verb.
	Money           *regexp.Regexp
	MoneyContext    *regexp.Regexp
	MoneyPermissive *regexp.Regexp

	// Quantities in priority order: kg, sacks, liters, hectares.
	Quantities []QuantityPattern

	Inputs    *KeywordSet
	Machinery *KeywordSet
	Period    *regexp.Regexp
}

var defaultLibrary = newLibrary()

// Default returns the process-wide pattern library.
func Default() *Library {
	return defaultLibrary
}

func newLibrary() *Library {
	return &Library{
		PersonContracting: regexp.MustCompile(
			`(?i)(?:contratei|chamei|paguei)\s+(?:o|a|ao|à)?\s*([A-Za-zÀ-ÿ]+)(?:\s+para|\s+que|\s+por)`,
		),
		PersonGeneral: regexp.MustCompile(
			`(?i)(?:com\s+(?:o|a)\s+|pelo\s+|pela\s+)([A-Za-zÀ-ÿ]+)`,
		),

		ActivityVerbs: NewKeywordSet("activity_verb",
			"plantar", "plantei", "colher", "colhi", "pulverizar", "pulverizei",
			"arar", "arei", "semear", "semeei", "aplicar", "apliquei",
			"fertilizar", "fertilizei",
		),
		Crops: NewKeywordSet("crop",
			"soja", "milho", "algodão", "feijão", "café", "cana", "cana-de-açúcar",
			"arroz", "trigo", "sorgo", "girassol", "amendoim",
		),

		// "talião" is a common transcription of "talhão".
		Plot: regexp.MustCompile(`(?i)(?:talhão|talião|área|lote|gleba)\s*(\d+)`),

		Money: regexp.MustCompile(
			`(?i)(?:por\s+|custou\s+|gastei\s+|paguei\s+|valor\s+de\s+)?(?:r\$\s*)?` + decimalBR + `\s*(?:reais?|r\$)`,
		),
		MoneyContext: regexp.MustCompile(
			`(?i)(?:por|custou|gastei|paguei|valor de)\s+(?:r\$\s*)?` + decimalBR,
		),
		MoneyPermissive: regexp.MustCompile(`(?i)(?:por|custou|gastei|paguei)\s+.*?(\d{3,})`),

		Quantities: []QuantityPattern{
			{Unit: "kg", Regex: regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:kg|quilos?|quilogramas?)`)},
			{Unit: "sacas", Regex: regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*sacas?`)},
			{Unit: "litros", Regex: regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:litros?|l)` + wordEnd)},
			{Unit: "hectares", Regex: regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:hectares?|ha|alqueires?)`)},
		},

		Inputs: NewKeywordSet("input",
			"adubo", "fertilizante", "semente", "sementes", "defensivo", "herbicida",
			"fungicida", "inseticida", "calcário", "ureia", "npk", "superfosfato",
		),
		Machinery: NewKeywordSet("machinery",
			"trator", "colheitadeira", "plantadeira", "pulverizador", "arado",
			"grade", "cultivador",
		),
		Period: regexp.MustCompile(`(?i)(?:por\s+|durante\s+)?(\d+)\s*(dias?|semanas?|meses|mês|horas?)` + wordEnd),
	}
}

// ParseDecimal parses an amount written in the Brazilian convention: dots
// group thousands and a comma marks the decimal point ("3.000,50").
func ParseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// ParseQuantity parses a measured quantity. Only the comma is rewritten: a dot
// in a quantity is already a decimal point, usually produced by the
// "<N> e <M>" normalization.
func ParseQuantity(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
