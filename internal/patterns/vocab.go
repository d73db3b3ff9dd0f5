package patterns

import (
	"slices"
	"strings"
)

// extractionCrops is checked by substring, in this order; the first entry
// present in the text wins.
var extractionCrops = []string{
	"soja", "milho", "algodão", "feijão", "café", "cana", "arroz", "trigo",
}

// knownCrops is the vocabulary the validator accepts without an alert.
var knownCrops = []string{
	"soja", "milho", "algodão", "feijão", "café", "cana",
	"arroz", "trigo", "sorgo", "girassol",
}

var knownUnits = []string{
	"kg", "sacas", "litros", "hectares", "alqueires", "unidades",
}

// infinitives maps past-tense activity verbs to their infinitive.
var infinitives = map[string]string{
	"plantei":    "plantar",
	"colhi":      "colher",
	"pulverizei": "pulverizar",
	"arei":       "arar",
	"apliquei":   "aplicar",
	"fertilizei": "fertilizar",
}

// FirstCrop returns the first extraction-vocabulary crop contained in text.
func FirstCrop(text string) (string, bool) {
	for _, c := range extractionCrops {
		if strings.Contains(text, c) {
			return c, true
		}
	}
	return "", false
}

// IsKnownCrop reports whether crop (any case) is in the validation vocabulary.
func IsKnownCrop(crop string) bool {
	return slices.Contains(knownCrops, strings.ToLower(crop))
}

// KnownCrops returns the validation crop vocabulary.
func KnownCrops() []string { return slices.Clone(knownCrops) }

// IsKnownUnit reports whether unit is a recognized unit of measure.
func IsKnownUnit(unit string) bool {
	return slices.Contains(knownUnits, unit)
}

// KnownUnits returns the recognized units of measure.
func KnownUnits() []string { return slices.Clone(knownUnits) }

// Infinitive maps an inflected activity verb to its infinitive. Verbs with no
// entry are returned unchanged.
func Infinitive(verb string) string {
	if inf, ok := infinitives[verb]; ok {
		return inf
	}
	return verb
}
