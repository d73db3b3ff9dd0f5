package extract

import (
	"math"

	"github.com/hurttlocker/agrovoz/internal/record"
)

// Bonuses added to the completeness ratio for fields that matter most to a
// farm ledger entry.
const (
	monetaryBonus = 0.10
	personBonus   = 0.10
	plotBonus     = 0.05
)

// Confidence scores how complete an extraction is: the share of present
// fields plus bonuses for value, person and plot, capped at 1.0.
func Confidence(rec record.ExtractedRecord) float64 {
	score := float64(rec.PresentFields()) / float64(rec.FieldCount())
	if rec.MonetaryValue != nil {
		score += monetaryBonus
	}
	if rec.PersonInvolved != nil {
		score += personBonus
	}
	if rec.PlotNumber != nil {
		score += plotBonus
	}
	return math.Min(score, 1.0)
}

// Suggestions returns phrasing hints for the next utterance, in fixed order:
// value, plot, then specificity.
func Suggestions(rec record.ExtractedRecord) []string {
	out := []string{}
	if rec.MonetaryValue == nil {
		out = append(out, "Considere mencionar o valor em reais")
	}
	if rec.PlotNumber == nil {
		out = append(out, "Especifique o número do talhão")
	}
	if rec.ActivityType == record.ActivityGeneral {
		out = append(out, "Seja mais específico sobre a atividade realizada")
	}
	return out
}
