// Package classify assigns a coarse activity type to a normalized utterance.
package classify

import (
	"strings"

	"github.com/hurttlocker/agrovoz/internal/record"
)

type category struct {
	activity record.ActivityType
	keywords []string
}

// categories are checked in order and the first hit wins. Reordering changes
// results: "paguei" alone makes a sentence contracting even if it also says
// "plantei".
var categories = []category{
	{record.ActivityContracting, []string{"contratei", "chamei", "paguei", "contrato"}},
	{record.ActivityInputPurchase, []string{"comprei", "adquiri", "compra"}},
	{record.ActivitySale, []string{"vendi", "entreguei", "comercializei"}},
	{record.ActivityPlanting, []string{"plantei", "plantar", "semeei", "semear"}},
	{record.ActivityHarvest, []string{"colhi", "colher", "colhendo"}},
	{record.ActivitySpraying, []string{"pulverizei", "apliquei", "pulverizar"}},
	{record.ActivitySoilPrep, []string{"arei", "arar", "preparei", "gradear"}},
}

// Activity returns the first category with a keyword contained anywhere in
// text, or ActivityGeneral when none matches. Matching is by substring.
func Activity(text string) record.ActivityType {
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(text, kw) {
				return c.activity
			}
		}
	}
	return record.ActivityGeneral
}

// Order returns the activity types in the order they are checked.
func Order() []record.ActivityType {
	out := make([]record.ActivityType, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.activity)
	}
	return out
}
