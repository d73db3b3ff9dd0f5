// Package record holds the data model produced by the agrovoz extraction
// pipeline: the extracted record, its validation report, and the bundle
// returned to callers.
//
// All values are created fresh per call and never mutated after they are
// returned. Optional fields are pointers so "absent" is an explicit state.
package record

import "time"

// ActivityType is the coarse classification of the farm action described.
type ActivityType string

const (
	ActivityContracting   ActivityType = "contracting"
	ActivityInputPurchase ActivityType = "input_purchase"
	ActivitySale          ActivityType = "sale"
	ActivityPlanting      ActivityType = "planting"
	ActivityHarvest       ActivityType = "harvest"
	ActivitySpraying      ActivityType = "spraying"
	ActivitySoilPrep      ActivityType = "soil_prep"
	ActivityGeneral       ActivityType = "general_activity"
)

// Units of measure recognized by the quantity extractor.
const (
	UnitKilograms = "kg"
	UnitSacks     = "sacas"
	UnitLiters    = "litros"
	UnitHectares  = "hectares"
)

// Measure is a quantity together with its unit. The two are only ever
// extracted jointly, so a record carries both or neither.
type Measure struct {
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
}

// ExtractedRecord is the structured form of one utterance.
type ExtractedRecord struct {
	UserID           string       `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	OriginalText     string       `json:"original_text" yaml:"original_text"`
	ActivityType     ActivityType `json:"activity_type" yaml:"activity_type"`
	PersonInvolved   *string      `json:"person_involved,omitempty" yaml:"person_involved,omitempty"`
	ServicePerformed *string      `json:"service_performed,omitempty" yaml:"service_performed,omitempty"`
	Crop             *string      `json:"crop,omitempty" yaml:"crop,omitempty"`
	PlotNumber       *int         `json:"plot_number,omitempty" yaml:"plot_number,omitempty"`
	MonetaryValue    *float64     `json:"monetary_value,omitempty" yaml:"monetary_value,omitempty"`
	Measure          *Measure     `json:"measure,omitempty" yaml:"measure,omitempty"`
	Timestamp        time.Time    `json:"timestamp" yaml:"timestamp"`
}

// fieldCount is the number of logical fields in ExtractedRecord. Quantity and
// unit count as two fields even though they share one Measure.
const fieldCount = 11

// FieldCount returns the total number of logical fields in a record.
func (r ExtractedRecord) FieldCount() int { return fieldCount }

// PresentFields counts the logical fields that hold a value. OriginalText,
// ActivityType and Timestamp are always considered present.
func (r ExtractedRecord) PresentFields() int {
	n := 3
	if r.UserID != "" {
		n++
	}
	if r.PersonInvolved != nil {
		n++
	}
	if r.ServicePerformed != nil {
		n++
	}
	if r.Crop != nil {
		n++
	}
	if r.PlotNumber != nil {
		n++
	}
	if r.MonetaryValue != nil {
		n++
	}
	if r.Measure != nil {
		n += 2
	}
	return n
}

// ValidationResult is the outcome of checking one ExtractedRecord.
type ValidationResult struct {
	Valid       bool     `json:"valid" yaml:"valid"`
	Errors      []string `json:"errors" yaml:"errors"`
	Alerts      []string `json:"alerts" yaml:"alerts"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
	Confidence  float64  `json:"confidence" yaml:"confidence"`
}

// Period is a duration mention such as "3 dias".
type Period struct {
	Amount int    `json:"amount" yaml:"amount"`
	Unit   string `json:"unit" yaml:"unit"`
}

// Mentions holds context recognized in the text that the record itself
// does not store: farm inputs, machinery and time spans.
type Mentions struct {
	Inputs    []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Machinery []string `json:"machinery,omitempty" yaml:"machinery,omitempty"`
	Period    *Period  `json:"period,omitempty" yaml:"period,omitempty"`
}

// PipelineResult is everything the pipeline returns for one utterance.
type PipelineResult struct {
	Record               ExtractedRecord  `json:"record" yaml:"record"`
	Validation           ValidationResult `json:"validation" yaml:"validation"`
	ExtractionConfidence float64          `json:"extraction_confidence" yaml:"extraction_confidence"`
	Suggestions          []string         `json:"suggestions" yaml:"suggestions"`
	Mentions             Mentions         `json:"mentions" yaml:"mentions"`
}

// DefaultReviewThreshold is the suggested extraction confidence below which
// a record should be reviewed by a person.
const DefaultReviewThreshold = 0.7

// NeedsReview reports whether the result falls under the review threshold.
// The policy belongs to the caller; the pipeline never sets it.
func (r PipelineResult) NeedsReview(threshold float64) bool {
	return r.ExtractionConfidence < threshold
}
