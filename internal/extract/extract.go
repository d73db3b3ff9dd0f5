// Package extract turns a transcribed farm-activity utterance into a
// structured record without any model or external call:
// - activity type ("contratei ..." -> contracting)
// - person, service, crop and plot
// - monetary value (three fallback tiers)
// - quantity with its unit
//
// The result also carries a validation report, an extraction confidence and
// suggestions for phrasing future utterances.
package extract

import (
	"time"

	"go.uber.org/zap"

	"github.com/hurttlocker/agrovoz/internal/classify"
	"github.com/hurttlocker/agrovoz/internal/normalize"
	"github.com/hurttlocker/agrovoz/internal/patterns"
	"github.com/hurttlocker/agrovoz/internal/record"
	"github.com/hurttlocker/agrovoz/internal/validate"
)

// Pipeline runs normalization, classification, field extraction, validation
// and scoring. It holds only read-only configuration, so one Pipeline can
// serve any number of concurrent callers.
type Pipeline struct {
	lib       *patterns.Library
	validator *validate.Validator
	now       func() time.Time
	logger    *zap.Logger
}

// PipelineOption configures the extraction pipeline.
type PipelineOption func(*Pipeline)

// WithValidator replaces the default validator.
func WithValidator(v *validate.Validator) PipelineOption {
	return func(p *Pipeline) {
		if v != nil {
			p.validator = v
		}
	}
}

// WithClock sets the function used to timestamp records.
func WithClock(now func() time.Time) PipelineOption {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the logger used for debug traces of fallback decisions.
func WithLogger(l *zap.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPipeline creates a pipeline over the default pattern library.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		lib:       patterns.Default(),
		validator: validate.New(),
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process extracts a record from text. userID is optional; pass "" when
// unknown. Process never fails: text that matches nothing yields a record
// with every optional field absent and a low confidence.
func (p *Pipeline) Process(text, userID string) record.PipelineResult {
	clean := normalize.Text(text)

	rec := record.ExtractedRecord{
		UserID:           userID,
		OriginalText:     text,
		ActivityType:     classify.Activity(clean),
		PersonInvolved:   p.extractPerson(clean),
		ServicePerformed: p.extractService(clean),
		Crop:             p.extractCrop(clean),
		PlotNumber:       p.extractPlot(clean),
		MonetaryValue:    p.extractMonetary(clean),
		Measure:          p.extractMeasure(clean),
		Timestamp:        p.now(),
	}

	result := record.PipelineResult{
		Record:               rec,
		Validation:           p.validator.Validate(rec),
		ExtractionConfidence: Confidence(rec),
		Suggestions:          Suggestions(rec),
		Mentions:             p.extractMentions(clean),
	}

	p.logger.Debug("utterance processed",
		zap.String("activity", string(rec.ActivityType)),
		zap.Int("fields_present", rec.PresentFields()),
		zap.Float64("confidence", result.ExtractionConfidence),
		zap.Bool("valid", result.Validation.Valid),
	)
	return result
}
