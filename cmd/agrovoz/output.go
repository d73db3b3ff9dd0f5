package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/hurttlocker/agrovoz/internal/record"
)

// output is a pipeline result plus the review flag derived by the CLI.
type output struct {
	record.PipelineResult `yaml:",inline"`
	NeedsReview           bool `json:"needs_review" yaml:"needs_review"`
}

func newOutput(res record.PipelineResult, threshold float64) output {
	return output{PipelineResult: res, NeedsReview: res.NeedsReview(threshold)}
}

func parseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "json", "yaml", "text":
		return f, nil
	case "yml":
		return "yaml", nil
	default:
		return "", errors.WithHint(
			errors.Newf("unknown output format %q", s),
			"use json, yaml or text",
		)
	}
}

func writeOne(w io.Writer, format string, o output) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, formatText(o))
		return err
	default:
		return encode(w, format, o)
	}
}

func writeMany(w io.Writer, format string, outs []output) error {
	switch format {
	case "text":
		var sb strings.Builder
		for i, o := range outs {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "[%d] ", i+1)
			sb.WriteString(formatText(o))
		}
		_, err := io.WriteString(w, sb.String())
		return err
	default:
		if outs == nil {
			outs = []output{}
		}
		return encode(w, format, outs)
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errors.Wrap(enc.Encode(v), "encoding json")
	}
}

// formatText renders a human-readable summary of one result.
func formatText(o output) string {
	r := o.Record
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s  confidence=%.2f  valid=%t  needs_review=%t\n",
		r.ActivityType, o.ExtractionConfidence, o.Validation.Valid, o.NeedsReview)
	fmt.Fprintf(&sb, "  text:     %s\n", r.OriginalText)
	if r.PersonInvolved != nil {
		fmt.Fprintf(&sb, "  person:   %s\n", *r.PersonInvolved)
	}
	if r.ServicePerformed != nil {
		fmt.Fprintf(&sb, "  service:  %s\n", *r.ServicePerformed)
	}
	if r.Crop != nil {
		fmt.Fprintf(&sb, "  crop:     %s\n", *r.Crop)
	}
	if r.PlotNumber != nil {
		fmt.Fprintf(&sb, "  plot:     %d\n", *r.PlotNumber)
	}
	if r.MonetaryValue != nil {
		fmt.Fprintf(&sb, "  value:    R$ %.2f\n", *r.MonetaryValue)
	}
	if r.Measure != nil {
		fmt.Fprintf(&sb, "  quantity: %g %s\n", r.Measure.Quantity, r.Measure.Unit)
	}
	writeList(&sb, "error", o.Validation.Errors)
	writeList(&sb, "alert", o.Validation.Alerts)
	writeList(&sb, "hint", o.Validation.Suggestions)
	writeList(&sb, "hint", o.Suggestions)
	return sb.String()
}

func writeList(sb *strings.Builder, label string, items []string) {
	for _, it := range items {
		fmt.Fprintf(sb, "  %s: %s\n", label, it)
	}
}
