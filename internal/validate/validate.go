// Package validate checks an extracted record field by field and across
// fields, producing blocking errors, non-blocking alerts and suggestions.
package validate

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hurttlocker/agrovoz/internal/patterns"
	"github.com/hurttlocker/agrovoz/internal/record"
)

// Thresholds for values that are valid but unusual enough to confirm.
const (
	MinNameLength = 2
	MaxNameLength = 50
	MaxMonetary   = 100000.0
	MinMonetary   = 10.0
	MaxPlotNumber = 200
	MaxHectares   = 10000.0
	MaxKilograms  = 50000.0
	MaxSacks      = 1000.0
	errorPenalty  = 0.3
	alertPenalty  = 0.1
)

var personNameRE = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s]+$`)

// Validator checks records against the crop and unit vocabularies. It holds
// no mutable state and is safe for concurrent use.
type Validator struct {
	lang language.Tag
}

// New returns a Validator that formats amounts for Brazilian Portuguese.
func New() *Validator {
	return &Validator{lang: language.BrazilianPortuguese}
}

// report accumulates messages for one Validate call.
type report struct {
	errors      []string
	alerts      []string
	suggestions []string
	printer     *message.Printer
}

func (r *report) errorf(format string, args ...any) {
	r.errors = append(r.errors, r.printer.Sprintf(format, args...))
}

func (r *report) alertf(format string, args ...any) {
	r.alerts = append(r.alerts, r.printer.Sprintf(format, args...))
}

func (r *report) suggest(msg string) {
	r.suggestions = append(r.suggestions, msg)
}

// Validate checks rec. Valid is false iff at least one error was raised;
// alerts and suggestions never affect it.
func (v *Validator) Validate(rec record.ExtractedRecord) record.ValidationResult {
	r := &report{
		errors:      []string{},
		alerts:      []string{},
		suggestions: []string{},
		printer:     message.NewPrinter(v.lang),
	}

	checkPerson(rec.PersonInvolved, r)
	checkMonetary(rec.MonetaryValue, r)
	checkCrop(rec.Crop, r)
	checkPlot(rec.PlotNumber, r)
	checkMeasure(rec.Measure, r)
	checkConsistency(rec, r)

	return record.ValidationResult{
		Valid:       len(r.errors) == 0,
		Errors:      r.errors,
		Alerts:      r.alerts,
		Suggestions: r.suggestions,
		Confidence:  Confidence(len(r.errors), len(r.alerts)),
	}
}

// Confidence is 1 minus 0.3 per error and 0.1 per alert, floored at 0.
func Confidence(errorCount, alertCount int) float64 {
	c := 1.0 - errorPenalty*float64(errorCount) - alertPenalty*float64(alertCount)
	return math.Max(c, 0)
}

func checkPerson(person *string, r *report) {
	if person == nil {
		return
	}
	name := *person
	if !personNameRE.MatchString(name) {
		r.alertf("Nome '%s' contém caracteres suspeitos", name)
	}
	switch n := utf8.RuneCountInString(name); {
	case n < MinNameLength:
		r.alertf("Nome muito curto")
	case n > MaxNameLength:
		r.alertf("Nome muito longo")
	}
}

func checkMonetary(value *float64, r *report) {
	if value == nil {
		return
	}
	switch v := *value; {
	case v <= 0:
		r.errorf("Valor monetário deve ser positivo")
	case v > MaxMonetary:
		r.alertf("Valor R$ %.2f é muito alto - confirme", v)
	case v < MinMonetary:
		r.alertf("Valor R$ %.2f é muito baixo - confirme", v)
	}
}

func checkCrop(crop *string, r *report) {
	if crop == nil || patterns.IsKnownCrop(*crop) {
		return
	}
	r.alertf("Cultura '%s' não é comumente conhecida", *crop)
	r.suggest("Culturas comuns: " + strings.Join(patterns.KnownCrops(), ", "))
}

func checkPlot(plot *int, r *report) {
	if plot == nil {
		return
	}
	switch p := *plot; {
	case p <= 0:
		r.errorf("Número do talhão deve ser positivo")
	case p > MaxPlotNumber:
		r.alertf("Talhão %d é um número muito alto", p)
	}
}

func checkMeasure(m *record.Measure, r *report) {
	if m == nil {
		return
	}
	if m.Quantity <= 0 {
		r.errorf("Quantidade deve ser positiva")
	}
	if !patterns.IsKnownUnit(m.Unit) {
		r.alertf("Unidade '%s' não é reconhecida", m.Unit)
	}
	switch {
	case m.Unit == record.UnitHectares && m.Quantity > MaxHectares:
		r.alertf("Área muito grande - confirme")
	case m.Unit == record.UnitKilograms && m.Quantity > MaxKilograms:
		r.alertf("Peso muito alto - confirme")
	case m.Unit == record.UnitSacks && m.Quantity > MaxSacks:
		r.alertf("Muitas sacas - confirme")
	}
}

// checkConsistency only ever adds suggestions.
func checkConsistency(rec record.ExtractedRecord, r *report) {
	if rec.ActivityType == record.ActivityContracting && rec.PersonInvolved == nil {
		r.suggest("Para contratação, especifique o nome da pessoa")
	}
	if rec.Crop != nil && rec.PlotNumber == nil {
		r.suggest("Considere especificar o talhão para a cultura")
	}
	if (rec.ActivityType == record.ActivityInputPurchase || rec.ActivityType == record.ActivitySale) &&
		rec.MonetaryValue == nil {
		r.suggest("Para compra/venda, o valor é importante")
	}
}
