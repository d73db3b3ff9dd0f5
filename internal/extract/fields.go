package extract

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hurttlocker/agrovoz/internal/patterns"
	"github.com/hurttlocker/agrovoz/internal/record"
)

// moneyTier is one step of the monetary fallback chain.
type moneyTier struct {
	name  string
	regex *regexp.Regexp
	parse func(string) (float64, error)
}

// titleCase upper-cases the first letter of each word. A Caser keeps state,
// so a fresh one is built per call.
func titleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// extractPerson tries the contracting context first, then the general
// preposition pattern.
func (p *Pipeline) extractPerson(text string) *string {
	for _, re := range []*regexp.Regexp{p.lib.PersonContracting, p.lib.PersonGeneral} {
		if m := re.FindStringSubmatch(text); len(m) == 2 {
			name := titleCase(strings.TrimSpace(m[1]))
			return &name
		}
	}
	return nil
}

// extractService returns the first activity verb, in infinitive form.
func (p *Pipeline) extractService(text string) *string {
	verb, ok := p.lib.ActivityVerbs.FindFirst(text)
	if !ok {
		return nil
	}
	service := patterns.Infinitive(verb)
	return &service
}

// extractCrop is a plain substring test against the crop vocabulary, so a
// crop name inside a longer word ("canavial") still counts.
func (p *Pipeline) extractCrop(text string) *string {
	crop, ok := patterns.FirstCrop(text)
	if !ok {
		return nil
	}
	crop = titleCase(crop)
	return &crop
}

func (p *Pipeline) extractPlot(text string) *int {
	m := p.lib.Plot.FindStringSubmatch(text)
	if len(m) != 2 {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// extractMonetary walks the fallback tiers. A tier whose match does not
// parse counts as no match and the next tier is tried.
func (p *Pipeline) extractMonetary(text string) *float64 {
	tiers := []moneyTier{
		{name: "currency", regex: p.lib.Money, parse: patterns.ParseDecimal},
		{name: "context", regex: p.lib.MoneyContext, parse: patterns.ParseDecimal},
		{name: "permissive", regex: p.lib.MoneyPermissive, parse: parsePlain},
	}

	for i, tier := range tiers {
		m := tier.regex.FindStringSubmatch(text)
		if len(m) != 2 {
			continue
		}
		v, err := tier.parse(m[1])
		if err != nil {
			p.logger.Debug("unparseable monetary match",
				zap.String("tier", tier.name), zap.String("match", m[1]))
			continue
		}
		if i > 0 {
			p.logger.Debug("monetary value from fallback tier",
				zap.String("tier", tier.name), zap.Float64("value", v))
		}
		return &v
	}
	return nil
}

// extractMeasure tries each unit family in order; quantity and unit come
// back together or not at all.
func (p *Pipeline) extractMeasure(text string) *record.Measure {
	for _, qp := range p.lib.Quantities {
		m := qp.Regex.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		q, err := patterns.ParseQuantity(m[1])
		if err != nil {
			continue
		}
		return &record.Measure{Quantity: q, Unit: qp.Unit}
	}
	return nil
}

// extractMentions collects inputs, machinery and the first time span.
func (p *Pipeline) extractMentions(text string) record.Mentions {
	out := record.Mentions{
		Inputs:    p.lib.Inputs.FindAll(text),
		Machinery: p.lib.Machinery.FindAll(text),
	}
	if m := p.lib.Period.FindStringSubmatch(text); len(m) >= 3 {
		if n, err := strconv.Atoi(m[1]); err == nil {
			out.Period = &record.Period{Amount: n, Unit: m[2]}
		}
	}
	return out
}

func parsePlain(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
