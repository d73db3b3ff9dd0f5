package validate

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hurttlocker/agrovoz/internal/record"
)

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestValidate_CleanRecord(t *testing.T) {
	rec := record.ExtractedRecord{
		ActivityType:   record.ActivityContracting,
		PersonInvolved: strPtr("Eduardo"),
		Crop:           strPtr("Soja"),
		PlotNumber:     intPtr(5),
		MonetaryValue:  floatPtr(3000),
	}

	got := New().Validate(rec)

	want := record.ValidationResult{
		Valid:       true,
		Errors:      []string{},
		Alerts:      []string{},
		Suggestions: []string{},
		Confidence:  1.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		rec  record.ExtractedRecord
		want string
	}{
		{"negative plot", record.ExtractedRecord{PlotNumber: intPtr(-1)}, "Número do talhão deve ser positivo"},
		{"zero plot", record.ExtractedRecord{PlotNumber: intPtr(0)}, "Número do talhão deve ser positivo"},
		{"zero value", record.ExtractedRecord{MonetaryValue: floatPtr(0)}, "Valor monetário deve ser positivo"},
		{"negative value", record.ExtractedRecord{MonetaryValue: floatPtr(-50)}, "Valor monetário deve ser positivo"},
		{
			"zero quantity",
			record.ExtractedRecord{Measure: &record.Measure{Quantity: 0, Unit: record.UnitKilograms}},
			"Quantidade deve ser positiva",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.rec)
			if got.Valid {
				t.Fatal("Expected invalid record")
			}
			if diff := cmp.Diff([]string{tt.want}, got.Errors); diff != "" {
				t.Errorf("Errors mismatch (-want +got):\n%s", diff)
			}
			if math.Abs(got.Confidence-0.7) > 1e-9 {
				t.Errorf("Expected confidence 0.7, got %f", got.Confidence)
			}
		})
	}
}

func TestValidate_Alerts(t *testing.T) {
	tests := []struct {
		name string
		rec  record.ExtractedRecord
		// substring expected in the single alert
		want string
	}{
		{"short name", record.ExtractedRecord{PersonInvolved: strPtr("A")}, "Nome muito curto"},
		{"long name", record.ExtractedRecord{PersonInvolved: strPtr(strings.Repeat("a", 51))}, "Nome muito longo"},
		{"digits in name", record.ExtractedRecord{PersonInvolved: strPtr("Ana2")}, "contém caracteres suspeitos"},
		{"high value", record.ExtractedRecord{MonetaryValue: floatPtr(150000)}, "muito alto - confirme"},
		{"low value", record.ExtractedRecord{MonetaryValue: floatPtr(5)}, "muito baixo - confirme"},
		{"high plot", record.ExtractedRecord{PlotNumber: intPtr(250)}, "Talhão 250 é um número muito alto"},
		{"huge area", record.ExtractedRecord{Measure: &record.Measure{Quantity: 20000, Unit: record.UnitHectares}}, "Área muito grande"},
		{"heavy", record.ExtractedRecord{Measure: &record.Measure{Quantity: 60000, Unit: record.UnitKilograms}}, "Peso muito alto"},
		{"many sacks", record.ExtractedRecord{Measure: &record.Measure{Quantity: 1500, Unit: record.UnitSacks}}, "Muitas sacas"},
		{"unknown unit", record.ExtractedRecord{Measure: &record.Measure{Quantity: 3, Unit: "toneladas"}}, "Unidade 'toneladas' não é reconhecida"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.rec)
			if !got.Valid {
				t.Errorf("Alerts must not invalidate, got errors %v", got.Errors)
			}
			if len(got.Alerts) != 1 {
				t.Fatalf("Expected 1 alert, got %v", got.Alerts)
			}
			if !strings.Contains(got.Alerts[0], tt.want) {
				t.Errorf("Expected alert containing %q, got %q", tt.want, got.Alerts[0])
			}
			if math.Abs(got.Confidence-0.9) > 1e-9 {
				t.Errorf("Expected confidence 0.9, got %f", got.Confidence)
			}
		})
	}
}

func TestValidate_BoundaryValuesPass(t *testing.T) {
	rec := record.ExtractedRecord{
		PersonInvolved: strPtr("Zé"),
		MonetaryValue:  floatPtr(MaxMonetary),
		PlotNumber:     intPtr(MaxPlotNumber),
		Measure:        &record.Measure{Quantity: MaxSacks, Unit: record.UnitSacks},
	}
	got := New().Validate(rec)
	if len(got.Errors) != 0 || len(got.Alerts) != 0 {
		t.Errorf("Expected no errors or alerts at the limits, got %v %v", got.Errors, got.Alerts)
	}
}

func TestValidate_UnknownCrop(t *testing.T) {
	got := New().Validate(record.ExtractedRecord{Crop: strPtr("Amendoim"), PlotNumber: intPtr(1)})

	if diff := cmp.Diff([]string{"Cultura 'Amendoim' não é comumente conhecida"}, got.Alerts); diff != "" {
		t.Errorf("Alerts mismatch (-want +got):\n%s", diff)
	}
	want := "Culturas comuns: soja, milho, algodão, feijão, café, cana, arroz, trigo, sorgo, girassol"
	if diff := cmp.Diff([]string{want}, got.Suggestions); diff != "" {
		t.Errorf("Suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_KnownCropAnyCase(t *testing.T) {
	for _, crop := range []string{"Sorgo", "GIRASSOL", "algodão"} {
		got := New().Validate(record.ExtractedRecord{Crop: strPtr(crop), PlotNumber: intPtr(1)})
		if len(got.Alerts) != 0 {
			t.Errorf("crop %q: unexpected alerts %v", crop, got.Alerts)
		}
	}
}

func TestValidate_ConsistencySuggestions(t *testing.T) {
	tests := []struct {
		name string
		rec  record.ExtractedRecord
		want []string
	}{
		{
			"contracting without person",
			record.ExtractedRecord{ActivityType: record.ActivityContracting},
			[]string{"Para contratação, especifique o nome da pessoa"},
		},
		{
			"crop without plot",
			record.ExtractedRecord{ActivityType: record.ActivityHarvest, Crop: strPtr("Milho")},
			[]string{"Considere especificar o talhão para a cultura"},
		},
		{
			"purchase without value",
			record.ExtractedRecord{ActivityType: record.ActivityInputPurchase},
			[]string{"Para compra/venda, o valor é importante"},
		},
		{
			"sale without value with crop",
			record.ExtractedRecord{ActivityType: record.ActivitySale, Crop: strPtr("Café")},
			[]string{
				"Considere especificar o talhão para a cultura",
				"Para compra/venda, o valor é importante",
			},
		},
		{
			"planting needs nothing",
			record.ExtractedRecord{ActivityType: record.ActivityPlanting},
			[]string{},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.rec)
			if !got.Valid || len(got.Alerts) != 0 {
				t.Errorf("Suggestions must not affect validity or alerts, got %+v", got)
			}
			if diff := cmp.Diff(tt.want, got.Suggestions); diff != "" {
				t.Errorf("Suggestions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		errors, alerts int
		want           float64
	}{
		{0, 0, 1.0},
		{1, 0, 0.7},
		{0, 2, 0.8},
		{2, 3, 0.1},
		{3, 2, 0},
		{5, 5, 0},
	}
	for _, tt := range tests {
		if got := Confidence(tt.errors, tt.alerts); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Confidence(%d, %d) = %f, want %f", tt.errors, tt.alerts, got, tt.want)
		}
	}
}
