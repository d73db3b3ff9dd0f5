package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hurttlocker/agrovoz/internal/record"
)

func TestActivity(t *testing.T) {
	tests := []struct {
		text string
		want record.ActivityType
	}{
		{"contratei o eduardo para plantar soja", record.ActivityContracting},
		{"chamei o vizinho", record.ActivityContracting},
		{"assinei o contrato de arrendamento", record.ActivityContracting},
		{"comprei adubo", record.ActivityInputPurchase},
		{"adquiri sementes", record.ActivityInputPurchase},
		{"vendi 300 sacas", record.ActivitySale},
		{"entreguei o milho na cooperativa", record.ActivitySale},
		{"plantei soja", record.ActivityPlanting},
		{"semeei trigo", record.ActivityPlanting},
		{"colhi café", record.ActivityHarvest},
		{"estamos colhendo", record.ActivityHarvest},
		{"pulverizei o talhão", record.ActivitySpraying},
		{"apliquei herbicida", record.ActivitySpraying},
		{"preparei o solo", record.ActivitySoilPrep},
		{"vou gradear amanhã", record.ActivitySoilPrep},
		{"bom dia", record.ActivityGeneral},
		{"", record.ActivityGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Activity(tt.text); got != tt.want {
				t.Errorf("Activity(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestActivity_Precedence(t *testing.T) {
	tests := []struct {
		text string
		want record.ActivityType
	}{
		// Payment wins over the activity that was paid for.
		{"paguei o joão e plantei milho", record.ActivityContracting},
		{"comprei semente e plantei", record.ActivityInputPurchase},
		{"colhi e vendi", record.ActivitySale},
		{"plantar depois de colher", record.ActivityPlanting},
		// Substring matching: "comprado" contains "compra".
		{"o adubo comprado chegou", record.ActivityInputPurchase},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Activity(tt.text); got != tt.want {
				t.Errorf("Activity(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	want := []record.ActivityType{
		record.ActivityContracting,
		record.ActivityInputPurchase,
		record.ActivitySale,
		record.ActivityPlanting,
		record.ActivityHarvest,
		record.ActivitySpraying,
		record.ActivitySoilPrep,
	}
	if diff := cmp.Diff(want, Order()); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}
