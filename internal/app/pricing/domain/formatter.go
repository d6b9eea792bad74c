package domain

import (
	"fmt"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// BreakdownLine is one display-ready row of an itemized price.
type BreakdownLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// Breakdown is a display-ready itemization of a calculation. The lines
// sum to the total within a cent of rounding tolerance.
type Breakdown struct {
	Lines []BreakdownLine `json:"lines"`
	Total string          `json:"total"`
}

// BreakdownFormatter turns raw calculations into display-ready
// itemized lists for the presentation layer.
type BreakdownFormatter struct{}

// NewBreakdownFormatter creates a BreakdownFormatter.
func NewBreakdownFormatter() *BreakdownFormatter {
	return &BreakdownFormatter{}
}

// Format renders a pricing result as an itemized breakdown. Each line
// is rounded to cents; any residue from per-line rounding is settled
// into an explicit adjustment line so the displayed lines always sum
// to the displayed total.
func (f *BreakdownFormatter) Format(result *PricingResult) *Breakdown {
	lines := make([]BreakdownLine, 0, len(result.Components)+1)

	var displayedCents int64
	for _, c := range result.Components {
		cents := c.Amount.Cents()
		displayedCents += cents
		lines = append(lines, BreakdownLine{Label: c.Label, Amount: money.FromCents(cents).String()})
	}

	totalCents := result.FinalPrice.Cents()
	if residue := totalCents - displayedCents; residue != 0 {
		lines = append(lines, BreakdownLine{Label: "rounding adjustment", Amount: money.FromCents(residue).String()})
	}

	return &Breakdown{
		Lines: lines,
		Total: result.FinalPrice.String(),
	}
}

// SumComponents adds up the raw component amounts of a result. By
// construction this reproduces the final price exactly; it exists so
// callers can verify an itemization before persisting it.
func SumComponents(result *PricingResult) *money.Money {
	sum := money.Zero()
	for _, c := range result.Components {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// FormatScenarios renders simulation scenarios as display rows.
func (f *BreakdownFormatter) FormatScenarios(scenarios []Scenario) []BreakdownLine {
	lines := make([]BreakdownLine, 0, len(scenarios))
	for _, s := range scenarios {
		label := s.Name
		if s.Cheapest {
			label = fmt.Sprintf("%s (cheapest)", s.Name)
		}
		lines = append(lines, BreakdownLine{Label: label, Amount: s.Result.FinalPrice.String()})
	}
	return lines
}
