package odds

import (
	"math"
	"testing"
)

func TestImpliedProbability_Decimal(t *testing.T) {
	cases := []struct {
		price    float64
		expected float64
	}{
		{2.0, 0.5},
		{2.5, 0.4},
		{4.0, 0.25},
		// Decimal prices below 2.0 convert correctly when tagged, even
		// though the magnitude heuristic would misread them.
		{1.5, 1.0 / 1.5},
		{1.05, 1.0 / 1.05},
	}

	for _, tc := range cases {
		got := ImpliedProbability(tc.price, FormatDecimal)
		if math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("ImpliedProbability(%v, decimal) = %v, want %v", tc.price, got, tc.expected)
		}
	}
}

func TestImpliedProbability_American(t *testing.T) {
	cases := []struct {
		price    float64
		expected float64
	}{
		{150, 0.4},
		{-150, 0.6},
		{100, 0.5},
		{-100, 0.5},
		{200, 100.0 / 300.0},
	}

	for _, tc := range cases {
		got := ImpliedProbability(tc.price, FormatAmerican)
		if math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("ImpliedProbability(%v, american) = %v, want %v", tc.price, got, tc.expected)
		}
	}
}

func TestPriceToProbability_Heuristic(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		expected float64
	}{
		{"decimal-at-two", 2.0, 0.5},
		{"decimal-above-two", 3.0, 1.0 / 3.0},
		// Any positive price at or above 2.0 lands in the decimal branch,
		// so an untagged +150 American quote is misread as decimal.
		{"large-positive-treated-as-decimal", 150, 1.0 / 150.0},
		{"american-positive-below-two", 1.2, 100.0 / 101.2},
		{"american-negative", -150, 0.6},
		// The documented ambiguity: 1.5 looks like American positive to
		// the heuristic, which is why quotes should be tagged.
		{"ambiguous-small-positive", 1.5, 100.0 / 101.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PriceToProbability(tc.price)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("PriceToProbability(%v) = %v, want %v", tc.price, got, tc.expected)
			}
		})
	}
}

func TestImpliedProbability_UnsetPrice(t *testing.T) {
	for _, format := range []Format{FormatDecimal, FormatAmerican, FormatUnknown} {
		if got := ImpliedProbability(0, format); got != 0 {
			t.Errorf("ImpliedProbability(0, %q) = %v, want 0", format, got)
		}
	}
}

func TestInferFormat(t *testing.T) {
	if InferFormat(2.0) != FormatDecimal {
		t.Error("expected 2.0 to infer decimal")
	}
	if InferFormat(150) != FormatDecimal {
		t.Error("expected 150 to infer decimal")
	}
	if InferFormat(1.5) != FormatAmerican {
		t.Error("expected 1.5 to infer american")
	}
	if InferFormat(-150) != FormatAmerican {
		t.Error("expected -150 to infer american")
	}
}

func TestDecimalPrice(t *testing.T) {
	if got := DecimalPrice(-100, FormatAmerican); math.Abs(got-2.0) > 1e-12 {
		t.Errorf("DecimalPrice(-100, american) = %v, want 2.0", got)
	}
	if got := DecimalPrice(2.5, FormatDecimal); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("DecimalPrice(2.5, decimal) = %v, want 2.5", got)
	}
	if got := DecimalPrice(0, FormatDecimal); got != 0 {
		t.Errorf("DecimalPrice(0, decimal) = %v, want 0", got)
	}
}

func TestGame_BookmakerCount(t *testing.T) {
	game := Game{
		Quotes: []Quote{
			{Bookmaker: "DraftKings", Outcome: "A", Price: 2.0},
			{Bookmaker: "DraftKings", Outcome: "B", Price: 1.9},
			{Bookmaker: "FanDuel", Outcome: "A", Price: 2.1},
		},
	}

	if got := game.BookmakerCount(); got != 2 {
		t.Errorf("expected 2 bookmakers, got %d", got)
	}

	empty := Game{}
	if got := empty.BookmakerCount(); got != 0 {
		t.Errorf("expected 0 bookmakers, got %d", got)
	}
}
