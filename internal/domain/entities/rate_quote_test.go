package entities

import (
	"math"
	"testing"
)

const quoteEps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < quoteEps
}

func TestNewRateQuote_KnownValues(t *testing.T) {
	q := NewRateQuote(10, 2, 2, 2)

	if !almostEqual(q.BaseRate, 25) {
		t.Fatalf("expected base rate 25, got %v", q.BaseRate)
	}
	if !almostEqual(q.VolumeRate, 0.8) {
		t.Fatalf("expected volume rate 0.8, got %v", q.VolumeRate)
	}
	if !almostEqual(q.Subtotal, 25.8) {
		t.Fatalf("expected subtotal 25.8, got %v", q.Subtotal)
	}
	if !almostEqual(q.Tax, 2.58) {
		t.Fatalf("expected tax 2.58, got %v", q.Tax)
	}
	if !almostEqual(q.Total, 28.38) {
		t.Fatalf("expected total 28.38, got %v", q.Total)
	}
}

func TestNewRateQuote_Monotonic(t *testing.T) {
	base := NewRateQuote(5, 3, 3, 3)

	cases := []struct {
		name string
		q    RateQuote
	}{
		{"heavier", NewRateQuote(6, 3, 3, 3)},
		{"longer", NewRateQuote(5, 4, 3, 3)},
		{"wider", NewRateQuote(5, 3, 4, 3)},
		{"taller", NewRateQuote(5, 3, 3, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.q.Total < base.Total {
				t.Fatalf("total decreased: %v < %v", tc.q.Total, base.Total)
			}
		})
	}
}
