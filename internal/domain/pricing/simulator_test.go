package pricing

import "testing"

func TestSimulate(t *testing.T) {
	cases := []struct {
		name      string
		cost      float64
		price     float64
		in        SimulationInput
		wantCost  float64
		wantPrice float64
		wantUnit  float64
	}{
		{
			name:      "forty percent margin",
			cost:      60,
			price:     90,
			in:        SimulationInput{TargetMargin: 40},
			wantCost:  60,
			wantPrice: 100,
			wantUnit:  40,
		},
		{
			name:      "cost increase then margin",
			cost:      50,
			price:     70,
			in:        SimulationInput{TargetMargin: 20, CostIncrease: 10},
			wantCost:  55,
			wantPrice: 68.75,
			wantUnit:  13.75,
		},
		{
			name:      "margin capped at 99",
			cost:      1,
			price:     2,
			in:        SimulationInput{TargetMargin: 100},
			wantCost:  1,
			wantPrice: 100,
			wantUnit:  99,
		},
		{
			name:      "rounded to cents",
			cost:      10,
			price:     12,
			in:        SimulationInput{TargetMargin: 30},
			wantCost:  10,
			wantPrice: 14.29,
			wantUnit:  4.29,
		},
		{
			name:      "zero cost",
			cost:      0,
			price:     5,
			in:        SimulationInput{TargetMargin: 50},
			wantCost:  0,
			wantPrice: 0,
			wantUnit:  0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Simulate(tc.cost, tc.price, tc.in)
			if !almostEqual(got.SimulatedCost, tc.wantCost) || !almostEqual(got.SimulatedPrice, tc.wantPrice) || !almostEqual(got.ProfitPerUnit, tc.wantUnit) {
				t.Fatalf("unexpected simulation: %+v", got)
			}
			if !almostEqual(got.CurrentProfit, tc.price-tc.cost) {
				t.Fatalf("unexpected current profit: %v", got.CurrentProfit)
			}
		})
	}

	if got := Simulate(10, 12, SimulationInput{TargetMargin: 150}); got.TargetMargin != 99 {
		t.Fatalf("expected effective margin 99, got %v", got.TargetMargin)
	}
}
