package game

import "testing"

func TestPayoffMatricesFromBenefitCost(t *testing.T) {
	p := NewPayoffs(2, 1)

	inGroup := []struct {
		actor, partner Strategy
		want           float64
	}{
		{Altruist, Altruist, 1},
		{Altruist, Parochialist, 1},
		{Altruist, Egoist, -1},
		{Parochialist, Altruist, 1},
		{Parochialist, Egoist, -1},
		{Egoist, Altruist, 2},
		{Egoist, Parochialist, 2},
		{Egoist, Egoist, 0},
	}
	for _, tc := range inGroup {
		got, err := p.Lookup(tc.actor, tc.partner, true)
		if err != nil {
			t.Fatalf("lookup in-group %v vs %v: %v", tc.actor, tc.partner, err)
		}
		if got != tc.want {
			t.Errorf("in-group %v vs %v = %v, want %v", tc.actor, tc.partner, got, tc.want)
		}
	}

	// Out of group, parochialists behave like egoists on both sides.
	outGroup := []struct {
		actor, partner Strategy
		want           float64
	}{
		{Altruist, Altruist, 1},
		{Altruist, Parochialist, -1},
		{Parochialist, Altruist, 2},
		{Parochialist, Parochialist, 0},
		{Egoist, Altruist, 2},
		{Egoist, Egoist, 0},
	}
	for _, tc := range outGroup {
		got, err := p.Lookup(tc.actor, tc.partner, false)
		if err != nil {
			t.Fatalf("lookup out-group %v vs %v: %v", tc.actor, tc.partner, err)
		}
		if got != tc.want {
			t.Errorf("out-group %v vs %v = %v, want %v", tc.actor, tc.partner, got, tc.want)
		}
	}
}

func TestLookupRejectsInvalidStrategies(t *testing.T) {
	p := NewPayoffs(2, 1)
	if _, err := p.Lookup(Strategy(7), Egoist, true); err == nil {
		t.Fatal("expected error for invalid actor")
	}
	if _, err := p.Lookup(Egoist, Strategy(-2), false); err == nil {
		t.Fatal("expected error for invalid partner")
	}
}
