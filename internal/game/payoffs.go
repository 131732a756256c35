package game

import "fmt"

// Matrix is a payoff matrix indexed [actor][partner] by Strategy value.
type Matrix [strategyCount][strategyCount]float64

// Payoffs holds the in-group and out-group matrices for one (b, c) pair.
//
// Altruists cooperate with everyone, parochialists only with their own
// group, egoists with no one. Cooperating costs c and grants the partner
// b, so mutual cooperation yields b-c, exploitation yields b for the
// defector and -c for the cooperator.
type Payoffs struct {
	Benefit  float64
	Cost     float64
	InGroup  Matrix
	OutGroup Matrix
}

// NewPayoffs builds both matrices from a benefit b and cost c.
func NewPayoffs(b, c float64) Payoffs {
	return Payoffs{
		Benefit: b,
		Cost:    c,
		InGroup: Matrix{
			{b - c, b - c, -c},
			{b - c, b - c, -c},
			{b, b, 0},
		},
		OutGroup: Matrix{
			{b - c, -c, -c},
			{b, 0, 0},
			{b, 0, 0},
		},
	}
}

// Lookup returns the payoff to the actor of a single encounter.
func (p Payoffs) Lookup(actor, partner Strategy, sameGroup bool) (float64, error) {
	if !actor.Valid() {
		return 0, fmt.Errorf("invalid actor strategy: %d", int(actor))
	}
	if !partner.Valid() {
		return 0, fmt.Errorf("invalid partner strategy: %d", int(partner))
	}
	if sameGroup {
		return p.InGroup[actor][partner], nil
	}
	return p.OutGroup[actor][partner], nil
}
