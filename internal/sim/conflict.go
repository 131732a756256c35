package sim

import "math"

// resolveConflicts runs the group-conflict phase. Each group enters the
// conflict set with probability ConflictRate; the set is repaired to an
// even size, shuffled and paired, and each pair fights a contest whose
// loser is replaced wholesale by clones of the winner's members.
// Returns the number of contests fought.
func (p *Population) resolveConflicts() int {
	flagged := make([]int, 0, len(p.groups))
	for gi := range p.groups {
		if p.rng.Float64() < p.cfg.ConflictRate {
			flagged = append(flagged, gi)
		}
	}

	flagged = p.repairConflictSet(flagged)
	if len(flagged) == 0 {
		return 0
	}

	p.rng.Shuffle(len(flagged), func(i, j int) {
		flagged[i], flagged[j] = flagged[j], flagged[i]
	})

	contests := 0
	for i := 0; i+1 < len(flagged); i += 2 {
		p.fight(flagged[i], flagged[i+1])
		contests++
	}
	return contests
}

// repairConflictSet makes the flagged set even. When every group is
// flagged one is dropped; otherwise a fair coin decides between
// promoting an unflagged group and dropping a flagged one.
func (p *Population) repairConflictSet(flagged []int) []int {
	if len(flagged)%2 == 0 {
		return flagged
	}

	if len(flagged) == len(p.groups) {
		drop := p.rng.Intn(len(flagged))
		return append(flagged[:drop], flagged[drop+1:]...)
	}

	if p.rng.Float64() < 0.5 {
		inSet := make(map[int]bool, len(flagged))
		for _, gi := range flagged {
			inSet[gi] = true
		}
		unflagged := make([]int, 0, len(p.groups)-len(flagged))
		for gi := range p.groups {
			if !inSet[gi] {
				unflagged = append(unflagged, gi)
			}
		}
		return append(flagged, unflagged[p.rng.Intn(len(unflagged))])
	}

	drop := p.rng.Intn(len(flagged))
	return append(flagged[:drop], flagged[drop+1:]...)
}

// fight settles a single contest between the groups at indices a and b.
func (p *Population) fight(a, b int) {
	winProb := p.contestWinProb(p.groups[a].PayoffSum(), p.groups[b].PayoffSum())

	winner, loser := a, b
	if p.rng.Float64() >= winProb {
		winner, loser = b, a
	}
	p.groups[loser].Members = p.groups[winner].duplicateMembers()
}

// contestWinProb is the Tullock contest success probability for the
// first group. Payoff sums are clamped at zero before the fractional
// exponent is applied, so a negative sum never reaches math.Pow: a
// positive sum beats a non-positive one outright, and equal raw sums
// (or two non-positive ones) resolve by fair coin.
func (p *Population) contestWinProb(s1, s2 float64) float64 {
	if s1 == s2 {
		return 0.5
	}
	c1 := math.Max(s1, 0)
	c2 := math.Max(s2, 0)
	if c1 == 0 && c2 == 0 {
		return 0.5
	}
	exp := 1 / p.cfg.ContestSteepness
	r1 := math.Pow(c1, exp)
	r2 := math.Pow(c2, exp)
	return r1 / (r1 + r2)
}
