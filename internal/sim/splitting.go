package sim

// enforceGroupSizes runs the splitting/culling phase over every group
// whose size exceeds the target. An oversized group splits in two with
// probability SplitProb, otherwise it loses one uniformly chosen
// member. Returns the number of splits and culls performed.
func (p *Population) enforceGroupSizes() (splits, culls int) {
	for gi := range p.groups {
		if p.groups[gi].Size() <= p.cfg.GroupSize {
			continue
		}
		if p.rng.Float64() < p.cfg.SplitProb {
			p.splitGroup(gi)
			splits++
		} else {
			p.groups[gi].removeAt(p.rng.Intn(p.groups[gi].Size()))
			culls++
		}
	}
	return splits, culls
}

// splitGroup assigns each member of the group at gi to one of two
// daughter groups by fair coin. The first daughter replaces the
// original; the second overwrites a uniformly chosen other group,
// discarding that group's prior members entirely.
func (p *Population) splitGroup(gi int) {
	members := p.groups[gi].Members
	a := make([]*Individual, 0, len(members))
	b := make([]*Individual, 0, len(members))
	for _, member := range members {
		if p.rng.Float64() < 0.5 {
			a = append(a, member)
		} else {
			b = append(b, member)
		}
	}

	// Both daughters must be non-empty; transfer one member if the
	// coin flips left a side bare.
	if len(a) == 0 {
		i := p.rng.Intn(len(b))
		a = append(a, b[i])
		b = append(b[:i], b[i+1:]...)
	} else if len(b) == 0 {
		i := p.rng.Intn(len(a))
		b = append(b, a[i])
		a = append(a[:i], a[i+1:]...)
	}

	p.groups[gi].Members = a
	if len(p.groups) > 1 {
		p.groups[p.otherGroupIndex(gi)].Members = b
	} else {
		// Degenerate single-group population: nowhere else to put the
		// second daughter, so the group keeps all members.
		p.groups[gi].Members = append(a, b...)
	}
}
