package sim

// reproduce performs one Moran birth event: a fitness-proportionally
// selected individual is cloned, and the newborn either stays in the
// parent's group or migrates to a uniformly chosen other group.
// Population size grows by exactly one.
func (p *Population) reproduce() {
	parent, parentGroup := p.selectParent()

	child := parent.clone()
	target := parentGroup
	if p.cfg.MigrationRate > 0 && len(p.groups) > 1 && p.rng.Float64() < p.cfg.MigrationRate {
		target = p.otherGroupIndex(parentGroup)
	}
	p.groups[target].add(child)
}

// selectParent samples an individual with probability proportional to
// max(fitness, 0). When every clamped weight is zero the draw is
// uniform over the whole population, so a birth still happens under
// degenerate fitness.
func (p *Population) selectParent() (*Individual, int) {
	total := 0.0
	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			if member.Fitness > 0 {
				total += member.Fitness
			}
		}
	}

	if total == 0 {
		p.log.Debug("total fitness is zero, selecting parent uniformly")
		return p.uniformIndividual()
	}

	pick := p.rng.Float64() * total
	acc := 0.0
	var lastMember *Individual
	lastGroup := 0
	for gi := range p.groups {
		for _, member := range p.groups[gi].Members {
			if member.Fitness <= 0 {
				continue
			}
			acc += member.Fitness
			lastMember, lastGroup = member, gi
			if pick <= acc {
				return member, gi
			}
		}
	}
	// Floating-point slack can leave pick marginally above acc.
	return lastMember, lastGroup
}

func (p *Population) uniformIndividual() (*Individual, int) {
	idx := p.rng.Intn(p.Size())
	for gi := range p.groups {
		if idx < p.groups[gi].Size() {
			return p.groups[gi].Members[idx], gi
		}
		idx -= p.groups[gi].Size()
	}
	// Unreachable while the population is non-empty.
	return p.groups[0].Members[0], 0
}

// otherGroupIndex draws uniformly from group indices excluding one.
func (p *Population) otherGroupIndex(exclude int) int {
	idx := p.rng.Intn(len(p.groups) - 1)
	if idx >= exclude {
		idx++
	}
	return idx
}
