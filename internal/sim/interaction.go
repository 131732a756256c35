package sim

// playGame runs the interaction phase: every individual initiates one
// encounter, and both parties accumulate payoff from it. Payoffs are
// not reset within a generation, so an individual's total also carries
// the encounters it received.
func (p *Population) playGame() error {
	for gi := range p.groups {
		for ai := range p.groups[gi].Members {
			actor := p.groups[gi].Members[ai]
			partner, sameGroup := p.drawPartner(gi, ai)
			if partner == nil {
				// Nobody to interact with at all (single sparse group).
				p.log.Debug("no partner available, skipping encounter",
					"group", gi, "individual", actor.ID)
				continue
			}

			actorPayoff, err := p.payoffs.Lookup(actor.Strategy, partner.Strategy, sameGroup)
			if err != nil {
				return err
			}
			partnerPayoff, err := p.payoffs.Lookup(partner.Strategy, actor.Strategy, sameGroup)
			if err != nil {
				return err
			}
			actor.Payoff += actorPayoff
			partner.Payoff += partnerPayoff
		}
	}
	return nil
}

// drawPartner picks an encounter partner for the individual at
// (gi, ai). With probability InGroupProb the partner comes from the
// same group; a group with fewer than two members falls back to an
// out-group draw. Returns nil when no partner exists anywhere.
func (p *Population) drawPartner(gi, ai int) (*Individual, bool) {
	if p.rng.Float64() < p.cfg.InGroupProb {
		if p.groups[gi].Size() >= 2 {
			return p.inGroupPartner(gi, ai), true
		}
		p.log.Debug("in-group pool too small, falling back to out-group partner",
			"group", gi, "size", p.groups[gi].Size())
	}
	return p.outGroupPartner(gi), false
}

func (p *Population) inGroupPartner(gi, ai int) *Individual {
	// Uniform over the group excluding the actor itself.
	idx := p.rng.Intn(p.groups[gi].Size() - 1)
	if idx >= ai {
		idx++
	}
	return p.groups[gi].Members[idx]
}

func (p *Population) outGroupPartner(exclude int) *Individual {
	total := 0
	for gi := range p.groups {
		if gi != exclude {
			total += p.groups[gi].Size()
		}
	}
	if total == 0 {
		return nil
	}
	idx := p.rng.Intn(total)
	for gi := range p.groups {
		if gi == exclude {
			continue
		}
		if idx < p.groups[gi].Size() {
			return p.groups[gi].Members[idx]
		}
		idx -= p.groups[gi].Size()
	}
	return nil
}
