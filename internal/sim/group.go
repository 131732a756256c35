package sim

// Group is an unordered, size-varying collection of individuals. Group
// identity is purely positional: conflict and splitting replace a
// group's contents at an index, they never track lineage.
type Group struct {
	Members []*Individual
}

func (g *Group) Size() int {
	return len(g.Members)
}

// PayoffSum is the group's contest resource total.
func (g *Group) PayoffSum() float64 {
	total := 0.0
	for _, member := range g.Members {
		total += member.Payoff
	}
	return total
}

func (g *Group) add(ind *Individual) {
	g.Members = append(g.Members, ind)
}

// removeAt drops the member at index i; ordering is not preserved.
func (g *Group) removeAt(i int) *Individual {
	removed := g.Members[i]
	last := len(g.Members) - 1
	g.Members[i] = g.Members[last]
	g.Members[last] = nil
	g.Members = g.Members[:last]
	return removed
}

// duplicateMembers clones the member list wholesale with fresh
// identities, preserving strategies, payoffs and fitness.
func (g *Group) duplicateMembers() []*Individual {
	copied := make([]*Individual, len(g.Members))
	for i, member := range g.Members {
		copied[i] = member.duplicate()
	}
	return copied
}
