package combat

import "slices"

// Force is one owner's groups in engagement order. Members[i] is the handle
// that contributed Ships[i].
type Force struct {
	Owner   PlayerID
	Ships   []int
	Members []Combatant
}

// BuildForces groups combatants by owner, in order of first appearance. Within
// an owner the garrison fights first, then fleet groups from largest to
// smallest, keeping input order between equal fleets.
func BuildForces(cs []Combatant) []Force {
	var owners []PlayerID
	byOwner := map[PlayerID][]Combatant{}
	for _, c := range cs {
		if _, ok := byOwner[c.Owner()]; !ok {
			owners = append(owners, c.Owner())
		}
		byOwner[c.Owner()] = append(byOwner[c.Owner()], c)
	}

	forces := make([]Force, 0, len(owners))
	for _, p := range owners {
		members := byOwner[p]
		slices.SortStableFunc(members, engagementOrder)
		ships := make([]int, len(members))
		for i, c := range members {
			ships[i] = c.Ships()
		}
		forces = append(forces, Force{Owner: p, Ships: ships, Members: members})
	}
	return forces
}

func engagementOrder(a, b Combatant) int {
	ga, gb := a.Kind() == Garrison, b.Kind() == Garrison
	switch {
	case ga && !gb:
		return -1
	case gb && !ga:
		return 1
	case ga && gb:
		return 0
	}
	return b.Ships() - a.Ships()
}
