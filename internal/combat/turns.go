package combat

import (
	"fmt"
	"slices"
)

// InferDefender returns the owner of the garrison among cs. It fails unless
// exactly one owner brought a garrison.
func InferDefender(cs []Combatant) (PlayerID, error) {
	var owners []PlayerID
	for _, c := range cs {
		if c.Kind() == Garrison && !slices.Contains(owners, c.Owner()) {
			owners = append(owners, c.Owner())
		}
	}
	if len(owners) != 1 {
		return 0, fmt.Errorf("%w: %d garrison owners present", ErrAmbiguousDefender, len(owners))
	}
	return owners[0], nil
}

// TurnOrder seats owners defender first, then by increasing player index,
// wrapping around at seats. Seats absent from the battle keep their place in
// the modulo so relative seating is respected.
func TurnOrder(owners []PlayerID, defender PlayerID, seats int) ([]PlayerID, error) {
	if seats < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, seats)
	}
	order := slices.Clone(owners)
	slices.Sort(order)
	offset := func(p PlayerID) int {
		d := int(p-defender) % seats
		if d < 0 {
			d += seats
		}
		return d
	}
	slices.SortStableFunc(order, func(a, b PlayerID) int {
		// ids at or past seats can share the defender's offset
		switch {
		case a == defender && b != defender:
			return -1
		case b == defender && a != defender:
			return 1
		}
		return offset(a) - offset(b)
	})
	return order, nil
}
