package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForces_EngagementOrder(t *testing.T) {
	small := &Unit{ID: "small", OwnerID: 2, Count: 50}
	home := &Unit{ID: "home", OwnerID: 2, Count: 100, Category: Garrison}
	big := &Unit{ID: "big", OwnerID: 2, Count: 75}
	raid := &Unit{ID: "raid", OwnerID: 1, Count: 200}

	forces := BuildForces([]Combatant{small, raid, home, big})
	require.Len(t, forces, 2)

	assert.Equal(t, PlayerID(2), forces[0].Owner)
	assert.Equal(t, []int{100, 75, 50}, forces[0].Ships)
	assert.Equal(t, []Combatant{home, big, small}, forces[0].Members)

	assert.Equal(t, PlayerID(1), forces[1].Owner)
	assert.Equal(t, []int{200}, forces[1].Ships)
}

func TestBuildForces_GarrisonFirstEvenWhenSmallest(t *testing.T) {
	fleet := &Unit{ID: "fleet", OwnerID: 0, Count: 500}
	home := &Unit{ID: "home", OwnerID: 0, Count: 0, Category: Garrison}

	forces := BuildForces([]Combatant{fleet, home})
	require.Len(t, forces, 1)
	assert.Equal(t, []int{0, 500}, forces[0].Ships)
}

func TestBuildForces_StableTies(t *testing.T) {
	a := &Unit{ID: "a", OwnerID: 1, Count: 30}
	b := &Unit{ID: "b", OwnerID: 1, Count: 30}
	c := &Unit{ID: "c", OwnerID: 1, Count: 40}

	forces := BuildForces([]Combatant{a, b, c})
	require.Len(t, forces, 1)
	assert.Equal(t, []Combatant{c, a, b}, forces[0].Members)

	forces = BuildForces([]Combatant{b, a, c})
	assert.Equal(t, []Combatant{c, b, a}, forces[0].Members)
}

func TestBuildForces_DoesNotReorderInput(t *testing.T) {
	a := &Unit{ID: "a", OwnerID: 1, Count: 1}
	b := &Unit{ID: "b", OwnerID: 1, Count: 2}
	in := []Combatant{a, b}

	BuildForces(in)
	assert.Equal(t, []Combatant{a, b}, in)
}
