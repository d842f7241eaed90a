package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCombatants_DefenderKeepsSmallestFleet(t *testing.T) {
	home := &Unit{ID: "home", OwnerID: 2, Count: 3, Category: Garrison}
	mid := &Unit{ID: "mid", OwnerID: 2, Count: 8}
	small := &Unit{ID: "small", OwnerID: 2, Count: 5}
	raid := &Unit{ID: "raid", OwnerID: 0, Count: 30}
	seats := Seats{Weapon: map[PlayerID]int{0: 1, 1: 1, 2: 1}}

	out, err := FromCombatants([]Combatant{raid, small, home, mid}, seats)
	require.NoError(t, err)

	assert.Equal(t, PlayerID(2), out.Winner)
	assert.Equal(t, map[Combatant]int{home: 0, small: 2}, out.Remaining)
}

func TestFromCombatants_GarrisonReportedWhenLost(t *testing.T) {
	home := &Unit{ID: "home", OwnerID: 0, Count: 10, Category: Garrison}
	main := &Unit{ID: "main", OwnerID: 1, Count: 100}
	escort := &Unit{ID: "escort", OwnerID: 1, Count: 40}
	seats := Seats{Weapon: map[PlayerID]int{0: 1, 1: 1}}

	out, err := FromCombatants([]Combatant{home, escort, main}, seats)
	require.NoError(t, err)

	assert.Equal(t, PlayerID(1), out.Winner)
	assert.Equal(t, map[Combatant]int{home: 0, main: 80, escort: 40}, out.Remaining)
}

func TestFromCombatants_ThreeWay(t *testing.T) {
	home := &Unit{ID: "home", OwnerID: 2, Count: 100, Category: Garrison}
	f75 := &Unit{ID: "f75", OwnerID: 2, Count: 75}
	f50 := &Unit{ID: "f50", OwnerID: 2, Count: 50}
	p3a := &Unit{ID: "p3a", OwnerID: 3, Count: 150}
	p3b := &Unit{ID: "p3b", OwnerID: 3, Count: 50}
	p1 := &Unit{ID: "p1", OwnerID: 1, Count: 200}
	seats := Seats{Weapon: map[PlayerID]int{1: 2, 2: 2, 3: 1}, Count: 3}

	var events []Event
	out, err := FromCombatants([]Combatant{p1, p3a, p3b, f50, home, f75}, seats, WithEvents(collect(&events)))
	require.NoError(t, err)

	assert.Equal(t, PlayerID(2), out.Winner)
	assert.Equal(t, map[Combatant]int{home: 0, f50: 3}, out.Remaining)

	require.NotEmpty(t, events)
	first := events[0]
	assert.Equal(t, EventAttack, first.Type)
	assert.Equal(t, PlayerID(2), first.Payload["attacker"])
	assert.Equal(t, PlayerID(3), first.Payload["target"])
	assert.Equal(t, 3, first.Payload["damage"])
}

func TestFromCombatants_ExplicitDefender(t *testing.T) {
	a := &Unit{ID: "a", OwnerID: 0, Count: 10}
	b := &Unit{ID: "b", OwnerID: 1, Count: 10}
	seats := Seats{Weapon: map[PlayerID]int{0: 1, 1: 1}}

	out, err := FromCombatants([]Combatant{a, b}, seats, WithDefender(1))
	require.NoError(t, err)

	won, left, err := Simple(Side{Weapons: 1, Ships: 10}, Side{Weapons: 1, Ships: 10})
	require.NoError(t, err)
	require.True(t, won)

	assert.Equal(t, PlayerID(1), out.Winner)
	assert.Equal(t, map[Combatant]int{b: left}, out.Remaining)
	assert.Equal(t, 6, left)
}

func TestFromCombatants_AbsentDefenderSeatsNextPlayerFirst(t *testing.T) {
	a := &Unit{ID: "a", OwnerID: 1, Count: 10}
	b := &Unit{ID: "b", OwnerID: 3, Count: 10}
	seats := Seats{Weapon: map[PlayerID]int{0: 1, 1: 1, 2: 1, 3: 1}}

	out, err := FromCombatants([]Combatant{b, a}, seats, WithDefender(0))
	require.NoError(t, err)
	assert.Equal(t, PlayerID(1), out.Winner)
	assert.Equal(t, map[Combatant]int{a: 6}, out.Remaining)
}

func TestFromCombatants_SingleOwnerUntouched(t *testing.T) {
	home := &Unit{ID: "home", OwnerID: 0, Count: 12, Category: Garrison}
	fleet := &Unit{ID: "fleet", OwnerID: 0, Count: 9}
	idle := &Unit{ID: "idle", OwnerID: 0, Count: 0}
	seats := Seats{Weapon: map[PlayerID]int{0: 3}}

	out, err := FromCombatants([]Combatant{fleet, idle, home}, seats)
	require.NoError(t, err)
	assert.Equal(t, PlayerID(0), out.Winner)
	assert.Equal(t, map[Combatant]int{home: 12, fleet: 9}, out.Remaining)
}

func TestFromCombatants_Errors(t *testing.T) {
	seats := Seats{Weapon: map[PlayerID]int{0: 1, 1: 1}}
	a := &Unit{ID: "a", OwnerID: 0, Count: 10}
	b := &Unit{ID: "b", OwnerID: 1, Count: 10}

	_, err := FromCombatants([]Combatant{a, b}, seats)
	assert.ErrorIs(t, err, ErrAmbiguousDefender)

	ga := &Unit{ID: "ga", OwnerID: 0, Count: 10, Category: Garrison}
	gb := &Unit{ID: "gb", OwnerID: 1, Count: 10, Category: Garrison}
	_, err = FromCombatants([]Combatant{ga, gb}, seats)
	assert.ErrorIs(t, err, ErrAmbiguousDefender)

	_, err = FromCombatants([]Combatant{a, b}, Seats{Weapon: map[PlayerID]int{0: 1}}, WithDefender(0))
	assert.ErrorIs(t, err, ErrInvalidWeaponStrength)

	_, err = FromCombatants([]Combatant{a, b}, Seats{}, WithDefender(0))
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	_, err = FromCombatants(nil, seats, WithDefender(0))
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestFromCombatants_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		players := 2 + rng.Intn(4)
		seats := Seats{Weapon: map[PlayerID]int{}, Count: players + rng.Intn(3)}
		var cs []Combatant
		total := 0
		for p := 0; p < players; p++ {
			seats.Weapon[PlayerID(p)] = 1 + rng.Intn(4)
			for k := rng.Intn(3); k >= 0; k-- {
				u := &Unit{OwnerID: PlayerID(p), Count: rng.Intn(60)}
				cs = append(cs, u)
				total += u.Count
			}
		}
		home := &Unit{OwnerID: 0, Count: rng.Intn(60), Category: Garrison}
		cs = append(cs, home)
		total += home.Count

		out, err := FromCombatants(cs, seats)
		require.NoError(t, err)

		left := 0
		for c, n := range out.Remaining {
			if n > 0 {
				assert.Equal(t, out.Winner, c.Owner(), "only the winner keeps ships")
			}
			assert.LessOrEqual(t, n, c.Ships())
			left += n
		}
		assert.LessOrEqual(t, left, total)
		_, ok := out.Remaining[home]
		assert.True(t, ok, "garrison always reported")
	}
}
