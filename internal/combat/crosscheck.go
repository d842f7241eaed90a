package combat

import (
	"fmt"
	"math/rand"
)

type Mismatch struct {
	Defender  Side   `json:"defender"`
	Attacker  Side   `json:"attacker"`
	Simulated string `json:"simulated"`
	Formula   string `json:"formula"`
}

type CrossCheckReport struct {
	Runs       int        `json:"runs"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// CrossCheck samples n random duels between a garrison and a single fleet and
// compares the simulation with Simple. Ship counts are drawn from
// [0, maxShips] and weapon levels from [1, maxWeapons].
func CrossCheck(rng *rand.Rand, n, maxShips, maxWeapons int) CrossCheckReport {
	rep := CrossCheckReport{Runs: n}
	for i := 0; i < n; i++ {
		def := Side{Weapons: 1 + rng.Intn(maxWeapons), Ships: rng.Intn(maxShips + 1)}
		att := Side{Weapons: 1 + rng.Intn(maxWeapons), Ships: rng.Intn(maxShips + 1)}
		if m, ok := compareDuel(def, att); !ok {
			rep.Mismatches = append(rep.Mismatches, m)
		}
	}
	return rep
}

func compareDuel(def, att Side) (Mismatch, bool) {
	home := &Unit{ID: "home", OwnerID: 0, Count: def.Ships, Category: Garrison}
	raid := &Unit{ID: "raid", OwnerID: 1, Count: att.Ships, Category: FleetGroup}
	seats := Seats{Weapon: map[PlayerID]int{0: def.Weapons, 1: att.Weapons}}

	m := Mismatch{Defender: def, Attacker: att}
	out, err := FromCombatants([]Combatant{home, raid}, seats)
	if err != nil {
		m.Simulated = err.Error()
		return m, false
	}
	won, left, err := Simple(def, att)
	if err != nil {
		m.Formula = err.Error()
		return m, false
	}

	simWon := out.Winner == home.OwnerID
	simLeft := out.Remaining[home]
	if !simWon {
		simLeft = out.Remaining[raid]
	}
	m.Simulated = fmt.Sprintf("defender_won=%v remaining=%d", simWon, simLeft)
	m.Formula = fmt.Sprintf("defender_won=%v remaining=%d", won, left)
	return m, simWon == won && simLeft == left
}
