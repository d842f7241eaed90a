package combat

import (
	"encoding/json"
	"fmt"

	"npcombat/internal/config"
)

type ScenarioResult struct {
	Name        string       `json:"name"`
	Note        string       `json:"note,omitempty"`
	Winner      PlayerID     `json:"winner"`
	WinnerName  string       `json:"winner_name"`
	ShipsBefore int          `json:"ships_before"`
	ShipsAfter  int          `json:"ships_after"`
	Units       []UnitResult `json:"units"`
	Estimate    *Estimate    `json:"estimate,omitempty"`
	Events      []Event      `json:"events,omitempty"`
}

type UnitResult struct {
	ID       string   `json:"id"`
	Owner    PlayerID `json:"owner"`
	Kind     string   `json:"kind"`
	Before   int      `json:"before"`
	After    int      `json:"after"`
	Survived bool     `json:"survived"`
}

// Estimate is the closed-form answer for a two-group battle, reported next to
// the simulated one.
type Estimate struct {
	DefenderWon bool `json:"defender_won"`
	Remaining   int  `json:"remaining"`
}

// RunScenario resolves a loaded scenario. When record is set the full event
// log is kept in the result.
func RunScenario(sc *config.Scenario, record bool) (ScenarioResult, error) {
	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}

	seats := Seats{Weapon: map[PlayerID]int{}, Count: sc.Seats}
	for _, p := range sc.Players {
		seats.Weapon[PlayerID(p.ID)] = p.Weapons
	}

	units := make([]*Unit, len(sc.Units))
	cs := make([]Combatant, len(sc.Units))
	before := 0
	for i, u := range sc.Units {
		kind := FleetGroup
		if u.Garrison {
			kind = Garrison
		}
		units[i] = &Unit{ID: u.ID, OwnerID: PlayerID(u.Owner), Count: u.Ships, Category: kind}
		cs[i] = units[i]
		before += u.Ships
	}

	opts := []Option{WithEvents(emit)}
	if sc.Defender != nil {
		opts = append(opts, WithDefender(PlayerID(*sc.Defender)))
	}
	out, err := FromCombatants(cs, seats, opts...)
	if err != nil {
		return ScenarioResult{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	res := ScenarioResult{
		Name:        sc.Name,
		Note:        sc.Note,
		Winner:      out.Winner,
		WinnerName:  sc.PlayerName(int(out.Winner)),
		ShipsBefore: before,
	}
	for _, u := range units {
		after := out.Remaining[u]
		res.Units = append(res.Units, UnitResult{
			ID: u.ID, Owner: u.OwnerID, Kind: u.Category.String(),
			Before: u.Count, After: after, Survived: after > 0,
		})
		res.ShipsAfter += after
	}
	res.Estimate = estimate(cs, seats, sc.Defender)
	if record {
		res.Events = events
	}
	return res, nil
}

// estimate applies Simple when exactly two owners field one group each.
func estimate(cs []Combatant, roster Roster, defender *int) *Estimate {
	if len(cs) != 2 || cs[0].Owner() == cs[1].Owner() {
		return nil
	}
	def, att := cs[0], cs[1]
	switch {
	case defender != nil:
		if PlayerID(*defender) == att.Owner() {
			def, att = att, def
		} else if PlayerID(*defender) != def.Owner() {
			return nil
		}
	case att.Kind() == Garrison && def.Kind() != Garrison:
		def, att = att, def
	case def.Kind() != Garrison:
		return nil
	}
	won, left, err := Simple(
		Side{Weapons: roster.Weapons(def.Owner()), Ships: def.Ships()},
		Side{Weapons: roster.Weapons(att.Owner()), Ships: att.Ships()},
	)
	if err != nil {
		return nil
	}
	return &Estimate{DefenderWon: won, Remaining: left}
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
