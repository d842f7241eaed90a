package combat

import "fmt"

type options struct {
	defender    PlayerID
	hasDefender bool
	emit        func(Event)
}

type Option func(*options)

// WithDefender names the defending player instead of inferring it from the
// single garrison present.
func WithDefender(p PlayerID) Option {
	return func(o *options) {
		o.defender = p
		o.hasDefender = true
	}
}

// WithEvents streams the battle log to emit. Participant indices in payloads
// are replaced by owner ids.
func WithEvents(emit func(Event)) Option {
	return func(o *options) { o.emit = emit }
}

// FromCombatants runs a battle between any mix of garrisons and fleets and
// reports what is left of each handle.
func FromCombatants(cs []Combatant, roster Roster, opts ...Option) (Outcome, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	defender := o.defender
	if !o.hasDefender {
		var err error
		if defender, err = InferDefender(cs); err != nil {
			return Outcome{}, err
		}
	}

	forces := BuildForces(cs)
	byOwner := make(map[PlayerID]Force, len(forces))
	owners := make([]PlayerID, 0, len(forces))
	for _, f := range forces {
		byOwner[f.Owner] = f
		owners = append(owners, f.Owner)
	}
	order, err := TurnOrder(owners, defender, roster.PlayerCount())
	if err != nil {
		return Outcome{}, err
	}

	ps := make([]Participant, len(order))
	for i, p := range order {
		ps[i] = Participant{Weapons: roster.Weapons(p), Force: byOwner[p].Ships}
	}

	var emit func(Event)
	if o.emit != nil {
		emit = func(ev Event) { o.emit(withOwners(ev, order)) }
	}
	idx, residual, err := Resolve(ps, emit)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve battle: %w", err)
	}

	winner := order[idx]
	out := Outcome{Winner: winner, Remaining: map[Combatant]int{}}
	for _, c := range cs {
		if c.Kind() == Garrison {
			out.Remaining[c] = 0
		}
	}

	// only front groups are ever consumed, so survivors line up with the
	// tail of the winner's members
	members := byOwner[winner].Members
	for i, j := len(members)-1, len(residual)-1; j >= 0; i, j = i-1, j-1 {
		c := members[i]
		if residual[j] == 0 && c.Kind() != Garrison {
			continue
		}
		out.Remaining[c] = residual[j]
	}
	return out, nil
}

func withOwners(ev Event, order []PlayerID) Event {
	payload := make(map[string]any, len(ev.Payload))
	for k, v := range ev.Payload {
		switch k {
		case "participant", "attacker", "target", "by":
			if i, ok := v.(int); ok && i < len(order) {
				v = order[i]
			}
		}
		payload[k] = v
	}
	ev.Payload = payload
	return ev
}
