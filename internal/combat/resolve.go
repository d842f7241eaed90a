package combat

import (
	"fmt"
	"slices"
)

// slot is one live participant in the rotation ring.
type slot struct {
	index   int
	weapons int
	force   []int
	prev    *slot
	next    *slot
}

type rotation struct {
	head *slot
	size int
}

func (r *rotation) push(s *slot) {
	if r.head == nil {
		s.prev, s.next = s, s
		r.head = s
	} else {
		tail := r.head.prev
		s.prev, s.next = tail, r.head
		tail.next = s
		r.head.prev = s
	}
	r.size++
}

func (r *rotation) remove(s *slot) {
	s.prev.next = s.next
	s.next.prev = s.prev
	if r.head == s {
		r.head = s.next
	}
	r.size--
}

// Resolve runs a round-robin battle. Participants must be in turn order with
// the defender first; the defender gets the +1 home bonus. Each attacker deals
// its weapon strength to the next live participant, consuming groups front to
// back, and overflow from an elimination pierces on to whoever is next. It
// returns the winner's index in ps and the winner's surviving groups.
//
// The input slices are never modified.
func Resolve(ps []Participant, emit func(Event)) (int, []int, error) {
	if len(ps) == 0 {
		return 0, nil, ErrNoParticipants
	}
	for i, p := range ps {
		if p.Weapons < 1 {
			return 0, nil, fmt.Errorf("participant %d: %w (got %d)", i, ErrInvalidWeaponStrength, p.Weapons)
		}
		for _, n := range p.Force {
			if n < 0 {
				return 0, nil, fmt.Errorf("participant %d: %w (got %d)", i, ErrInvalidShipCount, n)
			}
		}
	}
	if emit == nil {
		emit = func(Event) {}
	}

	ring := &rotation{}
	for i, p := range ps {
		if len(p.Force) == 0 {
			emit(Event{Turn: 0, Type: EventEliminated, Payload: map[string]any{"participant": i}})
			continue
		}
		ws := p.Weapons
		if i == 0 {
			ws++
		}
		ring.push(&slot{index: i, weapons: ws, force: slices.Clone(p.Force)})
	}

	switch ring.size {
	case 0:
		emit(Event{Turn: 0, Type: EventVictory, Payload: map[string]any{"participant": 0}})
		return 0, []int{}, nil
	case 1:
		emit(Event{Turn: 0, Type: EventVictory, Payload: map[string]any{"participant": ring.head.index}})
		return ring.head.index, ring.head.force, nil
	}

	attacker := ring.head
	for turn := 1; ; turn++ {
		damage := attacker.weapons
		target := attacker.next
		emit(Event{Turn: turn, Type: EventAttack, Payload: map[string]any{
			"attacker": attacker.index, "target": target.index, "damage": damage,
		}})
		for damage > 0 {
			dealt := min(damage, target.force[0])
			target.force[0] -= dealt
			damage -= dealt
			if target.force[0] > 0 {
				continue
			}
			target.force = target.force[1:]
			emit(Event{Turn: turn, Type: EventGroupDestroyed, Payload: map[string]any{
				"participant": target.index, "groups_left": len(target.force),
			}})
			if len(target.force) > 0 {
				continue
			}
			ring.remove(target)
			emit(Event{Turn: turn, Type: EventEliminated, Payload: map[string]any{
				"participant": target.index, "by": attacker.index,
			}})
			if ring.size == 1 {
				emit(Event{Turn: turn, Type: EventVictory, Payload: map[string]any{"participant": attacker.index}})
				return attacker.index, attacker.force, nil
			}
			target = attacker.next
			if damage > 0 {
				emit(Event{Turn: turn, Type: EventPierce, Payload: map[string]any{
					"attacker": attacker.index, "target": target.index, "damage": damage,
				}})
			}
		}
		attacker = attacker.next
	}
}
