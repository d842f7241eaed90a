package config

import (
	"errors"
	"fmt"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type Scenario struct {
	Name     string      `yaml:"name"`
	Seats    int         `yaml:"seats"`
	Defender *int        `yaml:"defender"`
	Players  []PlayerDef `yaml:"players"`
	Units    []UnitDef   `yaml:"units"`
	Note     string      `yaml:"note"`
}

type PlayerDef struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Weapons int    `yaml:"weapons"`
}

type UnitDef struct {
	ID       string `yaml:"id"`
	Owner    int    `yaml:"owner"`
	Ships    int    `yaml:"ships"`
	Garrison bool   `yaml:"garrison"`
}

// Validate checks references between units and players and fills in Seats
// when the file leaves it out. Weapon and ship ranges are left to the
// resolver.
func (s *Scenario) Validate() error {
	players := map[int]bool{}
	for _, p := range s.Players {
		if players[p.ID] {
			return fmt.Errorf("%w: duplicate player %d", ErrInvalidScenario, p.ID)
		}
		players[p.ID] = true
	}
	units := map[string]bool{}
	for i, u := range s.Units {
		if u.ID == "" {
			return fmt.Errorf("%w: unit %d has no id", ErrInvalidScenario, i)
		}
		if units[u.ID] {
			return fmt.Errorf("%w: duplicate unit %q", ErrInvalidScenario, u.ID)
		}
		units[u.ID] = true
		if !players[u.Owner] {
			return fmt.Errorf("%w: unit %q owned by unknown player %d", ErrInvalidScenario, u.ID, u.Owner)
		}
	}
	if s.Seats == 0 {
		s.Seats = len(s.Players)
	}
	if s.Seats < len(s.Players) {
		return fmt.Errorf("%w: %d seats for %d players", ErrInvalidScenario, s.Seats, len(s.Players))
	}
	for _, p := range s.Players {
		if p.ID < 0 || p.ID >= s.Seats {
			return fmt.Errorf("%w: player %d outside seats 0..%d", ErrInvalidScenario, p.ID, s.Seats-1)
		}
	}
	if s.Defender != nil && (*s.Defender < 0 || *s.Defender >= s.Seats) {
		return fmt.Errorf("%w: defender %d outside seats 0..%d", ErrInvalidScenario, *s.Defender, s.Seats-1)
	}
	return nil
}

// PlayerName returns the display name of id, falling back to its number.
func (s *Scenario) PlayerName(id int) string {
	for _, p := range s.Players {
		if p.ID == id && p.Name != "" {
			return p.Name
		}
	}
	return fmt.Sprintf("player %d", id)
}
