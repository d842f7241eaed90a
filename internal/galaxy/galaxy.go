// Package galaxy wraps a saved full universe report so its stars and fleets
// can be fed to the battle resolver. Reports are read from disk; fetching
// them from the game server is left to other tools.
package galaxy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"npcombat/internal/combat"
)

var ErrUnknownStar = errors.New("unknown star")

// Unowned is the puid of a star nobody holds.
const Unowned = -1

type Level struct {
	Level int `json:"level"`
}

type Tech struct {
	Weapons Level `json:"weapons"`
}

type Player struct {
	UID   int    `json:"uid"`
	Alias string `json:"alias"`
	Tech  Tech   `json:"tech"`
}

type Star struct {
	UID   int    `json:"uid"`
	Name  string `json:"n"`
	PUID  int    `json:"puid"`
	Count int    `json:"st"`
}

func (s *Star) Owner() combat.PlayerID { return combat.PlayerID(s.PUID) }
func (s *Star) Ships() int             { return s.Count }
func (s *Star) Kind() combat.Kind      { return combat.Garrison }

type Fleet struct {
	UID   int    `json:"uid"`
	Name  string `json:"n"`
	PUID  int    `json:"puid"`
	Count int    `json:"st"`
	// OUID is the star the fleet orbits, if any.
	OUID *int `json:"ouid,omitempty"`
}

func (f *Fleet) Owner() combat.PlayerID { return combat.PlayerID(f.PUID) }
func (f *Fleet) Ships() int             { return f.Count }
func (f *Fleet) Kind() combat.Kind      { return combat.FleetGroup }

// Galaxy is the subset of a universe report the resolver cares about. The
// report keys every collection by stringified uid.
type Galaxy struct {
	Players map[string]*Player `json:"players"`
	Stars   map[string]*Star   `json:"stars"`
	Fleets  map[string]*Fleet  `json:"fleets"`
}

func Load(path string) (*Galaxy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Galaxy, error) {
	var g Galaxy
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode universe report: %w", err)
	}
	return &g, nil
}

func (g *Galaxy) Weapons(p combat.PlayerID) int {
	if pl, ok := g.Players[strconv.Itoa(int(p))]; ok {
		return pl.Tech.Weapons.Level
	}
	return 0
}

func (g *Galaxy) PlayerCount() int { return len(g.Players) }

func (g *Galaxy) PlayerName(p combat.PlayerID) string {
	if pl, ok := g.Players[strconv.Itoa(int(p))]; ok && pl.Alias != "" {
		return pl.Alias
	}
	return fmt.Sprintf("player %d", p)
}

// Star returns the star with the given uid.
func (g *Galaxy) Star(uid int) (*Star, error) {
	s, ok := g.Stars[strconv.Itoa(uid)]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStar, uid)
	}
	return s, nil
}

// Orbiting lists the fleets parked at a star, ordered by fleet uid.
func (g *Galaxy) Orbiting(starUID int) []*Fleet {
	var out []*Fleet
	for _, f := range g.Fleets {
		if f.OUID != nil && *f.OUID == starUID {
			out = append(out, f)
		}
	}
	slices.SortFunc(out, func(a, b *Fleet) int { return a.UID - b.UID })
	return out
}

// Battle collects everything that would fight at a star: its garrison when
// owned, then every orbiting fleet.
func (g *Galaxy) Battle(starUID int) ([]combat.Combatant, error) {
	s, err := g.Star(starUID)
	if err != nil {
		return nil, err
	}
	var cs []combat.Combatant
	if s.PUID != Unowned {
		cs = append(cs, s)
	}
	for _, f := range g.Orbiting(starUID) {
		cs = append(cs, f)
	}
	return cs, nil
}
