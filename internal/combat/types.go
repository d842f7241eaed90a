package combat

// PlayerID identifies a player and doubles as its seat index in the galaxy.
type PlayerID int

type Kind int

const (
	FleetGroup Kind = iota
	Garrison
)

func (k Kind) String() string {
	if k == Garrison {
		return "garrison"
	}
	return "fleet"
}

// Combatant is anything that commits ships to a battle. Handles are compared
// by identity, so implementations are expected to be pointers.
type Combatant interface {
	Owner() PlayerID
	Ships() int
	Kind() Kind
}

// Roster answers the per-player questions the resolver needs.
type Roster interface {
	Weapons(p PlayerID) int
	PlayerCount() int
}

// Unit is a plain Combatant used by scenarios and tests.
type Unit struct {
	ID       string
	OwnerID  PlayerID
	Count    int
	Category Kind
}

func (u *Unit) Owner() PlayerID { return u.OwnerID }
func (u *Unit) Ships() int      { return u.Count }
func (u *Unit) Kind() Kind      { return u.Category }

// Seats is a map-backed Roster. Count is the number of seats in the galaxy;
// when zero the number of entries in Weapon is used.
type Seats struct {
	Weapon map[PlayerID]int
	Count  int
}

func (s Seats) Weapons(p PlayerID) int { return s.Weapon[p] }

func (s Seats) PlayerCount() int {
	if s.Count > 0 {
		return s.Count
	}
	return len(s.Weapon)
}

// Participant is one side of a battle as seen by Resolve.
type Participant struct {
	Weapons int
	Force   []int
}

// Outcome maps every surviving handle to its ship count. Garrisons are always
// present; destroyed fleet groups are absent.
type Outcome struct {
	Winner    PlayerID
	Remaining map[Combatant]int
}

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventEliminated     = "Eliminated"
	EventAttack         = "Attack"
	EventGroupDestroyed = "GroupDestroyed"
	EventPierce         = "Pierce"
	EventVictory        = "Victory"
)
