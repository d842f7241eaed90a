package combat

import "fmt"

// Side is one single-group combatant for Simple.
type Side struct {
	Weapons int
	Ships   int
}

// Simple resolves a two-party fight between single groups in constant time.
// The defender's home bonus is applied here, so callers pass raw weapon
// levels. It reports whether the defender won and how many ships the winner
// has left, and always agrees with Resolve on the same battle.
func Simple(def, att Side) (bool, int, error) {
	for _, s := range []Side{def, att} {
		if s.Weapons < 1 {
			return false, 0, fmt.Errorf("%w (got %d)", ErrInvalidWeaponStrength, s.Weapons)
		}
		if s.Ships < 0 {
			return false, 0, fmt.Errorf("%w (got %d)", ErrInvalidShipCount, s.Ships)
		}
	}
	defWS := def.Weapons + 1

	// turns each side needs to wipe out the other
	defTurns := hitsToClear(att.Ships, defWS)
	attTurns := hitsToClear(def.Ships, att.Weapons)

	// defender shoots first, so it wins ties
	if defTurns <= attTurns {
		return true, def.Ships - (defTurns-1)*att.Weapons, nil
	}
	return false, att.Ships - attTurns*defWS, nil
}

// hitsToClear is ceil(ships/ws), except that a 0-ship group still costs one
// hit: Resolve only drops it when it is shot at. Without the floor of 1,
// Simple(Side{5, 0}, Side{1, 3}) would report an attacker win while the
// simulated defender clears the raid on its first turn.
func hitsToClear(ships, ws int) int {
	return max(1, (ships+ws-1)/ws)
}
