package combat

import "errors"

var (
	ErrAmbiguousDefender     = errors.New("could not determine defender")
	ErrInvalidWeaponStrength = errors.New("weapon strength must be at least 1")
	ErrInvalidShipCount      = errors.New("ship count must not be negative")
	ErrInvalidPlayerCount    = errors.New("player count must be at least 1")
	ErrNoParticipants        = errors.New("battle has no participants")
)
