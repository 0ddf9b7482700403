package asteroids

import "errors"

var (
	// ErrInvalidSpawnConfiguration is returned when the asteroid field cannot
	// be populated: the safe zone covers the whole screen, the radius range is
	// empty, or rejection sampling ran out of attempts.
	ErrInvalidSpawnConfiguration = errors.New("asteroids: invalid spawn configuration")

	// ErrContractViolation marks a caller bug: firing on cooldown, splitting a
	// dead asteroid, or creating a body with a non-positive radius.
	ErrContractViolation = errors.New("asteroids: contract violation")
)
