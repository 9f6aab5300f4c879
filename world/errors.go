package world

import "errors"

// Sentinel errors, grounded on original_source/src/infiniworld/models/errors.py.
var (
	ErrAlreadyInArea = errors.New("world: entity already in an area")
	ErrNotInArea     = errors.New("world: entity not in any area")
	ErrNoSuchEntity  = errors.New("world: no such entity")
	ErrNoSuchArea    = errors.New("world: no such area")
)
