package event

import "github.com/infiniworld/apocalypse-bunny/geometry"

// Events consumed by the core, posted by external collaborators (terminal
// input source, debug tooling). Grounded on original_source/src/infiniworld/events.py.

type KeyDown struct{ Key int }
type KeyUp struct{ Key int }
type ProcessInputs struct{}
type Quit struct{}

type StartGameCommand struct{}
type FireCommand struct{}
type StartMovingEastCommand struct{}
type StartMovingNorthCommand struct{}
type StartMovingWestCommand struct{}
type StartMovingSouthCommand struct{}
type StopMovingEastCommand struct{}
type StopMovingNorthCommand struct{}
type StopMovingWestCommand struct{}
type StopMovingSouthCommand struct{}
type TogglePausePhysicsCommand struct{}
type PausePhysicsRequest struct{ Paused bool }
type ScreenShotCommand struct{}

// Debug/admin commands supplemented from original_source (spec.md's
// distillation dropped these; see SPEC_FULL.md section C).
type CreateAreaCommand struct{}
type CreateEntityCommand struct{ Kind string }
type ViewNextAreaCommand struct{}
type ViewPreviousAreaCommand struct{}
type ControlNextEntityCommand struct{}
type MoveEntityToNextAreaCommand struct{}

// Events emitted by the core, consumed by external collaborators.

type RenderFrame struct{ Ratio float64 }
type RunPhysics struct{ Timestep float64 }
type PhysicsPaused struct{ Paused bool }

type EntityCreated struct{ EntityID uint32 }
type EntityDestroyed struct{ EntityID uint32 }
type EntityMoved struct {
	EntityID uint32
	Pos      geometry.Vector2
}
type EntityStopped struct{ EntityID uint32 }
type EntityEnteredArea struct{ Summary EntitySummary }
type EntityLeftArea struct {
	EntityID uint32
	AreaID   uint32
}
type AreaCreated struct{ AreaID uint32 }

type AreaContentRequest struct{ AreaID uint32 }
type AreaContentEvent struct {
	AreaID    uint32
	Entities  []EntitySummary
	TileMap   map[TileCoord]TileSummary
}
type EntitySummaryRequest struct{ EntityID uint32 }
type EntitySummaryEvent struct{ Summary EntitySummary }

type ControlEntityEvent struct{ EntityID uint32 }

type HealthRequest struct{ EntityID uint32 }
type Health struct {
	EntityID uint32
	Amount   int
}
type Carrot struct{ Amount int }
type CreatureDied struct{ EntityID uint32 }
type Attack struct {
	Attacker uint32
	Victim   uint32
}
type AttackRequest struct{ Attacker uint32 }
type ShockWave struct{ EntityID uint32 }
type StatusText struct{ Text string }
type GameOver struct{}

type DestroyEntityRequest struct{ EntityID uint32 }
type MoveEntityRequest struct {
	EntityID uint32
	Force    geometry.Vector2
}

// EntitySummary is the payload carried by EntityEnteredArea / AreaContentEvent.
type EntitySummary struct {
	EntityID uint32
	Name     string
	AreaID   uint32
	Pos      geometry.Vector2
}

// TileCoord is an integer tile coordinate, exported here so tile-map
// summaries can be attached to events without the event package depending
// on the tile package (the tile package depends on geometry only).
type TileCoord struct{ X, Y int }

// TileSummary is a tile's observable state: its material tag and height.
type TileSummary struct {
	Nature string
	Height int
}
