package input

import (
	"log/slog"
	"math"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
)

// PlayerController is the middle man between raw movement commands and the
// entity they steer: it knows which entity id the player currently
// controls, accumulates the four cardinal move-intent bits into one
// diagonal-normalized direction vector, and posts a MoveEntityRequest each
// time that intent changes.
type PlayerController struct {
	bus      *event.Bus
	log      *slog.Logger
	entityID uint32
	hasEntity bool

	goingEast, goingNorth, goingWest, goingSouth bool
}

func NewPlayerController(bus *event.Bus) *PlayerController {
	p := &PlayerController{bus: bus, log: slog.Default().With("module", "player")}
	event.Register(bus, p)
	return p
}

func (p *PlayerController) moveEntity() {
	if !p.hasEntity {
		return
	}
	var x, y float64
	if p.goingEast {
		x++
	}
	if p.goingWest {
		x--
	}
	if p.goingNorth {
		y++
	}
	if p.goingSouth {
		y--
	}
	if x != 0 && y != 0 {
		x /= math.Sqrt2
		y /= math.Sqrt2
	}
	p.bus.Post(event.MoveEntityRequest{EntityID: p.entityID, Force: geometry.New(x, y)})
}

func (p *PlayerController) OnStartMovingEastCommand(_ event.StartMovingEastCommand) {
	if !p.goingEast {
		p.goingEast = true
		p.moveEntity()
	}
}
func (p *PlayerController) OnStartMovingNorthCommand(_ event.StartMovingNorthCommand) {
	if !p.goingNorth {
		p.goingNorth = true
		p.moveEntity()
	}
}
func (p *PlayerController) OnStartMovingWestCommand(_ event.StartMovingWestCommand) {
	if !p.goingWest {
		p.goingWest = true
		p.moveEntity()
	}
}
func (p *PlayerController) OnStartMovingSouthCommand(_ event.StartMovingSouthCommand) {
	if !p.goingSouth {
		p.goingSouth = true
		p.moveEntity()
	}
}
func (p *PlayerController) OnStopMovingEastCommand(_ event.StopMovingEastCommand) {
	if p.goingEast {
		p.goingEast = false
		p.moveEntity()
	}
}
func (p *PlayerController) OnStopMovingNorthCommand(_ event.StopMovingNorthCommand) {
	if p.goingNorth {
		p.goingNorth = false
		p.moveEntity()
	}
}
func (p *PlayerController) OnStopMovingWestCommand(_ event.StopMovingWestCommand) {
	if p.goingWest {
		p.goingWest = false
		p.moveEntity()
	}
}
func (p *PlayerController) OnStopMovingSouthCommand(_ event.StopMovingSouthCommand) {
	if p.goingSouth {
		p.goingSouth = false
		p.moveEntity()
	}
}

func (p *PlayerController) OnFireCommand(_ event.FireCommand) {
	if p.hasEntity {
		p.bus.Post(event.AttackRequest{Attacker: p.entityID})
	}
}

func (p *PlayerController) OnControlEntityEvent(ev event.ControlEntityEvent) {
	p.entityID = ev.EntityID
	p.hasEntity = true
	p.log.Debug("controlling entity", "entity", ev.EntityID)
}

func (p *PlayerController) OnCreatureDied(ev event.CreatureDied) {
	if p.hasEntity && ev.EntityID == p.entityID {
		p.bus.Post(event.GameOver{})
	}
}
