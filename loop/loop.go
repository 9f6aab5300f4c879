package loop

import (
	"log/slog"
	"time"

	"github.com/infiniworld/apocalypse-bunny/event"
)

const (
	// InputPeriod is how often ProcessInputs is posted.
	InputPeriod = 1.0 / 20
	// PhysicsPeriod is the fixed physics timestep.
	PhysicsPeriod = 1.0 / 20
	// PhysicsRunsMax caps how many physics steps catch up in one loop
	// iteration, so a slow machine still renders instead of freezing.
	PhysicsRunsMax = 10
	// FramePeriod is the minimum period between rendered frames; 1/60 caps
	// at 60 FPS. Zero would mean unlimited FPS.
	FramePeriod = 1.0 / 60
)

// GameLoop drives the simulation: it posts ProcessInputs, RunPhysics and
// RenderFrame events at their respective fixed periods and pumps the bus
// after each, accumulating elapsed wall-clock time so physics can catch up
// deterministically after a slow iteration without ever using a variable
// timestep.
type GameLoop struct {
	bus   *event.Bus
	clock *Clock
	log   *slog.Logger

	running       bool
	pausedPhysics bool
}

func NewGameLoop(bus *event.Bus, clock *Clock) *GameLoop {
	l := &GameLoop{
		bus:   bus,
		clock: clock,
		log:   slog.Default().With("module", "loop"),
		// Physics starts paused so a start screen can be shown.
		pausedPhysics: true,
	}
	event.Register(bus, l)
	return l
}

// Run blocks until a Quit event sets running to false.
func (l *GameLoop) Run() {
	var inputAccu, physicsAccu, frameAccu float64
	var frameInterpAccu float64

	timeOld := l.clock.Now()
	l.running = true

	for l.running {
		timeNew := l.clock.Now()
		elapsed := timeNew.Sub(timeOld).Seconds()

		if elapsed < 0 {
			l.log.Warn("clock went backwards, skipping iteration", "from", timeOld, "to", timeNew)
			timeOld = timeNew
			continue
		}

		// Inputs.
		inputAccu += elapsed
		if inputAccu >= InputPeriod {
			inputAccu = mod(inputAccu, InputPeriod)
			l.bus.Post(event.ProcessInputs{})
			l.bus.Pump()
		}

		// Physics.
		if !l.pausedPhysics {
			physicsAccu += elapsed
			frameInterpAccu += elapsed
		}

		physicsRuns := 0
		for physicsAccu >= PhysicsPeriod && physicsRuns < PhysicsRunsMax {
			physicsAccu -= PhysicsPeriod
			frameInterpAccu = mod(frameInterpAccu, PhysicsPeriod)
			physicsRuns++
			l.bus.Post(event.RunPhysics{Timestep: PhysicsPeriod})
			l.bus.Pump()
		}
		snapToLastPhysics := physicsRuns >= PhysicsRunsMax

		// Render frame.
		frameAccu += elapsed
		if frameAccu >= FramePeriod {
			if FramePeriod == 0 {
				frameAccu = 0
			} else {
				frameAccu = mod(frameAccu, FramePeriod)
			}

			var ratio float64
			if snapToLastPhysics {
				ratio = 1
			} else {
				ratio = frameInterpAccu / PhysicsPeriod
				if ratio > 1 {
					ratio = 1
				}
			}
			l.bus.Post(event.RenderFrame{Ratio: ratio})
			l.bus.Pump()
		}

		// Sleep until the closest of the three next deadlines.
		closest := min3(InputPeriod-inputAccu, PhysicsPeriod-physicsAccu, FramePeriod-frameAccu)
		closest -= l.clock.Now().Sub(timeNew).Seconds()
		if closest >= 0 {
			time.Sleep(time.Duration(closest * float64(time.Second)))
		}

		timeOld = timeNew
	}
}

func mod(x, period float64) float64 {
	if period == 0 {
		return 0
	}
	return x - period*float64(int(x/period))
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func (l *GameLoop) pausePhysics(paused bool) {
	l.pausedPhysics = paused
	l.bus.Post(event.PhysicsPaused{Paused: paused})
}

func (l *GameLoop) OnTogglePausePhysicsCommand(_ event.TogglePausePhysicsCommand) {
	l.pausePhysics(!l.pausedPhysics)
}

func (l *GameLoop) OnPausePhysicsRequest(ev event.PausePhysicsRequest) {
	l.pausePhysics(ev.Paused)
}

func (l *GameLoop) OnQuit(_ event.Quit) {
	l.running = false
}
