package input

import "github.com/infiniworld/apocalypse-bunny/event"

// KeyboardController converts raw KeyDown/KeyUp events into whatever
// command event is bound to that key, per the active screen. It carries no
// behavior of its own beyond the table lookup, mirroring the donor's
// KeyboardController base class.
type KeyboardController struct {
	bus       *event.Bus
	keyDownTo map[Key]any
	keyUpTo   map[Key]any
}

func newKeyboardController(bus *event.Bus) *KeyboardController {
	return &KeyboardController{
		bus:       bus,
		keyDownTo: make(map[Key]any),
		keyUpTo:   make(map[Key]any),
	}
}

func (k *KeyboardController) OnKeyDown(ev event.KeyDown) {
	if cmd, ok := k.keyDownTo[Key(ev.Key)]; ok {
		k.bus.Post(cmd)
	}
}

func (k *KeyboardController) OnKeyUp(ev event.KeyUp) {
	if cmd, ok := k.keyUpTo[Key(ev.Key)]; ok {
		k.bus.Post(cmd)
	}
}

// NewStartScreenKeyboardController binds the keys active on the title
// screen: Escape quits, Enter/Space start the game, M screenshots.
func NewStartScreenKeyboardController(bus *event.Bus) *KeyboardController {
	k := newKeyboardController(bus)
	k.keyDownTo[KeyEscape] = event.Quit{}
	k.keyDownTo[KeyReturn] = event.StartGameCommand{}
	k.keyDownTo[KeySpace] = event.StartGameCommand{}
	k.keyDownTo[KeyM] = event.ScreenShotCommand{}
	event.Register(bus, k)
	return k
}

// NewGameScreenKeyboardController binds the keys active during play: WASD
// movement (press/release), Space fires, P pauses, Escape quits.
func NewGameScreenKeyboardController(bus *event.Bus) *KeyboardController {
	k := newKeyboardController(bus)
	k.keyDownTo[KeyEscape] = event.Quit{}
	k.keyDownTo[KeySpace] = event.FireCommand{}
	k.keyDownTo[KeyM] = event.ScreenShotCommand{}
	k.keyDownTo[KeyP] = event.TogglePausePhysicsCommand{}
	k.keyDownTo[KeyD] = event.StartMovingEastCommand{}
	k.keyDownTo[KeyW] = event.StartMovingNorthCommand{}
	k.keyDownTo[KeyA] = event.StartMovingWestCommand{}
	k.keyDownTo[KeyS] = event.StartMovingSouthCommand{}
	k.keyUpTo[KeyD] = event.StopMovingEastCommand{}
	k.keyUpTo[KeyW] = event.StopMovingNorthCommand{}
	k.keyUpTo[KeyA] = event.StopMovingWestCommand{}
	k.keyUpTo[KeyS] = event.StopMovingSouthCommand{}
	event.Register(bus, k)
	return k
}

// NewPauseScreenKeyboardController binds the keys active while paused:
// Space or P resumes, Escape quits, M screenshots.
func NewPauseScreenKeyboardController(bus *event.Bus) *KeyboardController {
	k := newKeyboardController(bus)
	k.keyDownTo[KeyEscape] = event.Quit{}
	k.keyDownTo[KeySpace] = event.TogglePausePhysicsCommand{}
	k.keyDownTo[KeyM] = event.ScreenShotCommand{}
	k.keyDownTo[KeyP] = event.TogglePausePhysicsCommand{}
	event.Register(bus, k)
	return k
}

// NewGameOverScreenKeyboardController binds the keys active on the game
// over screen: Escape quits, M screenshots.
func NewGameOverScreenKeyboardController(bus *event.Bus) *KeyboardController {
	k := newKeyboardController(bus)
	k.keyDownTo[KeyEscape] = event.Quit{}
	k.keyDownTo[KeyM] = event.ScreenShotCommand{}
	event.Register(bus, k)
	return k
}
