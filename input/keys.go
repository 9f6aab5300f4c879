// Package input translates raw key codes into the command events the core
// simulation understands, and translates movement commands for one
// entity into the vector-valued MoveEntityRequest the physics layer wants.
//
// Grounded on original_source/src/infiniworld/controllers/{keyboard,player}.py
// and the four screen-specific bindings in
// original_source/src/bunny/controllers/keyboard.go (sic, .py).
package input

// Key is a terminal-agnostic key code. The terminal package is
// responsible for translating whatever its backend library (tcell) hands it
// into one of these before posting a KeyDown/KeyUp event; this package never
// imports tcell.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyReturn
	KeySpace
	KeyA
	KeyD
	KeyM
	KeyP
	KeyS
	KeyW
)
