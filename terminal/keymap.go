package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/infiniworld/apocalypse-bunny/input"
)

// translateKey maps a tcell key event onto the terminal-agnostic input.Key
// vocabulary. Unrecognized keys map to input.KeyUnknown and are dropped by
// the input package's binding tables.
func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyEnter:
		return input.KeyReturn
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.KeySpace
		case 'a', 'A':
			return input.KeyA
		case 'd', 'D':
			return input.KeyD
		case 'm', 'M':
			return input.KeyM
		case 'p', 'P':
			return input.KeyP
		case 's', 'S':
			return input.KeyS
		case 'w', 'W':
			return input.KeyW
		}
	}
	return input.KeyUnknown
}
