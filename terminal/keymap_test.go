package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/infiniworld/apocalypse-bunny/input"
)

func TestTranslateKeySpecialKeys(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyEscape},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyReturn},
	}
	for _, c := range cases {
		if got := translateKey(c.ev); got != c.want {
			t.Errorf("translateKey(%v) = %v, want %v", c.ev.Key(), got, c.want)
		}
	}
}

func TestTranslateKeyRunesAreCaseInsensitive(t *testing.T) {
	cases := []struct {
		r    rune
		want input.Key
	}{
		{' ', input.KeySpace},
		{'w', input.KeyW}, {'W', input.KeyW},
		{'a', input.KeyA}, {'A', input.KeyA},
		{'s', input.KeyS}, {'S', input.KeyS},
		{'d', input.KeyD}, {'D', input.KeyD},
		{'p', input.KeyP}, {'P', input.KeyP},
		{'m', input.KeyM}, {'M', input.KeyM},
	}
	for _, c := range cases {
		ev := tcell.NewEventKey(tcell.KeyRune, c.r, tcell.ModNone)
		if got := translateKey(ev); got != c.want {
			t.Errorf("translateKey(rune %q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestTranslateKeyUnboundRuneIsUnknown(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	if got := translateKey(ev); got != input.KeyUnknown {
		t.Errorf("translateKey('z') = %v, want KeyUnknown", got)
	}
}
