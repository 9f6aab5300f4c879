package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// natureBaseColor is the flat color each tile nature is drawn in before
// height shading is applied.
var natureBaseColor = map[string]colorful.Color{
	"stone":         {R: 0.55, G: 0.55, B: 0.58},
	"dirt":          {R: 0.45, G: 0.30, B: 0.15},
	"grass":         {R: 0.20, G: 0.55, B: 0.20},
	"sand":          {R: 0.85, G: 0.75, B: 0.45},
	"shallow water": {R: 0.25, G: 0.55, B: 0.85},
	"deep water":    {R: 0.05, G: 0.15, B: 0.55},
	"rubber":        {R: 0.10, G: 0.10, B: 0.10},
	"flesh":         {R: 0.85, G: 0.55, B: 0.50},
}

// tileColor blends a nature's base color toward black as height rises,
// giving solid (height>=1) tiles a visibly raised look without a second
// color table per height level.
func tileColor(nature string, height int) tcell.Color {
	base, ok := natureBaseColor[nature]
	if !ok {
		base = colorful.Color{R: 1, G: 0, B: 1} // unmapped nature: loud magenta
	}
	shaded := base
	if height > 0 {
		shaded = base.BlendRgb(colorful.Color{R: 0, G: 0, B: 0}, 0.35)
	}
	r, g, b := shaded.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var entityColor = tcell.ColorYellow
var shockwaveColor = tcell.ColorFuchsia
