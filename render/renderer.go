// Package render draws one area's tiles and entities, plus a status HUD,
// into a tcell screen. It never touches world/area/entity directly: it
// learns what to draw entirely from AreaContentEvent snapshots requested
// over the bus, plus the Health, Carrot, StatusText, ControlEntityEvent and
// GameOver events for the HUD, the same way every other subsystem observes
// the simulation.
//
// Grounded on cmd/vi-fighter/main.go's renderer wiring and
// render/terminal_renderer.go's screen-cell drawing style (not reused
// directly: that file belongs to an unrelated custom ANSI backend, see
// DESIGN.md).
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/infiniworld/apocalypse-bunny/event"
)

// tileGlyph is the single character drawn for a solid (height>=1) tile;
// walkable tiles are drawn blank so entities read clearly against them.
const tileGlyph = '#'

// Renderer owns the current area's content snapshot and the HUD state,
// both kept up to date purely by bus events, and repaints the screen every
// RenderFrame.
type Renderer struct {
	screen tcell.Screen
	bus    *event.Bus

	areaID   uint32
	hasArea  bool
	snapshot event.AreaContentEvent
	hasSnap  bool
	originX  int
	originY  int
	showHUD  bool

	controlled    uint32
	hasControlled bool
	health        int
	carrots       int
	statusText    string
	gameOver      bool
}

// NewRenderer registers a renderer that draws into screen, following
// areaID's content. showHUD controls whether the status line is drawn.
func NewRenderer(bus *event.Bus, screen tcell.Screen, areaID uint32, showHUD bool) *Renderer {
	r := &Renderer{screen: screen, bus: bus, areaID: areaID, hasArea: true, showHUD: showHUD}
	event.Register(bus, r)
	return r
}

// FollowArea switches which area's content the renderer requests and draws.
// The renderer does not handle the debug area-navigation commands itself;
// it keeps following the same area until FollowArea is called.
func (r *Renderer) FollowArea(areaID uint32) {
	r.areaID = areaID
	r.hasSnap = false
}

func (r *Renderer) OnAreaContentEvent(ev event.AreaContentEvent) {
	if !r.hasArea || ev.AreaID != r.areaID {
		return
	}
	r.snapshot = ev
	r.hasSnap = true
}

func (r *Renderer) OnControlEntityEvent(ev event.ControlEntityEvent) {
	r.controlled = ev.EntityID
	r.hasControlled = true
}

// OnHealth tracks the health of the controlled entity only; zombie foxes
// and carrots post Health/CreatureDied too, but the HUD shows the player's
// own vitals.
func (r *Renderer) OnHealth(ev event.Health) {
	if r.hasControlled && ev.EntityID == r.controlled {
		r.health = ev.Amount
	}
}

func (r *Renderer) OnCarrot(ev event.Carrot) { r.carrots = ev.Amount }

func (r *Renderer) OnStatusText(ev event.StatusText) { r.statusText = ev.Text }

func (r *Renderer) OnGameOver(_ event.GameOver) { r.gameOver = true }

// OnRenderFrame requests a fresh snapshot of the followed area and repaints
// the screen with whatever snapshot is currently held (one frame stale,
// same tradeoff the donor's EntityEnteredArea/AreaContentEvent round trip
// always makes: never block drawing on a bus round trip).
func (r *Renderer) OnRenderFrame(_ event.RenderFrame) {
	if r.hasArea {
		r.bus.Post(event.AreaContentRequest{AreaID: r.areaID})
	}
	r.draw()
}

func (r *Renderer) draw() {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.centerOrigin(w, h)

	if r.hasSnap {
		r.drawTiles(w, h)
		r.drawEntities(w, h)
	}
	if r.showHUD {
		r.drawHUD(w)
	}
	r.screen.Show()
}

// centerOrigin pins world-space (0,0) to the middle of the screen, one row
// lower to leave row 0 for the HUD. The view is fixed: it does not follow
// the bunny or scroll.
func (r *Renderer) centerOrigin(w, h int) {
	r.originX = w / 2
	r.originY = h/2 + 1 // leave row 0 for the HUD
}

func (r *Renderer) drawTiles(w, h int) {
	style := tcell.StyleDefault
	for c, t := range r.snapshot.TileMap {
		x := r.originX + c.X
		y := r.originY + c.Y
		if x < 0 || x >= w || y < 1 || y >= h {
			continue
		}
		glyph := ' '
		if t.Height > 0 {
			glyph = tileGlyph
		}
		r.screen.SetContent(x, y, glyph, nil, style.Background(tileColor(t.Nature, t.Height)))
	}
}

func (r *Renderer) drawEntities(w, h int) {
	style := tcell.StyleDefault.Foreground(entityColor).Bold(true)
	for _, e := range r.snapshot.Entities {
		x := r.originX + int(e.Pos.X)
		y := r.originY + int(e.Pos.Y)
		if x < 0 || x >= w || y < 1 || y >= h {
			continue
		}
		r.screen.SetContent(x, y, glyphFor(e.Name), nil, style)
	}
}

func glyphFor(name string) rune {
	switch name {
	case "Bunny":
		return 'B'
	case "Zombie fox":
		return 'z'
	case "Carrot":
		return 'c'
	default:
		if len(name) > 0 {
			return rune(name[0])
		}
		return '?'
	}
}

func (r *Renderer) drawHUD(w int) {
	line := fmt.Sprintf(" HP:%d  Carrots:%d  %s", r.health, r.carrots, r.statusText)
	if r.gameOver {
		line = " GAME OVER"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, ch := range line {
		if i >= w {
			break
		}
		r.screen.SetContent(i, 0, ch, nil, style)
	}
}
