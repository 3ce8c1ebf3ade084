//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"strings"

	"cultivation/internal/core"
	"cultivation/internal/scenes/cultivation"
	"cultivation/internal/scenes/town"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/noppikinatta/bamenn"
)

// Game adapts a Director to the ebiten.Game interface. Scene switches made
// through the Director are mirrored into a bamenn sequence.
type Game struct {
	director *Director
	clock    *core.Clock
	log      core.Logger
	seq      *bamenn.Sequence
	views    map[string]*sceneView
	tickErrs repeatFilter

	width  int
	height int
}

// New constructs a Game around a Director that already has an active scene.
func New(d *Director, cfg *Config, log core.Logger) *Game {
	g := &Game{
		director: d,
		clock:    core.NewClock(cfg.TPS),
		log:      core.OrNop(log),
		views:    map[string]*sceneView{},
		width:    cfg.Width,
		height:   cfg.Height,
	}
	for _, name := range d.SceneNames() {
		scene, _ := d.Scene(name)
		g.views[name] = &sceneView{game: g, scene: scene}
	}
	g.seq = bamenn.NewSequence(g.views[d.Active().Name()])
	d.OnSwitch = func(s core.Scene) {
		g.seq.Switch(g.views[s.Name()])
	}
	return g
}

// Update handles the driver keys and advances the active scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.director.Close(); err != nil {
			g.log.Printf("close: %v", err)
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := g.director.Cycle(); err != nil {
			g.log.Printf("switch: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.director.StartCultivation(); err != nil {
			g.log.Printf("cultivate: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		hud := g.director.HUD()
		hud.SetVisible(!hud.Visible())
	}
	if t, ok := g.director.Active().(*town.Town); ok {
		g.updateTown(t)
	}
	return g.seq.Update()
}

func (g *Game) updateTown(t *town.Town) {
	npcs := t.NPCs()
	for i := 0; i < len(npcs) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			t.InteractWithNPC(npcs[i].ID)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		shops := t.Shops()
		if len(shops) == 0 {
			return
		}
		next := 0
		if cur, ok := t.CurrentShop(); ok {
			for i, s := range shops {
				if s.ID == cur.ID {
					next = (i + 1) % len(shops)
				}
			}
		}
		t.EnterShop(shops[next].ID)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		t.LeaveShop()
	}
}

// Draw renders the active scene and the HUD.
func (g *Game) Draw(screen *ebiten.Image) { g.seq.Draw(screen) }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.seq.Layout(outsideWidth, outsideHeight)
}

// sceneView is the ebiten.Game handed to the bamenn sequence for one scene.
type sceneView struct {
	game  *Game
	scene core.Scene
}

func (v *sceneView) Update() error {
	g := v.game
	if err := g.director.Tick(g.clock.Tick()); g.tickErrs.Changed(err) {
		g.log.Printf("tick: %v", err)
	}
	g.director.HUD().UpdateView()
	return nil
}

func (v *sceneView) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundFor(v.scene.Name()))
	ebitenutil.DebugPrintAt(screen, describe(v.scene), 12, 12)
	v.game.director.HUD().Render(screen)
}

func (v *sceneView) Layout(int, int) (int, int) {
	return v.game.width, v.game.height
}

func describe(scene core.Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [tab] switch  [h] hud  [q] quit\n\n", strings.ToUpper(scene.Name()))
	switch s := scene.(type) {
	case *town.Town:
		b.WriteString("[1-9] talk  [e] enter shop  [l] leave\n\nNPCs:\n")
		for i, n := range s.NPCs() {
			fmt.Fprintf(&b, "  %d. %s (%d)\n", i+1, n.Name, s.Interactions(n.ID))
		}
		b.WriteString("Shops:\n")
		for _, shop := range s.Shops() {
			fmt.Fprintf(&b, "  %s\n", shop.Name)
		}
		if shop, ok := s.CurrentShop(); ok {
			fmt.Fprintf(&b, "\nInside %s\n", shop.Name)
		}
	case *cultivation.Scene:
		fmt.Fprintf(&b, "[c] cultivate\n\nSession: %s\nAbsorbed: %.1f\n", s.Session(), s.Absorbed())
	}
	return b.String()
}

func backgroundFor(name string) color.Color {
	switch name {
	case cultivation.Name:
		return color.RGBA{R: 18, G: 26, B: 38, A: 255}
	case town.Name:
		return color.RGBA{R: 38, G: 30, B: 22, A: 255}
	default:
		return color.Black
	}
}
