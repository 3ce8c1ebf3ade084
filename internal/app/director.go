package app

import (
	"errors"
	"fmt"
	"time"

	"cultivation/internal/core"
	"cultivation/internal/ui"
	"cultivation/pkg/character"
)

// ErrUnknownScene is returned when switching to a scene that was not added.
var ErrUnknownScene = errors.New("unknown scene")

// Cultivator is implemented by scenes that can run a cultivation session.
type Cultivator interface {
	StartCultivation(c *character.Character) error
}

// Director owns the scenes, the character and the HUD, and drives one tick
// of the game loop: the active scene first, then the HUD.
type Director struct {
	log core.Logger

	scenes map[string]core.Scene
	order  []string
	active core.Scene

	character *character.Character
	bar       *ui.CultivationBar

	// OnSwitch, when set, is called after a scene has been created.
	OnSwitch func(core.Scene)
}

// NewDirector returns a Director with no active scene.
func NewDirector(log core.Logger, c *character.Character, bar *ui.CultivationBar) *Director {
	return &Director{
		log:       core.OrNop(log),
		scenes:    map[string]core.Scene{},
		character: c,
		bar:       bar,
	}
}

// Add registers a scene under its name. A later scene with the same name
// replaces the earlier one.
func (d *Director) Add(s core.Scene) {
	if s == nil {
		return
	}
	if _, ok := d.scenes[s.Name()]; !ok {
		d.order = append(d.order, s.Name())
	}
	d.scenes[s.Name()] = s
}

// SceneNames returns scene names in the order they were added.
func (d *Director) SceneNames() []string { return append([]string(nil), d.order...) }

// Scene returns the scene registered under name.
func (d *Director) Scene(name string) (core.Scene, bool) {
	s, ok := d.scenes[name]
	return s, ok
}

// Active returns the active scene, or nil.
func (d *Director) Active() core.Scene { return d.active }

// Character returns the character shown on the HUD.
func (d *Director) Character() *character.Character { return d.character }

// HUD returns the cultivation bar.
func (d *Director) HUD() *ui.CultivationBar { return d.bar }

// Switch exits the active scene and creates the named one. Switching to the
// active scene is a no-op. If the named scene cannot be created, the previous
// scene is created again and stays active.
func (d *Director) Switch(name string) error {
	next, ok := d.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if next == d.active {
		return nil
	}
	if next.Active() {
		return fmt.Errorf("switch to %s: %w", name, core.ErrAlreadyActive)
	}
	prev := d.active
	if prev != nil {
		if err := prev.Exit(); err != nil {
			d.log.Printf("director: %v", err)
		}
	}
	if err := next.Create(); err != nil {
		d.restore(prev)
		return fmt.Errorf("switch to %s: %w", name, err)
	}
	d.active = next
	if d.OnSwitch != nil {
		d.OnSwitch(next)
	}
	return nil
}

func (d *Director) restore(prev core.Scene) {
	if prev == nil || prev.Active() {
		return
	}
	if err := prev.Create(); err != nil {
		d.log.Printf("director: restore %s: %v", prev.Name(), err)
		d.active = nil
	}
}

// Cycle switches to the scene added after the active one, wrapping around.
func (d *Director) Cycle() error {
	if len(d.order) == 0 {
		return nil
	}
	idx := 0
	if d.active != nil {
		for i, name := range d.order {
			if name == d.active.Name() {
				idx = (i + 1) % len(d.order)
				break
			}
		}
	}
	return d.Switch(d.order[idx])
}

// StartCultivation starts a session for the director's character when the
// active scene supports it.
func (d *Director) StartCultivation() error {
	c, ok := d.active.(Cultivator)
	if !ok {
		d.log.Printf("director: active scene cannot cultivate")
		return nil
	}
	return c.StartCultivation(d.character)
}

// Tick advances the active scene by delta, then refreshes the HUD. HUD
// errors are logged by the widget and returned for the caller to inspect.
func (d *Director) Tick(delta time.Duration) error {
	if delta < 0 {
		delta = 0
	}
	if d.active != nil {
		d.active.Update(delta)
	}
	if d.bar == nil || !d.bar.Visible() {
		return nil
	}
	return d.bar.Update(d.character)
}

// Close exits the active scene.
func (d *Director) Close() error {
	if d.active == nil {
		return nil
	}
	err := d.active.Exit()
	d.active = nil
	return err
}
