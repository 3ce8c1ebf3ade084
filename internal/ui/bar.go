package ui

import (
	"fmt"
	"math"

	"cultivation/internal/core"
	"cultivation/pkg/character"
)

// Percent returns floor(100 * power / capacity) clamped to [0, 100].
func Percent(cv *character.Cultivation) (int, error) {
	if err := cv.Validate(); err != nil {
		return 0, err
	}
	// Multiply first: 0.29*100 is 28.999... but 29*100/100 is exactly 29.
	p := math.Floor(100 * cv.SpiritualPower / cv.MaxSpiritualPower)
	switch {
	case p < 0:
		return 0, nil
	case p > 100:
		return 100, nil
	}
	return int(p), nil
}

// CultivationBar is the HUD widget showing a character's cultivation
// progress.
type CultivationBar struct {
	log     core.Logger
	visible bool

	progress int
	valid    bool
	failing  bool
	label    string

	view *barView
}

// NewCultivationBar returns a visible bar with no progress computed yet.
func NewCultivationBar(log core.Logger) *CultivationBar {
	return &CultivationBar{log: core.OrNop(log), visible: true}
}

// Update recomputes the progress from c. An unusable cultivation record is
// reported as character.ErrInvalidCultivationState and marks the progress
// invalid; the previous value is not kept.
func (b *CultivationBar) Update(c *character.Character) error {
	if b == nil {
		return nil
	}
	var cv *character.Cultivation
	if c != nil {
		cv = c.Cultivation
	}
	p, err := Percent(cv)
	if err != nil {
		b.invalidate(err)
		return fmt.Errorf("cultivation bar: %w", err)
	}
	if !b.valid || p != b.progress {
		b.log.Printf("hud: %s cultivation %d%%", c.Name, p)
	}
	b.progress = p
	b.valid = true
	b.failing = false
	b.label = fmt.Sprintf("%s  %d%%", c.Name, p)
	return nil
}

func (b *CultivationBar) invalidate(err error) {
	if !b.failing {
		b.log.Printf("hud: %v", err)
	}
	b.failing = true
	b.progress = 0
	b.valid = false
	b.label = "--"
}

// Progress returns the last computed percentage and whether it is valid.
func (b *CultivationBar) Progress() (int, bool) {
	if b == nil {
		return 0, false
	}
	return b.progress, b.valid
}

// Label returns the caption drawn next to the bar.
func (b *CultivationBar) Label() string {
	if b == nil || b.label == "" {
		return "--"
	}
	return b.label
}

// SetVisible shows or hides the bar.
func (b *CultivationBar) SetVisible(v bool) {
	if b != nil {
		b.visible = v
	}
}

// Visible reports whether the bar is drawn.
func (b *CultivationBar) Visible() bool { return b != nil && b.visible }
