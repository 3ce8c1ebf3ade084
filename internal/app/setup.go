package app

import (
	"fmt"

	"cultivation/internal/core"
	"cultivation/internal/ui"
	"cultivation/pkg/character"
)

// Build constructs the character, the HUD and every registered scene, and
// activates the configured starting scene.
func Build(cfg *Config, log core.Logger) (*Director, error) {
	c, err := character.New(cfg.Name, cfg.SpiritualPower, cfg.MaxPower)
	if err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}
	bar := ui.NewCultivationBar(log)
	bar.SetVisible(cfg.ShowHUD)

	d := NewDirector(log, c, bar)
	for _, name := range core.SceneNames() {
		d.Add(core.Scenes()[name](log, cfg.SceneConfig(name)))
	}
	if err := d.Switch(cfg.Scene); err != nil {
		return nil, err
	}
	return d, nil
}
