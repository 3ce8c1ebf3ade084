package app

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config represents the startup parameters for the application. Environment
// variables set the defaults; command-line flags override them.
type Config struct {
	Scene  string `env:"CULTIVATION_SCENE"  envDefault:"town"`
	Width  int    `env:"CULTIVATION_WIDTH"  envDefault:"640"`
	Height int    `env:"CULTIVATION_HEIGHT" envDefault:"360"`
	TPS    int    `env:"CULTIVATION_TPS"    envDefault:"60"`

	Rate    float64 `env:"CULTIVATION_RATE" envDefault:"5"`
	ShowHUD bool    `env:"CULTIVATION_HUD"  envDefault:"true"`
	Quiet   bool    `env:"CULTIVATION_QUIET"`

	Name           string  `env:"CULTIVATION_CHARACTER" envDefault:"Disciple"`
	SpiritualPower float64 `env:"CULTIVATION_POWER"     envDefault:"0"`
	MaxPower       float64 `env:"CULTIVATION_MAX_POWER" envDefault:"100"`
}

// LoadConfigFromEnv parses the process environment into a Config.
func LoadConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromMap parses the given variables instead of the process
// environment.
func LoadConfigFromMap(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to start in")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "spiritual power absorbed per second")
	fs.BoolVar(&c.ShowHUD, "hud", c.ShowHUD, "show the cultivation bar")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "discard log output")
	fs.StringVar(&c.Name, "name", c.Name, "character name")
	fs.Float64Var(&c.SpiritualPower, "power", c.SpiritualPower, "starting spiritual power")
	fs.Float64Var(&c.MaxPower, "max-power", c.MaxPower, "spiritual power capacity")
}

// SceneConfig returns the key/value configuration handed to a scene factory.
func (c *Config) SceneConfig(name string) map[string]string {
	switch name {
	case "cultivation":
		return map[string]string{"rate": strconv.FormatFloat(c.Rate, 'f', -1, 64)}
	default:
		return nil
	}
}
