//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"cultivation/internal/app"
	"cultivation/internal/core"
	_ "cultivation/internal/scenes/cultivation"
	_ "cultivation/internal/scenes/town"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.LoadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var logger core.Logger = core.NewLogger(os.Stderr)
	if cfg.Quiet {
		logger = core.NewLogger(io.Discard)
	}

	director, err := app.Build(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(director, cfg, logger)

	ebiten.SetWindowTitle("cultivation: " + director.Active().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
