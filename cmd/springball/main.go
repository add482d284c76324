package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davidbecerra/Notes/internal/commands"
	"github.com/davidbecerra/Notes/internal/config"
	"github.com/davidbecerra/Notes/internal/debug"
	"github.com/davidbecerra/Notes/internal/demo"
	"github.com/davidbecerra/Notes/internal/env"
	"github.com/davidbecerra/Notes/internal/graphics"
	"github.com/davidbecerra/Notes/internal/input"
	"github.com/davidbecerra/Notes/internal/logger"
	"github.com/davidbecerra/Notes/internal/scene"
)

const program = "springball"

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
	}
	reg := commands.NewRegistry()
	register(reg, demo.Basic, "drop a ball on a V floor; A toggles spring attachment")
	register(reg, demo.Breakable, "basic plus arrow-key mass/stiffness and a spring that breaks")

	err := reg.Execute(os.Args[1:])
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
	var ue *commands.UsageError
	if errors.As(err, &ue) {
		reg.Usage(os.Stderr, program)
		os.Exit(2)
	}
	os.Exit(1)
}

func register(reg *commands.Registry, mode demo.Mode, summary string) {
	fs := flag.NewFlagSet(mode.String(), flag.ContinueOnError)
	cfgPath := fs.String("config", env.Lookup(env.ConfigVar, config.DefaultPath), "config file (.yaml, .toml or .json)")
	reg.Register(mode.String(), summary, fs, func() error {
		return run(mode, *cfgPath)
	})
}

func run(mode demo.Mode, cfgPath string) error {
	cfg, warnings, err := config.Open(cfgPath)
	if err != nil {
		return err
	}
	log := logger.New(env.Lookup(env.LogVar, cfg.LogPath))
	for _, w := range warnings {
		log.Logf("config: %v", w)
	}
	ctrl := demo.New(mode, cfg, log)

	height := float64(cfg.Window.Height)
	scn := scene.New(height, cfg.FontName)
	dbg := debug.New()
	dbg.SetShowFPS(cfg.Window.ShowFPS)
	dbg.SetShowMemAlloc(cfg.Window.ShowMemAlloc)

	update := func() {
		for _, ev := range input.Poll(height) {
			ctrl.Handle(ev)
		}
		ctrl.Frame(input.Mouse(height))
	}
	draw := func() {
		scn.Draw(ctrl.World.Space)
		scn.DrawStatus(ctrl.StatusLines())
		dbg.Draw()
	}
	graphics.Run(cfg.Window, update, draw, ctrl.Done)
	log.Logf("%s demo stopped", mode)
	return nil
}
