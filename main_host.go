package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"

	"synapse/app"
	"synapse/config"
	"synapse/hal"
	"synapse/internal/buildinfo"
)

func main() {
	var (
		cfgPath  string
		terminal bool
		seed     uint64
		snapPath string
		version  bool
		hz       int
		width    int
		height   int
	)
	var headless hal.HeadlessConfig
	flag.StringVar(&cfgPath, "config", "", "Page description (TOML). Empty uses the built-in page.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&terminal, "terminal", false, "Render into the terminal.")
	flag.IntVar(&hz, "hz", 0, "Frame rate (0 = from config).")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless or terminal mode (0 = run forever).")
	flag.Uint64Var(&seed, "seed", 0, "Geometry seed (0 = from config).")
	flag.StringVar(&snapPath, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.IntVar(&width, "width", hal.DefaultWidth, "Viewport width in window and headless mode.")
	flag.IntVar(&height, "height", hal.DefaultHeight, "Viewport height in window and headless mode.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if hz > 0 {
		cfg.Hz = hz
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case headless.Enabled:
		headless.Hz = cfg.Hz
		headless.Width, headless.Height = width, height
		if snapPath != "" {
			headless.Snapshot = func(img *image.RGBA) error { return writePNG(snapPath, img) }
		}
		err = hal.RunHeadless(ctx, newApp, headless)
	case terminal:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: cfg.Hz, Ticks: headless.Ticks})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Width: width, Height: height, Hz: cfg.Hz})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
