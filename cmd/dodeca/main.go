// Command dodeca renders a colored dodecahedron drifting, spinning and bouncing off the
// edges of the window inside a starfield. Drag it with the left mouse button; on release
// it gets a random push. F3 toggles the debug overlay.
//
// Usage
//
//	dodeca [flags]
//
// With -config, a YAML (.yaml, .yml) or TOML (.toml) file overrides the defaults,
// and flags override the file. With -headless no window is opened: the simulation
// ticks at -hz for -ticks frames and, with -snapshot, the last frame is written as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"dodeca/internal/config"
	"dodeca/internal/debug"
	"dodeca/internal/geometry"
	"dodeca/internal/graphics"
	"dodeca/internal/headless"
	"dodeca/internal/logger"
	"dodeca/internal/scene"
	"dodeca/internal/sim"
	"dodeca/internal/starfield"
)

func init() {
	// raylib calls must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	configPath string
	headless   bool
	hz         int
	ticks      uint64
	snapshot   string
	override   config.Config
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "Path to a YAML or TOML config file.")
	flag.BoolVar(&o.headless, "headless", false, "Run without a window.")
	flag.IntVar(&o.hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&o.ticks, "ticks", 600, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&o.snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.Uint64Var(&o.override.Seed, "seed", 0, "PRNG seed (0 = time based).")
	flag.Float64Var(&o.override.FovY, "fov", 0, "Vertical field of view in degrees.")
	flag.IntVar(&o.override.Width, "width", 0, "Window width in pixels.")
	flag.IntVar(&o.override.Height, "height", 0, "Window height in pixels.")
	flag.BoolVar(&o.override.ShowFPS, "fps", false, "Show the debug overlay.")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()
	if err := run(o); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Merge(o.override); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	log := logger.New(cfg.LogFile)
	world := sim.NewWorld(cfg, log)

	if o.headless {
		return runHeadless(cfg, world, o)
	}
	runWindow(cfg, world)
	return nil
}

func runWindow(cfg config.Config, w *sim.World) {
	scn := scene.New(cfg, w)
	dbg := debug.New()
	dbg.ShowFPS = cfg.ShowFPS
	dbg.ShowReadout = cfg.ShowFPS

	update := func() {
		dbg.Update()
		scn.Update(w)
		w.Tick()
	}
	draw := func() {
		snap := w.Snapshot()
		scn.Draw(snap)
		dbg.Draw(snap)
	}
	graphics.Run(graphics.WindowConfig{
		Title:     cfg.Title,
		Width:     cfg.Width,
		Height:    cfg.Height,
		TargetFPS: cfg.TargetFPS,
	}, w.Resize, update, draw)
}

func runHeadless(cfg config.Config, w *sim.World, o options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Same draw order as scene.New so a seed gives the same stars and colours.
	stars := starfield.New(w.Rand(), cfg.StarCount, cfg.StarSpread)
	mesh := geometry.BodyMesh(cfg.Radius, w.Rand())

	err := headless.Run(ctx, w, stars, headless.Config{
		Hz:       o.hz,
		Ticks:    o.ticks,
		Width:    cfg.Width,
		Height:   cfg.Height,
		StarSpin: cfg.StarSpin,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println(w.Snapshot())

	if o.snapshot != "" {
		r := &headless.Renderer{
			Mesh:     mesh,
			Stars:    stars,
			Lights:   geometry.DefaultLights(),
			Fog:      float32(cfg.FogDensity),
			Camera:   w.Camera,
			Near:     cfg.Near,
			Far:      cfg.Far,
			StarBlur: 0.8,
			Caption:  true,
		}
		if err := headless.Save(o.snapshot, r.Render(w.Snapshot(), cfg.Width, cfg.Height)); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}
	return err
}
