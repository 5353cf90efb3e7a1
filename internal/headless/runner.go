// Package headless drives the simulation without a window and renders PNG snapshots in software.
package headless

import (
	"context"
	"fmt"
	"time"

	"dodeca/internal/sim"
	"dodeca/internal/starfield"
)

// Config controls the no-window runner.
type Config struct {
	Hz       int
	Ticks    uint64 // 0 = run until ctx is done
	Width    int
	Height   int
	StarSpin float64
}

// Run resizes w to the configured viewport once, then ticks w and spins stars (may be nil)
// at Hz until ctx is done or Ticks frames have run.
func Run(ctx context.Context, w *sim.World, stars *starfield.Field, cfg Config) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	w.Resize(cfg.Width, cfg.Height)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if stars != nil {
				stars.Spin(cfg.StarSpin)
			}
			w.Tick()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
