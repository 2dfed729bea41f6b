package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultWidth, DefaultHeight
	}

	h := newHostHAL(cfg.Width, cfg.Height, os.Stdout)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return snapshot(h, cfg)
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return snapshot(h, cfg)
			}
		}
	}
}

func snapshot(h *hostHAL, cfg HeadlessConfig) error {
	if cfg.Snapshot == nil {
		return nil
	}
	return cfg.Snapshot(h.fb.snapshot(nil))
}
