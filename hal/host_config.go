package hal

import "image"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width, Height int
	Hz            int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	return c
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled       bool
	Width, Height int
	Hz            int
	// Ticks stops the run after that many steps. Zero runs until cancelled.
	Ticks uint64
	// Snapshot, if set, receives the final framebuffer when the run ends
	// without error.
	Snapshot func(img *image.RGBA) error
}

// TerminalConfig controls the tcell runner.
type TerminalConfig struct {
	Hz    int
	Ticks uint64
	// Scale is the number of framebuffer pixels per half-cell along each
	// axis; a terminal cell shows a Scale x 2*Scale block.
	Scale int
}
