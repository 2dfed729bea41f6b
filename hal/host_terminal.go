package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal renders the framebuffer into the terminal with half-block
// characters, two framebuffer rows per text row. Log lines are held back and
// printed once the terminal is restored.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	var logs bytes.Buffer
	err = runTerminal(ctx, screen, newApp, cfg, &logs)
	screen.Fini()
	os.Stderr.Write(logs.Bytes())
	return err
}

func runTerminal(ctx context.Context, screen tcell.Screen, newApp func(HAL) func() error, cfg TerminalConfig, logs *bytes.Buffer) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	cols, rows := screen.Size()
	h := newHostHAL(cols*cfg.Scale, rows*2*cfg.Scale, logs)
	step := newApp(h)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				h.kbd.emit(terminalKey(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			cols, rows = screen.Size()
			h.fb.resize(cols*cfg.Scale, rows*2*cfg.Scale)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			renderHalfBlocks(screen, h.fb, cfg.Scale)
			screen.Show()

			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

var terminalKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:        KeyTab,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	// Raw mode swallows the interrupt signal.
	tcell.KeyCtrlC: KeyEscape,
}

func terminalKey(ev *tcell.EventKey) KeyEvent {
	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Press: true, Rune: ev.Rune()}
	}
	return KeyEvent{Code: terminalKeys[ev.Key()], Press: true}
}

// renderHalfBlocks averages each scale x scale block into one half of a
// cell: the upper block becomes the foreground of '▀', the lower one the
// background.
func renderHalfBlocks(screen tcell.Screen, fb *hostFramebuffer, scale int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	img := fb.img
	cols := img.Rect.Dx() / scale
	rows := img.Rect.Dy() / (2 * scale)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x0, y0 := cx*scale, cy*2*scale
			top := blockAverage(img, x0, y0, scale)
			bottom := blockAverage(img, x0, y0+scale, scale)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func blockAverage(img *image.RGBA, x0, y0, n int) tcell.Color {
	var r, g, b int
	for y := y0; y < y0+n; y++ {
		off := img.PixOffset(x0, y)
		for x := 0; x < n; x++ {
			r += int(img.Pix[off])
			g += int(img.Pix[off+1])
			b += int(img.Pix[off+2])
			off += 4
		}
	}
	k := n * n
	return tcell.NewRGBColor(int32(r/k), int32(g/k), int32(b/k))
}
