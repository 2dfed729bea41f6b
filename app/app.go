// Package app wires the page description to running scenes: it builds one
// surface and scene per configured scene, drives them from the kernel,
// applies keyboard interaction and composites the visible surfaces into the
// framebuffer every frame.
package app

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"synapse/canvas"
	"synapse/config"
	"synapse/hal"
	"synapse/kernel"
	"synapse/page"
	"synapse/scenes"
	"synapse/scenes/brainmesh"
)

type slot struct {
	kind    string
	surface string
	full    bool

	dst    *canvas.Raster
	scene  scenes.Scene
	task   *scenes.Task
	handle *kernel.Handle

	faulted bool
}

type watch struct {
	section string
	obs     *page.OnceObserver
}

type system struct {
	h   hal.HAL
	log hal.Logger
	cfg *config.Config

	k      *kernel.Kernel
	page   *page.Page
	events *kernel.Mailbox[Event]

	slots   []*slot
	watches []watch
	brain   *brainmesh.Scene

	bg     color.NRGBA
	paused bool
}

// New starts the built-in page.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, config.Default())
}

// NewWithConfig builds every scene cfg describes and returns the per-frame
// step. A scene that cannot be built is logged and skipped; the rest run.
func NewWithConfig(h hal.HAL, cfg *config.Config) func() error {
	return newSystem(h, cfg).step
}

func newSystem(h hal.HAL, cfg *config.Config) *system {
	if cfg == nil {
		cfg = config.Default()
	}
	bg, err := canvas.Hex(cfg.Background)
	if err != nil {
		bg = canvas.Black
	}

	fb := h.Display().Framebuffer()
	s := &system{
		h:      h,
		log:    h.Logger(),
		cfg:    cfg,
		k:      kernel.New(cfg.Hz),
		page:   page.New(fb.Width(), fb.Height()),
		events: kernel.NewMailbox[Event](64),
		bg:     bg,
	}
	s.installPanicHandler()

	for _, sec := range cfg.Sections {
		s.page.AddSection(sec.ID, sec.MinHeight)
	}
	for i, sc := range cfg.Scenes {
		if err := s.addScene(i, sc); err != nil {
			s.logf("app: skip scene %s: %v", sc.Kind, err)
		}
	}
	s.logf("app: %d of %d scenes running", len(s.slots), len(cfg.Scenes))
	return s
}

func (s *system) logf(format string, args ...any) {
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

func (s *system) addScene(i int, sc config.Scene) error {
	if err := s.cfg.SceneError(sc); err != nil {
		return err
	}
	for _, sl := range s.slots {
		if sl.surface == sc.Surface {
			return fmt.Errorf("surface %q already used by %s", sc.Surface, sl.kind)
		}
	}

	surf, _ := s.cfg.Surface(sc.Surface)
	w, h := surf.Width, surf.Height
	if surf.Fullscreen {
		w, h = s.page.Viewport()
	}
	if err := s.page.Place(surf.ID, surf.Section, w, h, surf.Fullscreen); err != nil {
		return err
	}

	sl := &slot{
		kind:    sc.Kind,
		surface: surf.ID,
		full:    surf.Fullscreen,
		dst:     canvas.NewRaster(w, h),
	}
	sl.scene = s.buildScene(sc, sceneSeed(s.cfg.Seed, i), w, h)
	sl.task = scenes.NewTask(sl.scene, sl.dst)
	sl.handle = s.k.Start(sc.Kind, sl.task)
	s.slots = append(s.slots, sl)
	s.logf("app: scene %s on %s (%dx%d)", sc.Kind, surf.ID, w, h)
	return nil
}

// sceneSeed gives every scene its own stream while keeping a zero seed
// time-based.
func sceneSeed(seed uint64, i int) uint64 {
	if seed == 0 {
		return 0
	}
	return seed + uint64(i)
}

// pause stops every scene task; resume starts them again where they left
// off. Faulted scenes stay stopped.
func (s *system) pause() {
	for _, sl := range s.slots {
		sl.handle.Stop()
	}
	s.paused = true
	s.logf("app: paused")
}

func (s *system) resume() {
	for _, sl := range s.slots {
		if !sl.faulted {
			sl.handle = s.k.Start(sl.kind, sl.task)
		}
	}
	s.paused = false
	s.logf("app: resumed")
}

func (s *system) step() error {
	s.pumpInput()

	quit := false
	s.events.Drain(func(ev Event) {
		if s.apply(ev) {
			quit = true
		}
	})
	if quit {
		s.logf("app: quit")
		return hal.ErrQuit
	}

	fb := s.h.Display().Framebuffer()
	s.syncViewport(fb.Width(), fb.Height())

	s.page.Update()
	for _, w := range s.watches {
		w.obs.Observe(s.page.Visible(w.section))
	}

	s.k.Tick()
	s.composite(fb)
	return fb.Present()
}

func (s *system) syncViewport(w, h int) {
	if vw, vh := s.page.Viewport(); vw == w && vh == h {
		return
	}
	s.page.Resize(w, h)
	for _, sl := range s.slots {
		if !sl.full {
			continue
		}
		sl.dst.Resize(w, h)
		if r, ok := sl.scene.(scenes.Resizer); ok {
			r.Resize(w, h)
		}
	}
}

func (s *system) composite(fb hal.Framebuffer) {
	fb.ClearRGB(s.bg.R, s.bg.G, s.bg.B)
	img := fb.Image()
	for _, sl := range s.slots {
		pl, ok := s.page.Placement(sl.surface)
		if !ok {
			continue
		}
		r := s.page.ViewRect(pl.Rect)
		if !r.Overlaps(img.Rect) {
			continue
		}
		draw.Draw(img, r, sl.dst.Image(), image.Point{}, draw.Over)
	}
}
