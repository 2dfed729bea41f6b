package app

import (
	"errors"
	"image"
	"strings"
	"sync"
	"testing"

	"synapse/canvas"
	"synapse/config"
	"synapse/hal"
	"synapse/scenes/markers"
)

type memLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *memLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *memLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *memLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type memFramebuffer struct {
	img      *image.RGBA
	presents int
}

func (f *memFramebuffer) Width() int              { return f.img.Rect.Dx() }
func (f *memFramebuffer) Height() int             { return f.img.Rect.Dy() }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *memFramebuffer) StrideBytes() int        { return f.img.Stride }
func (f *memFramebuffer) Buffer() []byte          { return f.img.Pix }
func (f *memFramebuffer) Image() *image.RGBA      { return f.img }
func (f *memFramebuffer) Present() error          { f.presents++; return nil }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	for i := 0; i < len(f.img.Pix); i += 4 {
		f.img.Pix[i], f.img.Pix[i+1], f.img.Pix[i+2], f.img.Pix[i+3] = r, g, b, 0xFF
	}
}

type memKeyboard struct{ ch chan hal.KeyEvent }

func (k *memKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeHAL struct {
	log *memLogger
	fb  *memFramebuffer
	kbd *memKeyboard
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		log: &memLogger{},
		fb:  &memFramebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))},
		kbd: &memKeyboard{ch: make(chan hal.KeyEvent, 16)},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h.kbd }

func (h *fakeHAL) press(r rune)          { h.kbd.ch <- hal.KeyEvent{Press: true, Rune: r} }
func (h *fakeHAL) pressKey(c hal.KeyCode) { h.kbd.ch <- hal.KeyEvent{Code: c, Press: true} }

func newTestSystem(t *testing.T, cfg *config.Config) (*system, *fakeHAL) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
		cfg.Seed = 42
	}
	h := newFakeHAL(800, 600)
	return newSystem(h, cfg), h
}

func steps(t *testing.T, s *system, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.step(); err != nil {
			t.Fatalf("step() = %v", err)
		}
	}
}

func (s *system) slot(kind string) *slot {
	for _, sl := range s.slots {
		if sl.kind == kind {
			return sl
		}
	}
	return nil
}

func TestDefaultPageStartsEveryScene(t *testing.T) {
	s, h := newTestSystem(t, nil)
	if len(s.slots) != len(config.Kinds) {
		t.Fatalf("len(slots) = %d, want %d", len(s.slots), len(config.Kinds))
	}
	if !h.log.contains("7 of 7 scenes running") {
		t.Fatalf("log = %q", h.log.lines)
	}

	steps(t, s, 3)
	for _, sl := range s.slots {
		if sl.task.Frames() != 3 {
			t.Fatalf("%s: Frames() = %d, want 3", sl.kind, sl.task.Frames())
		}
	}
	if h.fb.presents != 3 {
		t.Fatalf("presents = %d, want 3", h.fb.presents)
	}
}

func TestMissingElementSkipsOnlyThatScene(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	for i := range cfg.Scenes {
		if cfg.Scenes[i].Kind == config.KindChip {
			cfg.Scenes[i].Surface = "applicationsCanvasTypo"
		}
		if cfg.Scenes[i].Kind == config.KindMarkers {
			cfg.Scenes[i].Trigger = "nowhere"
		}
	}
	s, h := newTestSystem(t, cfg)

	if s.slot(config.KindChip) != nil || s.slot(config.KindMarkers) != nil {
		t.Fatalf("broken scenes were started")
	}
	if len(s.slots) != len(config.Kinds)-2 {
		t.Fatalf("len(slots) = %d, want %d", len(s.slots), len(config.Kinds)-2)
	}
	if !h.log.contains(`skip scene chip: config: scene chip: surface "applicationsCanvasTypo" not found`) {
		t.Fatalf("log = %q", h.log.lines)
	}
	if !h.log.contains("skip scene markers") {
		t.Fatalf("log = %q", h.log.lines)
	}
	steps(t, s, 2)
}

func TestRegionKeys(t *testing.T) {
	s, h := newTestSystem(t, nil)

	h.press('3')
	steps(t, s, 1)
	r, ok := s.brain.Active()
	if !ok || r.ID != s.brain.Regions()[2].ID {
		t.Fatalf("Active() = %q, %v, want third region", r.ID, ok)
	}

	h.press('9')
	steps(t, s, 1)
	if r2, _ := s.brain.Active(); r2.ID != r.ID {
		t.Fatalf("out of range key changed the region to %q", r2.ID)
	}
	if !h.log.contains("unknown region") {
		t.Fatalf("log = %q", h.log.lines)
	}

	h.press('0')
	steps(t, s, 1)
	if _, ok := s.brain.Active(); ok {
		t.Fatalf("Active() ok = true after reset")
	}
}

func TestPauseResume(t *testing.T) {
	s, h := newTestSystem(t, nil)
	steps(t, s, 2)

	h.press('p')
	steps(t, s, 5)
	globe := s.slot(config.KindGlobe)
	if globe.task.Frames() != 2 {
		t.Fatalf("Frames() = %d while paused, want 2", globe.task.Frames())
	}
	if len(s.k.Live()) != 0 {
		t.Fatalf("len(Live()) = %d while paused, want 0", len(s.k.Live()))
	}

	h.press('p')
	steps(t, s, 1)
	if globe.task.Frames() != 3 {
		t.Fatalf("Frames() = %d after resume, want 3", globe.task.Frames())
	}
	if !h.log.contains("app: paused") || !h.log.contains("app: resumed") {
		t.Fatalf("log = %q", h.log.lines)
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []hal.KeyEvent{{Rune: 'q', Press: true}, {Code: hal.KeyEscape, Press: true}} {
		s, h := newTestSystem(t, nil)
		h.kbd.ch <- key
		if err := s.step(); !errors.Is(err, hal.ErrQuit) {
			t.Fatalf("step() = %v, want ErrQuit for %+v", err, key)
		}
	}
}

func TestPostedEvents(t *testing.T) {
	s, _ := newTestSystem(t, nil)

	done := make(chan bool)
	go func() { done <- s.Post(Event{Kind: EventSelect, Index: 1}) }()
	if !<-done {
		t.Fatalf("Post() = false on an empty queue")
	}
	steps(t, s, 1)
	r, ok := s.brain.Active()
	if !ok || r.ID != s.brain.Regions()[1].ID {
		t.Fatalf("Active() = %q, %v, want second region", r.ID, ok)
	}

	for i := 0; i < 64; i++ {
		if !s.Post(Event{Kind: EventScroll, Delta: 1}) {
			t.Fatalf("Post() #%d = false, want true below capacity", i)
		}
	}
	if s.Post(Event{Kind: EventQuit}) {
		t.Fatalf("Post() = true on a full queue")
	}
	steps(t, s, 1)

	s.Post(Event{Kind: EventQuit})
	if err := s.step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("step() = %v, want ErrQuit", err)
	}
}

func TestScrollTriggersMarkersOnce(t *testing.T) {
	s, h := newTestSystem(t, nil)
	m := s.slot(config.KindMarkers).scene.(*markers.Scene)

	steps(t, s, 10)
	if m.Triggered() {
		t.Fatalf("markers triggered while technology is off screen")
	}

	h.pressKey(hal.KeyPageDown)
	steps(t, s, 60)
	if !m.Triggered() {
		t.Fatalf("markers not triggered with technology %.2f visible", s.page.Visible("technology"))
	}
	revealed := m.Revealed()

	// Scroll away and back: the reveal is not restarted.
	h.pressKey(hal.KeyHome)
	steps(t, s, 60)
	h.pressKey(hal.KeyPageDown)
	steps(t, s, 60)
	if m.Revealed() < revealed {
		t.Fatalf("Revealed() = %d, want >= %d", m.Revealed(), revealed)
	}
	if n := strings.Count(strings.Join(h.log.lines, "\n"), "markers revealed"); n != 1 {
		t.Fatalf("markers revealed %d times, want 1", n)
	}
}

func TestCompositeDrawsVisibleSurfaces(t *testing.T) {
	s, h := newTestSystem(t, nil)
	sl := s.slot(config.KindLayers)
	steps(t, s, 1)

	// Paint the layers surface solid red; scroll it into view.
	sl.handle.Stop()
	sl.dst.FillRect(0, 0, 600, 500, canvas.Solid(canvas.MustHex("#ff0000")))
	s.page.ScrollTo(600)
	for i := 0; i < 100; i++ {
		s.page.Update()
	}
	s.composite(h.fb)

	pl, _ := s.page.Placement("layerCanvas")
	r := s.page.ViewRect(pl.Rect).Intersect(h.fb.img.Rect)
	if r.Empty() {
		t.Fatalf("layerCanvas not on screen: %v", s.page.ViewRect(pl.Rect))
	}
	if c := h.fb.img.RGBAAt(r.Min.X+1, r.Min.Y+1); c.R != 255 || c.G != 0 {
		t.Fatalf("pixel = %v, want red", c)
	}
}

func TestResizeFollowsViewport(t *testing.T) {
	s, h := newTestSystem(t, nil)
	steps(t, s, 1)

	h.fb.img = image.NewRGBA(image.Rect(0, 0, 1000, 700))
	steps(t, s, 1)

	hero := s.slot(config.KindNetwork)
	if w, hh := hero.dst.Size(); w != 1000 || hh != 700 {
		t.Fatalf("hero surface = %dx%d, want 1000x700", w, hh)
	}
	if w, hh := s.slot(config.KindGlobe).dst.Size(); w != 600 || hh != 500 {
		t.Fatalf("globe surface = %dx%d, want 600x500", w, hh)
	}
}

type panicScene struct{}

func (panicScene) Name() string            { return "broken" }
func (panicScene) Update()                 { panic("bad geometry") }
func (panicScene) Draw(dst canvas.Surface) {}

func TestPanickingSceneIsIsolated(t *testing.T) {
	s, h := newTestSystem(t, nil)
	chip := s.slot(config.KindChip)
	chip.task.Scene = panicScene{}

	steps(t, s, 2)
	if !chip.faulted || chip.handle.Alive() {
		t.Fatalf("faulted=%v alive=%v, want stopped fault", chip.faulted, chip.handle.Alive())
	}
	if !h.log.contains("app: panic in scene chip") || !h.log.contains("bad geometry") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if f := s.slot(config.KindGlobe).task.Frames(); f != 2 {
		t.Fatalf("globe Frames() = %d, want 2", f)
	}

	// Resume after a pause does not restart the faulted scene.
	h.press('p')
	steps(t, s, 1)
	h.press('p')
	steps(t, s, 1)
	if chip.handle.Alive() {
		t.Fatalf("faulted scene restarted on resume")
	}
}

func TestTakeRunes(t *testing.T) {
	p, rest := takeRunes("héllo wörld", 5)
	if p != "héllo" || rest != " wörld" {
		t.Fatalf("takeRunes() = %q, %q", p, rest)
	}
	if p, rest := takeRunes("ab", 5); p != "ab" || rest != "" {
		t.Fatalf("takeRunes() = %q, %q", p, rest)
	}
}
