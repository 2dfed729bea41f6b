// Package brainmesh draws an interactive 3D brain made of named region
// meshes. Selecting a region eases the camera to that region's view and
// fills the info panel with its description; Reset returns to the idle
// auto-rotation.
package brainmesh

import (
	"errors"
	"fmt"
	"math"

	"synapse/canvas"
	"synapse/geom"
)

// ErrUnknownRegion is returned when selecting a region that does not exist.
var ErrUnknownRegion = errors.New("brainmesh: unknown region")

// Config holds the explorer camera and its selectable regions.
type Config struct {
	Focal float64
	// Ease is the per-frame fraction of the remaining distance to the target
	// rotation and zoom.
	Ease     float64
	IdleSpin float64
	Home     View

	// CullZ hides vertices nearer than this rotated depth.
	CullZ       float64
	PointRadius float64

	PanelTitle string
	PanelBody  string
	PanelInset float64

	Regions []RegionSpec
}

// DefaultConfig returns the explorer used by the default page.
func DefaultConfig() Config {
	return Config{
		Focal:       400,
		Ease:        0.08,
		IdleSpin:    0.004,
		Home:        View{Pitch: -0.25, Yaw: 0, Zoom: 1},
		CullZ:       -260,
		PointRadius: 1.6,
		PanelTitle:  "Explore the brain",
		PanelBody:   "Press 1-6 to focus a region, 0 to reset.",
		PanelInset:  16,
		Regions:     DefaultRegions(),
	}
}

// Scene is the brain explorer, driven by Select and Reset.
type Scene struct {
	cfg     Config
	regions []Region
	active  int

	cur    View
	target View

	w, h float64

	rotated []geom.Vec3
	proj    []geom.Point2D
}

// New generates every region surface for a w x h surface.
func New(cfg Config, w, h int) *Scene {
	s := &Scene{
		cfg:    cfg,
		active: -1,
		cur:    cfg.Home,
		target: cfg.Home,
		w:      float64(w),
		h:      float64(h),
	}
	for _, rs := range cfg.Regions {
		s.regions = append(s.regions, buildRegion(rs))
	}
	return s
}

func (s *Scene) Name() string { return "brainmesh" }

// Regions returns the regions in display order. Callers must not modify them.
func (s *Scene) Regions() []Region { return s.regions }

// Active returns the selected region, if any.
func (s *Scene) Active() (Region, bool) {
	if s.active < 0 {
		return Region{}, false
	}
	return s.regions[s.active], true
}

// View returns the current, eased camera.
func (s *Scene) View() View { return s.cur }

// Target returns the camera the scene is easing toward.
func (s *Scene) Target() View { return s.target }

// Panel returns the info panel text.
func (s *Scene) Panel() (title, body string) {
	if r, ok := s.Active(); ok {
		return r.Name, r.Description
	}
	return s.cfg.PanelTitle, s.cfg.PanelBody
}

// Select activates the region with the given id.
func (s *Scene) Select(id string) error {
	for i := range s.regions {
		if s.regions[i].ID == id {
			s.activate(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownRegion, id)
}

// SelectIndex activates the i-th region (0-based).
func (s *Scene) SelectIndex(i int) error {
	if i < 0 || i >= len(s.regions) {
		return fmt.Errorf("%w: index %d", ErrUnknownRegion, i)
	}
	s.activate(i)
	return nil
}

func (s *Scene) activate(i int) {
	if s.active >= 0 {
		s.regions[s.active].Active = false
	}
	s.active = i
	s.regions[i].Active = true

	v := s.regions[i].View
	// Yaw accumulates while idle; aim for the equivalent angle nearest the
	// current one instead of unwinding every turn.
	turns := math.Round((s.cur.Yaw - v.Yaw) / (2 * math.Pi))
	s.target = View{Pitch: v.Pitch, Yaw: v.Yaw + turns*2*math.Pi, Zoom: v.Zoom}
}

// Reset clears the selection. Pitch and zoom ease back to Config.Home, but
// yaw keeps its current angle so idle rotation resumes from the view the
// user was looking at instead of spinning back to Home.Yaw.
func (s *Scene) Reset() {
	if s.active >= 0 {
		s.regions[s.active].Active = false
	}
	s.active = -1
	s.target = View{Pitch: s.cfg.Home.Pitch, Yaw: s.cur.Yaw, Zoom: s.cfg.Home.Zoom}
}

func (s *Scene) Update() {
	if s.active < 0 {
		s.target.Yaw += s.cfg.IdleSpin
	}
	k := s.cfg.Ease
	s.cur.Pitch = geom.Ease(s.cur.Pitch, s.target.Pitch, k)
	s.cur.Yaw = geom.Ease(s.cur.Yaw, s.target.Yaw, k)
	s.cur.Zoom = geom.Ease(s.cur.Zoom, s.target.Zoom, k)
}

func (s *Scene) Draw(dst canvas.Surface) {
	dst.Clear()

	pr := geom.Projector{Focal: s.cfg.Focal, CX: s.w / 2, CY: s.h / 2, Zoom: s.cur.Zoom}
	for i := range s.regions {
		if i != s.active {
			s.drawRegion(dst, &s.regions[i], pr)
		}
	}
	if s.active >= 0 {
		s.drawRegion(dst, &s.regions[s.active], pr)
	}

	s.drawPanel(dst)
}

func (s *Scene) drawRegion(dst canvas.Surface, r *Region, pr geom.Projector) {
	base, width := 0.55, 1.0
	switch {
	case r.Active:
		base, width = 0.95, 1.5
	case s.active >= 0:
		base = 0.2
	}

	s.rotated = geom.RotateAll(s.rotated, r.Vertices, s.cur.Pitch, s.cur.Yaw)
	if cap(s.proj) < len(s.rotated) {
		s.proj = make([]geom.Point2D, len(s.rotated))
	}
	s.proj = s.proj[:len(s.rotated)]
	for i, p := range s.rotated {
		s.proj[i] = pr.Project(p)
	}

	visible := func(i int) bool { return s.proj[i].Z >= s.cfg.CullZ }
	edge := func(a, b int) {
		if !visible(a) || !visible(b) {
			return
		}
		pa, pb := s.proj[a], s.proj[b]
		alpha := base * 0.6 * depthFade((pa.Z+pb.Z)/2)
		dst.Line(pa.X, pa.Y, pb.X, pb.Y, width, canvas.Alpha(r.Color, alpha))
	}

	segs := r.Segments
	for i := 0; i < r.Rings; i++ {
		for j := 0; j < segs; j++ {
			v := i*segs + j
			edge(v, i*segs+(j+1)%segs)
			if i+1 < r.Rings {
				edge(v, v+segs)
			}
		}
	}

	for i, p := range s.proj {
		if !visible(i) {
			continue
		}
		c := canvas.Alpha(r.Color, base*depthFade(p.Z))
		dst.FillCircle(p.X, p.Y, s.cfg.PointRadius*p.Scale, canvas.Solid(c))
	}
}

func (s *Scene) drawPanel(dst canvas.Surface) {
	title, body := s.Panel()
	inset := s.cfg.PanelInset
	lh := dst.LineHeight()

	lines := canvas.Wrap(body, s.w-2*inset, dst.MeasureText)
	y := s.h - inset - float64(len(lines))*lh

	titleColor := canvas.Ink
	if r, ok := s.Active(); ok {
		titleColor = r.Color
	}
	dst.Text(inset, y-lh/2, title, titleColor)
	for _, line := range lines {
		y += lh
		dst.Text(inset, y, line, canvas.Muted)
	}
}

// depthFade maps rotated depth to an opacity factor: near vertices are
// bright, the far side of the brain recedes.
func depthFade(z float64) float64 {
	f := (150 - z) / 300
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return 0.3 + 0.7*f
}
