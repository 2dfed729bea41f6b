// Package page lays scene surfaces out on a vertically scrolling page and
// tracks which sections are on screen.
//
// A page is a stack of sections. Each section is at least one viewport tall
// and holds the surfaces placed in it: a full surface covers the viewport
// the section starts at, the others sit side by side, centred.
package page

import (
	"errors"
	"fmt"
	"image"
	"math"

	"synapse/geom"
)

// ErrUnknownSection is returned when placing into or scrolling to a section
// that was never added.
var ErrUnknownSection = errors.New("page: unknown section")

const (
	// Gap separates side-by-side surfaces.
	Gap = 40
	// Padding is the minimum space above and below a section's surfaces.
	Padding = 60

	// scrollEase is the fraction of the remaining distance covered per frame.
	scrollEase = 0.2
)

type Section struct {
	ID string
	// MinHeight is a lower bound in pixels on top of the viewport height.
	MinHeight int

	Top, Height int
}

// Placement is a surface's position on the page.
type Placement struct {
	Surface string
	Section string
	Full    bool

	// Rect is in page coordinates.
	Rect image.Rectangle
}

type Page struct {
	w, h int

	sections []Section
	places   []Placement

	offset, target float64
}

func New(w, h int) *Page {
	return &Page{w: w, h: h}
}

func (p *Page) Viewport() (w, h int) { return p.w, p.h }

// AddSection appends a section at the bottom of the page.
func (p *Page) AddSection(id string, minHeight int) {
	p.sections = append(p.sections, Section{ID: id, MinHeight: minHeight})
	p.layout()
}

// Place puts a w x h surface into section. A full surface ignores w and h
// and follows the viewport size.
func (p *Page) Place(surface, section string, w, h int, full bool) error {
	if p.section(section) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	p.places = append(p.places, Placement{
		Surface: surface,
		Section: section,
		Full:    full,
		Rect:    image.Rect(0, 0, w, h),
	})
	p.layout()
	return nil
}

// Resize changes the viewport and lays the page out again.
func (p *Page) Resize(w, h int) {
	p.w, p.h = w, h
	p.layout()
	p.target = p.clamp(p.target)
	p.offset = p.clamp(p.offset)
}

func (p *Page) Sections() []Section { return p.sections }

func (p *Page) Placements() []Placement { return p.places }

// Placement returns where surface sits on the page.
func (p *Page) Placement(surface string) (Placement, bool) {
	for _, pl := range p.places {
		if pl.Surface == surface {
			return pl, true
		}
	}
	return Placement{}, false
}

// Height returns the total page height.
func (p *Page) Height() int {
	if len(p.sections) == 0 {
		return 0
	}
	last := p.sections[len(p.sections)-1]
	return last.Top + last.Height
}

func (p *Page) section(id string) int {
	for i := range p.sections {
		if p.sections[i].ID == id {
			return i
		}
	}
	return -1
}

func (p *Page) layout() {
	top := 0
	for i := range p.sections {
		s := &p.sections[i]

		row, tallest := 0, 0
		for _, pl := range p.places {
			if pl.Section != s.ID || pl.Full {
				continue
			}
			if row > 0 {
				row += Gap
			}
			row += pl.Rect.Dx()
			tallest = max(tallest, pl.Rect.Dy())
		}

		s.Top = top
		s.Height = max(p.h, s.MinHeight, tallest+2*Padding)

		x := (p.w - row) / 2
		for j := range p.places {
			pl := &p.places[j]
			if pl.Section != s.ID {
				continue
			}
			if pl.Full {
				pl.Rect = image.Rect(0, top, p.w, top+p.h)
				continue
			}
			w, h := pl.Rect.Dx(), pl.Rect.Dy()
			y := top + (s.Height-h)/2
			pl.Rect = image.Rect(x, y, x+w, y+h)
			x += w + Gap
		}

		top += s.Height
	}
}

// Offset returns the current scroll position: the page y at the top of the
// viewport.
func (p *Page) Offset() float64 { return p.offset }

// ScrollBy moves the scroll target by dy pixels.
func (p *Page) ScrollBy(dy float64) { p.target = p.clamp(p.target + dy) }

// ScrollTo sets the scroll target to page y.
func (p *Page) ScrollTo(y float64) { p.target = p.clamp(y) }

// ScrollToSection sets the scroll target to the top of a section.
func (p *Page) ScrollToSection(id string) error {
	i := p.section(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	p.ScrollTo(float64(p.sections[i].Top))
	return nil
}

// Update eases the scroll position toward its target.
func (p *Page) Update() {
	p.offset = geom.Ease(p.offset, p.target, scrollEase)
	if geom.Converged(p.offset, p.target, 0.5) {
		p.offset = p.target
	}
}

func (p *Page) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, float64(p.Height()-p.h)))
}

// ViewRect returns rect translated into viewport coordinates.
func (p *Page) ViewRect(r image.Rectangle) image.Rectangle {
	return r.Sub(image.Pt(0, int(math.Round(p.offset))))
}

// Visible returns the fraction of a section's height inside the viewport.
func (p *Page) Visible(id string) float64 {
	i := p.section(id)
	if i < 0 || p.sections[i].Height == 0 {
		return 0
	}
	s := p.sections[i]
	top := math.Max(float64(s.Top), p.offset)
	bottom := math.Min(float64(s.Top+s.Height), p.offset+float64(p.h))
	if bottom <= top {
		return 0
	}
	return (bottom - top) / float64(s.Height)
}
