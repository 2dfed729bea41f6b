package canvas

import "github.com/chewxy/math32"

type vec2 struct {
	X, Y float32
}

// polygon is one closed contour. Contours of one fill share a winding
// accumulator, so a contour wound opposite to its enclosing one cuts a hole.
type polygon []vec2

func circleSegments(r float32) int {
	n := int(r * 1.5)
	if n < 12 {
		return 12
	}
	if n > 96 {
		return 96
	}
	return n
}

func circle(cx, cy, r float32, reverse bool) polygon {
	n := circleSegments(r)
	p := make(polygon, n)
	for i := range p {
		a := 2 * math32.Pi * float32(i) / float32(n)
		if reverse {
			a = -a
		}
		s, c := math32.Sincos(a)
		p[i] = vec2{cx + c*r, cy + s*r}
	}
	return p
}

func rect(x, y, w, h float32, reverse bool) polygon {
	p := polygon{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	if reverse {
		p.reverse()
	}
	return p
}

// roundRect traces the rectangle clockwise (in screen space) with quarter
// arcs of radius r in each corner.
func roundRect(x, y, w, h, r float32, reverse bool) polygon {
	r = math32.Min(r, math32.Min(w, h)/2)
	if r <= 0 {
		return rect(x, y, w, h, reverse)
	}
	steps := circleSegments(r)/4 + 2
	var p polygon
	corner := func(cx, cy, start float32) {
		for i := 0; i <= steps; i++ {
			a := start + (math32.Pi/2)*float32(i)/float32(steps)
			s, c := math32.Sincos(a)
			p = append(p, vec2{cx + c*r, cy + s*r})
		}
	}
	corner(x+w-r, y+r, -math32.Pi/2)
	corner(x+w-r, y+h-r, 0)
	corner(x+r, y+h-r, math32.Pi/2)
	corner(x+r, y+r, math32.Pi)
	if reverse {
		p.reverse()
	}
	return p
}

// segmentQuad returns the quad covering a stroke of width w from a to b.
// Its winding depends only on the stroke direction's normal, so quads of one
// polyline all wind the same way and their overlaps do not cancel.
func segmentQuad(a, b vec2, w float32) polygon {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	hw := w / 2
	nx, ny := -dy/l*hw, dx/l*hw
	return polygon{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

func (p polygon) reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func bounds(polys []polygon) (minX, minY, maxX, maxY float32, ok bool) {
	minX, minY = math32.MaxFloat32, math32.MaxFloat32
	maxX, maxY = -math32.MaxFloat32, -math32.MaxFloat32
	for _, p := range polys {
		for _, v := range p {
			ok = true
			minX = math32.Min(minX, v.X)
			minY = math32.Min(minY, v.Y)
			maxX = math32.Max(maxX, v.X)
			maxY = math32.Max(maxY, v.Y)
		}
	}
	return minX, minY, maxX, maxY, ok
}
