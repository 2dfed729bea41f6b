package geom

import "math"

// Rotate rotates p about the X axis by pitch and then about the Y axis by yaw,
// using right-handed rotation matrices.
func Rotate(p Vec3, pitch, yaw float64) Vec3 {
	sx, cx := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)

	// X axis.
	y := p.Y*cx - p.Z*sx
	z := p.Y*sx + p.Z*cx

	// Y axis.
	x := p.X*cy + z*sy
	z = -p.X*sy + z*cy

	return Vec3{X: x, Y: y, Z: z}
}

// RotateAll rotates every point of src into dst and returns dst[:len(src)].
// dst is grown only when it is too small, so per-frame callers can reuse it.
func RotateAll(dst, src []Vec3, pitch, yaw float64) []Vec3 {
	if cap(dst) < len(src) {
		dst = make([]Vec3, len(src))
	}
	dst = dst[:len(src)]
	sx, cx := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)
	for i, p := range src {
		y := p.Y*cx - p.Z*sx
		z := p.Y*sx + p.Z*cx
		dst[i] = Vec3{X: p.X*cy + z*sy, Y: y, Z: -p.X*sy + z*cy}
	}
	return dst
}

// ScaleAt returns the perspective factor focal/(focal+z).
func ScaleAt(focal, z float64) float64 {
	return focal / (focal + z)
}

// Projector maps rotated scene points onto a surface centred at (CX, CY).
type Projector struct {
	Focal float64
	CX    float64
	CY    float64

	// Zoom multiplies the projected offset from the centre. Zero means 1.
	Zoom float64
}

// Project perspective-divides p. Points behind the camera are not rejected.
func (pr Projector) Project(p Vec3) Point2D {
	zoom := pr.Zoom
	if zoom == 0 {
		zoom = 1
	}
	s := ScaleAt(pr.Focal, p.Z) * zoom
	return Point2D{
		X:     pr.CX + p.X*s,
		Y:     pr.CY + p.Y*s,
		Z:     p.Z,
		Scale: s,
	}
}

// Ease moves current toward target by the fraction k (0<k<1). It never
// overshoots for such k.
func Ease(current, target, k float64) float64 {
	return current + (target-current)*k
}

// Converged reports whether current is within eps of target.
func Converged(current, target, eps float64) bool {
	return math.Abs(target-current) <= eps
}
