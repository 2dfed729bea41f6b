// Package mesh generates the static geometry the scenes rotate every frame.
//
// Generators run once at scene construction. Their outputs have a size fixed
// by the parameters and are never resized afterwards; scenes treat them as
// read-only input. Randomised generators take an explicit *rand.Rand so that
// seeded sources reproduce the same shapes.
package mesh

import (
	"math"
	"math/rand/v2"

	"synapse/geom"
)

// Polyline is an ordered run of points drawn as connected segments.
type Polyline []geom.Vec3

// Sphere returns n points drawn uniformly from the surface of a sphere of the
// given radius centred on the origin.
func Sphere(rng *rand.Rand, n int, radius float64) []geom.Vec3 {
	if n < 0 {
		n = 0
	}
	pts := make([]geom.Vec3, n)
	for i := range pts {
		u := rng.Float64()*2 - 1
		phi := rng.Float64() * 2 * math.Pi
		ring := math.Sqrt(1 - u*u)
		s, c := math.Sincos(phi)
		pts[i] = geom.Vec3{
			X: radius * ring * c,
			Y: radius * u,
			Z: radius * ring * s,
		}
	}
	return pts
}

// Segment returns n points evenly spaced from a to b inclusive. n below 2 is
// raised to 2.
func Segment(a, b geom.Vec3, n int) []geom.Vec3 {
	if n < 2 {
		n = 2
	}
	pts := make([]geom.Vec3, n)
	for i := range pts {
		pts[i] = geom.Lerp(a, b, float64(i)/float64(n-1))
	}
	return pts
}
