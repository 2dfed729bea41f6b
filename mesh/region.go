package mesh

import (
	"math"

	"synapse/geom"
)

// RegionShape parameterises one organic brain-region surface: an ellipsoid
// swept over a rings x segments grid whose radius is perturbed by
// sinusoidal folds.
type RegionShape struct {
	Center geom.Vec3
	Radii  geom.Vec3

	Rings    int
	Segments int

	// FoldAmp is the relative radius perturbation, FoldFreq its angular
	// frequency along both sweep angles.
	FoldAmp  float64
	FoldFreq float64
}

// Surface returns Rings*Segments vertices, ring-major: vertex (i, j) is at
// index i*Segments+j.
func Surface(s RegionShape) []geom.Vec3 {
	if s.Rings < 1 || s.Segments < 1 {
		return nil
	}
	pts := make([]geom.Vec3, 0, s.Rings*s.Segments)
	for i := 0; i < s.Rings; i++ {
		theta := math.Pi * (float64(i) + 0.5) / float64(s.Rings)
		st, ct := math.Sincos(theta)
		for j := 0; j < s.Segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(s.Segments)
			sp, cp := math.Sincos(phi)
			r := Fold(s.FoldAmp, s.FoldFreq, theta, phi)
			pts = append(pts, geom.Vec3{
				X: s.Center.X + s.Radii.X*st*cp*r,
				Y: s.Center.Y + s.Radii.Y*ct*r,
				Z: s.Center.Z + s.Radii.Z*st*sp*r,
			})
		}
	}
	return pts
}

// Fold is the radius multiplier used by Surface: two interfering sine
// ridges that give the surface a gyrus-like texture.
func Fold(amp, freq, theta, phi float64) float64 {
	if amp == 0 {
		return 1
	}
	ridge := math.Sin(freq*theta) * math.Cos(freq*phi)
	fine := 0.35 * math.Sin(2*freq*theta+phi) * math.Cos(1.5*freq*phi)
	return 1 + amp*(ridge+fine)
}
