package mesh

import (
	"math"
	"math/rand/v2"

	"synapse/geom"
)

// BranchPoint is one sample of a dendrite or axon path.
type BranchPoint struct {
	Pos       geom.Vec3
	Thickness float64
}

// Branch grows a wandering path of length samples from origin. The heading
// starts at angle (radians in the XY plane) and drifts by up to ±0.15 rad per
// step; depth drifts slowly so the path reads as 3D once rotated. Thickness
// tapers linearly from thickness toward zero.
func Branch(rng *rand.Rand, origin geom.Vec3, angle float64, length int, step, thickness float64) []BranchPoint {
	if length < 0 {
		length = 0
	}
	pts := make([]BranchPoint, length)
	p := origin
	for i := range pts {
		angle += (rng.Float64() - 0.5) * 0.3
		s, c := math.Sincos(angle)
		p.X += c * step
		p.Y += s * step
		p.Z += (rng.Float64() - 0.5) * step * 0.6
		pts[i] = BranchPoint{
			Pos:       p,
			Thickness: thickness * (1 - float64(i)/float64(length)),
		}
	}
	return pts
}
