package layers

import (
	"math/rand/v2"

	"synapse/geom"
)

// Particle travels along one connection. Progress stays in [0,1): when it
// passes the end it carries the overshoot onto a freshly drawn connection.
type Particle struct {
	Conn     int
	Progress float64
	Speed    float64
}

// Advance moves the particle one frame along its connection.
func (p *Particle) Advance(rng *rand.Rand, conns int) {
	p.Progress += p.Speed
	if p.Progress < 1 {
		return
	}
	p.Progress -= 1
	if p.Progress >= 1 || p.Progress < 0 {
		p.Progress = 0
	}
	if conns > 0 {
		p.Conn = rng.IntN(conns)
	}
}

// Position interpolates the particle along its connection.
func (p Particle) Position(conns []Connection) geom.Point2D {
	c := conns[p.Conn]
	return geom.Point2D{
		X: c.Start.X + (c.End.X-c.Start.X)*p.Progress,
		Y: c.Start.Y + (c.End.Y-c.Start.Y)*p.Progress,
	}
}
