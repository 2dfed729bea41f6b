package mesh

import (
	"math"

	"synapse/geom"
)

// GlobeLines is a latitude/longitude wireframe.
type GlobeLines struct {
	Latitudes  []Polyline
	Longitudes []Polyline

	// Equator indexes the latitude ring drawn heavier, or -1.
	Equator int
}

// Globe sweeps latLines rings from the south pole upwards and lonLines
// meridians around the Y axis. step is the angular spacing of the samples
// along each line; every line is closed or ends exactly on its last angle.
func Globe(radius float64, latLines, lonLines int, step float64) GlobeLines {
	if step <= 0 {
		step = 0.05
	}
	g := GlobeLines{
		Latitudes:  make([]Polyline, latLines),
		Longitudes: make([]Polyline, lonLines),
		Equator:    -1,
	}
	if latLines > 0 {
		g.Equator = latLines / 2
	}

	ringN := int(math.Ceil(2*math.Pi/step)) + 1
	for i := range g.Latitudes {
		lat := float64(i)/float64(latLines)*math.Pi - math.Pi/2
		line := make(Polyline, ringN)
		for k := range line {
			long := math.Min(float64(k)*step, 2*math.Pi)
			line[k] = globePoint(radius, lat, long)
		}
		g.Latitudes[i] = line
	}

	meridianN := int(math.Ceil(math.Pi/step)) + 1
	for i := range g.Longitudes {
		long := float64(i) / float64(lonLines) * 2 * math.Pi
		line := make(Polyline, meridianN)
		for k := range line {
			lat := math.Min(-math.Pi/2+float64(k)*step, math.Pi/2)
			line[k] = globePoint(radius, lat, long)
		}
		g.Longitudes[i] = line
	}
	return g
}

func globePoint(radius, lat, long float64) geom.Vec3 {
	sl, cl := math.Sincos(lat)
	sg, cg := math.Sincos(long)
	return geom.Vec3{
		X: radius * cl * cg,
		Y: radius * sl,
		Z: radius * cl * sg,
	}
}
