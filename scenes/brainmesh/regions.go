package brainmesh

import (
	"image/color"

	"synapse/canvas"
	"synapse/geom"
	"synapse/mesh"
)

// View is the orientation and zoom the camera eases to when a region is
// selected.
type View struct {
	Pitch, Yaw float64
	Zoom       float64
}

// RegionSpec describes a region before its surface is generated.
type RegionSpec struct {
	ID          string
	Name        string
	Description string
	Color       color.NRGBA
	Shape       mesh.RegionShape
	View        View
}

// Region is a named anatomical area with its generated vertices. Only the
// Active flag changes after construction.
type Region struct {
	ID          string
	Name        string
	Description string
	Color       color.NRGBA
	View        View

	Rings    int
	Segments int
	Vertices []geom.Vec3

	Active bool
}

// DefaultRegions is the built-in hemisphere: five lobes and the brainstem.
func DefaultRegions() []RegionSpec {
	return []RegionSpec{
		{
			ID:          "frontal",
			Name:        "Frontal Lobe",
			Description: "Planning, decision making and voluntary movement. Home of working memory and much of what we call personality.",
			Color:       canvas.MustHex("#667eea"),
			Shape: mesh.RegionShape{
				Center: geom.V3(0, -25, -70), Radii: geom.V3(75, 55, 60),
				Rings: 10, Segments: 18, FoldAmp: 0.07, FoldFreq: 6,
			},
			View: View{Pitch: -0.15, Yaw: 0.4, Zoom: 1.35},
		},
		{
			ID:          "parietal",
			Name:        "Parietal Lobe",
			Description: "Integrates touch, temperature and body position into a map of the space around us.",
			Color:       canvas.MustHex("#764ba2"),
			Shape: mesh.RegionShape{
				Center: geom.V3(0, -50, 25), Radii: geom.V3(70, 40, 50),
				Rings: 9, Segments: 16, FoldAmp: 0.08, FoldFreq: 5,
			},
			View: View{Pitch: 0.6, Yaw: 2.6, Zoom: 1.4},
		},
		{
			ID:          "temporal",
			Name:        "Temporal Lobe",
			Description: "Processes sound and language and, through the hippocampus, lays down new long-term memories.",
			Color:       canvas.MustHex("#4fd1c5"),
			Shape: mesh.RegionShape{
				Center: geom.V3(55, 25, -5), Radii: geom.V3(30, 30, 65),
				Rings: 8, Segments: 16, FoldAmp: 0.06, FoldFreq: 5,
			},
			View: View{Pitch: 0, Yaw: -1.45, Zoom: 1.5},
		},
		{
			ID:          "occipital",
			Name:        "Occipital Lobe",
			Description: "The visual cortex: turns signals from the eyes into edges, motion, colour and shape.",
			Color:       canvas.MustHex("#f687b3"),
			Shape: mesh.RegionShape{
				Center: geom.V3(0, -15, 85), Radii: geom.V3(55, 40, 32),
				Rings: 8, Segments: 14, FoldAmp: 0.07, FoldFreq: 6,
			},
			View: View{Pitch: -0.1, Yaw: 3.14, Zoom: 1.6},
		},
		{
			ID:          "cerebellum",
			Name:        "Cerebellum",
			Description: "Fine-tunes movement, balance and timing; holds more neurons than the rest of the brain combined.",
			Color:       canvas.MustHex("#f6ad55"),
			Shape: mesh.RegionShape{
				Center: geom.V3(0, 55, 70), Radii: geom.V3(50, 25, 30),
				Rings: 8, Segments: 16, FoldAmp: 0.12, FoldFreq: 9,
			},
			View: View{Pitch: -0.5, Yaw: 2.9, Zoom: 1.7},
		},
		{
			ID:          "brainstem",
			Name:        "Brainstem",
			Description: "Relays signals between brain and body and keeps breathing, heart rate and sleep cycles running.",
			Color:       canvas.MustHex("#68d391"),
			Shape: mesh.RegionShape{
				Center: geom.V3(0, 75, 25), Radii: geom.V3(16, 45, 16),
				Rings: 8, Segments: 10, FoldAmp: 0.03, FoldFreq: 4,
			},
			View: View{Pitch: -0.2, Yaw: -1.2, Zoom: 1.8},
		},
	}
}

func buildRegion(rs RegionSpec) Region {
	return Region{
		ID:          rs.ID,
		Name:        rs.Name,
		Description: rs.Description,
		Color:       rs.Color,
		View:        rs.View,
		Rings:       rs.Shape.Rings,
		Segments:    rs.Shape.Segments,
		Vertices:    mesh.Surface(rs.Shape),
	}
}
