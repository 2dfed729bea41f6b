package app

import (
	"synapse/config"
	"synapse/page"
	"synapse/scenes"
	"synapse/scenes/brainmesh"
	"synapse/scenes/chip"
	"synapse/scenes/globe"
	"synapse/scenes/layers"
	"synapse/scenes/markers"
	"synapse/scenes/network"
	"synapse/scenes/neuron"
)

// buildScene constructs the scene for sc. The kind has already been checked.
func (s *system) buildScene(sc config.Scene, seed uint64, w, h int) scenes.Scene {
	switch sc.Kind {
	case config.KindNetwork:
		return network.New(network.DefaultConfig(), scenes.NewRand(seed), w, h)
	case config.KindLayers:
		return layers.New(layers.DefaultConfig(), scenes.NewRand(seed), h)
	case config.KindNeuron:
		return neuron.New(neuron.DefaultConfig(), scenes.NewRand(seed), w, h)
	case config.KindChip:
		return chip.New(chip.DefaultConfig(), w, h)
	case config.KindGlobe:
		return globe.New(globe.DefaultConfig(), w, h)
	case config.KindBrainMesh:
		b := brainmesh.New(brainmesh.DefaultConfig(), w, h)
		if s.brain == nil {
			s.brain = b
		}
		return b
	case config.KindMarkers:
		m := markers.New(markers.DefaultConfig(), scenes.NewRand(seed))
		s.watches = append(s.watches, watch{
			section: sc.Trigger,
			obs: &page.OnceObserver{
				Threshold: sc.Threshold,
				Fire: func() {
					if m.Trigger() {
						s.logf("app: markers revealed (%s visible)", sc.Trigger)
					}
				},
			},
		})
		return m
	}
	panic("app: unhandled scene kind " + sc.Kind)
}
