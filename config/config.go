// Package config loads the TOML page description: which sections the page
// has, which surfaces sit in them and which scene draws on each surface.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"synapse/canvas"
)

//go:embed default.toml
var defaultTOML []byte

// Scene kinds.
const (
	KindNetwork   = "network"
	KindLayers    = "layers"
	KindMarkers   = "markers"
	KindNeuron    = "neuron"
	KindChip      = "chip"
	KindGlobe     = "globe"
	KindBrainMesh = "brainmesh"
)

// Kinds lists every scene kind a [[scene]] entry may name.
var Kinds = []string{KindNetwork, KindLayers, KindMarkers, KindNeuron, KindChip, KindGlobe, KindBrainMesh}

var (
	ErrUnknownKind = errors.New("config: unknown scene kind")
	ErrInvalid     = errors.New("config: invalid")
)

type Config struct {
	Hz int `toml:"hz"`
	// Seed drives all generated geometry. Zero picks a new seed per run.
	Seed       uint64 `toml:"seed"`
	Background string `toml:"background"`

	Sections []Section `toml:"section"`
	Surfaces []Surface `toml:"surface"`
	Scenes   []Scene   `toml:"scene"`
}

type Section struct {
	ID        string `toml:"id"`
	MinHeight int    `toml:"min_height"`
}

type Surface struct {
	ID      string `toml:"id"`
	Section string `toml:"section"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	// Fullscreen surfaces follow the viewport size.
	Fullscreen bool `toml:"fullscreen"`
}

type Scene struct {
	Kind    string `toml:"kind"`
	Surface string `toml:"surface"`

	// Trigger and Threshold are used by markers: the reveal starts once the
	// trigger section is at least Threshold visible.
	Trigger   string  `toml:"trigger"`
	Threshold float64 `toml:"threshold"`
}

// MissingElementError reports a scene that refers to a surface or section
// the page does not have.
type MissingElementError struct {
	Scene string
	Kind  string // "surface" or "section"
	ID    string
}

func (e *MissingElementError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("config: scene %s: no %s given", e.Scene, e.Kind)
	}
	return fmt.Sprintf("config: scene %s: %s %q not found", e.Scene, e.Kind, e.ID)
}

// Default returns the built-in page.
func Default() *Config {
	c, err := Decode(bytes.NewReader(defaultTOML))
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads the page description at path. An empty path loads the default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses and validates a page description. Unknown keys are errors.
func Decode(r io.Reader) (*Config, error) {
	c := &Config{Hz: 60, Background: "#000000"}
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	for i := range c.Scenes {
		if c.Scenes[i].Kind == KindMarkers && c.Scenes[i].Threshold == 0 {
			c.Scenes[i].Threshold = 0.5
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the page-wide settings. Problems confined to one scene are
// left to SceneError so the other scenes can still run.
func (c *Config) Validate() error {
	var errs []error
	if c.Hz <= 0 {
		errs = append(errs, fmt.Errorf("%w: hz must be positive, got %d", ErrInvalid, c.Hz))
	}
	if _, err := canvas.Hex(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: background: %w", ErrInvalid, err))
	}

	seen := map[string]bool{}
	for _, s := range c.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%w: section without id", ErrInvalid))
		} else if seen[s.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate section %q", ErrInvalid, s.ID))
		}
		seen[s.ID] = true
	}

	seen = map[string]bool{}
	for _, s := range c.Surfaces {
		switch {
		case s.ID == "":
			errs = append(errs, fmt.Errorf("%w: surface without id", ErrInvalid))
		case seen[s.ID]:
			errs = append(errs, fmt.Errorf("%w: duplicate surface %q", ErrInvalid, s.ID))
		case !s.Fullscreen && (s.Width <= 0 || s.Height <= 0):
			errs = append(errs, fmt.Errorf("%w: surface %q: size %dx%d", ErrInvalid, s.ID, s.Width, s.Height))
		}
		seen[s.ID] = true
	}
	return errors.Join(errs...)
}

// SceneError reports why scene s cannot start, or nil.
func (c *Config) SceneError(s Scene) error {
	if !slices.Contains(Kinds, s.Kind) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	surf, ok := c.Surface(s.Surface)
	if !ok {
		return &MissingElementError{Scene: s.Kind, Kind: "surface", ID: s.Surface}
	}
	if _, ok := c.Section(surf.Section); !ok {
		return &MissingElementError{Scene: s.Kind, Kind: "section", ID: surf.Section}
	}
	if s.Kind == KindMarkers {
		if _, ok := c.Section(s.Trigger); !ok {
			return &MissingElementError{Scene: s.Kind, Kind: "section", ID: s.Trigger}
		}
	}
	return nil
}

// SceneErrors joins SceneError for every scene.
func (c *Config) SceneErrors() error {
	var errs []error
	for _, s := range c.Scenes {
		if err := c.SceneError(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Config) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func (c *Config) Surface(id string) (Surface, bool) {
	for _, s := range c.Surfaces {
		if s.ID == id {
			return s, true
		}
	}
	return Surface{}, false
}
