package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/GRASBOCK/fmcw-radar-demo-0/radar"
)

// SchemaVersion is the scene file format written by this build.
const SchemaVersion = 1

var ErrSchemaVersion = errors.New("unsupported scene version")

// Scene pairs a sweep configuration with the simulated targets.
type Scene struct {
	Config  radar.Config   `json:"config" yaml:"config"`
	Targets []radar.Target `json:"targets" yaml:"targets"`
}

// DefaultScene is the demo scene the simulator boots with.
func DefaultScene() Scene {
	return Scene{
		Config: radar.Config{
			CarrierHz:       77e9,
			BandwidthHz:     2e9,
			ChirpDurations:  []float64{40e-6, 40e-6},
			SampleRateHz:    40.1e6,
			CaptureDuration: 10e-6,
		},
		Targets: []radar.Target{
			{ID: uuid.NewString(), Range: 10, Velocity: 0, Color: "green", Enabled: true},
			{ID: uuid.NewString(), Range: 30, Velocity: 20, Color: "blue", Enabled: false},
			{ID: uuid.NewString(), Range: 40, Velocity: -10, Color: "red", Enabled: false},
		},
	}
}

// sceneFile is the on-disk schema. Pointer fields keep absent keys
// distinguishable from zero values; absent fields merge from the
// defaults.
type sceneFile struct {
	Version int          `json:"version" yaml:"version"`
	Config  *configFile  `json:"config,omitempty" yaml:"config,omitempty"`
	Targets []targetFile `json:"targets" yaml:"targets"`
}

type configFile struct {
	CarrierHz       *float64  `json:"carrier_hz,omitempty" yaml:"carrier_hz,omitempty"`
	BandwidthHz     *float64  `json:"bandwidth_hz,omitempty" yaml:"bandwidth_hz,omitempty"`
	ChirpDurations  []float64 `json:"chirp_durations,omitempty" yaml:"chirp_durations,omitempty"`
	SampleRateHz    *float64  `json:"sample_rate_hz,omitempty" yaml:"sample_rate_hz,omitempty"`
	CaptureDuration *float64  `json:"capture_duration,omitempty" yaml:"capture_duration,omitempty"`
}

type targetFile struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Range    float64 `json:"range" yaml:"range"`
	Velocity float64 `json:"velocity" yaml:"velocity"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

func mergeScene(f sceneFile) (Scene, error) {
	if f.Version > SchemaVersion {
		return Scene{}, fmt.Errorf("%w: %d", ErrSchemaVersion, f.Version)
	}
	s := DefaultScene()
	if f.Config != nil {
		mergeConfig(&s.Config, *f.Config)
	}
	if f.Targets != nil {
		s.Targets = make([]radar.Target, len(f.Targets))
		for i, tf := range f.Targets {
			s.Targets[i] = mergeTarget(tf)
		}
	}
	return s, nil
}

func mergeConfig(dst *radar.Config, f configFile) {
	if f.CarrierHz != nil {
		dst.CarrierHz = *f.CarrierHz
	}
	if f.BandwidthHz != nil {
		dst.BandwidthHz = *f.BandwidthHz
	}
	if f.ChirpDurations != nil {
		dst.ChirpDurations = f.ChirpDurations
	}
	if f.SampleRateHz != nil {
		dst.SampleRateHz = *f.SampleRateHz
	}
	if f.CaptureDuration != nil {
		dst.CaptureDuration = *f.CaptureDuration
	}
}

func mergeTarget(f targetFile) radar.Target {
	t := radar.Target{ID: f.ID, Range: f.Range, Velocity: f.Velocity, Color: f.Color, Enabled: true}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Color == "" {
		t.Color = "gray"
	}
	if f.Enabled != nil {
		t.Enabled = *f.Enabled
	}
	return t
}

func fileScene(s Scene) sceneFile {
	cf := configFile{
		CarrierHz:       &s.Config.CarrierHz,
		BandwidthHz:     &s.Config.BandwidthHz,
		ChirpDurations:  s.Config.ChirpDurations,
		SampleRateHz:    &s.Config.SampleRateHz,
		CaptureDuration: &s.Config.CaptureDuration,
	}
	tfs := make([]targetFile, len(s.Targets))
	for i, t := range s.Targets {
		enabled := t.Enabled
		tfs[i] = targetFile{ID: t.ID, Range: t.Range, Velocity: t.Velocity, Color: t.Color, Enabled: &enabled}
	}
	return sceneFile{Version: SchemaVersion, Config: &cf, Targets: tfs}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ReadSceneFile loads path and merges it over the default scene. The
// format follows the file suffix: .yaml/.yml, anything else JSON.
func ReadSceneFile(path string) (Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	var f sceneFile
	if isYAML(path) {
		err = yaml.Unmarshal(b, &f)
	} else {
		err = json.Unmarshal(b, &f)
	}
	if err != nil {
		return Scene{}, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return mergeScene(f)
}

// WriteSceneFile writes the scene to path in the suffix format.
func WriteSceneFile(path string, s Scene) error {
	f := fileScene(s)
	var b []byte
	var err error
	if isYAML(path) {
		b, err = yaml.Marshal(f)
	} else {
		b, err = json.MarshalIndent(f, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// SceneStore guards the active scene and mirrors it to a file.
type SceneStore struct {
	path string
	mu   sync.RWMutex
	s    Scene
}

// NewSceneStore starts from the default scene; Load pulls in the file.
func NewSceneStore(path string) *SceneStore {
	return &SceneStore{path: path, s: DefaultScene()}
}

func (ss *SceneStore) Path() string { return ss.path }

// Load replaces the in-memory scene with the stored one.
func (ss *SceneStore) Load() error {
	s, err := ReadSceneFile(ss.path)
	if err != nil {
		return err
	}
	ss.mu.Lock()
	ss.s = s
	ss.mu.Unlock()
	return nil
}

// Save mirrors the in-memory scene to the file.
func (ss *SceneStore) Save() error {
	ss.mu.RLock()
	s := ss.s
	ss.mu.RUnlock()
	return WriteSceneFile(ss.path, s)
}

// Scene returns a copy that is safe to mutate.
func (ss *SceneStore) Scene() Scene {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return copyScene(ss.s)
}

func (ss *SceneStore) SetScene(s Scene) {
	ss.mu.Lock()
	ss.s = copyScene(s)
	ss.mu.Unlock()
}

func copyScene(s Scene) Scene {
	out := s
	out.Config.ChirpDurations = append([]float64(nil), s.Config.ChirpDurations...)
	out.Targets = append([]radar.Target(nil), s.Targets...)
	return out
}
