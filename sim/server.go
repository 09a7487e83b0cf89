package sim

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/GRASBOCK/fmcw-radar-demo-0/radar"
	"github.com/GRASBOCK/fmcw-radar-demo-0/store"
)

// Server binds the scene store to the recompute pipeline.
type Server struct {
	Scenes *store.SceneStore
	Opts   Options
}

// NewServer loads the scene at path, falling back to the default scene
// when the file is missing or unreadable.
func NewServer(path string) *Server {
	s := &Server{Scenes: store.NewSceneStore(path), Opts: DefaultOptions()}
	if err := s.Scenes.Load(); err != nil {
		log.Printf("scene %s: %v; using default scene", path, err)
	}
	return s
}

// Frame recomputes the derived frame for the current scene.
func (s *Server) Frame() (*Frame, error) {
	sc := s.Scenes.Scene()
	return Compute(sc.Config, sc.Targets, s.Opts)
}

// SetScene gives nameless targets fresh ids, validates the scene by
// computing a frame from it, then stores and persists it.
func (s *Server) SetScene(sc store.Scene) error {
	for i := range sc.Targets {
		if sc.Targets[i].ID == "" {
			sc.Targets[i].ID = uuid.NewString()
		}
	}
	if _, err := Compute(sc.Config, sc.Targets, s.Opts); err != nil {
		return err
	}
	s.Scenes.SetScene(sc)
	if err := s.Scenes.Save(); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}

// ToggleTarget flips one target's enabled state.
func (s *Server) ToggleTarget(id string, on bool) error {
	sc := s.Scenes.Scene()
	for i := range sc.Targets {
		if sc.Targets[i].ID == id {
			sc.Targets[i].Enabled = on
			return s.SetScene(sc)
		}
	}
	return fmt.Errorf("%w: no target %q", radar.ErrInvalidConfig, id)
}
