package http

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/GRASBOCK/fmcw-radar-demo-0/radar"
	"github.com/GRASBOCK/fmcw-radar-demo-0/sim"
	"github.com/GRASBOCK/fmcw-radar-demo-0/store"
)

type sceneHandler struct {
	s *sim.Server
}

func sceneFromRequest(r *http.Request) (store.Scene, error) {
	b, err := ioutil.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		return store.Scene{}, err
	}
	var sc store.Scene
	if err := json.Unmarshal(b, &sc); err != nil {
		return store.Scene{}, err
	}
	return sc, nil
}

func (sh *sceneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		js, err := json.Marshal(sh.s.Scenes.Scene())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write(js)
	case http.MethodPut, http.MethodPost:
		sc, err := sceneFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := sh.s.SetScene(sc); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, radar.ErrInvalidConfig) || errors.Is(err, radar.ErrSuperluminal) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newSceneHandler(s *sim.Server) http.Handler { return &sceneHandler{s} }
