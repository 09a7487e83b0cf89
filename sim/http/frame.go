package http

import (
	"encoding/json"
	"net/http"

	"github.com/GRASBOCK/fmcw-radar-demo-0/sim"
)

type frameHandler struct {
	s *sim.Server
}

func (fh *frameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, err := fh.s.Frame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	js, err := json.Marshal(f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(js)
}

func newFrameHandler(s *sim.Server) http.Handler { return &frameHandler{s} }
