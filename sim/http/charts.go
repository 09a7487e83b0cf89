package http

import (
	"net/http"
	"strconv"

	"github.com/GRASBOCK/fmcw-radar-demo-0/sim"
)

type chartsHandler struct {
	s *sim.Server
}

func (ch *chartsHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, err := ch.s.Frame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sim.WriteReport(w, f, ch.s.Scenes.Scene()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ch *chartsHandler) handleTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, err := ch.s.Frame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sim.TimelineChart(f).Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ch *chartsHandler) handleBeats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, err := ch.s.Frame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sim.BeatChart(f, ch.s.Scenes.Scene().Targets).Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ch *chartsHandler) handleWindow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	i, err := strconv.Atoi(r.URL.Query().Get("i"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f, err := ch.s.Frame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if i < 0 || i >= len(f.Windows) {
		http.Error(w, "no such window", http.StatusBadRequest)
		return
	}
	if err := sim.SpectrumChart(f.Windows[i], i).Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ch *chartsHandler) handlePlane(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, err := ch.s.Frame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := sim.PlaneChart(f, ch.s.Scenes.Scene().Targets).Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func newChartsHandler(s *sim.Server) http.Handler {
	ch := chartsHandler{s}
	mux := http.NewServeMux()
	mux.HandleFunc("/timeline", ch.handleTimeline)
	mux.HandleFunc("/beats", ch.handleBeats)
	mux.HandleFunc("/window", ch.handleWindow)
	mux.HandleFunc("/plane", ch.handlePlane)
	mux.HandleFunc("/", ch.handleIndex)
	return mux
}
