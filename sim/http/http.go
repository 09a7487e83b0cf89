package http

import (
	"html/template"
	"io"
	"net/http"

	"github.com/GRASBOCK/fmcw-radar-demo-0/sim"
	"github.com/GRASBOCK/fmcw-radar-demo-0/store"
)

type httpHandler struct {
	s         *sim.Server
	indexTmpl *template.Template
}

const indexTmplStr = `<!DOCTYPE html>
<html>
<head>
<title>fmcw!!</title>
<style>
table, th, td {
  border: 1px solid black;
  text-align: right;
}
</style>
</head>
<body>
<h1>welcome to the fmcw radar scene</h1>
<hr/>

<h2>Sweep &#x1F4E1;</h2>
<ul>
<li>Carrier: {{printf "%.2f" .CarrierGHz}}GHz</li>
<li>Bandwidth: {{printf "%.1f" .BandwidthMHz}}MHz</li>
<li>Chirps: {{range $_, $d := .ChirpsUs}}{{printf "%gus " $d}}{{end}}</li>
<li>Sample rate: {{printf "%.2f" .SampleRateMHz}}MHz</li>
<li>Capture: {{printf "%g" .CaptureUs}}us over {{.SamplesPerWindow}} samples</li>
</ul>

<h2>Targets &#x1F3AF;</h2>
<table>
<tr><th>Color</th><th>Range m</th><th>Velocity m/s</th><th>Control</th></tr>
{{range $_, $t := .Scene.Targets}}
<tr>
<td>{{$t.Color}}</td>
<td>{{printf "%.1f" $t.Range}}</td>
<td>{{printf "%.1f" $t.Velocity}}</td>
<td>
{{if $t.Enabled}}&#x1F7E2; <a href="?enable={{$t.ID}}&on=0">disable</a>
{{else}}&#x26AA; <a href="?enable={{$t.ID}}&on=1">enable</a>{{end}}
</td>
</tr>
{{end}}
</table>

<h2>Captures &#x1F50D;</h2>
{{range $i, $res := .Frame.Windows}}
<h3>Window {{$i}} at {{printf "%g" $res.Window.Start}}s: <a href="charts/window?i={{$i}}">{{len $res.Peaks}} peaks</a></h3>
<table>
<tr><th>Beat Hz</th><th>Magnitude</th><th>Line from (m, m/s)</th><th>Line to (m, m/s)</th></tr>
{{range $j, $p := $res.Peaks}}
{{$l := index $res.Lines $j}}
<tr>
<td>{{printf "%.0f" $p.Hz}}</td>
<td>{{printf "%.3f" $p.Mag}}</td>
<td>{{printf "%.1f" $l.From.Range}}, {{printf "%.1f" $l.From.Velocity}}</td>
<td>{{printf "%.1f" $l.To.Range}}, {{printf "%.1f" $l.To.Velocity}}</td>
</tr>
{{end}}
</table>
{{end}}

<h2>Charts &#x1F4C8;</h2>
<ul>
<li><a href="charts/">full report</a></li>
<li><a href="charts/timeline">transmitted frequency</a></li>
<li><a href="charts/beats">beat series</a></li>
<li><a href="charts/plane">range-velocity plane</a></li>
</ul>

<h2>API</h2>
<ul>
<li><a href="api/scene">scene</a></li>
<li><a href="api/frame">frame</a></li>
</ul>
</body>
</html>
`

func newMux(s *sim.Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/scene", newSceneHandler(s))
	mux.Handle("/api/frame", newFrameHandler(s))
	mux.Handle("/charts/", http.StripPrefix("/charts", newChartsHandler(s)))
	mux.Handle("/", &httpHandler{
		s:         s,
		indexTmpl: template.Must(template.New("index").Parse(indexTmplStr)),
	})
	return mux
}

func ServeHttp(s *sim.Server, serv string) error {
	return http.ListenAndServe(serv, newMux(s))
}

type indexView struct {
	Scene store.Scene
	Frame *sim.Frame
}

func (v *indexView) CarrierGHz() float64    { return v.Scene.Config.CarrierHz / 1e9 }
func (v *indexView) BandwidthMHz() float64  { return v.Scene.Config.BandwidthHz / 1e6 }
func (v *indexView) SampleRateMHz() float64 { return v.Scene.Config.SampleRateHz / 1e6 }
func (v *indexView) CaptureUs() float64     { return v.Scene.Config.CaptureDuration * 1e6 }
func (v *indexView) SamplesPerWindow() int  { return v.Scene.Config.SamplesPerWindow() }

func (v *indexView) ChirpsUs() []float64 {
	us := make([]float64, len(v.Scene.Config.ChirpDurations))
	for i, d := range v.Scene.Config.ChirpDurations {
		us[i] = d * 1e6
	}
	return us
}

func (h *httpHandler) handleGetIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if id := q.Get("enable"); len(id) > 0 {
		if err := h.s.ToggleTarget(id, q.Get("on") != "0"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		f, err := h.s.Frame()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		v := &indexView{Scene: h.s.Scenes.Scene(), Frame: f}
		if err := h.indexTmpl.Execute(w, v); err != nil {
			io.WriteString(w, err.Error())
		}
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetIndex(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
