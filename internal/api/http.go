package api

import (
	"encoding/json"
	"math"
	"net/http"

	"ray-ellipsoid/internal/ellipsoid"
	"ray-ellipsoid/internal/geometry/vector"
)

// unitTolerance bounds how far a direction magnitude may stray from 1
// before the response carries a warning.
const unitTolerance = 1e-6

type Config struct {
	// Ellipsoid is used when a request does not name its own.
	Ellipsoid ellipsoid.Ellipsoid
}

type Server struct {
	ell ellipsoid.Ellipsoid
	mux *http.ServeMux
}

func NewServer(cfg Config) *Server {
	s := &Server{ell: cfg.Ellipsoid, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)
	s.mux.HandleFunc("/ellipsoid", s.ellipsoidInfo)
	s.mux.HandleFunc("/intersect", s.intersect)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) ellipsoidInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.ell)
}

type intersectRequest struct {
	Dir       vector.Vec3          `json:"dir"`
	Origin    vector.Vec3          `json:"origin"`
	Ellipsoid *ellipsoid.Ellipsoid `json:"ellipsoid,omitempty"`
}

type intersectResponse struct {
	Hit     bool         `json:"hit"`
	Point   *vector.Vec3 `json:"point,omitempty"`
	Lat     *float64     `json:"lat,omitempty"`
	Lon     *float64     `json:"lon,omitempty"`
	Warning string       `json:"warning,omitempty"`
}

func (s *Server) intersect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var body intersectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	e := s.ell
	if body.Ellipsoid != nil {
		e = *body.Ellipsoid
	}
	if err := e.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp intersectResponse
	if m := vector.Magnitude(body.Dir.Coord()); math.Abs(m-1) > unitTolerance {
		resp.Warning = "direction is not a unit vector"
	}

	ray := ellipsoid.Ray{Origin: body.Origin, Dir: body.Dir}
	if p, ok := e.Intersect(ray); ok {
		g := e.Geodetic(p)
		lat, lon := g.Lat(), g.Lon()
		resp.Hit = true
		resp.Point = &p
		resp.Lat = &lat
		resp.Lon = &lon
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
