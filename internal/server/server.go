// Package server is the local development server: it exposes the
// generation pipeline over HTTP so a renderer or inspector can pull
// tiles, scenes, and visibility sets while tuning policy files.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"citygen/pkg/building"
	"citygen/pkg/cull"
	"citygen/pkg/engine"
	"citygen/pkg/geo"
	"citygen/pkg/policy"
	"citygen/pkg/scene"
	"citygen/pkg/stats"
)

// Server serves generation sessions. The session ID distinguishes
// concurrent tuning sessions in logs. Requests default to the seed the
// server was started with; a seed query parameter selects another
// session without restarting.
type Server struct {
	table   *policy.Table
	seed    uint64
	port    int
	session string
	log     *slog.Logger

	mu      sync.Mutex
	gens    map[uint64]*engine.Generator
	cullers map[string]*cull.Culler
}

// New creates a server. A nil table selects the built-in defaults.
func New(table *policy.Table, seed uint64, port int, log *slog.Logger) *Server {
	if table == nil {
		table = policy.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		table:   table,
		seed:    seed,
		port:    port,
		session: uuid.NewString(),
		log:     log,
		gens:    make(map[uint64]*engine.Generator),
		cullers: make(map[string]*cull.Culler),
	}
}

// generator returns the lazily-created generator for a seed.
func (s *Server) generator(seed uint64) *engine.Generator {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gens[seed]
	if !ok {
		g = engine.New(s.table, seed, 0)
		s.gens[seed] = g
	}
	return g
}

// Handler builds the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/tile", s.handleTile)
	mux.HandleFunc("GET /api/classify", s.handleClassify)
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("POST /api/visible", s.handleVisible)
	mux.HandleFunc("GET /", s.handleIndex)

	return cors.Default().Handler(mux)
}

// Start launches the HTTP server. Blocks until the listener fails.
func (s *Server) Start() error {
	handler := s.Handler()

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("citygen server starting",
		"addr", fmt.Sprintf("http://localhost%s", addr),
		"session", s.session,
		"seed", s.seed)

	return http.ListenAndServe(addr, handler)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>citygen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>citygen</h1>
<p>Renderer not embedded. Query <code>/api/tile?x=0&amp;y=0</code> to inspect generation.</p>
</div>
</body></html>`)
}

func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	x, y, ok := tileCoords(w, r)
	if !ok {
		return
	}
	gen := s.generator(querySeed(r, s.seed))
	descs, rep := gen.Tile(x, y)
	d := gen.Classify(x, y)
	s.log.Debug("tile served", "tile_x", x, "tile_y", y, "district", d.Kind, "buildings", len(descs))

	writeJSON(w, map[string]any{
		"tile_x":    x,
		"tile_y":    y,
		"seed":      gen.Seed(),
		"district":  d.Kind,
		"buildings": descs,
		"report":    rep,
	})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	x, y, ok := tileCoords(w, r)
	if !ok {
		return
	}
	d := s.generator(querySeed(r, s.seed)).Classify(x, y)
	writeJSON(w, map[string]any{
		"tile_x":   x,
		"tile_y":   y,
		"district": d.Kind,
	})
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	x, y, ok := tileCoords(w, r)
	if !ok {
		return
	}
	radius := queryInt(r, "radius", 1)
	if radius < 0 || radius > 8 {
		httpError(w, http.StatusBadRequest, "radius must be in [0, 8]")
		return
	}

	gen := s.generator(querySeed(r, s.seed))
	descs := collect(gen, x, y, radius)
	graph := scene.Assemble(descs, s.table, gen.Seed())
	writeJSON(w, graph)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	x, y, ok := tileCoords(w, r)
	if !ok {
		return
	}
	radius := queryInt(r, "radius", 2)
	if radius < 0 || radius > 16 {
		httpError(w, http.StatusBadRequest, "radius must be in [0, 16]")
		return
	}

	gen := s.generator(querySeed(r, s.seed))
	descs := collect(gen, x, y, radius)
	summary, rep := stats.Summarize(descs, s.table)
	writeJSON(w, map[string]any{
		"summary": summary,
		"report":  rep,
	})
}

// visibleRequest carries a camera snapshot for one tile's cull pass.
type visibleRequest struct {
	TileX        int         `json:"tile_x"`
	TileY        int         `json:"tile_y"`
	Seed         *uint64     `json:"seed,omitempty"`
	Projection   [16]float64 `json:"projection"`
	WorldInverse [16]float64 `json:"world_inverse"`
	FastMoving   bool        `json:"fast_moving"`
}

func (s *Server) handleVisible(w http.ResponseWriter, r *http.Request) {
	var req visibleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	seed := s.seed
	if req.Seed != nil {
		seed = *req.Seed
	}
	descs, _ := s.generator(seed).Tile(req.TileX, req.TileY)
	culler := s.cullerFor(seed, req.TileX, req.TileY)

	cam := cull.CameraState{
		Projection:   geo.Mat4(req.Projection),
		WorldInverse: geo.Mat4(req.WorldInverse),
		FastMoving:   req.FastMoving,
	}
	visible, rep := culler.UpdateVisible(cam, descs)

	ids := make([]string, len(visible))
	for i, idx := range visible {
		ids[i] = descs[idx].ID
	}
	writeJSON(w, map[string]any{
		"visible": ids,
		"report":  rep,
	})
}

// cullerFor returns the persistent culler for a tile, so repeated
// camera posts against the same tile get real throttling behavior.
func (s *Server) cullerFor(seed uint64, x, y int) *cull.Culler {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fmt.Sprintf("%d/%d,%d", seed, x, y)
	c, ok := s.cullers[key]
	if !ok {
		c = cull.New(cull.Config{})
		s.cullers[key] = c
	}
	return c
}

// collect gathers the buildings of every tile within a square radius.
func collect(gen *engine.Generator, x, y, radius int) []building.Descriptor {
	var all []building.Descriptor
	for ty := y - radius; ty <= y+radius; ty++ {
		for tx := x - radius; tx <= x+radius; tx++ {
			descs, _ := gen.Tile(tx, ty)
			all = append(all, descs...)
		}
	}
	return all
}

func querySeed(r *http.Request, def uint64) uint64 {
	v := r.URL.Query().Get("seed")
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func tileCoords(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		httpError(w, http.StatusBadRequest, "x and y query parameters must be integers")
		return 0, 0, false
	}
	return x, y, true
}

func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": fmt.Sprintf(format, args...),
	})
}
