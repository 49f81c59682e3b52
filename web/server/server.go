package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// maxRequestDepth bounds recursion for web renders; each level can double the rays per pixel
const maxRequestDepth = 10

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string  `json:"scene"`       // Preset name (e.g., "default")
	Width       int     `json:"width"`       // Image width
	Height      int     `json:"height"`      // Image height
	MaxDepth    int     `json:"maxDepth"`    // Reflection/refraction recursion depth
	VFovDegrees float64 `json:"vfovDegrees"` // Vertical field of view
	Background  string  `json:"background"`  // Color name or r,g,b; empty keeps the preset's
	Shadows     string  `json:"shadows"`     // "unbounded" or "bounded"
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes with their default settings
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	type sceneEntry struct {
		scene.SceneInfo
		Width       int     `json:"width"`
		Height      int     `json:"height"`
		MaxDepth    int     `json:"maxDepth"`
		VFovDegrees float64 `json:"vfovDegrees"`
	}

	var entries []sceneEntry
	for _, info := range scene.ListScenes() {
		entries = append(entries, sceneEntry{
			SceneInfo:   info,
			Width:       info.Config.Width,
			Height:      info.Config.Height,
			MaxDepth:    info.Config.MaxDepth,
			VFovDegrees: info.Config.VFovDegrees,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": entries})
}

// parseRenderRequest parses request parameters, falling back to the preset's settings
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, scene.Preset, error) {
	query := r.URL.Query()

	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}
	preset, err := scene.LookupPreset(req.Scene)
	if err != nil {
		return nil, scene.Preset{}, err
	}
	defaults := preset.Info.Config

	if req.Width, err = parseIntParam(query, "width", min(defaults.Width, 800), 1, 2000); err != nil {
		return nil, scene.Preset{}, err
	}
	if req.Height, err = parseIntParam(query, "height", min(defaults.Height, 600), 1, 2000); err != nil {
		return nil, scene.Preset{}, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", defaults.MaxDepth, 0, maxRequestDepth); err != nil {
		return nil, scene.Preset{}, err
	}
	if req.VFovDegrees, err = parseFloatParam(query, "vfov", defaults.VFovDegrees, 1, 179); err != nil {
		return nil, scene.Preset{}, err
	}
	req.Background = query.Get("background")
	req.Shadows = query.Get("shadows")

	return req, preset, nil
}

// buildScene builds the preset with the request's overrides applied
func (s *Server) buildScene(req *RenderRequest, preset scene.Preset) (*scene.Scene, error) {
	cfg := preset.Info.Config
	cfg.Width = req.Width
	cfg.Height = req.Height
	cfg.MaxDepth = req.MaxDepth
	cfg.VFovDegrees = req.VFovDegrees

	if req.Background != "" {
		background, err := scene.ParseBackground(req.Background)
		if err != nil {
			return nil, err
		}
		cfg.Background = background
	}
	shadowMode, err := scene.ParseShadowMode(req.Shadows)
	if err != nil {
		return nil, err
	}

	sceneObj := preset.Build(cfg)
	sceneObj.SetShadowMode(shadowMode)
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
