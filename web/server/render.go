package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/pixmap"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int    `json:"totalTiles"`
}

// RenderComplete is the final SSE event of a streamed render
type RenderComplete struct {
	ImageData       string  `json:"imageData"` // Base64 encoded PNG of the whole image
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	TotalTiles      int     `json:"totalTiles"`
	NumWorkers      int     `json:"numWorkers"`
	ElapsedMs       int64   `json:"elapsedMs"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and responds with the finished PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, preset, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}
	sceneObj, err := s.buildScene(req, preset)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	rt := renderer.NewRaytracer(sceneObj, req.Width, req.Height, renderer.DefaultConfig(), NewWebLogger(renderID, nil))

	img, _, err := rt.Render(r.Context(), nil)
	if err != nil {
		// Client went away
		log.Printf("[%s] %v", renderID, err)
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodePNG(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[%s] Failed to write image: %v", renderID, err)
	}
}

// handleRenderStream renders a scene while streaming console output and finished tiles via SSE
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, preset, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeSSEEvent(w, SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	sceneObj, err := s.buildScene(req, preset)
	if err != nil {
		s.writeSSEEvent(w, SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	rt := renderer.NewRaytracer(sceneObj, req.Width, req.Height, renderer.DefaultConfig(), NewWebLogger(renderID, consoleChan))

	// Sized so tile callbacks never block the workers
	tileChan := make(chan renderer.TileCompletionResult, rt.TileCount())

	type renderResult struct {
		img   *pixmap.Pixmap
		stats renderer.RenderStats
		err   error
	}
	done := make(chan renderResult, 1)
	go func() {
		img, stats, err := rt.Render(ctx, func(result renderer.TileCompletionResult) {
			tileChan <- result
		})
		done <- renderResult{img, stats, err}
	}()

	// All writes to w happen on this goroutine
	for {
		select {
		case msg := <-consoleChan:
			s.sendJSONEvent(w, "console", msg)

		case tile := <-tileChan:
			s.sendTileUpdate(w, tile)

		case result := <-done:
			s.drainEvents(w, consoleChan, tileChan)
			if result.err != nil {
				s.writeSSEEvent(w, SSEEvent{Type: "error", Data: result.err.Error()})
				return
			}
			s.sendComplete(w, result.img, result.stats)
			return

		case <-ctx.Done():
			// Client disconnected; Render stops on its own
			return
		}
	}
}

// drainEvents flushes events queued before the render finished
func (s *Server) drainEvents(w http.ResponseWriter, consoleChan chan ConsoleMessage, tileChan chan renderer.TileCompletionResult) {
	for {
		select {
		case tile := <-tileChan:
			s.sendTileUpdate(w, tile)
		case msg := <-consoleChan:
			s.sendJSONEvent(w, "console", msg)
		default:
			return
		}
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendTileUpdate encodes a finished tile and sends it to the client
func (s *Server) sendTileUpdate(w http.ResponseWriter, tile renderer.TileCompletionResult) {
	tileData, err := pixmapToBase64PNG(tile.TileImage)
	if err != nil {
		log.Printf("Error encoding tile %d: %v", tile.Tile.ID, err)
		return
	}

	bounds := tile.Tile.Bounds
	s.sendJSONEvent(w, "tile", TileUpdate{
		X:          bounds.Min.X,
		Y:          bounds.Min.Y,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		ImageData:  tileData,
		TileNumber: tile.TileNumber,
		TotalTiles: tile.TotalTiles,
	})
}

// sendComplete sends the finished image and render statistics
func (s *Server) sendComplete(w http.ResponseWriter, img *pixmap.Pixmap, stats renderer.RenderStats) {
	imageData, err := pixmapToBase64PNG(img)
	if err != nil {
		s.writeSSEEvent(w, SSEEvent{Type: "error", Data: err.Error()})
		return
	}

	s.sendJSONEvent(w, "complete", RenderComplete{
		ImageData:       imageData,
		Width:           img.Cols(),
		Height:          img.Rows(),
		TotalTiles:      stats.TotalTiles,
		NumWorkers:      stats.NumWorkers,
		ElapsedMs:       stats.Elapsed.Milliseconds(),
		PixelsPerSecond: stats.PixelsPerSecond(),
	})
}

func (s *Server) sendJSONEvent(w http.ResponseWriter, eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	s.writeSSEEvent(w, SSEEvent{Type: eventType, Data: string(data)})
}

// writeSSEEvent writes one event and flushes it to the client
func (s *Server) writeSSEEvent(w http.ResponseWriter, event SSEEvent) {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
		// Client disconnected during write
		return
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// pixmapToBase64PNG converts a pixmap to base64-encoded PNG
func pixmapToBase64PNG(p *pixmap.Pixmap) (string, error) {
	var buf bytes.Buffer
	if err := loaders.EncodePNG(&buf, p); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
