package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bribes/minecraft-avatar-api/internal/imaging"
)

// errorBody is the only error payload clients ever see.
var errorBody = mustMarshalJSON(struct {
	Error bool `json:"error"`
}{true})

// handleCape serves /cape/{textureId}/{width}?back
func (s *Server) handleCape(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	width, err := s.parseSize(vars["width"], imaging.DefaultCapeWidth)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, r, vars["textureId"], imaging.CapeOptions{
		Width: width,
		Back:  hasQueryParam(r, "back"),
	})
}

// handleFace serves /face/{textureId}/{size}?nolayers
func (s *Server) handleFace(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	size, err := s.parseSize(vars["size"], imaging.DefaultFaceSize)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, r, vars["textureId"], imaging.FaceOptions{
		Size:     size,
		NoLayers: hasQueryParam(r, "nolayers"),
	})
}

// render fetches the texture and writes the derived avatar. Any error on the
// way ends in the flat 404 response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, rawID string, op imaging.Operation) {
	id := textureID(rawID)

	data, err := s.fetcher.Fetch(r.Context(), id)
	if err != nil {
		s.fail(w, r, fmt.Errorf("texture %s: %w", id, err))
		return
	}

	result, err := imaging.Render(data, op)
	if err != nil {
		s.fail(w, r, fmt.Errorf("texture %s: %w", id, err))
		return
	}

	loggerFrom(r.Context(), s.logger).Debug("rendered avatar",
		zap.String("texture_id", id),
		zap.String("operation", op.Name()),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
	)

	h := w.Header()
	h.Set("Content-Type", result.MimeType)
	h.Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}

// fail logs err and writes the generic error response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	loggerFrom(r.Context(), s.logger).Error("avatar request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write(errorBody)
}

// parseSize reads an optional size path segment. An empty segment yields def.
func (s *Server) parseSize(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", imaging.ErrInvalidSize, raw)
	}
	if n <= 0 || n > s.maxSize {
		return 0, fmt.Errorf("%w: %d not in 1..%d", imaging.ErrInvalidSize, n, s.maxSize)
	}
	return n, nil
}

// textureID strips a trailing ".png" from the path segment.
func textureID(raw string) string {
	return strings.TrimSuffix(raw, ".png")
}

// hasQueryParam reports whether the query string contains name, with or
// without a value.
func hasQueryParam(r *http.Request, name string) bool {
	_, present := r.URL.Query()[name]
	return present
}

// handleHealth returns health status
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(mustMarshalJSON(map[string]string{"status": "ok"}))
}

// mustMarshalJSON converts a value to JSON.
// On marshal failure, returns nil.
func mustMarshalJSON(v interface{}) []byte {
	b, _ := json.Marshal(v)
	return b
}
