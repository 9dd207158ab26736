package handler

import (
	"net/http"

	"github.com/podshelf/podshelf/internal/service"
)

// PlayerHandler handles transport requests from the audio player UI.
type PlayerHandler struct {
	catalog *service.CatalogService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(catalog *service.CatalogService) *PlayerHandler {
	return &PlayerHandler{catalog: catalog}
}

// HandlePlay starts playback of the podcast, counting the listen.
// POST /api/podcasts/{id}/play
func (h *PlayerHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Play(r.Context(), UserFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeDomainError(w, "play podcast", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"player": toPlayerDTO(h.catalog.Playback(r.Context()))})
}

// HandlePause stops playback, keeping the current target.
// POST /api/player/pause
func (h *PlayerHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	h.catalog.Pause(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"player": toPlayerDTO(h.catalog.Playback(r.Context()))})
}

// HandleToggle flips the playing flag.
// POST /api/player/toggle
func (h *PlayerHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	h.catalog.TogglePlay(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"player": toPlayerDTO(h.catalog.Playback(r.Context()))})
}

// HandleProgress ingests a transport tick from the audio element.
// POST /api/player/progress
// Request: {"currentTime": 12.5, "duration": 2700}
func (h *PlayerHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentTime float64 `json:"currentTime"`
		Duration    float64 `json:"duration"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	h.catalog.UpdateProgress(r.Context(), req.CurrentTime, req.Duration)
	writeJSON(w, http.StatusOK, map[string]any{"player": toPlayerDTO(h.catalog.Playback(r.Context()))})
}

// HandleState returns the current transport state.
// GET /api/player
func (h *PlayerHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"player": toPlayerDTO(h.catalog.Playback(r.Context()))})
}
