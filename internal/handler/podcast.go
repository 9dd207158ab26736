package handler

import (
	"net/http"

	"github.com/podshelf/podshelf/internal/domain"
	"github.com/podshelf/podshelf/internal/service"
)

// PodcastHandler handles catalog browsing, CRUD, and engagement requests.
type PodcastHandler struct {
	catalog *service.CatalogService
}

// NewPodcastHandler creates a new PodcastHandler.
func NewPodcastHandler(catalog *service.CatalogService) *PodcastHandler {
	return &PodcastHandler{catalog: catalog}
}

// HandleList returns the catalog, filtered by the optional q and
// category query parameters.
// GET /api/podcasts?q=&category=
func (h *PodcastHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var podcasts []domain.Podcast
	if query == "" && category == "" {
		podcasts = h.catalog.ListAll(r.Context())
	} else {
		podcasts = h.catalog.Search(r.Context(), query, category)
	}

	writeJSON(w, http.StatusOK, map[string]any{"podcasts": podcasts})
}

// HandleGet returns a single podcast.
// GET /api/podcasts/{id}
func (h *PodcastHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	podcast, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, "get podcast", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"podcast": podcast})
}

type podcastRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AudioURL    *string `json:"audioUrl"`
	ImageURL    *string `json:"imageUrl"`
	Duration    *int    `json:"duration"`
	Category    *string `json:"category"`
}

// HandleCreate creates a new podcast owned by the authenticated user.
// POST /api/podcasts
func (h *PodcastHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req podcastRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	draft := domain.PodcastDraft{}
	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.AudioURL != nil {
		draft.AudioURL = *req.AudioURL
	}
	if req.ImageURL != nil {
		draft.ImageURL = *req.ImageURL
	}
	if req.Duration != nil {
		draft.Duration = *req.Duration
	}
	if req.Category != nil {
		draft.Category = *req.Category
	}

	podcast, err := h.catalog.Create(r.Context(), UserFromContext(r.Context()), draft)
	if err != nil {
		writeDomainError(w, "create podcast", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"podcast": podcast})
}

// HandleUpdate merges the supplied fields into the podcast.
// PUT /api/podcasts/{id}
func (h *PodcastHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req podcastRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	podcast, err := h.catalog.Update(r.Context(), UserFromContext(r.Context()), r.PathValue("id"), domain.PodcastUpdate{
		Title:       req.Title,
		Description: req.Description,
		AudioURL:    req.AudioURL,
		ImageURL:    req.ImageURL,
		Duration:    req.Duration,
		Category:    req.Category,
	})
	if err != nil {
		writeDomainError(w, "update podcast", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"podcast": podcast})
}

// HandleDelete removes the podcast.
// DELETE /api/podcasts/{id}
func (h *PodcastHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), UserFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeDomainError(w, "delete podcast", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleLike increments the podcast's like counter.
// POST /api/podcasts/{id}/like
func (h *PodcastHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Like(r.Context(), UserFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeDomainError(w, "like podcast", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleToggleFavorite flips the podcast in the user's favorite set.
// POST /api/podcasts/{id}/favorite
func (h *PodcastHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.ToggleFavorite(r.Context(), UserFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeDomainError(w, "toggle favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleFavorites returns the user's favorited podcasts, skipping ids
// whose podcast no longer exists.
// GET /api/favorites
func (h *PodcastHandler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := h.catalog.Favorites(r.Context(), UserFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, "list favorites", err)
		return
	}

	podcasts := make([]domain.Podcast, 0, len(ids))
	for _, id := range ids {
		if p, err := h.catalog.Get(r.Context(), id); err == nil {
			podcasts = append(podcasts, *p)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"podcasts": podcasts, "ids": ids})
}

// HandleInteraction returns the user's interaction record for the
// podcast, or null when none exists.
// GET /api/podcasts/{id}/interaction
func (h *PodcastHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	interaction, err := h.catalog.Interaction(r.Context(), UserFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, "get interaction", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"interaction": interaction})
}
