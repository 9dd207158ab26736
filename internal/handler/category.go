package handler

import (
	"net/http"

	"github.com/podshelf/podshelf/internal/service"
)

// HandleCategories returns the fixed built-in category list.
// GET /api/categories
func HandleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": service.Categories()})
}
