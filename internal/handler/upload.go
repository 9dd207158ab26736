package handler

import (
	"math/rand/v2"
	"net/http"
)

// Upload is simulated: instead of accepting media, the server hands
// back a placeholder URL from a fixed list. Real media storage is out
// of scope.
var placeholderImages = []string{
	"https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg",
	"https://images.pexels.com/photos/3817543/pexels-photo-3817543.jpeg",
	"https://images.pexels.com/photos/256417/pexels-photo-256417.jpeg",
	"https://images.pexels.com/photos/1117132/pexels-photo-1117132.jpeg",
}

const placeholderAudio = "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav"

// HandleUpload returns a placeholder URL for the requested kind.
// POST /api/uploads/{kind}  (kind: "image" or "audio")
// Audio responses include a randomized duration between 10 and 70 minutes.
func HandleUpload(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("kind") {
	case "image":
		writeJSON(w, http.StatusOK, map[string]any{
			"url": placeholderImages[rand.IntN(len(placeholderImages))],
		})
	case "audio":
		writeJSON(w, http.StatusOK, map[string]any{
			"url":      placeholderAudio,
			"duration": rand.IntN(3600) + 600,
		})
	default:
		writeError(w, http.StatusNotFound, "Unknown upload kind.")
	}
}
