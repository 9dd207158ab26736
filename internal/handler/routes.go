package handler

import (
	"net/http"

	"github.com/podshelf/podshelf/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	sessions *service.SessionService,
	catalog *service.CatalogService,
	loginLimiter *service.TokenBucket,
	cookieSecure bool,
) {
	auth := NewAuthHandler(sessions, loginLimiter, cookieSecure)
	podcasts := NewPodcastHandler(catalog)
	player := NewPlayerHandler(catalog)

	requireAuth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(sessions, h)
	}
	optionalAuth := func(h http.HandlerFunc) http.Handler {
		return OptionalAuth(sessions, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/signup", auth.HandleSignup)
	mux.HandleFunc("POST /api/auth/login", auth.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", auth.HandleLogout)
	mux.Handle("GET /api/auth/me", requireAuth(auth.HandleMe))

	mux.Handle("GET /api/podcasts", optionalAuth(podcasts.HandleList))
	mux.Handle("GET /api/podcasts/{id}", optionalAuth(podcasts.HandleGet))
	mux.Handle("POST /api/podcasts", requireAuth(podcasts.HandleCreate))
	mux.Handle("PUT /api/podcasts/{id}", requireAuth(podcasts.HandleUpdate))
	mux.Handle("DELETE /api/podcasts/{id}", requireAuth(podcasts.HandleDelete))

	mux.Handle("POST /api/podcasts/{id}/like", requireAuth(podcasts.HandleLike))
	mux.Handle("POST /api/podcasts/{id}/favorite", requireAuth(podcasts.HandleToggleFavorite))
	mux.Handle("GET /api/favorites", requireAuth(podcasts.HandleFavorites))
	mux.Handle("GET /api/podcasts/{id}/interaction", requireAuth(podcasts.HandleInteraction))

	mux.Handle("POST /api/podcasts/{id}/play", optionalAuth(player.HandlePlay))
	mux.HandleFunc("POST /api/player/pause", player.HandlePause)
	mux.HandleFunc("POST /api/player/toggle", player.HandleToggle)
	mux.HandleFunc("POST /api/player/progress", player.HandleProgress)
	mux.HandleFunc("GET /api/player", player.HandleState)

	mux.HandleFunc("GET /api/categories", HandleCategories)
	mux.Handle("POST /api/uploads/{kind}", RequireAuth(sessions, http.HandlerFunc(HandleUpload)))
}
