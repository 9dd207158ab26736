package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/podshelf/podshelf/internal/domain"
)

const (
	podcastsKey     = "podcasts"
	interactionsKey = "userInteractions"
)

func favoritesKey(userID string) string {
	return "favorites_" + userID
}

// CatalogService owns the full podcast collection, the current
// playback target, and the per-user favorite sets. Mutations re-serialize
// the affected documents synchronously before returning, then wake
// subscribers. Identity-scoped operations (like, favorite, create,
// edit, delete) take the acting user explicitly and fail with
// ErrUnauthenticated when it is nil; callers resolve the user from
// their own authentication, never from ambient state.
type CatalogService struct {
	store domain.Store
	now   domain.Clock
	newID func() string

	// mu guards the in-memory state and serializes every
	// load-modify-save cycle against the store, including the
	// favorites and interaction documents.
	mu       sync.Mutex
	podcasts []domain.Podcast
	playback domain.PlaybackState
	subs     []func()

	searches *cache.Cache
}

// NewCatalogService creates a CatalogService. Call LoadInitial before use.
func NewCatalogService(store domain.Store, now domain.Clock) *CatalogService {
	return &CatalogService{
		store:    store,
		now:      now,
		newID:    uuid.NewString,
		searches: cache.New(30*time.Second, time.Minute),
	}
}

// LoadInitial loads the persisted podcast collection. When no
// collection exists yet it seeds the built-in default set and persists
// that seed, so a fresh store and a reloaded one read back the same way.
func (s *CatalogService) LoadInitial(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var podcasts []domain.Podcast
	err := loadDoc(ctx, s.store, podcastsKey, &podcasts)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		podcasts = DefaultPodcasts()
		if err := saveDoc(ctx, s.store, podcastsKey, podcasts); err != nil {
			return fmt.Errorf("persist seed podcasts: %w", err)
		}
	case err != nil:
		return fmt.Errorf("load podcasts: %w", err)
	}

	s.podcasts = podcasts
	return nil
}

// ListAll returns the collection in insertion order.
func (s *CatalogService) ListAll(ctx context.Context) []domain.Podcast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.podcasts)
}

// Get returns a single podcast by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Podcast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := s.podcasts[i]
	return &p, nil
}

// Create appends a new podcast owned by user. Both timestamps are set
// from the injected clock and the id is unique even for creations
// within the same millisecond.
func (s *CatalogService) Create(ctx context.Context, user *domain.User, draft domain.PodcastDraft) (*domain.Podcast, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if draft.Title == "" || draft.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}
	if draft.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrInvalidInput)
	}

	now := s.now()
	podcast := domain.Podcast{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		AudioURL:    draft.AudioURL,
		ImageURL:    draft.ImageURL,
		Duration:    draft.Duration,
		Category:    draft.Category,
		Author:      user.Username,
		AuthorID:    user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.podcasts = append(s.podcasts, podcast)
	err := s.savePodcastsLocked(ctx)
	if err != nil {
		s.podcasts = s.podcasts[:len(s.podcasts)-1]
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify()
	return &podcast, nil
}

// Update merges the non-nil fields of upd into the podcast and
// refreshes UpdatedAt. Only the owner may update.
func (s *CatalogService) Update(ctx context.Context, user *domain.User, id string, upd domain.PodcastUpdate) (*domain.Podcast, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if s.podcasts[i].AuthorID != user.ID {
		s.mu.Unlock()
		return nil, domain.ErrUnauthorized
	}

	p := &s.podcasts[i]
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.AudioURL != nil {
		p.AudioURL = *upd.AudioURL
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if upd.Duration != nil {
		p.Duration = *upd.Duration
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	p.UpdatedAt = s.now()

	updated := *p
	err := s.savePodcastsLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify()
	return &updated, nil
}

// Delete removes the podcast. When the removed podcast is the current
// playback target, the target and the playing flag are cleared in the
// same persisted change, so no consumer observes a dangling reference.
// Only the owner may delete.
func (s *CatalogService) Delete(ctx context.Context, user *domain.User, id string) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}

	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	if s.podcasts[i].AuthorID != user.ID {
		s.mu.Unlock()
		return domain.ErrUnauthorized
	}

	s.podcasts = slices.Delete(s.podcasts, i, i+1)
	if s.playback.Current != nil && s.playback.Current.ID == id {
		s.playback.Current = nil
		s.playback.Playing = false
	}
	err := s.savePodcastsLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// Like increments the podcast's like counter by one on behalf of user.
// Nothing prevents the same user from liking repeatedly; the counter
// is a raw tally.
func (s *CatalogService) Like(ctx context.Context, user *domain.User, id string) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}

	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	s.podcasts[i].Likes++
	if err := s.savePodcastsLocked(ctx); err != nil {
		s.podcasts[i].Likes--
		s.mu.Unlock()
		return err
	}
	s.markInteractionLocked(ctx, user.ID, id, func(in *domain.UserInteraction) {
		in.Liked = true
	})
	s.mu.Unlock()

	s.notify()
	return nil
}

// ToggleFavorite flips the podcast's membership in user's favorite set
// and persists only that user's set. Toggling twice restores the
// original membership.
func (s *CatalogService) ToggleFavorite(ctx context.Context, user *domain.User, id string) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}

	s.mu.Lock()
	favorites, err := s.loadFavoritesLocked(ctx, user.ID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	favorited := true
	if i := slices.Index(favorites, id); i >= 0 {
		favorites = slices.Delete(favorites, i, i+1)
		favorited = false
	} else {
		favorites = append(favorites, id)
	}

	if err := saveDoc(ctx, s.store, favoritesKey(user.ID), favorites); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist favorites: %w", err)
	}

	s.markInteractionLocked(ctx, user.ID, id, func(in *domain.UserInteraction) {
		in.Favorited = favorited
	})
	s.mu.Unlock()

	s.notify()
	return nil
}

// Favorites returns user's favorite podcast ids in the order they were
// added.
func (s *CatalogService) Favorites(ctx context.Context, user *domain.User) ([]string, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadFavoritesLocked(ctx, user.ID)
}

// Play makes the podcast the current playback target, starts playing,
// and increments its listen counter as a combined effect. A nil user
// is allowed: listens are counted for anonymous playback too, but the
// interaction read model only exists for signed-in users.
func (s *CatalogService) Play(ctx context.Context, user *domain.User, id string) error {
	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	s.podcasts[i].Listens++
	if err := s.savePodcastsLocked(ctx); err != nil {
		s.podcasts[i].Listens--
		s.mu.Unlock()
		return err
	}
	target := s.podcasts[i]
	s.playback = domain.PlaybackState{
		Current:     &target,
		Playing:     true,
		TrackLength: float64(target.Duration),
	}
	if user != nil {
		s.markInteractionLocked(ctx, user.ID, id, func(in *domain.UserInteraction) {
			in.Listened = true
			in.ListenCount++
		})
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Pause stops playback without changing the current target.
func (s *CatalogService) Pause(ctx context.Context) {
	s.mu.Lock()
	s.playback.Playing = false
	s.mu.Unlock()
	s.notify()
}

// TogglePlay flips the playing flag. It stays false while there is no
// current target.
func (s *CatalogService) TogglePlay(ctx context.Context) {
	s.mu.Lock()
	if s.playback.Current != nil {
		s.playback.Playing = !s.playback.Playing
	}
	s.mu.Unlock()
	s.notify()
}

// UpdateProgress ingests a transport tick from the audio element. A
// tick at or past the end of the track stops playback.
func (s *CatalogService) UpdateProgress(ctx context.Context, currentTime, trackLength float64) {
	s.mu.Lock()
	s.playback.CurrentTime = currentTime
	if trackLength > 0 {
		s.playback.TrackLength = trackLength
	}
	if s.playback.TrackLength > 0 && currentTime >= s.playback.TrackLength {
		s.playback.Playing = false
	}
	s.mu.Unlock()
	s.notify()
}

// Playback returns a snapshot of the transport state.
func (s *CatalogService) Playback(ctx context.Context) domain.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.playback
	if state.Current != nil {
		current := *state.Current
		state.Current = &current
	}
	return state
}

// Interaction returns user's interaction record for the podcast, or
// nil when none has been recorded yet.
func (s *CatalogService) Interaction(ctx context.Context, user *domain.User, podcastID string) (*domain.UserInteraction, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var m map[string]domain.UserInteraction
	if err := loadDoc(ctx, s.store, interactionsKey, &m); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load interactions: %w", err)
	}

	in, ok := m[user.ID+"_"+podcastID]
	if !ok {
		return nil, nil
	}
	return &in, nil
}

// Subscribe registers fn to run after every catalog mutation. The
// callback must not call back into the service.
func (s *CatalogService) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// loadFavoritesLocked reads the user's favorite set. Callers hold s.mu.
func (s *CatalogService) loadFavoritesLocked(ctx context.Context, userID string) ([]string, error) {
	var favorites []string
	if err := loadDoc(ctx, s.store, favoritesKey(userID), &favorites); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return favorites, nil
}

// markInteractionLocked updates the derived interaction read model.
// Callers hold s.mu so the load-modify-save cycle never interleaves.
// The primary mutation has already been persisted when this runs, so a
// failure here is logged and swallowed rather than unwinding it.
func (s *CatalogService) markInteractionLocked(ctx context.Context, userID, podcastID string, apply func(*domain.UserInteraction)) {
	var m map[string]domain.UserInteraction
	if err := loadDoc(ctx, s.store, interactionsKey, &m); err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Warn("load interactions", "user", userID, "podcast", podcastID, "error", err)
		return
	}
	if m == nil {
		m = make(map[string]domain.UserInteraction)
	}

	key := userID + "_" + podcastID
	in := m[key]
	in.UserID = userID
	in.PodcastID = podcastID
	apply(&in)
	m[key] = in

	if err := saveDoc(ctx, s.store, interactionsKey, m); err != nil {
		slog.Warn("persist interactions", "user", userID, "podcast", podcastID, "error", err)
	}
}

// savePodcastsLocked persists the full collection snapshot and drops
// any cached search results. Callers hold s.mu.
func (s *CatalogService) savePodcastsLocked(ctx context.Context) error {
	if err := saveDoc(ctx, s.store, podcastsKey, s.podcasts); err != nil {
		return fmt.Errorf("persist podcasts: %w", err)
	}
	s.searches.Flush()
	return nil
}

func (s *CatalogService) indexOfLocked(id string) int {
	return slices.IndexFunc(s.podcasts, func(p domain.Podcast) bool { return p.ID == id })
}

func (s *CatalogService) notify() {
	s.mu.Lock()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
