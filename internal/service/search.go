package service

import (
	"context"
	"slices"
	"strings"

	"github.com/podshelf/podshelf/internal/domain"
)

// Search filters the collection with a case-insensitive substring
// match of query against title, description, and author (any of the
// three), combined with an exact category match; an empty category
// matches everything. Results are cached per (query, category) and the
// cache is flushed on every catalog mutation.
func (s *CatalogService) Search(ctx context.Context, query, category string) []domain.Podcast {
	cacheKey := query + "\x00" + category
	if hit, ok := s.searches.Get(cacheKey); ok {
		return slices.Clone(hit.([]domain.Podcast))
	}

	q := strings.ToLower(query)

	s.mu.Lock()
	results := make([]domain.Podcast, 0, len(s.podcasts))
	for _, p := range s.podcasts {
		if matchesQuery(&p, q) && (category == "" || p.Category == category) {
			results = append(results, p)
		}
	}
	s.mu.Unlock()

	s.searches.SetDefault(cacheKey, slices.Clone(results))
	return results
}

// matchesQuery reports whether the lowercased query appears in the
// podcast's title, description, or author. q must already be lowercase.
func matchesQuery(p *domain.Podcast, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Author), q)
}
