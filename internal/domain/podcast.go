package domain

import "time"

// Podcast is a single catalog entry. The JSON field names mirror the
// persisted document layout, which is rewritten wholesale under the
// "podcasts" key on every mutation.
type Podcast struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AudioURL    string    `json:"audioUrl"`
	ImageURL    string    `json:"imageUrl"`
	Duration    int       `json:"duration"` // seconds
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"authorId"`
	Likes       int       `json:"likes"`
	Listens     int       `json:"listens"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PodcastDraft carries the caller-supplied fields of a new podcast.
// The catalog assigns id, author, counters, and timestamps itself.
type PodcastDraft struct {
	Title       string
	Description string
	AudioURL    string
	ImageURL    string
	Duration    int
	Category    string
}

// PodcastUpdate is a partial update; nil fields are left untouched.
type PodcastUpdate struct {
	Title       *string
	Description *string
	AudioURL    *string
	ImageURL    *string
	Duration    *int
	Category    *string
}
