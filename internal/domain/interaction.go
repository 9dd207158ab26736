package domain

// UserInteraction aggregates one user's engagement with one podcast.
// It is a derived read model maintained alongside the authoritative
// favorites lists and like/listen counters, persisted as a map keyed
// by "<userID>_<podcastID>" under the "userInteractions" key.
type UserInteraction struct {
	UserID      string `json:"userId"`
	PodcastID   string `json:"podcastId"`
	Liked       bool   `json:"liked"`
	Favorited   bool   `json:"favorited"`
	Listened    bool   `json:"listened"`
	ListenCount int    `json:"listenCount"`
}
