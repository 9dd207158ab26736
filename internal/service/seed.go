package service

import (
	"slices"
	"time"

	"github.com/podshelf/podshelf/internal/domain"
)

var builtinCategories = []domain.Category{
	{ID: "1", Name: "Technology", Icon: "Cpu", Color: "#8B5CF6"},
	{ID: "2", Name: "Business", Icon: "Briefcase", Color: "#3B82F6"},
	{ID: "3", Name: "Comedy", Icon: "Laugh", Color: "#F59E0B"},
	{ID: "4", Name: "Education", Icon: "GraduationCap", Color: "#10B981"},
	{ID: "5", Name: "Health", Icon: "Heart", Color: "#EF4444"},
	{ID: "6", Name: "True Crime", Icon: "Search", Color: "#6B7280"},
}

// Categories returns the fixed built-in category list.
func Categories() []domain.Category {
	return slices.Clone(builtinCategories)
}

var defaultPodcasts = []domain.Podcast{
	{
		ID:          "1",
		Title:       "Tech Talk Daily",
		Description: "Daily conversations about the technology shaping tomorrow, from AI breakthroughs to the gadgets on your desk.",
		AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		ImageURL:    "https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg",
		Duration:    2700,
		Category:    "Technology",
		Author:      "Alex Rivera",
		AuthorID:    "seed-1",
		Likes:       128,
		Listens:     2340,
		CreatedAt:   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		Title:       "The Startup Grind",
		Description: "Founders tell the unpolished stories behind their companies: the pivots, the near-deaths, and the wins.",
		AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		ImageURL:    "https://images.pexels.com/photos/3817543/pexels-photo-3817543.jpeg",
		Duration:    3300,
		Category:    "Business",
		Author:      "Maya Chen",
		AuthorID:    "seed-2",
		Likes:       96,
		Listens:     1820,
		CreatedAt:   time.Date(2024, 2, 3, 14, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 2, 3, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:          "3",
		Title:       "Laugh Lines",
		Description: "Stand-up comedians riff on the week's absurdities. Loud, unscripted, occasionally insightful.",
		AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		ImageURL:    "https://images.pexels.com/photos/256417/pexels-photo-256417.jpeg",
		Duration:    1980,
		Category:    "Comedy",
		Author:      "Danny Okafor",
		AuthorID:    "seed-3",
		Likes:       211,
		Listens:     4100,
		CreatedAt:   time.Date(2024, 2, 20, 19, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 2, 20, 19, 0, 0, 0, time.UTC),
	},
	{
		ID:          "4",
		Title:       "History Unboxed",
		Description: "A teacher and a skeptic unpack one historical event per episode, separating the record from the myth.",
		AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		ImageURL:    "https://images.pexels.com/photos/1117132/pexels-photo-1117132.jpeg",
		Duration:    3600,
		Category:    "Education",
		Author:      "Sofia Laurent",
		AuthorID:    "seed-4",
		Likes:       74,
		Listens:     1310,
		CreatedAt:   time.Date(2024, 3, 8, 8, 15, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 3, 8, 8, 15, 0, 0, time.UTC),
	},
	{
		ID:          "5",
		Title:       "Mind and Body",
		Description: "Practical, evidence-based conversations on sleep, movement, and mental health with working clinicians.",
		AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		ImageURL:    "https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg",
		Duration:    2400,
		Category:    "Health",
		Author:      "Dr. Priya Nair",
		AuthorID:    "seed-5",
		Likes:       152,
		Listens:     2760,
		CreatedAt:   time.Date(2024, 3, 25, 7, 45, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 3, 25, 7, 45, 0, 0, time.UTC),
	},
	{
		ID:          "6",
		Title:       "Cold Case Files",
		Description: "Long-form investigations into unsolved cases, built from court records and first-hand interviews.",
		AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		ImageURL:    "https://images.pexels.com/photos/3817543/pexels-photo-3817543.jpeg",
		Duration:    4200,
		Category:    "True Crime",
		Author:      "Jonah Beck",
		AuthorID:    "seed-6",
		Likes:       189,
		Listens:     3650,
		CreatedAt:   time.Date(2024, 4, 12, 21, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 4, 12, 21, 0, 0, 0, time.UTC),
	},
}

// DefaultPodcasts returns the built-in seed collection written to an
// empty store on first load.
func DefaultPodcasts() []domain.Podcast {
	return slices.Clone(defaultPodcasts)
}
