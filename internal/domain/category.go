package domain

// Category is one entry of the fixed built-in category list served to
// the view layer. Podcast.Category stores the Name, not the ID; the
// catalog does not enforce that it matches a known category.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
