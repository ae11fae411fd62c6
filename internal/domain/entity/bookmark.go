package entity

// Bookmark is a named address saved by the user.
type Bookmark struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewBookmark creates a bookmark, naming it after the url when name is blank.
func NewBookmark(name, url string) Bookmark {
	if name == "" {
		name = url
	}
	return Bookmark{Name: name, URL: url}
}
