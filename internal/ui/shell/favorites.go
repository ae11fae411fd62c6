package shell

// Favorite is a shortcut listed on the start page.
type Favorite struct {
	Name string
	URL  string
}

// Favorites are shown while the active tab sits on the start address.
var Favorites = []Favorite{
	{Name: "Reddit", URL: "https://www.reddit.com"},
	{Name: "GitHub", URL: "https://github.com"},
	{Name: "YouTube", URL: "https://www.youtube.com"},
	{Name: "StackOverflow", URL: "https://stackoverflow.com"},
	{Name: "ChatGPT", URL: "https://chat.openai.com"},
	{Name: "Google", URL: "https://www.google.com"},
}
