package model

// Movie is one entry of the upstream popular-movie catalog. The ID is stable
// across languages; Title is localized; PosterPath is language-independent.
type Movie struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// MovieDetails holds the localized fields of a single-movie lookup.
type MovieDetails struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
