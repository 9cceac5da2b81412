// Package tmdb wraps the TMDB REST API as the quiz's movie catalog.
package tmdb

// popularResponse mirrors GET /movie/popular.
type popularResponse struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

type movieResult struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// imagesResponse mirrors GET /movie/{id}/images.
type imagesResponse struct {
	ID      int      `json:"id"`
	Posters []poster `json:"posters"`
}

type poster struct {
	FilePath string `json:"file_path"`
}

// detailsResponse mirrors GET /movie/{id}; only the localized title matters.
type detailsResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
