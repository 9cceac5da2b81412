package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/davltran/cinequiz/config"
	"github.com/davltran/cinequiz/internal/model"
	"github.com/rs/zerolog/log"
)

// ErrRemoteUnavailable is returned whenever the upstream catalog cannot be
// reached or answers with a non-success status.
var ErrRemoteUnavailable = errors.New("movie provider unavailable")

// Client is the read-only view of the movie catalog the quiz needs.
type Client interface {
	PopularMovies(ctx context.Context, language string) ([]model.Movie, error)
	MovieImages(ctx context.Context, movieID int) ([]string, error)
	MovieDetails(ctx context.Context, movieID int, language string) (model.MovieDetails, error)
	// SupportedLanguages never fails; on upstream trouble it degrades to a
	// single-entry English list.
	SupportedLanguages(ctx context.Context) []model.Language
	ImageURL(posterPath string) string
}

type httpClient struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	client       *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &httpClient{
		apiKey:       cfg.TMDB.APIKey,
		baseURL:      cfg.TMDB.BaseURL,
		imageBaseURL: cfg.TMDB.ImageBaseURL,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

// getJSON performs an authenticated GET and decodes the body into dest.
func (c *httpClient) getJSON(ctx context.Context, path string, query url.Values, dest interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", ErrRemoteUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ErrRemoteUnavailable, path, err)
	}
	return nil
}

func (c *httpClient) PopularMovies(ctx context.Context, language string) ([]model.Movie, error) {
	query := url.Values{}
	query.Set("language", language)

	var resp popularResponse
	if err := c.getJSON(ctx, "/movie/popular", query, &resp); err != nil {
		log.Error().Err(err).Str("language", language).Msg("Failed to fetch popular movies")
		return nil, err
	}

	movies := make([]model.Movie, 0, len(resp.Results))
	for _, r := range resp.Results {
		movies = append(movies, model.Movie{ID: r.ID, Title: r.Title, PosterPath: r.PosterPath})
	}
	return movies, nil
}

func (c *httpClient) MovieImages(ctx context.Context, movieID int) ([]string, error) {
	var resp imagesResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d/images", movieID), nil, &resp); err != nil {
		log.Error().Err(err).Int("movie_id", movieID).Msg("Failed to fetch movie images")
		return nil, err
	}

	paths := make([]string, 0, len(resp.Posters))
	for _, p := range resp.Posters {
		if p.FilePath != "" {
			paths = append(paths, p.FilePath)
		}
	}
	return paths, nil
}

func (c *httpClient) MovieDetails(ctx context.Context, movieID int, language string) (model.MovieDetails, error) {
	query := url.Values{}
	query.Set("language", language)

	var resp detailsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", movieID), query, &resp); err != nil {
		log.Warn().Err(err).Int("movie_id", movieID).Str("language", language).Msg("Failed to fetch movie details")
		return model.MovieDetails{}, err
	}
	return model.MovieDetails{ID: resp.ID, Title: resp.Title}, nil
}

func (c *httpClient) SupportedLanguages(ctx context.Context) []model.Language {
	// The live endpoint returns ~180 entries, most useless for a selector.
	// It is probed only to confirm the provider is reachable; the curated
	// list below is what the UI gets either way.
	var probe []struct {
		Code string `json:"iso_639_1"`
	}
	if err := c.getJSON(ctx, "/configuration/languages", nil, &probe); err != nil {
		log.Warn().Err(err).Msg("Language list unavailable, falling back to English only")
		return fallbackLanguages()
	}
	return curatedLanguages()
}

func (c *httpClient) ImageURL(posterPath string) string {
	return c.imageBaseURL + posterPath
}
