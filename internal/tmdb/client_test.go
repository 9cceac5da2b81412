package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davltran/cinequiz/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.TMDB.APIKey = "test-key"
	cfg.TMDB.BaseURL = serverURL
	cfg.TMDB.ImageBaseURL = "https://image.example.com/w500"
	return NewClient(cfg)
}

func TestPopularMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "fr-FR", r.URL.Query().Get("language"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[
			{"id":11,"title":"Le Parrain","poster_path":"/a.jpg"},
			{"id":22,"title":"Alien","poster_path":"/b.jpg"}
		],"total_pages":1,"total_results":2}`))
	}))
	defer server.Close()

	movies, err := newTestClient(server.URL).PopularMovies(context.Background(), "fr-FR")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, 11, movies[0].ID)
	assert.Equal(t, "Le Parrain", movies[0].Title)
	assert.Equal(t, "/a.jpg", movies[0].PosterPath)
}

func TestPopularMoviesRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).PopularMovies(context.Background(), "en-US")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemoteUnavailable))
}

func TestPopularMoviesUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).PopularMovies(context.Background(), "en-US")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemoteUnavailable))
}

func TestMovieImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/42/images", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"posters":[{"file_path":"/p1.jpg"},{"file_path":""},{"file_path":"/p2.jpg"}]}`))
	}))
	defer server.Close()

	paths, err := newTestClient(server.URL).MovieImages(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p1.jpg", "/p2.jpg"}, paths)
}

func TestMovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/42", r.URL.Path)
		assert.Equal(t, "de-DE", r.URL.Query().Get("language"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"title":"Der Pate"}`))
	}))
	defer server.Close()

	details, err := newTestClient(server.URL).MovieDetails(context.Background(), 42, "de-DE")
	require.NoError(t, err)
	assert.Equal(t, 42, details.ID)
	assert.Equal(t, "Der Pate", details.Title)
}

func TestSupportedLanguagesCurated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/configuration/languages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"iso_639_1":"aa"},{"iso_639_1":"ab"}]`))
	}))
	defer server.Close()

	langs := newTestClient(server.URL).SupportedLanguages(context.Background())
	require.Len(t, langs, 12)

	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Code)
	}
	assert.Contains(t, codes, "en")
	assert.Contains(t, codes, "ja")
	// Curated, not the raw provider response.
	assert.NotContains(t, codes, "aa")
}

func TestSupportedLanguagesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	langs := newTestClient(server.URL).SupportedLanguages(context.Background())
	require.Len(t, langs, 1)
	assert.Equal(t, "en", langs[0].Code)
	assert.Equal(t, "English", langs[0].EnglishName)
}

func TestImageURL(t *testing.T) {
	client := newTestClient("http://unused")
	assert.Equal(t, "https://image.example.com/w500/p.jpg", client.ImageURL("/p.jpg"))
}
