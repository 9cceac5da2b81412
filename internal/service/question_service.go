package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/davltran/cinequiz/internal/model"
	"github.com/davltran/cinequiz/internal/tmdb"
	"github.com/rs/zerolog/log"
)

const optionCount = 4

// GeneratedQuestion bundles a fresh question with what the session needs to
// track it: the correct movie's id for the used-history, and the fully
// qualified poster URL for background theming.
type GeneratedQuestion struct {
	Question     *model.Question
	UsedMovieID  int
	FullImageURL string
}

type QuestionService interface {
	Generate(ctx context.Context, language string, usedIDs map[int]struct{}) (*GeneratedQuestion, error)
}

type questionService struct {
	catalog tmdb.Client
}

func NewQuestionService(catalog tmdb.Client) QuestionService {
	return &questionService{catalog: catalog}
}

func (s *questionService) Generate(ctx context.Context, language string, usedIDs map[int]struct{}) (*GeneratedQuestion, error) {
	movies, err := s.catalog.PopularMovies(ctx, language)
	if err != nil {
		return nil, err
	}
	if len(movies) < optionCount {
		return nil, fmt.Errorf("popular list has only %d movies, need %d", len(movies), optionCount)
	}

	// Keep correct answers from repeating until the visible catalog page is
	// exhausted, then fall back to the full list rather than stalling.
	available := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if _, seen := usedIDs[m.ID]; !seen {
			available = append(available, m)
		}
	}
	if len(available) == 0 {
		available = movies
	}

	correct := available[rand.Intn(len(available))]

	image := correct.PosterPath
	posters, err := s.catalog.MovieImages(ctx, correct.ID)
	if err != nil {
		return nil, err
	}
	if len(posters) > 0 {
		image = posters[rand.Intn(len(posters))]
	}

	// Distractors come from the unfiltered list: a movie already used as a
	// correct answer may still reappear as a wrong option.
	pool := make([]model.Movie, 0, len(movies)-1)
	for _, m := range movies {
		if m.ID != correct.ID {
			pool = append(pool, m)
		}
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	options := make([]model.Option, 0, optionCount)
	options = append(options, model.Option{ID: correct.ID, Title: correct.Title})
	for _, m := range pool[:optionCount-1] {
		options = append(options, model.Option{ID: m.ID, Title: m.Title})
	}
	rand.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	log.Debug().Int("movie_id", correct.ID).Str("language", language).Msg("Generated question")

	return &GeneratedQuestion{
		Question: &model.Question{
			Image:     image,
			Answer:    correct.Title,
			Options:   options,
			CorrectID: correct.ID,
		},
		UsedMovieID:  correct.ID,
		FullImageURL: s.catalog.ImageURL(image),
	}, nil
}
