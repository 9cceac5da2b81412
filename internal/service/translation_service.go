package service

import (
	"context"
	"sync"

	"github.com/davltran/cinequiz/internal/model"
	"github.com/davltran/cinequiz/internal/tmdb"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type TranslationService interface {
	// Translate returns a copy of the question with every option title
	// re-fetched in the new language. Translation is best-effort per
	// option: a failed or empty lookup keeps the previous title. The
	// input question is never mutated.
	Translate(ctx context.Context, q *model.Question, language string) *model.Question
}

type translationService struct {
	catalog tmdb.Client
}

func NewTranslationService(catalog tmdb.Client) TranslationService {
	return &translationService{catalog: catalog}
}

func (s *translationService) Translate(ctx context.Context, q *model.Question, language string) *model.Question {
	translated := &model.Question{}
	copier.Copy(translated, q)
	translated.Options = make([]model.Option, len(q.Options))
	copy(translated.Options, q.Options)

	var wg sync.WaitGroup
	for i := range translated.Options {
		wg.Add(1)
		go func(opt *model.Option) {
			defer wg.Done()
			details, err := s.catalog.MovieDetails(ctx, opt.ID, language)
			if err != nil || details.Title == "" {
				// Keep the previous title; a partially localized
				// option set beats a failed switch.
				log.Debug().Err(err).Int("movie_id", opt.ID).Str("language", language).Msg("Option kept previous title")
				return
			}
			opt.Title = details.Title
		}(&translated.Options[i])
	}
	wg.Wait()

	if correct, ok := translated.CorrectOption(); ok {
		translated.Answer = correct.Title
	}
	return translated
}
