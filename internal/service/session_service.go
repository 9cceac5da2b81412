package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/davltran/cinequiz/config"
	"github.com/davltran/cinequiz/internal/model"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrAnswerNotAllowed guards the at-most-one-answer rule: a second
	// selection for the same question is rejected, not re-scored.
	ErrAnswerNotAllowed = errors.New("answer not allowed in current state")
)

const loadErrorFeedback = "Error loading movie data."

// Session is one player's quiz state. All fields mutate only under mu,
// through the sessionService transitions.
type Session struct {
	ID string

	mu sync.Mutex
	// seq tags every superseding operation; async results compare their
	// captured value against it and discard themselves when stale.
	seq uint64

	status          model.SessionStatus
	question        *model.Question
	selected        *string
	verdict         model.Verdict
	feedback        string
	soundCue        string
	correctCount    int
	totalCount      int
	usedMovieIDs    map[int]struct{}
	language        string
	soundEnabled    bool
	selectorVisible bool
	theme           string

	imageURL string

	advance  *time.Timer
	lastSeen time.Time
}

// Snapshot is an immutable copy of session state handed to the view layer.
type Snapshot struct {
	ID              string
	Status          model.SessionStatus
	Question        *model.Question
	ImageURL        string
	Selected        *string
	Verdict         model.Verdict
	Feedback        string
	SoundCue        string
	CorrectCount    int
	TotalCount      int
	Language        string
	Languages       []model.Language
	SoundEnabled    bool
	SelectorVisible bool
	Theme           string
}

type SessionService interface {
	Create(ctx context.Context) (*Snapshot, error)
	Get(id string) (*Snapshot, error)
	Answer(id, optionTitle string) (*Snapshot, error)
	ChangeLanguage(ctx context.Context, id, code string) (*Snapshot, error)
	NextQuestion(ctx context.Context, id string) (*Snapshot, error)
	ToggleSound(id string) (*Snapshot, error)
	ToggleSelector(id string) (*Snapshot, error)
	Languages(ctx context.Context) []model.Language
	Close()
}

type sessionService struct {
	cfg          *config.Config
	questions    QuestionService
	translations TranslationService
	langSource   LanguageSource

	mu       sync.RWMutex
	sessions map[string]*Session

	langOnce sync.Once
	langs    []model.Language

	janitorStop chan struct{}
	janitorDone chan struct{}
}

// LanguageSource is the slice of the catalog client the session service
// consumes directly.
type LanguageSource interface {
	SupportedLanguages(ctx context.Context) []model.Language
}

func NewSessionService(cfg *config.Config, questions QuestionService, translations TranslationService, langSource LanguageSource) SessionService {
	s := &sessionService{
		cfg:          cfg,
		questions:    questions,
		translations: translations,
		langSource:   langSource,
		sessions:     make(map[string]*Session),
		janitorStop:  make(chan struct{}),
		janitorDone:  make(chan struct{}),
	}
	go s.runJanitor()
	return s
}

// Languages returns the selector list, fetched from upstream at most once per
// process. The curated list is static, so all sessions share it.
func (s *sessionService) Languages(ctx context.Context) []model.Language {
	s.langOnce.Do(func() {
		s.langs = s.langSource.SupportedLanguages(ctx)
	})
	return s.langs
}

func (s *sessionService) Create(ctx context.Context) (*Snapshot, error) {
	sess := &Session{
		ID:           uuid.NewString(),
		status:       model.StatusLoading,
		verdict:      model.VerdictUnknown,
		usedMovieIDs: make(map[int]struct{}),
		language:     s.cfg.Quiz.DefaultLanguage,
		soundEnabled: true,
		theme:        DefaultTheme,
		lastSeen:     time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.Languages(ctx)
	s.loadQuestion(ctx, sess)

	log.Info().Str("session_id", sess.ID).Msg("Session created")
	return s.snapshot(sess), nil
}

func (s *sessionService) Get(id string) (*Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.snapshot(sess), nil
}

// Answer scores a selection against the current question. Legal only while
// awaiting an answer with no prior selection; otherwise it is a no-op error
// and the tallies stay untouched.
func (s *sessionService) Answer(id, optionTitle string) (*Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != model.StatusAwaitingAnswer || sess.selected != nil || sess.question == nil {
		return nil, ErrAnswerNotAllowed
	}

	sess.selected = &optionTitle
	sess.totalCount++
	if optionTitle == sess.question.Answer {
		sess.correctCount++
		sess.verdict = model.VerdictCorrect
		sess.feedback = "Correct!"
		if sess.soundEnabled {
			sess.soundCue = model.SoundCueSuccess
		}
	} else {
		sess.verdict = model.VerdictWrong
		sess.feedback = fmt.Sprintf("Wrong! It was: %s", sess.question.Answer)
		if sess.soundEnabled {
			sess.soundCue = model.SoundCueFailure
		}
	}
	sess.status = model.StatusAnswered

	// Auto-advance to the next question after the feedback delay. The
	// callback re-checks the sequence so a language change or manual next
	// arriving first wins and the stale advance is dropped.
	seq := sess.seq
	delay := time.Duration(s.cfg.Quiz.AdvanceDelayMs) * time.Millisecond
	sess.advance = time.AfterFunc(delay, func() {
		s.autoAdvance(sess, seq)
	})

	return s.snapshotLocked(sess), nil
}

func (s *sessionService) autoAdvance(sess *Session, seq uint64) {
	sess.mu.Lock()
	if sess.seq != seq || sess.status != model.StatusAnswered {
		sess.mu.Unlock()
		return
	}
	sess.advance = nil
	sess.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	s.loadQuestion(ctx, sess)
}

// ChangeLanguage is legal in any state. It normalizes the code, hides the
// selector, cancels any pending auto-advance, translates the held question in
// place and unconditionally clears the used-movie history. It never fetches a
// new question.
func (s *sessionService) ChangeLanguage(ctx context.Context, id, code string) (*Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	language := model.NormalizeLanguageCode(code)

	sess.mu.Lock()
	sess.seq++
	seq := sess.seq
	s.cancelAdvanceLocked(sess)
	sess.language = language
	sess.selectorVisible = false
	sess.usedMovieIDs = make(map[int]struct{})
	question := sess.question
	sess.mu.Unlock()

	if question != nil {
		translated := s.translations.Translate(ctx, question, language)

		sess.mu.Lock()
		if sess.seq == seq {
			sess.question = translated
			// Visible option text changed, so any prior selection
			// is stale.
			sess.selected = nil
			sess.verdict = model.VerdictUnknown
			sess.feedback = ""
			sess.soundCue = ""
			sess.status = model.StatusAwaitingAnswer
		}
		sess.mu.Unlock()
	}

	log.Info().Str("session_id", id).Str("language", language).Msg("Language changed")
	return s.snapshot(sess), nil
}

// NextQuestion forces a fresh load, superseding any pending auto-advance.
// This is also the recovery path after a failed load.
func (s *sessionService) NextQuestion(ctx context.Context, id string) (*Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	s.cancelAdvanceLocked(sess)
	sess.mu.Unlock()

	s.loadQuestion(ctx, sess)
	return s.snapshot(sess), nil
}

func (s *sessionService) ToggleSound(id string) (*Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	sess.soundEnabled = !sess.soundEnabled
	sess.mu.Unlock()
	return s.snapshot(sess), nil
}

func (s *sessionService) ToggleSelector(id string) (*Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	sess.selectorVisible = !sess.selectorVisible
	sess.mu.Unlock()
	return s.snapshot(sess), nil
}

// loadQuestion runs the generator and installs the result, unless a newer
// operation superseded this load while the fetch was in flight.
func (s *sessionService) loadQuestion(ctx context.Context, sess *Session) {
	sess.mu.Lock()
	sess.seq++
	seq := sess.seq
	language := sess.language
	used := make(map[int]struct{}, len(sess.usedMovieIDs))
	for id := range sess.usedMovieIDs {
		used[id] = struct{}{}
	}
	sess.mu.Unlock()

	generated, err := s.questions.Generate(ctx, language, used)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.seq != seq {
		log.Debug().Str("session_id", sess.ID).Msg("Discarding stale question load")
		return
	}

	if err != nil {
		log.Error().Err(err).Str("session_id", sess.ID).Msg("Failed to load question")
		sess.feedback = loadErrorFeedback
		if sess.question == nil {
			sess.status = model.StatusLoading
		}
		return
	}

	sess.question = generated.Question
	sess.selected = nil
	sess.verdict = model.VerdictUnknown
	sess.feedback = ""
	sess.soundCue = ""
	sess.status = model.StatusAwaitingAnswer
	sess.imageURL = generated.FullImageURL
	sess.theme = ThemeForImage(generated.FullImageURL)

	// Cap the history to keep variety once the catalog page runs thin:
	// past the threshold it restarts from just the newest id.
	sess.usedMovieIDs[generated.UsedMovieID] = struct{}{}
	if len(sess.usedMovieIDs) >= s.cfg.Quiz.UsedHistoryCap {
		sess.usedMovieIDs = map[int]struct{}{generated.UsedMovieID: {}}
	}
}

func (s *sessionService) cancelAdvanceLocked(sess *Session) {
	if sess.advance != nil {
		sess.advance.Stop()
		sess.advance = nil
	}
}

func (s *sessionService) lookup(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	sess.lastSeen = time.Now()
	sess.mu.Unlock()
	return sess, nil
}

func (s *sessionService) snapshot(sess *Session) *Snapshot {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshotLocked(sess)
}

func (s *sessionService) snapshotLocked(sess *Session) *Snapshot {
	snap := &Snapshot{
		ID:              sess.ID,
		Status:          sess.status,
		Verdict:         sess.verdict,
		Feedback:        sess.feedback,
		SoundCue:        sess.soundCue,
		CorrectCount:    sess.correctCount,
		TotalCount:      sess.totalCount,
		Language:        sess.language,
		Languages:       s.langs,
		SoundEnabled:    sess.soundEnabled,
		SelectorVisible: sess.selectorVisible,
		Theme:           sess.theme,
	}
	if sess.question != nil {
		q := &model.Question{}
		copier.Copy(q, sess.question)
		snap.Question = q
		snap.ImageURL = sess.imageURL
	}
	if sess.selected != nil {
		selected := *sess.selected
		snap.Selected = &selected
	}
	return snap
}

// runJanitor evicts sessions idle past the configured TTL so abandoned
// browser tabs do not pin memory forever.
func (s *sessionService) runJanitor() {
	defer close(s.janitorDone)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictIdle()
		case <-s.janitorStop:
			return
		}
	}
}

func (s *sessionService) evictIdle() {
	ttl := time.Duration(s.cfg.Quiz.SessionIdleMin) * time.Minute
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		if idle {
			sess.seq++
			s.cancelAdvanceLocked(sess)
		}
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			log.Info().Str("session_id", id).Msg("Evicted idle session")
		}
	}
}

// Close stops the janitor and cancels every pending auto-advance.
func (s *sessionService) Close() {
	close(s.janitorStop)
	<-s.janitorDone

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		sess.mu.Lock()
		sess.seq++
		s.cancelAdvanceLocked(sess)
		sess.mu.Unlock()
	}
}
