package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davltran/cinequiz/internal/dto"
	"github.com/davltran/cinequiz/internal/model"
	"github.com/davltran/cinequiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessions serves one canned session.
type fakeSessions struct {
	snap        *service.Snapshot
	answerError error
}

func (f *fakeSessions) Create(ctx context.Context) (*service.Snapshot, error) { return f.snap, nil }

func (f *fakeSessions) Get(id string) (*service.Snapshot, error) { return f.find(id) }

func (f *fakeSessions) Answer(id, optionTitle string) (*service.Snapshot, error) {
	if _, err := f.find(id); err != nil {
		return nil, err
	}
	if f.answerError != nil {
		return nil, f.answerError
	}
	return f.snap, nil
}

func (f *fakeSessions) ChangeLanguage(ctx context.Context, id, code string) (*service.Snapshot, error) {
	return f.find(id)
}

func (f *fakeSessions) NextQuestion(ctx context.Context, id string) (*service.Snapshot, error) {
	return f.find(id)
}

func (f *fakeSessions) ToggleSound(id string) (*service.Snapshot, error)    { return f.find(id) }
func (f *fakeSessions) ToggleSelector(id string) (*service.Snapshot, error) { return f.find(id) }

func (f *fakeSessions) Languages(ctx context.Context) []model.Language {
	return []model.Language{{Code: "en", EnglishName: "English", NativeName: "English"}}
}

func (f *fakeSessions) Close() {}

func (f *fakeSessions) find(id string) (*service.Snapshot, error) {
	if id != f.snap.ID {
		return nil, service.ErrSessionNotFound
	}
	return f.snap, nil
}

func testSnapshot() *service.Snapshot {
	return &service.Snapshot{
		ID:     "sess-1",
		Status: model.StatusAwaitingAnswer,
		Question: &model.Question{
			Image:  "/a.jpg",
			Answer: "Movie A",
			Options: []model.Option{
				{ID: 1, Title: "Movie A"},
				{ID: 2, Title: "Movie B"},
				{ID: 3, Title: "Movie C"},
				{ID: 4, Title: "Movie D"},
			},
			CorrectID: 1,
		},
		ImageURL:     "https://image.example.com/w500/a.jpg",
		Verdict:      model.VerdictUnknown,
		Language:     "en-US",
		SoundEnabled: true,
		Theme:        "linear-gradient(135deg, #232526 0%, #414345 100%)",
	}
}

func newTestRouter(sessions service.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewSessionController(sessions)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/languages", ctrl.GetLanguages)
	api.POST("/sessions", ctrl.CreateSession)
	api.GET("/sessions/:session_id", ctrl.GetSession)
	api.POST("/sessions/:session_id/answer", ctrl.SubmitAnswer)
	api.POST("/sessions/:session_id/language", ctrl.ChangeLanguage)
	return r
}

func TestCreateSessionEndpoint(t *testing.T) {
	router := newTestRouter(&fakeSessions{snap: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var state dto.SessionStateDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "sess-1", state.SessionID)
	assert.Equal(t, "awaiting_answer", state.Status)
	require.NotNil(t, state.Question)
	assert.Len(t, state.Question.Options, 4)
	assert.Equal(t, "https://image.example.com/w500/a.jpg", state.Question.ImageURL)

	// The scored answer must never leak into the wire format.
	assert.NotContains(t, w.Body.String(), `"answer"`)
	assert.NotContains(t, w.Body.String(), `"correct_id"`)
}

func TestGetSessionNotFound(t *testing.T) {
	router := newTestRouter(&fakeSessions{snap: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/unknown", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAnswerValidation(t *testing.T) {
	router := newTestRouter(&fakeSessions{snap: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/answer", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAnswerConflict(t *testing.T) {
	router := newTestRouter(&fakeSessions{snap: testSnapshot(), answerError: service.ErrAnswerNotAllowed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/answer", strings.NewReader(`{"option_title":"Movie B"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetLanguagesEndpoint(t *testing.T) {
	router := newTestRouter(&fakeSessions{snap: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var langs []dto.LanguageDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &langs))
	require.Len(t, langs, 1)
	assert.Equal(t, "en", langs[0].Code)
}
