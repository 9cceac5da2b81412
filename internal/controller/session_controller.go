package controller

import (
	"errors"
	"net/http"

	"github.com/davltran/cinequiz/internal/dto"
	"github.com/davltran/cinequiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessions service.SessionService
}

func NewSessionController(sessions service.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// CreateSession godoc
// @Summary Start a new quiz session
// @Description Creates a session, fetches the language list and loads the first question.
// @Tags Sessions
// @Produce json
// @Success 201 {object} dto.SessionStateDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	snap, err := c.sessions.Create(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("CreateSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create session"})
		return
	}
	ctx.JSON(http.StatusCreated, toStateDTO(snap))
}

// GetSession godoc
// @Summary Get the current session state
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	snap, err := c.sessions.Get(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, toStateDTO(snap))
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Scores the picked option. A question accepts at most one answer; later picks are rejected.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.AnswerRequest true "Picked option title"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "No question awaiting an answer"
// @Router /sessions/{session_id}/answer [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	snap, err := c.sessions.Answer(ctx.Param("session_id"), req.OptionTitle)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		case errors.Is(err, service.ErrAnswerNotAllowed):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "No question is awaiting an answer"})
		default:
			log.Error().Err(err).Msg("SubmitAnswer: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit answer"})
		}
		return
	}
	ctx.JSON(http.StatusOK, toStateDTO(snap))
}

// ChangeLanguage godoc
// @Summary Switch the title language
// @Description Normalizes the code, translates the current question in place and resets the used-movie history.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param language body dto.LanguageChangeRequest true "Language code (e.g. fr, en-US)"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/language [post]
func (c *SessionController) ChangeLanguage(ctx *gin.Context) {
	var req dto.LanguageChangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	snap, err := c.sessions.ChangeLanguage(ctx.Request.Context(), ctx.Param("session_id"), req.Code)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, toStateDTO(snap))
}

// NextQuestion godoc
// @Summary Force-load the next question
// @Description Supersedes any pending auto-advance. Also the recovery path after a failed load.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/next [post]
func (c *SessionController) NextQuestion(ctx *gin.Context) {
	snap, err := c.sessions.NextQuestion(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, toStateDTO(snap))
}

// ToggleSound godoc
// @Summary Toggle answer feedback sounds
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/sound/toggle [post]
func (c *SessionController) ToggleSound(ctx *gin.Context) {
	snap, err := c.sessions.ToggleSound(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, toStateDTO(snap))
}

// ToggleSelector godoc
// @Summary Toggle the language selector
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/selector/toggle [post]
func (c *SessionController) ToggleSelector(ctx *gin.Context) {
	snap, err := c.sessions.ToggleSelector(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, toStateDTO(snap))
}

// GetLanguages godoc
// @Summary List selectable title languages
// @Tags Languages
// @Produce json
// @Success 200 {array} dto.LanguageDTO
// @Router /languages [get]
func (c *SessionController) GetLanguages(ctx *gin.Context) {
	langs := c.sessions.Languages(ctx.Request.Context())
	var resp []dto.LanguageDTO
	copier.Copy(&resp, &langs)
	ctx.JSON(http.StatusOK, resp)
}

func toStateDTO(snap *service.Snapshot) dto.SessionStateDTO {
	state := dto.SessionStateDTO{
		SessionID:       snap.ID,
		Status:          string(snap.Status),
		Selected:        snap.Selected,
		Verdict:         string(snap.Verdict),
		Feedback:        snap.Feedback,
		SoundCue:        snap.SoundCue,
		CorrectCount:    snap.CorrectCount,
		TotalCount:      snap.TotalCount,
		Language:        snap.Language,
		SoundEnabled:    snap.SoundEnabled,
		SelectorVisible: snap.SelectorVisible,
		Theme:           snap.Theme,
	}
	copier.Copy(&state.Languages, &snap.Languages)
	if snap.Question != nil {
		q := dto.QuestionDTO{ImageURL: snap.ImageURL}
		copier.Copy(&q.Options, &snap.Question.Options)
		state.Question = &q
	}
	return state
}
