package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/service"
)

// SessionHandler exposes finalized training sessions.
type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type ExerciseRequest struct {
	Type      string `json:"type" binding:"required"`
	Area      string `json:"area" binding:"required"`
	Exercise  string `json:"exercise" binding:"required"`
	Duration  string `json:"duration" binding:"required"`
	Intensity int    `json:"intensity" binding:"required,min=1,max=10"`
}

type CreateSessionRequest struct {
	Date      time.Time         `json:"date"`
	Exercises []ExerciseRequest `json:"exercises"`
	Notes     string            `json:"notes"`
}

type UpdateSessionNotesRequest struct {
	Notes string `json:"notes"`
}

type SessionResponse struct {
	ID        string                  `json:"id"`
	AcademyID string                  `json:"academyId"`
	PlayerID  string                  `json:"playerId"`
	Date      time.Time               `json:"date"`
	Exercises []domain.LoggedExercise `json:"exercises"`
	Notes     string                  `json:"notes,omitempty"`
}

func exerciseInputs(reqs []ExerciseRequest) []service.ExerciseInput {
	out := make([]service.ExerciseInput, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, service.ExerciseInput{
			Type:      r.Type,
			Area:      r.Area,
			Exercise:  r.Exercise,
			Duration:  r.Duration,
			Intensity: r.Intensity,
		})
	}
	return out
}

// CreateSession records a past session for the player, outside the live
// flow.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.sessionService.CreateSession(
		c.Request.Context(), coachID, playerID,
		req.Date, exerciseInputs(req.Exercises), req.Notes,
	)
	if err != nil {
		if _, known := serviceErrorStatus(err); !known {
			// Enum and form validation failures surface as 400s.
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err, "Could not create session")
		return
	}
	c.JSON(http.StatusCreated, MapSessionToResponse(session))
}

// GetAcademySessions lists academy sessions, optionally windowed by
// startDate/endDate query params.
func (h *SessionHandler) GetAcademySessions(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	academyID, ok := parseIDParam(c, "academyId")
	if !ok {
		return
	}
	start, end, err := parseDateRangeQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := h.sessionService.GetSessionsForAcademy(c.Request.Context(), coachID, academyID, start, end)
	if err != nil {
		respondServiceError(c, err, "Could not list sessions")
		return
	}
	c.JSON(http.StatusOK, mapSessions(sessions))
}

// GetPlayerSessions lists one player's sessions, optionally windowed.
func (h *SessionHandler) GetPlayerSessions(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}
	start, end, err := parseDateRangeQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := h.sessionService.GetSessionsForPlayer(c.Request.Context(), coachID, playerID, start, end)
	if err != nil {
		respondServiceError(c, err, "Could not list sessions")
		return
	}
	c.JSON(http.StatusOK, mapSessions(sessions))
}

// UpdateSessionNotes edits the notes on a finalized session.
func (h *SessionHandler) UpdateSessionNotes(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	sessionID, ok := parseIDParam(c, "sessionId")
	if !ok {
		return
	}
	var req UpdateSessionNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.sessionService.UpdateNotes(c.Request.Context(), coachID, sessionID, req.Notes)
	if err != nil {
		respondServiceError(c, err, "Could not update session notes")
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// DeleteSession removes a finalized session permanently.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	sessionID, ok := parseIDParam(c, "sessionId")
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), coachID, sessionID); err != nil {
		respondServiceError(c, err, "Could not delete session")
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSessions(sessions []domain.TrainingSession) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, MapSessionToResponse(&sessions[i]))
	}
	return out
}

// MapSessionToResponse converts a domain TrainingSession to its DTO.
func MapSessionToResponse(session *domain.TrainingSession) SessionResponse {
	if session == nil {
		return SessionResponse{}
	}
	return SessionResponse{
		ID:        session.ID.Hex(),
		AcademyID: session.AcademyID.Hex(),
		PlayerID:  session.PlayerID.Hex(),
		Date:      session.Date,
		Exercises: session.Exercises,
		Notes:     session.Notes,
	}
}
