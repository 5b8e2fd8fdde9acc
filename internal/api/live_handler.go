package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"courtside/coaching-app/internal/live"
	"courtside/coaching-app/internal/service"
)

// LiveHandler exposes the coach's in-progress session.
type LiveHandler struct {
	liveService service.LiveService
}

func NewLiveHandler(liveService service.LiveService) *LiveHandler {
	return &LiveHandler{liveService: liveService}
}

type StartLiveRequest struct {
	AcademyID string   `json:"academyId" binding:"required"`
	PlayerIDs []string `json:"playerIds" binding:"required,min=1"`
}

type LiveExerciseRequest struct {
	PlayerIDs []string        `json:"playerIds" binding:"required,min=1"`
	Exercise  ExerciseRequest `json:"exercise" binding:"required"`
}

type LiveParticipantRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

type FinishLiveRequest struct {
	Notes string `json:"notes"`
}

type FinishLiveResponse struct {
	SessionsSaved int `json:"sessionsSaved"`
}

func parseIDList(raw []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid player ID %q", s)
		}
		out = append(out, id)
	}
	return out, nil
}

// respondLiveError maps live-session state errors onto HTTP statuses
// before falling back to the shared service error handling.
func respondLiveError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, live.ErrSessionActive):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, live.ErrNoActiveSession):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrLastParticipant),
		errors.Is(err, service.ErrNotParticipant):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		respondServiceError(c, err, fallback)
	}
}

// StartLive opens a live session with the selected players.
func (h *LiveHandler) StartLive(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req StartLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	academyID, err := primitive.ObjectIDFromHex(req.AcademyID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid academyId format")
		return
	}
	playerIDs, err := parseIDList(req.PlayerIDs)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.liveService.Start(c.Request.Context(), coachID, academyID, playerIDs)
	if err != nil {
		respondLiveError(c, err, "Could not start live session")
		return
	}
	c.JSON(http.StatusCreated, state)
}

// GetLiveState reports the current live session, resuming a stored
// snapshot after a restart.
func (h *LiveHandler) GetLiveState(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	state, err := h.liveService.State(c.Request.Context(), coachID)
	if err != nil {
		respondLiveError(c, err, "Could not load live session state")
		return
	}
	c.JSON(http.StatusOK, state)
}

// AddLiveExercise logs an exercise for one or more participants.
func (h *LiveHandler) AddLiveExercise(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req LiveExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	playerIDs, err := parseIDList(req.PlayerIDs)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.liveService.AddExercise(c.Request.Context(), coachID, playerIDs, service.ExerciseInput{
		Type:      req.Exercise.Type,
		Area:      req.Exercise.Area,
		Exercise:  req.Exercise.Exercise,
		Duration:  req.Exercise.Duration,
		Intensity: req.Exercise.Intensity,
	})
	if err != nil {
		if _, known := serviceErrorStatus(err); !known &&
			!errors.Is(err, live.ErrNoActiveSession) &&
			!errors.Is(err, service.ErrNotParticipant) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondLiveError(c, err, "Could not log exercise")
		return
	}
	c.JSON(http.StatusOK, state)
}

// AddLiveParticipant brings another player into the running session.
func (h *LiveHandler) AddLiveParticipant(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req LiveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	playerID, err := primitive.ObjectIDFromHex(req.PlayerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid playerId format")
		return
	}

	state, err := h.liveService.AddParticipant(c.Request.Context(), coachID, playerID)
	if err != nil {
		respondLiveError(c, err, "Could not add participant")
		return
	}
	c.JSON(http.StatusOK, state)
}

// RemoveLiveParticipant drops a player from the running session. Their
// already-logged exercises stay.
func (h *LiveHandler) RemoveLiveParticipant(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}

	state, err := h.liveService.RemoveParticipant(c.Request.Context(), coachID, playerID)
	if err != nil {
		respondLiveError(c, err, "Could not remove participant")
		return
	}
	c.JSON(http.StatusOK, state)
}

// FinishLive converts the live session into permanent per-player sessions.
func (h *LiveHandler) FinishLive(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req FinishLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	saved, err := h.liveService.Finish(c.Request.Context(), coachID, req.Notes)
	if err != nil {
		respondLiveError(c, err, "Could not finish live session")
		return
	}
	c.JSON(http.StatusOK, FinishLiveResponse{SessionsSaved: saved})
}

// DiscardLive throws the live session away without saving anything.
func (h *LiveHandler) DiscardLive(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if err := h.liveService.Discard(c.Request.Context(), coachID); err != nil {
		respondLiveError(c, err, "Could not discard live session")
		return
	}
	c.Status(http.StatusNoContent)
}
