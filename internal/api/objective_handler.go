package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/service"
)

// ObjectiveHandler exposes per-player training objectives.
type ObjectiveHandler struct {
	objectiveService service.ObjectiveService
}

func NewObjectiveHandler(objectiveService service.ObjectiveService) *ObjectiveHandler {
	return &ObjectiveHandler{objectiveService: objectiveService}
}

type CreateObjectiveRequest struct {
	Text string `json:"text" binding:"required"`
	Body string `json:"body"`
}

type UpdateObjectiveRequest struct {
	Text   string `json:"text"`
	Body   string `json:"body"`
	Status string `json:"status" binding:"required,oneof=in_progress consolidating incorporated"`
}

type ObjectiveResponse struct {
	ID        string                 `json:"id"`
	AcademyID string                 `json:"academyId"`
	PlayerID  string                 `json:"playerId"`
	Text      string                 `json:"text"`
	Body      string                 `json:"body,omitempty"`
	Status    domain.ObjectiveStatus `json:"status"`
}

// CreateObjective adds a new in-progress objective for the player.
func (h *ObjectiveHandler) CreateObjective(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}
	var req CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	objective, err := h.objectiveService.CreateObjective(c.Request.Context(), coachID, playerID, req.Text, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrObjectiveCap) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		respondServiceError(c, err, "Could not create objective")
		return
	}
	c.JSON(http.StatusCreated, MapObjectiveToResponse(objective))
}

// GetPlayerObjectives lists a player's objectives across all statuses.
func (h *ObjectiveHandler) GetPlayerObjectives(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}

	objectives, err := h.objectiveService.GetObjectivesForPlayer(c.Request.Context(), coachID, playerID)
	if err != nil {
		respondServiceError(c, err, "Could not list objectives")
		return
	}
	out := make([]ObjectiveResponse, 0, len(objectives))
	for i := range objectives {
		out = append(out, MapObjectiveToResponse(&objectives[i]))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateObjective edits an objective's text, body, and status.
func (h *ObjectiveHandler) UpdateObjective(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	objectiveID, ok := parseIDParam(c, "objectiveId")
	if !ok {
		return
	}
	var req UpdateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	status, err := domain.ParseObjectiveStatus(req.Status)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	objective, err := h.objectiveService.UpdateObjective(c.Request.Context(), coachID, objectiveID, req.Text, req.Body, status)
	if err != nil {
		if errors.Is(err, service.ErrObjectiveCap) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		respondServiceError(c, err, "Could not update objective")
		return
	}
	c.JSON(http.StatusOK, MapObjectiveToResponse(objective))
}

// DeleteObjective removes an objective permanently.
func (h *ObjectiveHandler) DeleteObjective(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	objectiveID, ok := parseIDParam(c, "objectiveId")
	if !ok {
		return
	}

	if err := h.objectiveService.DeleteObjective(c.Request.Context(), coachID, objectiveID); err != nil {
		respondServiceError(c, err, "Could not delete objective")
		return
	}
	c.Status(http.StatusNoContent)
}

// MapObjectiveToResponse converts a domain Objective to its DTO.
func MapObjectiveToResponse(objective *domain.Objective) ObjectiveResponse {
	if objective == nil {
		return ObjectiveResponse{}
	}
	return ObjectiveResponse{
		ID:        objective.ID.Hex(),
		AcademyID: objective.AcademyID.Hex(),
		PlayerID:  objective.PlayerID.Hex(),
		Text:      objective.Text,
		Body:      objective.Body,
		Status:    objective.Status,
	}
}
