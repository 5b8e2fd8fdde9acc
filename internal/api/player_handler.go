package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/service"
)

// PlayerHandler exposes the academy roster.
type PlayerHandler struct {
	playerService service.PlayerService
}

func NewPlayerHandler(playerService service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePlayerRequest struct {
	Name    string               `json:"name"`
	Profile domain.PlayerProfile `json:"profile"`
}

type SetPlayerStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active archived"`
}

type PlayerResponse struct {
	ID        string               `json:"id"`
	AcademyID string               `json:"academyId"`
	Name      string               `json:"name"`
	Status    domain.PlayerStatus  `json:"status"`
	Profile   domain.PlayerProfile `json:"profile"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// CreatePlayer adds a player to the academy in the path.
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	academyID, ok := parseIDParam(c, "academyId")
	if !ok {
		return
	}
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	player, err := h.playerService.CreatePlayer(c.Request.Context(), coachID, academyID, req.Name)
	if err != nil {
		respondServiceError(c, err, "Could not create player")
		return
	}
	c.JSON(http.StatusCreated, MapPlayerToResponse(player))
}

// GetAcademyPlayers lists the academy roster.
func (h *PlayerHandler) GetAcademyPlayers(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	academyID, ok := parseIDParam(c, "academyId")
	if !ok {
		return
	}

	players, err := h.playerService.GetPlayersForAcademy(c.Request.Context(), coachID, academyID)
	if err != nil {
		respondServiceError(c, err, "Could not list players")
		return
	}
	out := make([]PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, MapPlayerToResponse(&players[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetPlayer returns one player with their full profile.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayer(c.Request.Context(), coachID, playerID)
	if err != nil {
		respondServiceError(c, err, "Could not fetch player")
		return
	}
	c.JSON(http.StatusOK, MapPlayerToResponse(player))
}

// UpdatePlayer replaces the player's name and profile.
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	player, err := h.playerService.UpdateProfile(c.Request.Context(), coachID, playerID, req.Name, req.Profile)
	if err != nil {
		respondServiceError(c, err, "Could not update player")
		return
	}
	c.JSON(http.StatusOK, MapPlayerToResponse(player))
}

// SetPlayerStatus archives or reactivates a player.
func (h *PlayerHandler) SetPlayerStatus(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}
	var req SetPlayerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	player, err := h.playerService.SetStatus(c.Request.Context(), coachID, playerID, domain.PlayerStatus(req.Status))
	if err != nil {
		respondServiceError(c, err, "Could not update player status")
		return
	}
	c.JSON(http.StatusOK, MapPlayerToResponse(player))
}

// MapPlayerToResponse converts a domain Player to its DTO.
func MapPlayerToResponse(player *domain.Player) PlayerResponse {
	if player == nil {
		return PlayerResponse{}
	}
	return PlayerResponse{
		ID:        player.ID.Hex(),
		AcademyID: player.AcademyID.Hex(),
		Name:      player.Name,
		Status:    player.Status,
		Profile:   player.Profile,
		CreatedAt: player.CreatedAt,
		UpdatedAt: player.UpdatedAt,
	}
}
