package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/service"
)

// TournamentHandler exposes each player's tournament calendar.
type TournamentHandler struct {
	tournamentService service.TournamentService
}

func NewTournamentHandler(tournamentService service.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

type TournamentRequest struct {
	Name       string    `json:"name" binding:"required"`
	Importance string    `json:"importance" binding:"required,oneof=critical high medium low none"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
}

type TournamentResponse struct {
	ID         string                      `json:"id"`
	AcademyID  string                      `json:"academyId"`
	PlayerID   string                      `json:"playerId"`
	Name       string                      `json:"name"`
	Importance domain.TournamentImportance `json:"importance"`
	StartDate  time.Time                   `json:"startDate"`
	EndDate    time.Time                   `json:"endDate"`
}

// CreateTournament adds a calendar entry for the player.
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}
	var req TournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	tournament, err := h.tournamentService.CreateTournament(
		c.Request.Context(), coachID, playerID,
		req.Name, domain.TournamentImportance(req.Importance), req.StartDate, req.EndDate,
	)
	if err != nil {
		if errors.Is(err, service.ErrBadDateRange) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err, "Could not create tournament")
		return
	}
	c.JSON(http.StatusCreated, MapTournamentToResponse(tournament))
}

// GetPlayerTournaments lists a player's tournaments in calendar order.
func (h *TournamentHandler) GetPlayerTournaments(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	playerID, ok := parseIDParam(c, "playerId")
	if !ok {
		return
	}

	tournaments, err := h.tournamentService.GetTournamentsForPlayer(c.Request.Context(), coachID, playerID)
	if err != nil {
		respondServiceError(c, err, "Could not list tournaments")
		return
	}
	out := make([]TournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		out = append(out, MapTournamentToResponse(&tournaments[i]))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateTournament edits a calendar entry.
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	tournamentID, ok := parseIDParam(c, "tournamentId")
	if !ok {
		return
	}
	var req TournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(
		c.Request.Context(), coachID, tournamentID,
		req.Name, domain.TournamentImportance(req.Importance), req.StartDate, req.EndDate,
	)
	if err != nil {
		if errors.Is(err, service.ErrBadDateRange) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err, "Could not update tournament")
		return
	}
	c.JSON(http.StatusOK, MapTournamentToResponse(tournament))
}

// DeleteTournament removes a calendar entry.
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	tournamentID, ok := parseIDParam(c, "tournamentId")
	if !ok {
		return
	}

	if err := h.tournamentService.DeleteTournament(c.Request.Context(), coachID, tournamentID); err != nil {
		respondServiceError(c, err, "Could not delete tournament")
		return
	}
	c.Status(http.StatusNoContent)
}

// MapTournamentToResponse converts a domain Tournament to its DTO.
func MapTournamentToResponse(tournament *domain.Tournament) TournamentResponse {
	if tournament == nil {
		return TournamentResponse{}
	}
	return TournamentResponse{
		ID:         tournament.ID.Hex(),
		AcademyID:  tournament.AcademyID.Hex(),
		PlayerID:   tournament.PlayerID.Hex(),
		Name:       tournament.Name,
		Importance: tournament.Importance,
		StartDate:  tournament.StartDate,
		EndDate:    tournament.EndDate,
	}
}
