package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/domain"
	"courtside/coaching-app/internal/service"
)

// AcademyHandler exposes academy creation, joining, and listing.
type AcademyHandler struct {
	academyService service.AcademyService
}

func NewAcademyHandler(academyService service.AcademyService) *AcademyHandler {
	return &AcademyHandler{academyService: academyService}
}

type CreateAcademyRequest struct {
	Name string `json:"name" binding:"required"`
}

type JoinAcademyRequest struct {
	ShareCode string `json:"shareCode" binding:"required"`
}

type AcademyResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ShareCode string   `json:"shareCode"`
	OwnerID   string   `json:"ownerId"`
	MemberIDs []string `json:"memberIds"`
}

// CreateAcademy creates an academy owned by the authenticated coach.
func (h *AcademyHandler) CreateAcademy(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req CreateAcademyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	academy, err := h.academyService.CreateAcademy(c.Request.Context(), coachID, req.Name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not create academy")
		return
	}
	c.JSON(http.StatusCreated, MapAcademyToResponse(academy))
}

// JoinAcademy adds the coach to the academy matching the share code.
func (h *AcademyHandler) JoinAcademy(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req JoinAcademyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	academy, err := h.academyService.JoinAcademy(c.Request.Context(), coachID, req.ShareCode)
	if err != nil {
		if errors.Is(err, service.ErrBadShareCode) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Could not join academy")
		return
	}
	c.JSON(http.StatusOK, MapAcademyToResponse(academy))
}

// GetMyAcademies lists the academies the coach belongs to.
func (h *AcademyHandler) GetMyAcademies(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	academies, err := h.academyService.GetAcademiesForCoach(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not list academies")
		return
	}
	out := make([]AcademyResponse, 0, len(academies))
	for i := range academies {
		out = append(out, MapAcademyToResponse(&academies[i]))
	}
	c.JSON(http.StatusOK, out)
}

// MapAcademyToResponse converts a domain Academy to its DTO.
func MapAcademyToResponse(academy *domain.Academy) AcademyResponse {
	if academy == nil {
		return AcademyResponse{}
	}
	members := make([]string, 0, len(academy.MemberIDs))
	for _, id := range academy.MemberIDs {
		members = append(members, id.Hex())
	}
	return AcademyResponse{
		ID:        academy.ID.Hex(),
		Name:      academy.Name,
		ShareCode: academy.ShareCode,
		OwnerID:   academy.OwnerID.Hex(),
		MemberIDs: members,
	}
}

// serviceErrorStatus maps the shared access-control errors every scoped
// handler can hit.
func serviceErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, service.ErrAcademyNotFound),
		errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrObjectiveNotFound),
		errors.Is(err, service.ErrTournamentNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, service.ErrAccessDenied):
		return http.StatusForbidden, true
	}
	return 0, false
}

// respondServiceError writes the right status for a service error, falling
// back to a 500 with the given message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	if code, ok := serviceErrorStatus(err); ok {
		abortWithError(c, code, err.Error())
		return
	}
	abortWithError(c, http.StatusInternalServerError, fallback)
}
