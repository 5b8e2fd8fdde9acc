package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/service"
	"courtside/coaching-app/internal/stats"
)

// StatsHandler exposes the player analytics charts.
type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// drillPathFromQuery reads the optional type/area query params into a
// drill-down path. An area without a type is ignored.
func drillPathFromQuery(c *gin.Context) stats.DrillDownPath {
	var path stats.DrillDownPath
	if t := c.Query("type"); t != "" {
		path = append(path, t)
		if a := c.Query("area"); a != "" {
			path = append(path, a)
		}
	}
	return path
}

// GetPlayerBreakdown returns minutes per category at the requested
// drill-down level.
func (h *StatsHandler) GetPlayerBreakdown(c *gin.Context) {
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

	result, err := h.statsService.PlayerBreakdown(c.Request.Context(), coachID, playerID, drillPathFromQuery(c), start, end)
	if err != nil {
		respondServiceError(c, err, "Could not compute breakdown")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPlayerIntensity returns the per-session mean intensity series within
// the requested drill-down scope.
func (h *StatsHandler) GetPlayerIntensity(c *gin.Context) {
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

	result, err := h.statsService.PlayerIntensity(c.Request.Context(), coachID, playerID, drillPathFromQuery(c), start, end)
	if err != nil {
		respondServiceError(c, err, "Could not compute intensity series")
		return
	}
	c.JSON(http.StatusOK, result)
}
