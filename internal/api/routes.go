package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	academyService service.AcademyService,
	playerService service.PlayerService,
	objectiveService service.ObjectiveService,
	tournamentService service.TournamentService,
	sessionService service.SessionService,
	statsService service.StatsService,
	liveService service.LiveService,
) {
	authHandler := NewAuthHandler(authService)
	academyHandler := NewAcademyHandler(academyService)
	playerHandler := NewPlayerHandler(playerService)
	objectiveHandler := NewObjectiveHandler(objectiveService)
	tournamentHandler := NewTournamentHandler(tournamentService)
	sessionHandler := NewSessionHandler(sessionService)
	statsHandler := NewStatsHandler(statsService)
	liveHandler := NewLiveHandler(liveService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			coachID, err := getCoachIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": coachID.Hex()})
		})

		// --- Academy Routes ---
		academyGroup := protected.Group("/academies")
		{
			academyGroup.POST("", academyHandler.CreateAcademy)
			academyGroup.GET("", academyHandler.GetMyAcademies)
			academyGroup.POST("/join", academyHandler.JoinAcademy)

			academyGroup.POST("/:academyId/players", playerHandler.CreatePlayer)
			academyGroup.GET("/:academyId/players", playerHandler.GetAcademyPlayers)
			academyGroup.GET("/:academyId/sessions", sessionHandler.GetAcademySessions)
		}

		// --- Player Routes ---
		playerGroup := protected.Group("/players")
		{
			playerGroup.GET("/:playerId", playerHandler.GetPlayer)
			playerGroup.PUT("/:playerId", playerHandler.UpdatePlayer)
			playerGroup.PUT("/:playerId/status", playerHandler.SetPlayerStatus)

			playerGroup.POST("/:playerId/objectives", objectiveHandler.CreateObjective)
			playerGroup.GET("/:playerId/objectives", objectiveHandler.GetPlayerObjectives)

			playerGroup.POST("/:playerId/tournaments", tournamentHandler.CreateTournament)
			playerGroup.GET("/:playerId/tournaments", tournamentHandler.GetPlayerTournaments)

			playerGroup.POST("/:playerId/sessions", sessionHandler.CreateSession)
			playerGroup.GET("/:playerId/sessions", sessionHandler.GetPlayerSessions)

			playerGroup.GET("/:playerId/stats/breakdown", statsHandler.GetPlayerBreakdown)
			playerGroup.GET("/:playerId/stats/intensity", statsHandler.GetPlayerIntensity)
		}

		// --- Objective / Tournament / Session item routes ---
		protected.PUT("/objectives/:objectiveId", objectiveHandler.UpdateObjective)
		protected.DELETE("/objectives/:objectiveId", objectiveHandler.DeleteObjective)

		protected.PUT("/tournaments/:tournamentId", tournamentHandler.UpdateTournament)
		protected.DELETE("/tournaments/:tournamentId", tournamentHandler.DeleteTournament)

		protected.PUT("/sessions/:sessionId/notes", sessionHandler.UpdateSessionNotes)
		protected.DELETE("/sessions/:sessionId", sessionHandler.DeleteSession)

		// --- Live Session Routes ---
		liveGroup := protected.Group("/live")
		{
			liveGroup.GET("", liveHandler.GetLiveState)
			liveGroup.POST("/start", liveHandler.StartLive)
			liveGroup.POST("/exercises", liveHandler.AddLiveExercise)
			liveGroup.POST("/participants", liveHandler.AddLiveParticipant)
			liveGroup.DELETE("/participants/:playerId", liveHandler.RemoveLiveParticipant)
			liveGroup.POST("/finish", liveHandler.FinishLive)
			liveGroup.POST("/discard", liveHandler.DiscardLive)
		}
	}
}
