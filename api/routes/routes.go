package routes

import (
	"net/http"

	"github.com/ArowuTest/raffle-backend/internal/config"
	"github.com/ArowuTest/raffle-backend/internal/handlers"
	"github.com/ArowuTest/raffle-backend/internal/middleware"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandlerDependencies holds the handlers and token verifiers the router needs
type HandlerDependencies struct {
	RaffleHandler *handlers.RaffleHandler
	AuthHandler   *handlers.AuthHandler
	AdminHandler  *handlers.AdminHandler

	// AdminTokens verifies admin and keeper tokens, OracleTokens the coordinator callback.
	AdminTokens  *jwt.TokenService
	OracleTokens *jwt.TokenService

	Gatherer prometheus.Gatherer
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedHosts))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		public.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

		public.POST("/auth/login", deps.AuthHandler.Login)

		raffle := public.Group("/raffle")
		{
			raffle.GET("", deps.RaffleHandler.GetStatus)
			raffle.GET("/players", deps.RaffleHandler.GetPlayers)
			raffle.GET("/players/:index", deps.RaffleHandler.GetPlayer)
			raffle.POST("/enter", deps.RaffleHandler.Enter)
			raffle.GET("/upkeep", deps.RaffleHandler.CheckUpkeep)
			raffle.GET("/winners", deps.RaffleHandler.GetWinners)
			raffle.GET("/events", deps.RaffleHandler.GetEvents)
		}
		public.GET("/accounts/:address", deps.RaffleHandler.GetAccount)
	}

	// Upkeep may be triggered by any caller holding a keeper or admin token
	keeper := router.Group("/api/v1/raffle")
	keeper.Use(middleware.JWTAuthMiddleware(deps.AdminTokens, models.RoleAdmin, models.RoleKeeper))
	{
		keeper.POST("/upkeep", deps.RaffleHandler.PerformUpkeep)
	}

	oracle := router.Group("/api/v1/raffle")
	oracle.Use(middleware.JWTAuthMiddleware(deps.OracleTokens, models.RoleOracle))
	{
		oracle.POST("/fulfill", deps.RaffleHandler.Fulfill)
	}

	// Admin routes
	admin := router.Group("/api/v1")
	admin.Use(middleware.JWTAuthMiddleware(deps.AdminTokens, models.RoleAdmin))
	{
		admin.POST("/raffle/reissue", deps.RaffleHandler.Reissue)

		blacklist := admin.Group("/admin/blacklist")
		{
			blacklist.GET("", deps.AdminHandler.GetBlacklist)
			blacklist.POST("", deps.AdminHandler.AddToBlacklist)
			blacklist.DELETE("/:address", deps.AdminHandler.RemoveFromBlacklist)
		}
	}

	return router
}
