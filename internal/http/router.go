package http

import (
	"log/slog"

	"contactform-server/internal/config"
	"contactform-server/internal/http/handlers"
	"contactform-server/internal/http/middleware"
	"contactform-server/internal/services"
	"contactform-server/internal/token"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config         *config.Config
	AuthService    *services.AuthService
	ContactService *services.ContactService
	TokenManager   *token.Manager
	Logger         *slog.Logger
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	meHandler := handlers.NewMeHandler(deps.AuthService)
	contactHandler := handlers.NewContactHandler(deps.ContactService)

	api := router.Group("/api")
	api.GET("/health", handlers.Health)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(deps.TokenManager))
	{
		protected.GET("/auth/me", meHandler.GetMe)
		protected.POST("/contacts", contactHandler.Create)
		protected.GET("/contacts", contactHandler.List)
		protected.GET("/contacts/:id", contactHandler.GetByID)
		protected.PUT("/contacts/:id", contactHandler.Update)
		protected.DELETE("/contacts/:id", contactHandler.Delete)
	}

	return router
}
