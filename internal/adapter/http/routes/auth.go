package routes

import (
	"bahia_gestao/internal/adapter/http/handlers"
	"bahia_gestao/internal/adapter/http/middleware"
	"bahia_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathProfiles = "/profiles"
	PathSettings = "/settings"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, authUseCase usecase.IAuthUseCase, limiter gin.HandlerFunc) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/signup", limiter, authHandler.SignUp)
		authGroup.POST("/login", limiter, authHandler.Login)

		authenticated := authGroup.Group("", middleware.Authenticate(authUseCase))
		authenticated.GET("/me", authHandler.Me)
		authenticated.POST("/logout", authHandler.Logout)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	profiles := rg.Group(PathProfiles, middleware.RequireAdmin())
	{
		profiles.GET("", profileHandler.ListProfiles)
		profiles.GET("/:id", profileHandler.GetProfile)
		profiles.PUT("/:id", profileHandler.UpdateProfile)
		profiles.DELETE("/:id", profileHandler.DeleteProfile)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", profileHandler.GetSettings)
		settings.PUT("", profileHandler.UpdateSettings)
	}
}
