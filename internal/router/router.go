package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/teamforge/teamforge/internal/handler"
	"github.com/teamforge/teamforge/internal/middleware"
)

// SetupRoutes configures all API routes. Signup and login are public;
// everything else sits behind the auth gate.
func SetupRoutes(
	authHandler *handler.AuthHandler,
	teamHandler *handler.TeamHandler,
	auth middleware.Authenticator,
	corsOrigin string,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	authorized := r.Group("/", middleware.UserAuth(auth))

	authorized.POST("/teams/create", teamHandler.Create)
	authorized.GET("/teams", teamHandler.List)
	authorized.DELETE("/teams/:teamName/remove", teamHandler.RemoveMember)
	authorized.POST("/teams/:teamName/addMember", teamHandler.AddMember)
	authorized.GET("/:teamName/check-membership", teamHandler.CheckMembership)
	authorized.GET("/team/:teamname", teamHandler.GetTeam)

	return r
}
