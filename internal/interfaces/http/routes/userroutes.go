package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
)

type UserRouteConfig struct {
	UserHandler *userhandlers.UserHandler
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	users := api.Group("/users")
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
		users.POST("/login", config.UserHandler.Login)
		users.GET("/:id", config.UserHandler.GetUser)
		users.PATCH("/:id", config.UserHandler.UpdateUser)
		users.PUT("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
