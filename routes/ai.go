package routes

import (
	"github.com/gin-gonic/gin"

	aiControllers "github.com/shihab103/Supper-Shop-Server/controllers/ai"
)

func SetupAIRoutes(r *gin.Engine, assistant aiControllers.Assistant) {
	ai := r.Group("/api/ai")
	{
		ai.POST("/chat", aiControllers.ChatHandler(assistant))
	}
}
