package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/handlers"
)

// RegisterRoutes wires every handler under the /api group. Each handler
// registers its own public and admin subgroups.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CategoryHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.EducationHandler.RegisterRoutes(api)
		appHandlers.ExperienceHandler.RegisterRoutes(api)
		appHandlers.CvHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.ImageHandler.RegisterRoutes(api)
	}
}
