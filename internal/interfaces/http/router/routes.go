// Package router 提供 HTTP 路由配置
package router

import (
	"cineplan-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	projectHandler *handler.ProjectHandler,
	sceneHandler *handler.SceneHandler,
	locationHandler *handler.LocationHandler,
	characterHandler *handler.CharacterHandler,
	distanceHandler *handler.DistanceHandler,
	planHandler *handler.PlanHandler,
) {
	// 项目管理
	projects := v1.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:pid", projectHandler.GetProject)
		projects.PUT("/:pid", projectHandler.UpdateProject)
		projects.DELETE("/:pid", projectHandler.DeleteProject)

		// 项目下的场次
		projects.GET("/:pid/scenes", sceneHandler.ListScenes)
		projects.POST("/:pid/scenes", sceneHandler.CreateScene)
		projects.POST("/:pid/scenes/import", sceneHandler.ImportScenes)
		projects.GET("/:pid/scenes/:id", sceneHandler.GetScene)
		projects.PUT("/:pid/scenes/:id", sceneHandler.UpdateScene)
		projects.DELETE("/:pid/scenes/:id", sceneHandler.DeleteScene)

		// 项目下的场地
		projects.GET("/:pid/locations", locationHandler.ListLocations)
		projects.POST("/:pid/locations", locationHandler.CreateLocation)
		projects.GET("/:pid/locations/:id", locationHandler.GetLocation)
		projects.PUT("/:pid/locations/:id", locationHandler.UpdateLocation)
		projects.DELETE("/:pid/locations/:id", locationHandler.DeleteLocation)

		// 项目下的角色
		projects.GET("/:pid/characters", characterHandler.ListCharacters)
		projects.POST("/:pid/characters", characterHandler.CreateCharacter)
		projects.PUT("/:pid/characters/:id", characterHandler.UpdateCharacter)
		projects.DELETE("/:pid/characters/:id", characterHandler.DeleteCharacter)

		// 项目下的场地距离
		projects.GET("/:pid/distances", distanceHandler.ListDistances)
		projects.PUT("/:pid/distances", distanceHandler.UpsertDistance)
		projects.DELETE("/:pid/distances/:id", distanceHandler.DeleteDistance)

		// 项目下的排期
		projects.POST("/:pid/plan/generate", planHandler.GeneratePlan)
		projects.POST("/:pid/plan/ai-generate", planHandler.GeneratePlanAI)
		projects.GET("/:pid/plan/latest", planHandler.GetLatestPlan)
		projects.GET("/:pid/plans", planHandler.ListPlans)
	}

	// 计划管理
	plans := v1.Group("/plans")
	{
		plans.GET("/:plan_id", planHandler.GetPlan)
		plans.DELETE("/:plan_id", planHandler.DeletePlan)
		plans.POST("/:plan_id/move-scene", planHandler.MoveScene)
	}
}
