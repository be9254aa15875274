package routes

import (
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/controllers"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.RequestID())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.PUT("/dislikes", controllers.UpdateDislikes)
		user.PUT("/goals", controllers.UpdateGoals)
		user.GET("/preferences", controllers.ListPreferences)
		user.POST("/preferences", controllers.AddPreference)
		user.DELETE("/preferences", controllers.RemovePreference)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("/search", controllers.SearchFoods)
		foods.GET("/categories", controllers.ListCategories)
		foods.GET("/:id", controllers.FoodDetail)
	}

	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("", controllers.LogFood)
		logs.GET("", controllers.ListLogs)
		logs.PUT("/:id", controllers.UpdateLog)
		logs.DELETE("/:id", controllers.DeleteLog)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", controllers.DashboardData)
		dashboard.GET("/weekly", controllers.WeeklyChart)
		dashboard.GET("/recommendations", controllers.GetRecommendations)
		dashboard.GET("/export", controllers.ExportCSV)
	}

	ai := r.Group("/ai")
	ai.Use(middlewares.AuthMiddleware())
	{
		ai.GET("/diet-plan", controllers.GetDietPlan)
		ai.POST("/ask", controllers.AskQuestion)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/foods", controllers.CreateFood)
		admin.PUT("/foods/:id", controllers.UpdateFood)
		admin.POST("/foods/:id/deactivate", controllers.DeactivateFood)
		admin.DELETE("/foods/:id", controllers.DeleteFood)
	}

	return r
}
