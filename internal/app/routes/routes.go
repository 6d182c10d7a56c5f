package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rajat/coursepulse/internal/app/controllers"
	"github.com/rajat/coursepulse/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	feedbackController *controllers.FeedbackController,
	analyticsController *controllers.AnalyticsController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.POST("", courseController.CreateCourse)
		courses.PATCH("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
		courses.GET("/:id/feedback", feedbackController.ListCourseFeedback)
	}

	// Feedback routes
	feedback := v1.Group("/feedback")
	{
		feedback.GET("", feedbackController.ListFeedback)
		feedback.POST("", feedbackController.SubmitFeedback)
	}

	// Analytics routes
	analytics := v1.Group("/analytics")
	{
		analytics.GET("/overview", analyticsController.GetOverview)
		analytics.GET("/departments", analyticsController.GetDepartmentAnalytics)
		analytics.GET("/rating-distribution", analyticsController.GetRatingDistribution)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
