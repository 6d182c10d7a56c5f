package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajat/coursepulse/internal/app/models/dto"
	"github.com/rajat/coursepulse/internal/app/services"
	"github.com/rajat/coursepulse/internal/middleware"
)

// AnalyticsController exposes the derived analytics views
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetOverview retrieves the platform-wide KPIs
// @Summary Get overall stats
// @Description Retrieves total reviews, overall average rating and active course count
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.OverallStats} "Stats retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/overview [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	stats, err := c.analyticsService.GetOverallStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// GetDepartmentAnalytics retrieves per-department rollups
// @Summary Get department analytics
// @Description Retrieves aggregate statistics per department, sorted by average rating descending
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.DepartmentAnalytics} "Analytics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/departments [get]
func (c *AnalyticsController) GetDepartmentAnalytics(ctx *gin.Context) {
	rollup, err := c.analyticsService.GetDepartmentAnalytics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rollup,
		Timestamp: time.Now(),
	})
}

// GetRatingDistribution retrieves the rating histogram
// @Summary Get rating distribution
// @Description Retrieves feedback counts per rating value; all five buckets are always present
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RatingBucket} "Distribution retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/rating-distribution [get]
func (c *AnalyticsController) GetRatingDistribution(ctx *gin.Context) {
	distribution, err := c.analyticsService.GetRatingDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      distribution,
		Timestamp: time.Now(),
	})
}
