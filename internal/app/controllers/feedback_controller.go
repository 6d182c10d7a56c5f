package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajat/coursepulse/internal/app/models/dto"
	"github.com/rajat/coursepulse/internal/app/services"
	"github.com/rajat/coursepulse/internal/middleware"
)

// FeedbackController handles feedback submission and listing
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback handles feedback creation
// @Summary Submit course feedback
// @Description Stores a star rating with an optional comment for a course
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback information"
// @Success 201 {object} dto.APIResponse{data=models.Feedback} "Feedback created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid feedback data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	feedback, err := c.feedbackService.SubmitFeedback(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// ListFeedback retrieves all feedback
// @Summary List all feedback
// @Description Retrieves every feedback entry across all courses
// @Tags feedback
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback} "Feedback retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	feedback, err := c.feedbackService.ListFeedback(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// ListCourseFeedback retrieves the feedback for one course
// @Summary List feedback for a course
// @Description Retrieves every feedback entry referencing the given course
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Feedback} "Feedback retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/feedback [get]
func (c *FeedbackController) ListCourseFeedback(ctx *gin.Context) {
	feedback, err := c.feedbackService.ListFeedbackByCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}
