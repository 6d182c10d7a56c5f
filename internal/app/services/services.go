package services

import (
	"context"

	"github.com/rajat/coursepulse/internal/app/models"
	"github.com/rajat/coursepulse/internal/app/models/dto"
)

// CourseService handles catalog operations
type CourseService interface {
	ListCoursesWithStats(ctx context.Context) ([]models.CourseWithStats, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// FeedbackService handles feedback submission and listing
type FeedbackService interface {
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	ListFeedbackByCourse(ctx context.Context, courseID string) ([]models.Feedback, error)
	SubmitFeedback(ctx context.Context, req dto.CreateFeedbackRequest) (*models.Feedback, error)
}

// AnalyticsService derives aggregate views from the current store snapshot
type AnalyticsService interface {
	GetOverallStats(ctx context.Context) (models.OverallStats, error)
	GetDepartmentAnalytics(ctx context.Context) ([]models.DepartmentAnalytics, error)
	GetRatingDistribution(ctx context.Context) ([]models.RatingBucket, error)
}
