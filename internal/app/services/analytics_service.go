package services

import (
	"context"
	"fmt"

	"github.com/rajat/coursepulse/internal/analytics"
	"github.com/rajat/coursepulse/internal/app/models"
	"github.com/rajat/coursepulse/internal/app/repositories"
)

// analyticsService folds the current store snapshot through the analytics
// engine. Nothing is cached; every call recomputes from scratch.
type analyticsService struct {
	courseRepo   repositories.CourseRepository
	feedbackRepo repositories.FeedbackRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(courseRepo repositories.CourseRepository, feedbackRepo repositories.FeedbackRepository) AnalyticsService {
	return &analyticsService{
		courseRepo:   courseRepo,
		feedbackRepo: feedbackRepo,
	}
}

// GetOverallStats computes the platform-wide KPIs
func (s *analyticsService) GetOverallStats(ctx context.Context) (models.OverallStats, error) {
	courses, feedback, err := s.snapshot(ctx)
	if err != nil {
		return models.OverallStats{}, err
	}
	return analytics.Overall(courses, feedback), nil
}

// GetDepartmentAnalytics computes per-department rollups sorted by average
// rating descending
func (s *analyticsService) GetDepartmentAnalytics(ctx context.Context) ([]models.DepartmentAnalytics, error) {
	courses, feedback, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.DepartmentRollup(courses, feedback), nil
}

// GetRatingDistribution computes the 1..5 rating histogram
func (s *analyticsService) GetRatingDistribution(ctx context.Context) ([]models.RatingBucket, error) {
	feedback, err := s.feedbackRepo.ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return analytics.RatingDistribution(feedback), nil
}

// snapshot reads both collections for a request-scoped fold
func (s *analyticsService) snapshot(ctx context.Context) ([]models.Course, []models.Feedback, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	feedback, err := s.feedbackRepo.ListFeedback(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return courses, feedback, nil
}
