package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rajat/coursepulse/internal/app/models"
	"github.com/rajat/coursepulse/internal/app/models/dto"
	"github.com/rajat/coursepulse/internal/app/repositories"
	"github.com/rajat/coursepulse/internal/pkg/apperrors"
)

// feedbackService implements FeedbackService over the repository layer
type feedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	courseRepo   repositories.CourseRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, courseRepo repositories.CourseRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		courseRepo:   courseRepo,
	}
}

// ListFeedback returns every feedback entry
func (s *feedbackService) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	feedback, err := s.feedbackRepo.ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return feedback, nil
}

// ListFeedbackByCourse returns the feedback for one course. The course must
// exist.
func (s *feedbackService) ListFeedbackByCourse(ctx context.Context, courseID string) ([]models.Feedback, error) {
	course, err := s.courseRepo.GetCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	feedback, err := s.feedbackRepo.ListFeedbackByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course feedback: %w", err)
	}
	return feedback, nil
}

// SubmitFeedback validates and stores a new feedback entry. Feedback for an
// unknown course is rejected rather than stored as an orphan.
func (s *feedbackService) SubmitFeedback(ctx context.Context, req dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating))
	}
	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > models.MaxCommentLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("comment cannot exceed %d characters", models.MaxCommentLength))
	}

	course, err := s.courseRepo.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	feedback := &models.Feedback{
		CourseID:    req.CourseID,
		Rating:      req.Rating,
		Comment:     normalizeComment(req.Comment),
		StudentName: models.DefaultStudentName,
	}
	if req.StudentName != nil && *req.StudentName != "" {
		feedback.StudentName = *req.StudentName
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}

	return feedback, nil
}

// normalizeComment maps empty comments to absent ones
func normalizeComment(comment *string) *string {
	if comment == nil || *comment == "" {
		return nil
	}
	return comment
}
