package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rajat/coursepulse/internal/analytics"
	"github.com/rajat/coursepulse/internal/app/models"
	"github.com/rajat/coursepulse/internal/app/models/dto"
	"github.com/rajat/coursepulse/internal/app/repositories"
	"github.com/rajat/coursepulse/internal/pkg/apperrors"
)

// courseService implements CourseService over the repository layer
type courseService struct {
	courseRepo   repositories.CourseRepository
	feedbackRepo repositories.FeedbackRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository, feedbackRepo repositories.FeedbackRepository) CourseService {
	return &courseService{
		courseRepo:   courseRepo,
		feedbackRepo: feedbackRepo,
	}
}

// ListCoursesWithStats returns every course joined with its computed rating
// aggregates.
func (s *courseService) ListCoursesWithStats(ctx context.Context) ([]models.CourseWithStats, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	feedback, err := s.feedbackRepo.ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	byCourse := make(map[string][]models.Feedback, len(courses))
	for _, fb := range feedback {
		byCourse[fb.CourseID] = append(byCourse[fb.CourseID], fb)
	}

	result := make([]models.CourseWithStats, 0, len(courses))
	for _, course := range courses {
		avg, total := analytics.CourseStats(byCourse[course.ID])
		result = append(result, models.CourseWithStats{
			Course:        course,
			AverageRating: avg,
			TotalReviews:  total,
		})
	}

	return result, nil
}

// GetCourse retrieves a single course by id
func (s *courseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// CreateCourse validates and stores a new catalog entry
func (s *courseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := validateCourseFields(req.Code, req.Name, req.Instructor, req.Department); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.CourseCodeExists(ctx, req.Code, "")
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		Code:        req.Code,
		Name:        req.Name,
		Instructor:  req.Instructor,
		Department:  req.Department,
		Description: req.Description,
		Semester:    models.DefaultSemester,
	}
	if req.Semester != nil && strings.TrimSpace(*req.Semester) != "" {
		course.Semester = *req.Semester
	}

	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// UpdateCourse merges the provided fields onto an existing course
func (s *courseService) UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validateCourseUpdate(req); err != nil {
		return nil, err
	}

	// Existence is settled before uniqueness so an unknown id is always a
	// not-found, never a conflict.
	existing, err := s.courseRepo.GetCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if req.Code != nil {
		exists, err := s.courseRepo.CourseCodeExists(ctx, *req.Code, id)
		if err != nil {
			return nil, fmt.Errorf("error checking course code: %w", err)
		}
		if exists {
			return nil, apperrors.ErrCourseCodeExists
		}
	}

	course, err := s.courseRepo.UpdateCourse(ctx, id, repositories.CourseUpdate{
		Code:        req.Code,
		Name:        req.Name,
		Instructor:  req.Instructor,
		Department:  req.Department,
		Description: req.Description,
		Semester:    req.Semester,
	})
	if err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	return course, nil
}

// DeleteCourse removes a course and all feedback referencing it
func (s *courseService) DeleteCourse(ctx context.Context, id string) error {
	existed, err := s.courseRepo.DeleteCourse(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if !existed {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// validateCourseFields checks the required course attributes
func validateCourseFields(code, name, instructor, department string) error {
	switch {
	case strings.TrimSpace(code) == "":
		return apperrors.NewValidationError("course code cannot be empty")
	case strings.TrimSpace(name) == "":
		return apperrors.NewValidationError("course name cannot be empty")
	case strings.TrimSpace(instructor) == "":
		return apperrors.NewValidationError("course instructor cannot be empty")
	case strings.TrimSpace(department) == "":
		return apperrors.NewValidationError("course department cannot be empty")
	}
	return nil
}

// validateCourseUpdate rejects updates that would blank out required fields
func validateCourseUpdate(req dto.UpdateCourseRequest) error {
	if req.Code != nil && strings.TrimSpace(*req.Code) == "" {
		return apperrors.NewValidationError("course code cannot be empty")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return apperrors.NewValidationError("course name cannot be empty")
	}
	if req.Instructor != nil && strings.TrimSpace(*req.Instructor) == "" {
		return apperrors.NewValidationError("course instructor cannot be empty")
	}
	if req.Department != nil && strings.TrimSpace(*req.Department) == "" {
		return apperrors.NewValidationError("course department cannot be empty")
	}
	return nil
}
