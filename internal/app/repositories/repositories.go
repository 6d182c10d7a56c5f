package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rajat/coursepulse/internal/app/models"
)

// CourseUpdate carries the optional fields of a partial course update.
// Nil fields keep the stored value.
type CourseUpdate struct {
	Code        *string
	Name        *string
	Instructor  *string
	Department  *string
	Description *string
	Semester    *string
}

// CourseRepository handles storage operations for courses
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	// GetCourse returns nil without error when the id is unknown.
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	// CreateCourse assigns a fresh id to the course before storing it.
	CreateCourse(ctx context.Context, course *models.Course) error
	// UpdateCourse merges the non-nil update fields onto the stored record.
	// Returns nil without error when the id is unknown.
	UpdateCourse(ctx context.Context, id string, update CourseUpdate) (*models.Course, error)
	// DeleteCourse removes the course and every feedback entry referencing
	// it, and reports whether the course existed. Readers never observe the
	// course gone while its feedback remains.
	DeleteCourse(ctx context.Context, id string) (bool, error)
	// CourseCodeExists reports whether another course (excludeID aside)
	// already uses the code.
	CourseCodeExists(ctx context.Context, code string, excludeID string) (bool, error)
}

// FeedbackRepository handles storage operations for feedback
type FeedbackRepository interface {
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	ListFeedbackByCourse(ctx context.Context, courseID string) ([]models.Feedback, error)
	// CreateFeedback assigns a fresh id and creation timestamp before
	// storing the entry.
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
}

// Repositories contains the repository instances passed through the
// dependency graph.
type Repositories struct {
	CourseRepository   CourseRepository
	FeedbackRepository FeedbackRepository
}

// NewPostgresRepositories creates repositories backed by a pgx pool.
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:   NewPostgresCourseRepository(db),
		FeedbackRepository: NewPostgresFeedbackRepository(db),
	}
}

// NewMemoryRepositories creates repositories over a single in-memory store.
// Both interfaces share the store so the course delete cascade stays atomic
// across the two collections.
func NewMemoryRepositories() *Repositories {
	store := NewMemStore()
	return &Repositories{
		CourseRepository:   store,
		FeedbackRepository: store,
	}
}

// applyCourseUpdate merges the non-nil fields of a partial update onto a
// course record. Shared by both backends so merge semantics cannot drift.
func applyCourseUpdate(course *models.Course, update CourseUpdate) {
	if update.Code != nil {
		course.Code = *update.Code
	}
	if update.Name != nil {
		course.Name = *update.Name
	}
	if update.Instructor != nil {
		course.Instructor = *update.Instructor
	}
	if update.Department != nil {
		course.Department = *update.Department
	}
	if update.Description != nil {
		course.Description = update.Description
	}
	if update.Semester != nil {
		course.Semester = *update.Semester
	}
}
