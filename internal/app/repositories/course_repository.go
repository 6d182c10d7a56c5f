package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rajat/coursepulse/internal/app/models"
	"github.com/rajat/coursepulse/internal/pkg/apperrors"
)

const uniqueViolationCode = "23505"

// PostgresCourseRepository handles database operations for courses
type PostgresCourseRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCourseRepository creates a new course repository
func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
	}
}

// ListCourses retrieves all courses
func (r *PostgresCourseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, code, name, instructor, department, description, semester
		FROM courses
		ORDER BY inserted_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Instructor,
			&course.Department,
			&course.Description,
			&course.Semester,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetCourse retrieves a course by ID. Returns nil when the id is unknown.
func (r *PostgresCourseRepository) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, code, name, instructor, department, description, semester
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Instructor,
		&course.Department,
		&course.Description,
		&course.Semester,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// CreateCourse inserts a new course under a freshly generated id
func (r *PostgresCourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	course.ID = uuid.NewString()

	query := `
		INSERT INTO courses (id, code, name, instructor, department, description, semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		course.ID,
		course.Code,
		course.Name,
		course.Instructor,
		course.Department,
		course.Description,
		course.Semester,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return err
	}

	return nil
}

// UpdateCourse merges the non-nil update fields onto the stored row inside
// one transaction
func (r *PostgresCourseRepository) UpdateCourse(ctx context.Context, id string, update CourseUpdate) (*models.Course, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var course models.Course
	err = tx.QueryRow(ctx, `
		SELECT id, code, name, instructor, department, description, semester
		FROM courses
		WHERE id = $1
		FOR UPDATE`, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Instructor,
		&course.Department,
		&course.Description,
		&course.Semester,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course for update: %w", err)
	}

	applyCourseUpdate(&course, update)

	_, err = tx.Exec(ctx, `
		UPDATE courses
		SET code = $1, name = $2, instructor = $3, department = $4, description = $5, semester = $6
		WHERE id = $7`,
		course.Code,
		course.Name,
		course.Instructor,
		course.Department,
		course.Description,
		course.Semester,
		course.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrCourseCodeExists
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &course, nil
}

// DeleteCourse removes a course. The feedback cascade runs in the database
// via the ON DELETE CASCADE constraint, so the whole removal is atomic.
func (r *PostgresCourseRepository) DeleteCourse(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting course: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CourseCodeExists checks if another course already uses the code
func (r *PostgresCourseRepository) CourseCodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id <> $2)`,
		code, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}

	return exists, nil
}

// isUniqueViolation reports whether err is a postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
