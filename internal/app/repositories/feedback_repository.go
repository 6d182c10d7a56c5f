package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rajat/coursepulse/internal/app/models"
)

// PostgresFeedbackRepository handles database operations for feedback
type PostgresFeedbackRepository struct {
	db *pgxpool.Pool
}

// NewPostgresFeedbackRepository creates a new feedback repository
func NewPostgresFeedbackRepository(db *pgxpool.Pool) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{
		db: db,
	}
}

// ListFeedback retrieves all feedback entries
func (r *PostgresFeedbackRepository) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	query := `
		SELECT id, course_id, rating, comment, student_name, created_at
		FROM feedback
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

// ListFeedbackByCourse retrieves the feedback referencing one course
func (r *PostgresFeedbackRepository) ListFeedbackByCourse(ctx context.Context, courseID string) ([]models.Feedback, error) {
	query := `
		SELECT id, course_id, rating, comment, student_name, created_at
		FROM feedback
		WHERE course_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

// CreateFeedback inserts a new feedback entry under a freshly generated id
// with a server-assigned creation timestamp
func (r *PostgresFeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = uuid.NewString()
	feedback.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO feedback (id, course_id, rating, comment, student_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		feedback.ID,
		feedback.CourseID,
		feedback.Rating,
		feedback.Comment,
		feedback.StudentName,
		feedback.CreatedAt,
	)
	return err
}

func scanFeedbackRows(rows pgx.Rows) ([]models.Feedback, error) {
	feedback := make([]models.Feedback, 0)
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(
			&fb.ID,
			&fb.CourseID,
			&fb.Rating,
			&fb.Comment,
			&fb.StudentName,
			&fb.CreatedAt,
		); err != nil {
			return nil, err
		}
		feedback = append(feedback, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedback, nil
}
