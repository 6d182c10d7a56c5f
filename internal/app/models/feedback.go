package models

import "time"

const (
	// MinRating and MaxRating bound the star scale.
	MinRating = 1
	MaxRating = 5

	// MaxCommentLength caps free-text comments, counted in runes.
	MaxCommentLength = 500

	// DefaultStudentName is used when feedback is submitted without a name.
	DefaultStudentName = "Anonymous"
)

// Feedback is one student's rating (and optional comment) for one course.
// Feedback is never updated after creation; it only disappears when its
// course is deleted.
type Feedback struct {
	ID          string    `json:"id" db:"id"`
	CourseID    string    `json:"courseId" db:"course_id"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     *string   `json:"comment,omitempty" db:"comment"` // Nullable
	StudentName string    `json:"studentName" db:"student_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
