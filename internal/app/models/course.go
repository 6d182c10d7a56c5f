package models

// DefaultSemester is applied when a course is created without one.
const DefaultSemester = "Fall 2024"

// Course represents a catalog entry students can evaluate.
type Course struct {
	ID          string  `json:"id" db:"id"`
	Code        string  `json:"code" db:"code"`
	Name        string  `json:"name" db:"name"`
	Instructor  string  `json:"instructor" db:"instructor"`
	Department  string  `json:"department" db:"department"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
	Semester    string  `json:"semester" db:"semester"`
}
