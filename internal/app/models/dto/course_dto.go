package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Instructor  string  `json:"instructor" binding:"required"`
	Department  string  `json:"department" binding:"required"`
	Description *string `json:"description"`
	Semester    *string `json:"semester"`
}

// UpdateCourseRequest represents a partial course update. Nil fields keep
// the stored value.
type UpdateCourseRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Instructor  *string `json:"instructor"`
	Department  *string `json:"department"`
	Description *string `json:"description"`
	Semester    *string `json:"semester"`
}
