package dto

// CreateFeedbackRequest represents feedback submission data
type CreateFeedbackRequest struct {
	CourseID    string  `json:"courseId" binding:"required"`
	Rating      int     `json:"rating" binding:"required,min=1,max=5"`
	Comment     *string `json:"comment" binding:"omitempty,max=500"`
	StudentName *string `json:"studentName"`
}
