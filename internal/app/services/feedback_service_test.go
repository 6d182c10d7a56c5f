package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rajat/coursepulse/internal/app/models"
	"github.com/rajat/coursepulse/internal/app/models/dto"
	"github.com/rajat/coursepulse/internal/pkg/apperrors"
)

func TestSubmitFeedback(t *testing.T) {
	courseSvc, feedbackSvc := newCourseServiceForTest()
	course, err := courseSvc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	fb, err := feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
		CourseID:    course.ID,
		Rating:      5,
		Comment:     strPtr("Great course"),
		StudentName: strPtr("Ravi Sharma"),
	})
	if err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}

	if fb.ID == "" {
		t.Error("expected an assigned id")
	}
	if fb.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
	if fb.StudentName != "Ravi Sharma" {
		t.Errorf("StudentName = %q, want Ravi Sharma", fb.StudentName)
	}
	if fb.Comment == nil || *fb.Comment != "Great course" {
		t.Errorf("Comment = %v, want Great course", fb.Comment)
	}
}

func TestSubmitFeedbackDefaultsStudentName(t *testing.T) {
	courseSvc, feedbackSvc := newCourseServiceForTest()
	course, err := courseSvc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	tests := []struct {
		name        string
		studentName *string
	}{
		{"absent name", nil},
		{"empty name", strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
				CourseID:    course.ID,
				Rating:      4,
				StudentName: tt.studentName,
			})
			if err != nil {
				t.Fatalf("SubmitFeedback: %v", err)
			}
			if fb.StudentName != models.DefaultStudentName {
				t.Errorf("StudentName = %q, want %q", fb.StudentName, models.DefaultStudentName)
			}
		})
	}
}

func TestSubmitFeedbackNormalizesEmptyComment(t *testing.T) {
	courseSvc, feedbackSvc := newCourseServiceForTest()
	course, err := courseSvc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	fb, err := feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
		CourseID: course.ID,
		Rating:   3,
		Comment:  strPtr(""),
	})
	if err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	if fb.Comment != nil {
		t.Errorf("Comment = %v, want nil for empty input", fb.Comment)
	}
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	courseSvc, feedbackSvc := newCourseServiceForTest()
	course, err := courseSvc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{6, true},
		{-1, true},
	}

	for _, tt := range tests {
		_, err := feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
			CourseID: course.ID,
			Rating:   tt.rating,
		})
		if tt.wantErr {
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("rating %d: error = %v, want ErrValidationFailed", tt.rating, err)
			}
		} else if err != nil {
			t.Errorf("rating %d: unexpected error %v", tt.rating, err)
		}
	}
}

func TestSubmitFeedbackCommentLength(t *testing.T) {
	courseSvc, feedbackSvc := newCourseServiceForTest()
	course, err := courseSvc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	atLimit := strings.Repeat("a", models.MaxCommentLength)
	if _, err := feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
		CourseID: course.ID,
		Rating:   4,
		Comment:  &atLimit,
	}); err != nil {
		t.Errorf("comment at limit rejected: %v", err)
	}

	overLimit := strings.Repeat("a", models.MaxCommentLength+1)
	_, err = feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
		CourseID: course.ID,
		Rating:   4,
		Comment:  &overLimit,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("comment over limit: error = %v, want ErrValidationFailed", err)
	}
}

func TestSubmitFeedbackUnknownCourse(t *testing.T) {
	_, feedbackSvc := newCourseServiceForTest()

	_, err := feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
		CourseID: "missing",
		Rating:   4,
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("SubmitFeedback error = %v, want ErrCourseNotFound", err)
	}
}

func TestListFeedbackByCourseUnknownCourse(t *testing.T) {
	_, feedbackSvc := newCourseServiceForTest()

	_, err := feedbackSvc.ListFeedbackByCourse(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("ListFeedbackByCourse error = %v, want ErrCourseNotFound", err)
	}
}

func TestListFeedbackByCourseFilters(t *testing.T) {
	courseSvc, feedbackSvc := newCourseServiceForTest()
	c1, err := courseSvc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	c2, err := courseSvc.CreateCourse(context.Background(), createCourseReq("MATH 210"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	for _, req := range []dto.CreateFeedbackRequest{
		{CourseID: c1.ID, Rating: 5},
		{CourseID: c2.ID, Rating: 2},
		{CourseID: c1.ID, Rating: 4},
	} {
		if _, err := feedbackSvc.SubmitFeedback(context.Background(), req); err != nil {
			t.Fatalf("SubmitFeedback: %v", err)
		}
	}

	feedback, err := feedbackSvc.ListFeedbackByCourse(context.Background(), c1.ID)
	if err != nil {
		t.Fatalf("ListFeedbackByCourse: %v", err)
	}
	if len(feedback) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(feedback))
	}
	for _, fb := range feedback {
		if fb.CourseID != c1.ID {
			t.Errorf("feedback references %q, want %q", fb.CourseID, c1.ID)
		}
	}
}
