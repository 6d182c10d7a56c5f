package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rajat/coursepulse/internal/app/models/dto"
	"github.com/rajat/coursepulse/internal/app/repositories"
	"github.com/rajat/coursepulse/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func newCourseServiceForTest() (CourseService, FeedbackService) {
	repos := repositories.NewMemoryRepositories()
	return NewCourseService(repos.CourseRepository, repos.FeedbackRepository),
		NewFeedbackService(repos.FeedbackRepository, repos.CourseRepository)
}

func createCourseReq(code string) dto.CreateCourseRequest {
	return dto.CreateCourseRequest{
		Code:       code,
		Name:       "Course " + code,
		Instructor: "Prof. Example",
		Department: "Computer Science",
	}
}

func TestCreateCourseDefaultsSemester(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	course, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.Semester != "Fall 2024" {
		t.Errorf("Semester = %q, want default Fall 2024", course.Semester)
	}
	if course.ID == "" {
		t.Error("expected an assigned id")
	}
}

func TestCreateCourseExplicitSemester(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	req := createCourseReq("CS 101")
	req.Semester = strPtr("Spring 2025")
	course, err := svc.CreateCourse(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.Semester != "Spring 2025" {
		t.Errorf("Semester = %q, want Spring 2025", course.Semester)
	}
}

func TestCreateCourseRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateCourseRequest)
	}{
		{"blank code", func(r *dto.CreateCourseRequest) { r.Code = "   " }},
		{"blank name", func(r *dto.CreateCourseRequest) { r.Name = "" }},
		{"blank instructor", func(r *dto.CreateCourseRequest) { r.Instructor = " " }},
		{"blank department", func(r *dto.CreateCourseRequest) { r.Department = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCourseServiceForTest()
			req := createCourseReq("CS 101")
			tt.mutate(&req)

			_, err := svc.CreateCourse(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateCourse error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	if _, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101")); err != nil {
		t.Fatalf("first CreateCourse: %v", err)
	}

	_, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if !errors.Is(err, apperrors.ErrCourseCodeExists) {
		t.Errorf("duplicate CreateCourse error = %v, want ErrCourseCodeExists", err)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	_, err := svc.GetCourse(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("GetCourse error = %v, want ErrCourseNotFound", err)
	}
}

func TestUpdateCourse(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	course, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	updated, err := svc.UpdateCourse(context.Background(), course.ID, dto.UpdateCourseRequest{
		Name: strPtr("Renamed Course"),
	})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.Name != "Renamed Course" {
		t.Errorf("Name = %q, want Renamed Course", updated.Name)
	}
	if updated.Code != "CS 101" {
		t.Errorf("Code = %q, untouched field changed", updated.Code)
	}
}

func TestUpdateCourseRejectsBlankingRequiredField(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	course, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	_, err = svc.UpdateCourse(context.Background(), course.ID, dto.UpdateCourseRequest{
		Instructor: strPtr("  "),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateCourse error = %v, want ErrValidationFailed", err)
	}
}

func TestUpdateCourseDuplicateCode(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	if _, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101")); err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	other, err := svc.CreateCourse(context.Background(), createCourseReq("MATH 210"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	_, err = svc.UpdateCourse(context.Background(), other.ID, dto.UpdateCourseRequest{
		Code: strPtr("CS 101"),
	})
	if !errors.Is(err, apperrors.ErrCourseCodeExists) {
		t.Errorf("UpdateCourse error = %v, want ErrCourseCodeExists", err)
	}
}

func TestUpdateCourseKeepingOwnCode(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	course, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	// Re-sending the course's own code is not a conflict.
	if _, err := svc.UpdateCourse(context.Background(), course.ID, dto.UpdateCourseRequest{
		Code: strPtr("CS 101"),
	}); err != nil {
		t.Errorf("UpdateCourse with own code: %v", err)
	}
}

func TestUpdateCourseUnknownIDWithTakenCode(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	if _, err := svc.CreateCourse(context.Background(), createCourseReq("CS 101")); err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	// The missing course wins over the code collision.
	_, err := svc.UpdateCourse(context.Background(), "missing", dto.UpdateCourseRequest{
		Code: strPtr("CS 101"),
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("UpdateCourse error = %v, want ErrCourseNotFound", err)
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	_, err := svc.UpdateCourse(context.Background(), "missing", dto.UpdateCourseRequest{
		Name: strPtr("x"),
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("UpdateCourse error = %v, want ErrCourseNotFound", err)
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc, _ := newCourseServiceForTest()

	err := svc.DeleteCourse(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("DeleteCourse error = %v, want ErrCourseNotFound", err)
	}
}

func TestListCoursesWithStats(t *testing.T) {
	courseSvc, feedbackSvc := newCourseServiceForTest()

	course, err := courseSvc.CreateCourse(context.Background(), createCourseReq("CS 101"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	for _, rating := range []int{4, 5} {
		if _, err := feedbackSvc.SubmitFeedback(context.Background(), dto.CreateFeedbackRequest{
			CourseID: course.ID,
			Rating:   rating,
		}); err != nil {
			t.Fatalf("SubmitFeedback: %v", err)
		}
	}
	if _, err := courseSvc.CreateCourse(context.Background(), createCourseReq("MATH 210")); err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	courses, err := courseSvc.ListCoursesWithStats(context.Background())
	if err != nil {
		t.Fatalf("ListCoursesWithStats: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}

	rated := courses[0]
	if rated.AverageRating != 4.5 || rated.TotalReviews != 2 {
		t.Errorf("rated course stats = (%v, %d), want (4.5, 2)", rated.AverageRating, rated.TotalReviews)
	}

	unrated := courses[1]
	if unrated.AverageRating != 0 || unrated.TotalReviews != 0 {
		t.Errorf("unrated course stats = (%v, %d), want (0, 0)", unrated.AverageRating, unrated.TotalReviews)
	}
}
