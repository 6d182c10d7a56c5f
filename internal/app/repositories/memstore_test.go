package repositories

import (
	"context"
	"testing"

	"github.com/rajat/coursepulse/internal/app/models"
)

func strPtr(s string) *string { return &s }

func mustCreateCourse(t *testing.T, s *MemStore, code, department string) models.Course {
	t.Helper()
	course := &models.Course{
		Code:       code,
		Name:       "Course " + code,
		Instructor: "Prof. Example",
		Department: department,
		Semester:   models.DefaultSemester,
	}
	if err := s.CreateCourse(context.Background(), course); err != nil {
		t.Fatalf("CreateCourse(%s): %v", code, err)
	}
	return *course
}

func mustCreateFeedback(t *testing.T, s *MemStore, courseID string, rating int) models.Feedback {
	t.Helper()
	fb := &models.Feedback{
		CourseID:    courseID,
		Rating:      rating,
		StudentName: models.DefaultStudentName,
	}
	if err := s.CreateFeedback(context.Background(), fb); err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	return *fb
}

func TestMemStoreCreateCourseAssignsID(t *testing.T) {
	s := NewMemStore()
	course := mustCreateCourse(t, s, "CS 101", "Computer Science")

	if course.ID == "" {
		t.Fatal("expected CreateCourse to assign an id")
	}

	stored, err := s.GetCourse(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	if stored == nil || stored.Code != "CS 101" {
		t.Errorf("GetCourse returned %+v, want stored course", stored)
	}
}

func TestMemStoreGetCourseUnknownID(t *testing.T) {
	s := NewMemStore()
	course, err := s.GetCourse(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	if course != nil {
		t.Errorf("GetCourse(missing) = %+v, want nil", course)
	}
}

func TestMemStoreListCoursesInsertionOrder(t *testing.T) {
	s := NewMemStore()
	codes := []string{"CS 101", "MATH 210", "PHYS 150"}
	for _, code := range codes {
		mustCreateCourse(t, s, code, "Dept")
	}

	courses, err := s.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != len(codes) {
		t.Fatalf("ListCourses returned %d courses, want %d", len(courses), len(codes))
	}
	for i, code := range codes {
		if courses[i].Code != code {
			t.Errorf("courses[%d].Code = %q, want %q", i, courses[i].Code, code)
		}
	}
}

func TestMemStoreUpdateCoursePartialMerge(t *testing.T) {
	s := NewMemStore()
	course := mustCreateCourse(t, s, "CS 101", "Computer Science")

	updated, err := s.UpdateCourse(context.Background(), course.ID, CourseUpdate{
		Name:        strPtr("Intro to Programming"),
		Description: strPtr("Updated description"),
	})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated == nil {
		t.Fatal("UpdateCourse returned nil for existing course")
	}

	if updated.Name != "Intro to Programming" {
		t.Errorf("Name = %q, want updated value", updated.Name)
	}
	if updated.Description == nil || *updated.Description != "Updated description" {
		t.Errorf("Description = %v, want updated value", updated.Description)
	}
	// Untouched fields keep their stored values.
	if updated.Code != "CS 101" || updated.Department != "Computer Science" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.Semester != models.DefaultSemester {
		t.Errorf("Semester = %q, want %q", updated.Semester, models.DefaultSemester)
	}
}

func TestMemStoreUpdateCourseUnknownID(t *testing.T) {
	s := NewMemStore()
	updated, err := s.UpdateCourse(context.Background(), "missing", CourseUpdate{Name: strPtr("x")})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated != nil {
		t.Errorf("UpdateCourse(missing) = %+v, want nil", updated)
	}
}

func TestMemStoreDeleteCourseCascades(t *testing.T) {
	s := NewMemStore()
	kept := mustCreateCourse(t, s, "CS 101", "Computer Science")
	doomed := mustCreateCourse(t, s, "MATH 210", "Mathematics")

	mustCreateFeedback(t, s, kept.ID, 5)
	mustCreateFeedback(t, s, doomed.ID, 3)
	mustCreateFeedback(t, s, doomed.ID, 4)

	existed, err := s.DeleteCourse(context.Background(), doomed.ID)
	if err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	if !existed {
		t.Fatal("DeleteCourse reported course as absent")
	}

	course, _ := s.GetCourse(context.Background(), doomed.ID)
	if course != nil {
		t.Error("deleted course still retrievable")
	}

	all, err := s.ListFeedback(context.Background())
	if err != nil {
		t.Fatalf("ListFeedback: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 surviving feedback entry, got %d", len(all))
	}
	if all[0].CourseID != kept.ID {
		t.Errorf("surviving feedback references %q, want %q", all[0].CourseID, kept.ID)
	}
}

func TestMemStoreDeleteCourseUnknownID(t *testing.T) {
	s := NewMemStore()
	existed, err := s.DeleteCourse(context.Background(), "missing")
	if err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	if existed {
		t.Error("DeleteCourse(missing) reported course as existing")
	}
}

func TestMemStoreCourseCodeExists(t *testing.T) {
	s := NewMemStore()
	course := mustCreateCourse(t, s, "CS 101", "Computer Science")

	tests := []struct {
		name      string
		code      string
		excludeID string
		want      bool
	}{
		{"existing code", "CS 101", "", true},
		{"unknown code", "BIO 100", "", false},
		{"own id excluded", "CS 101", course.ID, false},
		{"other id excluded", "CS 101", "some-other-id", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.CourseCodeExists(context.Background(), tt.code, tt.excludeID)
			if err != nil {
				t.Fatalf("CourseCodeExists: %v", err)
			}
			if got != tt.want {
				t.Errorf("CourseCodeExists(%q, %q) = %v, want %v", tt.code, tt.excludeID, got, tt.want)
			}
		})
	}
}

func TestMemStoreListFeedbackByCourse(t *testing.T) {
	s := NewMemStore()
	c1 := mustCreateCourse(t, s, "CS 101", "Computer Science")
	c2 := mustCreateCourse(t, s, "MATH 210", "Mathematics")

	mustCreateFeedback(t, s, c1.ID, 5)
	mustCreateFeedback(t, s, c2.ID, 2)
	mustCreateFeedback(t, s, c1.ID, 4)

	feedback, err := s.ListFeedbackByCourse(context.Background(), c1.ID)
	if err != nil {
		t.Fatalf("ListFeedbackByCourse: %v", err)
	}
	if len(feedback) != 2 {
		t.Fatalf("expected 2 feedback entries, got %d", len(feedback))
	}
	if feedback[0].Rating != 5 || feedback[1].Rating != 4 {
		t.Errorf("feedback not in insertion order: %+v", feedback)
	}
}

func TestMemStoreCreateFeedbackAssignsIDAndTimestamp(t *testing.T) {
	s := NewMemStore()
	course := mustCreateCourse(t, s, "CS 101", "Computer Science")
	fb := mustCreateFeedback(t, s, course.ID, 4)

	if fb.ID == "" {
		t.Error("expected CreateFeedback to assign an id")
	}
	if fb.CreatedAt.IsZero() {
		t.Error("expected CreateFeedback to set a creation timestamp")
	}
}
