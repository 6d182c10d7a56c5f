package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rajat/coursepulse/internal/app/models"
)

// MemStore keeps courses and feedback in process memory. It implements both
// repository interfaces on one struct: the course delete cascade has to
// touch both collections under the same lock so a reader never sees a
// deleted course with its feedback still present.
//
// Listings preserve insertion order. All returned values are copies; the
// store never aliases its internal records.
type MemStore struct {
	mu            sync.RWMutex
	courses       map[string]models.Course
	courseOrder   []string
	feedback      map[string]models.Feedback
	feedbackOrder []string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		courses:  make(map[string]models.Course),
		feedback: make(map[string]models.Feedback),
	}
}

// ListCourses returns all courses in insertion order.
func (s *MemStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		courses = append(courses, s.courses[id])
	}
	return courses, nil
}

// GetCourse returns the course with the given id, or nil if absent.
func (s *MemStore) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &course, nil
}

// CreateCourse stores the course under a freshly generated id.
func (s *MemStore) CreateCourse(ctx context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = uuid.NewString()
	s.courses[course.ID] = *course
	s.courseOrder = append(s.courseOrder, course.ID)
	return nil
}

// UpdateCourse merges the non-nil update fields onto the stored record.
func (s *MemStore) UpdateCourse(ctx context.Context, id string, update CourseUpdate) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}

	applyCourseUpdate(&course, update)
	s.courses[id] = course
	return &course, nil
}

// DeleteCourse removes the course and all feedback referencing it under one
// critical section.
func (s *MemStore) DeleteCourse(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return false, nil
	}

	delete(s.courses, id)
	s.courseOrder = removeID(s.courseOrder, id)

	remaining := s.feedbackOrder[:0]
	for _, fbID := range s.feedbackOrder {
		if s.feedback[fbID].CourseID == id {
			delete(s.feedback, fbID)
			continue
		}
		remaining = append(remaining, fbID)
	}
	s.feedbackOrder = remaining

	return true, nil
}

// CourseCodeExists reports whether another course already uses the code.
func (s *MemStore) CourseCodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, course := range s.courses {
		if course.Code == code && course.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// ListFeedback returns all feedback in insertion order.
func (s *MemStore) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feedback := make([]models.Feedback, 0, len(s.feedbackOrder))
	for _, id := range s.feedbackOrder {
		feedback = append(feedback, s.feedback[id])
	}
	return feedback, nil
}

// ListFeedbackByCourse returns the feedback referencing one course, in
// insertion order.
func (s *MemStore) ListFeedbackByCourse(ctx context.Context, courseID string) ([]models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feedback := make([]models.Feedback, 0)
	for _, id := range s.feedbackOrder {
		if fb := s.feedback[id]; fb.CourseID == courseID {
			feedback = append(feedback, fb)
		}
	}
	return feedback, nil
}

// CreateFeedback stores the feedback under a freshly generated id with a
// server-assigned creation timestamp.
func (s *MemStore) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	feedback.ID = uuid.NewString()
	feedback.CreatedAt = time.Now().UTC()
	s.feedback[feedback.ID] = *feedback
	s.feedbackOrder = append(s.feedbackOrder, feedback.ID)
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
