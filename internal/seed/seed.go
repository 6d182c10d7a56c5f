package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/rajat/coursepulse/internal/app/models"
	appRepos "github.com/rajat/coursepulse/internal/app/repositories"
)

type demoCourse struct {
	code        string
	name        string
	instructor  string
	department  string
	description string
}

type demoFeedback struct {
	courseCode  string
	rating      int
	comment     string
	studentName string
}

var demoCourses = []demoCourse{
	{"CS 301", "Data Structures & Algorithms", "Prof. Amit Kumar", "Computer Science",
		"Comprehensive study of advanced data structures and algorithm optimization techniques"},
	{"MATH 210", "Linear Algebra", "Prof. Sweta Sharma", "Mathematics",
		"Mathematical foundations covering vector spaces, eigenvalues, and matrix operations"},
	{"PHYS 150", "General Physics I", "Prof. Satyam Patel", "Physics",
		"Fundamental physics principles including mechanics, energy, and thermodynamics"},
	{"CS 250", "Database Systems", "Prof. Shiv Gupta", "Computer Science",
		"Relational database concepts, normalization, and query optimization strategies"},
	{"ENG 101", "Academic Writing", "Prof. Ayush Singh", "English",
		"Development of critical writing and analytical thinking skills for academic contexts"},
	{"HIST 200", "World History", "Prof. Himesh Verma", "History",
		"Exploration of global historical patterns and cultural developments across civilizations"},
}

var demoFeedbackEntries = []demoFeedback{
	{"CS 301", 5, "Outstanding course with challenging algorithmic problems", "Ravi Sharma"},
	{"CS 301", 4, "Excellent content but requires dedicated study time", "Priya Patel"},
	{"CS 301", 4, "Prof Kumar explains complex concepts clearly", "Arjun Singh"},
	{"CS 301", 5, "Most comprehensive CS course in the curriculum", "Anjali Gupta"},
	{"CS 301", 3, "Challenging but builds strong foundation", "Vikram Yadav"},

	{"MATH 210", 4, "Well organized course with clear learning objectives", "Neha Joshi"},
	{"MATH 210", 3, "Mathematics is challenging but professor is supportive", "Karan Mehta"},
	{"MATH 210", 4, "Excellent problem sets and practice materials", "Divya Reddy"},
	{"MATH 210", 4, "Comprehensive coverage of all important topics", "Rohit Kumar"},

	{"PHYS 150", 5, "Exceptional teaching and course design", "Kavya Nair"},
	{"PHYS 150", 4, "Physics principles explained with practical examples", "Aditya Verma"},
	{"PHYS 150", 5, "Laboratory sessions are incredibly engaging", "Shreya Agarwal"},
	{"PHYS 150", 4, "Rigorous but maintains student interest", "Deepak Mishra"},

	{"CS 250", 4, "Solid introduction to database management systems", "Pooja Shah"},
	{"CS 250", 4, "Hands-on projects enhance learning experience", "Manish Tiwari"},
	{"CS 250", 4, "SQL knowledge gained is practically applicable", "Suman Das"},

	{"ENG 101", 3, "Fundamental course for academic writing skills", "Isha Bansal"},
	{"ENG 101", 4, "Significant improvement in writing abilities", "Gaurav Sinha"},
	{"ENG 101", 3, "Constructive feedback helps in skill development", "Nisha Rao"},

	{"HIST 200", 4, "Intriguing insights into world civilizations", "Rahul Jain"},
	{"HIST 200", 5, "Prof Verma makes history come alive in classroom", "Meera Chopra"},
	{"HIST 200", 4, "Interactive discussions enhance understanding", "Akash Pandey"},
}

// EnsureDemoData populates an empty store with the sample catalog and
// feedback. A store that already holds courses is left untouched.
func EnsureDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.CourseRepository.ListCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing courses: %w", err)
	}
	if len(existing) > 0 {
		lgr.Debug().Int("courses", len(existing)).Msg("Store already populated, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Seeding demo catalog and feedback...")
	var finalErr error

	idsByCode := make(map[string]string, len(demoCourses))
	for _, dc := range demoCourses {
		description := dc.description
		course := &appModels.Course{
			Code:        dc.code,
			Name:        dc.name,
			Instructor:  dc.instructor,
			Department:  dc.department,
			Description: &description,
			Semester:    appModels.DefaultSemester,
		}
		if err := repos.CourseRepository.CreateCourse(ctx, course); err != nil {
			lgr.Error().Err(err).Str("code", dc.code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		idsByCode[dc.code] = course.ID
	}

	for _, df := range demoFeedbackEntries {
		courseID, ok := idsByCode[df.courseCode]
		if !ok {
			continue
		}
		comment := df.comment
		feedback := &appModels.Feedback{
			CourseID:    courseID,
			Rating:      df.rating,
			Comment:     &comment,
			StudentName: df.studentName,
		}
		if err := repos.FeedbackRepository.CreateFeedback(ctx, feedback); err != nil {
			lgr.Error().Err(err).Str("course", df.courseCode).Msg("Error seeding feedback")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().
		Int("courses", len(idsByCode)).
		Int("feedback", len(demoFeedbackEntries)).
		Msg("Demo data seeded")
	return finalErr
}
