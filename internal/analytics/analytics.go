// Package analytics derives aggregate views from raw course and feedback
// snapshots. Every function is a pure fold over its inputs; nothing here
// reads the store or caches results.
package analytics

import (
	"math"
	"sort"

	"github.com/rajat/coursepulse/internal/app/models"
)

// Round1 rounds to one decimal place with halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CourseStats returns the rounded mean rating and review count for one
// course's feedback. A course with no feedback averages 0, not NaN.
func CourseStats(feedback []models.Feedback) (avg float64, total int) {
	total = len(feedback)
	if total == 0 {
		return 0, 0
	}
	sum := 0
	for _, fb := range feedback {
		sum += fb.Rating
	}
	return Round1(float64(sum) / float64(total)), total
}

// DepartmentRollup partitions courses by department, pools the feedback of
// each department's courses and computes per-department aggregates. The
// result is sorted by average rating descending; ties keep the order in
// which departments were first encountered in the course list.
func DepartmentRollup(courses []models.Course, feedback []models.Feedback) []models.DepartmentAnalytics {
	type group struct {
		courseCount int
		ratingSum   int
		reviewCount int
	}

	groups := make(map[string]*group)
	order := make([]string, 0)
	courseDept := make(map[string]string, len(courses))

	for _, c := range courses {
		g, ok := groups[c.Department]
		if !ok {
			g = &group{}
			groups[c.Department] = g
			order = append(order, c.Department)
		}
		g.courseCount++
		courseDept[c.ID] = c.Department
	}

	for _, fb := range feedback {
		dept, ok := courseDept[fb.CourseID]
		if !ok {
			// Feedback without an owning course in this snapshot
			// belongs to no department.
			continue
		}
		g := groups[dept]
		g.ratingSum += fb.Rating
		g.reviewCount++
	}

	rollup := make([]models.DepartmentAnalytics, 0, len(order))
	for _, dept := range order {
		g := groups[dept]
		avg := 0.0
		if g.reviewCount > 0 {
			avg = Round1(float64(g.ratingSum) / float64(g.reviewCount))
		}
		rollup = append(rollup, models.DepartmentAnalytics{
			Department:    dept,
			CourseCount:   g.courseCount,
			AverageRating: avg,
			TotalReviews:  g.reviewCount,
		})
	}

	sort.SliceStable(rollup, func(i, j int) bool {
		return rollup[i].AverageRating > rollup[j].AverageRating
	})

	return rollup
}

// RatingDistribution counts feedback per rating value. All five buckets are
// emitted even when empty, ordered by rating ascending.
func RatingDistribution(feedback []models.Feedback) []models.RatingBucket {
	var counts [models.MaxRating + 1]int
	for _, fb := range feedback {
		if fb.Rating >= models.MinRating && fb.Rating <= models.MaxRating {
			counts[fb.Rating]++
		}
	}

	buckets := make([]models.RatingBucket, 0, models.MaxRating)
	for r := models.MinRating; r <= models.MaxRating; r++ {
		buckets = append(buckets, models.RatingBucket{Rating: r, Count: counts[r]})
	}
	return buckets
}

// Overall computes the platform-wide KPIs from a full snapshot.
func Overall(courses []models.Course, feedback []models.Feedback) models.OverallStats {
	stats := models.OverallStats{
		TotalReviews:  len(feedback),
		ActiveCourses: len(courses),
	}
	if len(feedback) > 0 {
		sum := 0
		for _, fb := range feedback {
			sum += fb.Rating
		}
		stats.AverageRating = Round1(float64(sum) / float64(len(feedback)))
	}
	return stats
}
