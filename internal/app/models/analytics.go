package models

// CourseWithStats is a Course enriched with computed rating aggregates.
type CourseWithStats struct {
	Course
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// DepartmentAnalytics aggregates every course sharing a department value.
// Trend stays nil: deriving a real trend needs historical snapshots the
// data model does not keep yet.
type DepartmentAnalytics struct {
	Department    string   `json:"department"`
	CourseCount   int      `json:"courseCount"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
	Trend         *float64 `json:"trend"`
}

// RatingBucket is one row of the 1..5 rating histogram.
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// OverallStats holds the platform-wide KPIs. ResponseRate stays nil:
// survey completion is not tracked anywhere in the store.
type OverallStats struct {
	TotalReviews  int      `json:"totalReviews"`
	AverageRating float64  `json:"averageRating"`
	ActiveCourses int      `json:"activeCourses"`
	ResponseRate  *float64 `json:"responseRate"`
}
