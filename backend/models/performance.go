package models

import "time"

// Performance entry types.
const (
	PerformanceContest   = "contest"
	PerformanceInterview = "interview"
	PerformancePractice  = "practice"
)

// ValidPerformanceType reports whether t is one of the known entry types.
func ValidPerformanceType(t string) bool {
	switch t {
	case PerformanceContest, PerformanceInterview, PerformancePractice:
		return true
	}
	return false
}

// PerformanceRecord is a single self-reported result of a contest, interview
// or practice activity. ID and Date are assigned when the record is stored
// and never change afterwards.
type PerformanceRecord struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Language     string    `json:"language"`
	Score        float64   `json:"score"`
	MaxScore     float64   `json:"maxScore"`
	TimeTaken    float64   `json:"timeTaken"` // seconds
	Date         time.Time `json:"date"`
	PlatformName string    `json:"platformName"`
	Title        string    `json:"title"`
}

// PerformanceStats summarizes a set of performance records.
type PerformanceStats struct {
	AverageScore  float64 `json:"averageScore"`
	TotalAttempts int     `json:"totalAttempts"`
	BestScore     float64 `json:"bestScore"`
	AverageTime   float64 `json:"averageTime"` // seconds
}
