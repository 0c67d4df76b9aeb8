package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HanishaChandrasekaran/placement-prep/backend/models"
)

func record(id, typ, language string, score, maxScore float64, date time.Time) models.PerformanceRecord {
	return models.PerformanceRecord{
		ID:       id,
		Type:     typ,
		Language: language,
		Score:    score,
		MaxScore: maxScore,
		Date:     date,
	}
}

func TestComputeEmpty(t *testing.T) {
	summary := Compute(nil, "", "")
	assert.Equal(t, models.PerformanceStats{}, summary)

	// A filter that matches nothing also yields all zeros.
	records := []models.PerformanceRecord{
		record("p1", models.PerformancePractice, "golang", 5, 10, time.Now()),
	}
	summary = Compute(records, models.PerformanceContest, "")
	assert.Equal(t, models.PerformanceStats{}, summary)
}

func TestComputePracticeScores(t *testing.T) {
	now := time.Now()
	records := []models.PerformanceRecord{
		record("p1", models.PerformancePractice, "java", 8, 10, now),
		record("p2", models.PerformancePractice, "java", 5, 10, now),
		record("p3", models.PerformancePractice, "java", 9, 10, now),
	}

	summary := Compute(records, models.PerformancePractice, "")
	assert.Equal(t, 3, summary.TotalAttempts)
	assert.InDelta(t, 73.333, summary.AverageScore, 0.01)
	assert.InDelta(t, 90, summary.BestScore, 0.001)
	assert.GreaterOrEqual(t, summary.BestScore, summary.AverageScore)
}

func TestComputeFilters(t *testing.T) {
	now := time.Now()
	records := []models.PerformanceRecord{
		record("p1", models.PerformancePractice, "java", 8, 10, now),
		record("p2", models.PerformanceContest, "java", 4, 10, now),
		record("p3", models.PerformancePractice, "python", 6, 10, now),
	}

	byType := Compute(records, models.PerformancePractice, "")
	assert.Equal(t, 2, byType.TotalAttempts)

	byLanguage := Compute(records, "", "java")
	assert.Equal(t, 2, byLanguage.TotalAttempts)

	both := Compute(records, models.PerformancePractice, "java")
	assert.Equal(t, 1, both.TotalAttempts)
	assert.InDelta(t, 80, both.AverageScore, 0.001)
}

func TestComputeAverageTime(t *testing.T) {
	now := time.Now()
	records := []models.PerformanceRecord{
		{Type: models.PerformancePractice, Score: 1, MaxScore: 1, TimeTaken: 30, Date: now},
		{Type: models.PerformancePractice, Score: 1, MaxScore: 1, TimeTaken: 90, Date: now},
	}
	summary := Compute(records, "", "")
	assert.InDelta(t, 60, summary.AverageTime, 0.001)
}

func TestComputeZeroMaxScore(t *testing.T) {
	now := time.Now()
	records := []models.PerformanceRecord{
		record("p1", models.PerformancePractice, "java", 5, 0, now),
		record("p2", models.PerformancePractice, "java", 5, 10, now),
	}

	summary := Compute(records, "", "")
	assert.Equal(t, 2, summary.TotalAttempts)
	assert.InDelta(t, 25, summary.AverageScore, 0.001)
	assert.InDelta(t, 50, summary.BestScore, 0.001)
}

func TestListSortsByDateDescending(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.PerformanceRecord{
		record("old", models.PerformancePractice, "java", 1, 10, base),
		record("new", models.PerformancePractice, "java", 2, 10, base.Add(2*time.Hour)),
		record("mid", models.PerformancePractice, "java", 3, 10, base.Add(time.Hour)),
	}

	got := List(records, "", "")
	assert.Equal(t, []string{"new", "mid", "old"}, []string{got[0].ID, got[1].ID, got[2].ID})

	// Input order is untouched.
	assert.Equal(t, "old", records[0].ID)
}

func TestListStableForEqualDates(t *testing.T) {
	when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.PerformanceRecord{
		record("a", models.PerformancePractice, "java", 1, 10, when),
		record("b", models.PerformancePractice, "java", 2, 10, when),
		record("c", models.PerformancePractice, "java", 3, 10, when),
	}

	got := List(records, "", "")
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestListFilters(t *testing.T) {
	now := time.Now()
	records := []models.PerformanceRecord{
		record("p1", models.PerformanceInterview, "java", 8, 10, now),
		record("p2", models.PerformanceContest, "python", 4, 10, now),
	}

	got := List(records, models.PerformanceInterview, "java")
	assert.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	assert.Empty(t, List(records, models.PerformancePractice, ""))
}
