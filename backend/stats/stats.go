// Package stats aggregates performance history into display statistics.
// Everything here is a pure function over the records it is given; nothing
// is persisted.
package stats

import (
	"sort"

	"github.com/HanishaChandrasekaran/placement-prep/backend/models"
)

// ratio converts a record to a percentage score. A record with MaxScore of
// zero counts as zero rather than dividing by it.
func ratio(r models.PerformanceRecord) float64 {
	if r.MaxScore == 0 {
		return 0
	}
	return r.Score / r.MaxScore * 100
}

func filter(records []models.PerformanceRecord, typ, language string) []models.PerformanceRecord {
	out := make([]models.PerformanceRecord, 0, len(records))
	for _, r := range records {
		if typ != "" && r.Type != typ {
			continue
		}
		if language != "" && r.Language != language {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Compute filters records by the optional type and language (empty string
// means no filter) and reduces them to summary statistics. An empty filtered
// set yields all zeros.
func Compute(records []models.PerformanceRecord, typ, language string) models.PerformanceStats {
	matched := filter(records, typ, language)
	if len(matched) == 0 {
		return models.PerformanceStats{}
	}

	var totalScore, totalTime, best float64
	for i, r := range matched {
		pct := ratio(r)
		totalScore += pct
		totalTime += r.TimeTaken
		// Strict > keeps the first record on ties.
		if i == 0 || pct > best {
			best = pct
		}
	}

	n := float64(len(matched))
	return models.PerformanceStats{
		AverageScore:  totalScore / n,
		TotalAttempts: len(matched),
		BestScore:     best,
		AverageTime:   totalTime / n,
	}
}

// List filters records the same way as Compute and returns them most recent
// first. Records with equal dates keep their relative input order; the input
// slice is never mutated.
func List(records []models.PerformanceRecord, typ, language string) []models.PerformanceRecord {
	matched := filter(records, typ, language)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return matched
}
