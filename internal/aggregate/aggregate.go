// Package aggregate derives summaries and trends from raw health-record
// lists. Every function is pure: no I/O, no mutation of inputs, identical
// output for identical input. The profile view and the admin dashboard both
// rebuild these aggregates independently from the same record snapshot and
// must agree.
package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/parsa-a/HealthTrackBack/internal/models"
)

// LatestByType selects, for each record type present in the input, the record
// with the maximum RecordDate. Ties keep the record encountered first in
// input order. Types with no records are absent from the result.
func LatestByType(records []models.HealthRecord) map[models.RecordType]*models.HealthRecord {
	latest := make(map[models.RecordType]*models.HealthRecord)
	for i := range records {
		rec := &records[i]
		current, ok := latest[rec.RecordType]
		if !ok || rec.RecordDate.After(current.RecordDate) {
			latest[rec.RecordType] = rec
		}
	}
	return latest
}

// TrendSlice filters by type, sorts ascending by RecordDate, and returns the
// last n entries (or fewer when unavailable). The input slice is never
// mutated.
func TrendSlice(records []models.HealthRecord, recordType models.RecordType, n int) []models.HealthRecord {
	if n <= 0 {
		return nil
	}

	filtered := make([]models.HealthRecord, 0, len(records))
	for _, rec := range records {
		if rec.RecordType == recordType {
			filtered = append(filtered, rec)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].RecordDate.Before(filtered[j].RecordDate)
	})

	if len(filtered) > n {
		filtered = filtered[len(filtered)-n:]
	}
	return filtered
}

// Bucketize counts values into the categories delimited by thresholds. With
// k thresholds there are k+1 categories: values below thresholds[0] fall in
// labels[0], values in [thresholds[i-1], thresholds[i]) in labels[i], and
// values at or above the last threshold in labels[k]. labels must therefore
// hold exactly len(thresholds)+1 entries. Percentages are rounded to one
// decimal; an empty value set yields 0 for every category, never NaN.
func Bucketize(values []float64, thresholds []float64, labels []string) []models.Bucket {
	if len(labels) != len(thresholds)+1 {
		return nil
	}

	counts := make([]int, len(labels))
	for _, v := range values {
		idx := len(thresholds)
		for i, t := range thresholds {
			if v < t {
				idx = i
				break
			}
		}
		counts[idx]++
	}

	total := len(values)
	buckets := make([]models.Bucket, len(labels))
	for i, label := range labels {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(counts[i])/float64(total)*1000) / 10
		}
		buckets[i] = models.Bucket{Category: label, Count: counts[i], Percentage: pct}
	}
	return buckets
}

// CountCategories tallies pre-assigned category labels into buckets, one per
// entry of order (labels outside order are ignored). Percentage handling
// matches Bucketize: one decimal, 0 for an empty input.
func CountCategories(assigned []string, order []string) []models.Bucket {
	counts := make(map[string]int, len(order))
	total := 0
	for _, label := range assigned {
		for _, known := range order {
			if label == known {
				counts[label]++
				total++
				break
			}
		}
	}

	buckets := make([]models.Bucket, len(order))
	for i, label := range order {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(counts[label])/float64(total)*1000) / 10
		}
		buckets[i] = models.Bucket{Category: label, Count: counts[label], Percentage: pct}
	}
	return buckets
}

// WeeklyActivity counts records created within the trailing 7 days of now,
// bucketed by day of week with Monday at index 0. Go's time.Weekday numbers
// Sunday as 0, so the index is remapped explicitly.
func WeeklyActivity(records []models.HealthRecord, now time.Time) [7]int {
	var buckets [7]int
	windowStart := now.AddDate(0, 0, -7)
	for _, rec := range records {
		if rec.CreatedAt.After(now) || !rec.CreatedAt.After(windowStart) {
			continue
		}
		buckets[mondayIndex(rec.CreatedAt.Weekday())]++
	}
	return buckets
}

// mondayIndex converts Go's Sunday-first weekday to a Monday-first index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// ActiveUserIDs returns the set of user ids with at least one record created
// within the trailing window of now. windowDays defaults to 30 when
// non-positive.
func ActiveUserIDs(records []models.HealthRecord, now time.Time, windowDays int) map[string]struct{} {
	if windowDays <= 0 {
		windowDays = 30
	}
	windowStart := now.AddDate(0, 0, -windowDays)

	active := make(map[string]struct{})
	for _, rec := range records {
		if rec.CreatedAt.After(now) || !rec.CreatedAt.After(windowStart) {
			continue
		}
		active[rec.UserID] = struct{}{}
	}
	return active
}
