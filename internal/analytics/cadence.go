package analytics

import (
	"sort"
	"time"

	"github.com/yt-insights/ytca/internal/models"
)

// HourBucket is a fixed window of UTC hours.
type HourBucket struct {
	Name   string
	Window string
	match  func(hour int) bool
}

var hourBuckets = []HourBucket{
	{Name: "morning", Window: "06:00-12:00 UTC", match: func(h int) bool { return h >= 6 && h < 12 }},
	{Name: "afternoon", Window: "12:00-18:00 UTC", match: func(h int) bool { return h >= 12 && h < 18 }},
	{Name: "evening", Window: "18:00-22:00 UTC", match: func(h int) bool { return h >= 18 && h < 22 }},
	{Name: "night", Window: "22:00-06:00 UTC", match: func(h int) bool { return h >= 22 || h < 6 }},
}

// BucketFor returns the hour bucket a publish time falls into.
func BucketFor(t time.Time) HourBucket {
	return hourBuckets[bucketIndex(t.UTC().Hour())]
}

func bucketIndex(hour int) int {
	for i, b := range hourBuckets {
		if b.match(hour) {
			return i
		}
	}
	return len(hourBuckets) - 1
}

// BucketWindow returns the UTC window label for a bucket name.
func BucketWindow(name string) string {
	for _, b := range hourBuckets {
		if b.Name == name {
			return b.Window
		}
	}
	return ""
}

// AnalyzeCadence measures upload rhythm over the full set and finds the UTC
// weekday and hour bucket with the highest mean views/day. Ties go to the
// earlier slot (Sunday first for days, morning first for buckets).
func AnalyzeCadence(metrics []models.VideoMetric) models.UploadCadence {
	ordered := make([]models.VideoMetric, len(metrics))
	copy(ordered, metrics)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PublishedAt.Before(ordered[j].PublishedAt)
	})

	gaps := make([]float64, 0, len(ordered))
	for i := 1; i < len(ordered); i++ {
		gap := ordered[i].PublishedAt.Sub(ordered[i-1].PublishedAt).Hours() / 24
		if gap < 0 {
			continue
		}
		gaps = append(gaps, gap)
	}

	avgGap := mean(gaps)
	var perWeek float64
	if avgGap > 0 {
		perWeek = 7 / avgGap
	}

	var byDay [7][]float64
	byBucket := make([][]float64, len(hourBuckets))
	for _, m := range metrics {
		published := m.PublishedAt.UTC()
		byDay[published.Weekday()] = append(byDay[published.Weekday()], m.ViewsPerDay)
		bucket := bucketIndex(published.Hour())
		byBucket[bucket] = append(byBucket[bucket], m.ViewsPerDay)
	}

	cadence := models.UploadCadence{
		AvgDaysBetweenUploads: avgGap,
		UploadsPerWeek:        perWeek,
		ByDayOfWeek:           make([]models.SlotAverage, 0, 7),
		ByHourBucket:          make([]models.SlotAverage, 0, len(hourBuckets)),
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		if len(byDay[day]) == 0 {
			continue
		}
		slot := models.SlotAverage{Slot: day.String(), Videos: len(byDay[day]), AvgVPD: mean(byDay[day])}
		cadence.ByDayOfWeek = append(cadence.ByDayOfWeek, slot)
		if cadence.BestDayOfWeek == "" || slot.AvgVPD > cadence.BestDayAvgVPD {
			cadence.BestDayOfWeek = slot.Slot
			cadence.BestDayAvgVPD = slot.AvgVPD
		}
	}

	for i, b := range hourBuckets {
		if len(byBucket[i]) == 0 {
			continue
		}
		slot := models.SlotAverage{Slot: b.Name, Videos: len(byBucket[i]), AvgVPD: mean(byBucket[i])}
		cadence.ByHourBucket = append(cadence.ByHourBucket, slot)
		if cadence.BestHourBucket == "" || slot.AvgVPD > cadence.BestHourAvgVPD {
			cadence.BestHourBucket = slot.Slot
			cadence.BestHourAvgVPD = slot.AvgVPD
		}
	}

	return cadence
}
