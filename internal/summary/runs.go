package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/trainstats/internal/endurance"
)

const recentRunsCount = 3

// RunsSummary aggregates all run-type activities within the period.
type RunsSummary struct {
	TotalRuns          int
	AvgDistanceMeters  float64
	AvgDurationSeconds float64
	LastRuns           []RunSummaryEntry
	PaceTrend          string
}

func effectiveActivityType(a endurance.Activity) string {
	if a.Type == "" {
		return "Run"
	}
	return a.Type
}

// pace returns the activity's pace in minutes per kilometer. Undefined
// (ok == false) when distance or moving time is zero.
func pace(a endurance.Activity) (minPerKm float64, ok bool) {
	if a.DistanceMeters <= 0 || a.MovingTimeSeconds <= 0 {
		return 0, false
	}
	return (float64(a.MovingTimeSeconds) / 60) / (a.DistanceMeters / 1000), true
}

// formatPace renders a pace as zero-padded "MM:SS".
func formatPace(minPerKm float64) string {
	totalSeconds := int(math.Round(minPerKm * 60))
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// SummarizeRuns computes aggregate run statistics, the formatted list
// of most recent runs and the pace trend across the mid-period split.
// Activities of other types are ignored; a missing type counts as a run.
func SummarizeRuns(activities []endurance.Activity, midPeriod time.Time) RunsSummary {
	var runs []endurance.Activity
	for _, a := range activities {
		if effectiveActivityType(a) == "Run" {
			runs = append(runs, a)
		}
	}

	result := RunsSummary{
		TotalRuns: len(runs),
		LastRuns:  make([]RunSummaryEntry, 0, recentRunsCount),
		PaceTrend: paceTrend(runs, midPeriod),
	}

	if len(runs) > 0 {
		var totalDistance, totalDuration float64
		for _, r := range runs {
			totalDistance += r.DistanceMeters
			totalDuration += float64(r.MovingTimeSeconds)
		}
		result.AvgDistanceMeters = totalDistance / float64(len(runs))
		result.AvgDurationSeconds = totalDuration / float64(len(runs))
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartDate.After(runs[j].StartDate)
	})
	for i := 0; i < len(runs) && i < recentRunsCount; i++ {
		result.LastRuns = append(result.LastRuns, runSummaryEntry(runs[i]))
	}

	return result
}

func runSummaryEntry(a endurance.Activity) RunSummaryEntry {
	avgPace := "N/A"
	if p, ok := pace(a); ok {
		avgPace = formatPace(p)
	}
	return RunSummaryEntry{
		RunDate:        a.StartDate.Format(dateLayout),
		Name:           a.Name,
		DistanceKm:     round2(a.DistanceMeters / 1000),
		DurationMin:    round1(float64(a.MovingTimeSeconds) / 60),
		AvgPaceMinKm:   avgPace,
		ElevationGainM: math.Round(a.ElevationGainMeters),
		RunType:        effectiveActivityType(a),
	}
}

// paceTrend compares the mean pace of the recent half of the period
// (start date >= midPeriod) against the older half. Only runs with a
// defined pace take part; lower minutes per kilometer means faster.
func paceTrend(runs []endurance.Activity, midPeriod time.Time) string {
	var recentPaces, olderPaces []float64
	for _, r := range runs {
		p, ok := pace(r)
		if !ok {
			continue
		}
		if !r.StartDate.Before(midPeriod) {
			recentPaces = append(recentPaces, p)
		} else {
			olderPaces = append(olderPaces, p)
		}
	}

	switch {
	case len(recentPaces) == 0 && len(olderPaces) == 0:
		return PaceTrendNoData
	case len(recentPaces) == 0:
		return PaceTrendNoRecentData
	case len(olderPaces) == 0:
		return PaceTrendNoOlderData
	}

	recentMean := mean(recentPaces)
	olderMean := mean(olderPaces)
	switch {
	case recentMean < olderMean:
		return PaceTrendFaster
	case recentMean > olderMean:
		return PaceTrendSlower
	default:
		return PaceTrendConsistent
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
