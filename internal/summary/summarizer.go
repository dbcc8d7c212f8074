package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainstats/internal/endurance"
	"github.com/2beens/trainstats/internal/strengthlog"
	"github.com/2beens/trainstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type strengthLogRepo interface {
	ListSince(ctx context.Context, userID int64, since time.Time) ([]strengthlog.Entry, error)
}

type enduranceRepo interface {
	ListSince(ctx context.Context, userID int64, since time.Time) ([]endurance.Activity, error)
}

type preferencesRepo interface {
	WeightUnit(ctx context.Context, userID int64) (string, error)
}

// Summarizer computes one ActivitySummary per (user, period) request.
// It is stateless: given a fixed set of rows and a fixed now, the
// output is deterministic, so concurrent invocations need no
// synchronization.
type Summarizer struct {
	strengthLog strengthLogRepo
	endurance   enduranceRepo
	prefs       preferencesRepo
	now         func() time.Time
}

func NewSummarizer(
	strengthLog strengthLogRepo,
	enduranceActivities enduranceRepo,
	prefs preferencesRepo,
) *Summarizer {
	return &Summarizer{
		strengthLog: strengthLog,
		endurance:   enduranceActivities,
		prefs:       prefs,
		now:         time.Now,
	}
}

// Summarize resolves the period, fetches the user's rows and runs the
// aggregation stages. Any fetch failure fails the whole computation -
// a partially populated summary is never returned. No qualifying rows
// is not an error and yields the documented zero/empty defaults.
func (s *Summarizer) Summarize(ctx context.Context, userID int64, periodDays int) (_ *ActivitySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.summarize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.Int("period_days", periodDays))

	weightUnit, err := s.prefs.WeightUnit(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get weight unit preference: %w", err)
	}

	period := ResolvePeriod(s.now(), periodDays)

	entries, err := s.strengthLog.ListSince(ctx, userID, period.Start)
	if err != nil {
		return nil, fmt.Errorf("list strength log entries: %w", err)
	}

	activities, err := s.endurance.ListSince(ctx, userID, period.Start)
	if err != nil {
		return nil, fmt.Errorf("list endurance activities: %w", err)
	}

	runs := SummarizeRuns(activities, period.Mid)

	return &ActivitySummary{
		TotalWorkoutSessions:       distinctWorkoutDays(entries),
		TotalRunSessions:           runs.TotalRuns,
		AvgWorkoutDurationMinutes:  avgWorkoutDurationMinutes(entries),
		AvgRunDistanceMeters:       runs.AvgDistanceMeters,
		AvgRunDurationSeconds:      runs.AvgDurationSeconds,
		MuscleGroupSummary:         AggregateMuscleGroups(entries),
		DynamicExerciseProgression: AnalyzeProgression(entries, weightUnit),
		Last3Runs:                  runs.LastRuns,
		RecentRunPaceTrend:         runs.PaceTrend,
		WorkoutDaysThisWeek:        workoutDaysBetween(entries, period.CurrentWeekStart, time.Time{}),
		WorkoutDaysLastWeek:        workoutDaysBetween(entries, period.LastWeekStart, period.CurrentWeekStart),
	}, nil
}

// distinctWorkoutDays counts calendar days with at least one entry,
// regardless of muscle group - broader than the per-stage filters.
func distinctWorkoutDays(entries []strengthlog.Entry) int {
	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.RecordedAt.Format(dateLayout)] = struct{}{}
	}
	return len(days)
}

// workoutDaysBetween counts distinct logged days with from <= day < to.
// A zero "to" means no upper bound.
func workoutDaysBetween(entries []strengthlog.Entry, from, to time.Time) int {
	days := make(map[string]struct{})
	for _, e := range entries {
		if e.RecordedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !e.RecordedAt.Before(to) {
			continue
		}
		days[e.RecordedAt.Format(dateLayout)] = struct{}{}
	}
	return len(days)
}

// avgWorkoutDurationMinutes is the mean of per-day summed durations,
// over the days that have any logged duration at all.
func avgWorkoutDurationMinutes(entries []strengthlog.Entry) float64 {
	durationPerDay := make(map[string]float64)
	for _, e := range entries {
		if e.DurationMinutes == nil {
			continue
		}
		durationPerDay[e.RecordedAt.Format(dateLayout)] += *e.DurationMinutes
	}

	if len(durationPerDay) == 0 {
		return 0
	}

	var total float64
	for _, d := range durationPerDay {
		total += d
	}
	return round1(total / float64(len(durationPerDay)))
}
