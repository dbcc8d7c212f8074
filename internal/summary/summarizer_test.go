package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/trainstats/internal/endurance"
	"github.com/2beens/trainstats/internal/strengthlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type strengthLogRepoMock struct {
	entries []strengthlog.Entry
	err     error

	calledSince time.Time
}

func (m *strengthLogRepoMock) ListSince(_ context.Context, _ int64, since time.Time) ([]strengthlog.Entry, error) {
	m.calledSince = since
	return m.entries, m.err
}

type enduranceRepoMock struct {
	activities []endurance.Activity
	err        error

	calledSince time.Time
}

func (m *enduranceRepoMock) ListSince(_ context.Context, _ int64, since time.Time) ([]endurance.Activity, error) {
	m.calledSince = since
	return m.activities, m.err
}

type preferencesRepoMock struct {
	weightUnit string
	err        error
}

func (m *preferencesRepoMock) WeightUnit(_ context.Context, _ int64) (string, error) {
	return m.weightUnit, m.err
}

func newTestSummarizer(
	strengthLog *strengthLogRepoMock,
	enduranceActivities *enduranceRepoMock,
	prefs *preferencesRepoMock,
	now time.Time,
) *Summarizer {
	s := NewSummarizer(strengthLog, enduranceActivities, prefs)
	s.now = func() time.Time { return now }
	return s
}

func TestSummarize(t *testing.T) {
	// saturday noon, current week started monday 2025-03-10
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	reps := 10
	weight := 60.0
	duration := 45.0
	chest := "Chest"
	entry := func(day int, hour int) strengthlog.Entry {
		return strengthlog.Entry{
			UserID:          1,
			ExerciseName:    "Bench Press",
			MuscleGroup:     &chest,
			Sets:            3,
			Reps:            &reps,
			Weight:          &weight,
			DurationMinutes: &duration,
			RecordedAt:      time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC),
		}
	}

	strengthLog := &strengthLogRepoMock{
		entries: []strengthlog.Entry{
			// two entries on the same day are one workout session
			entry(11, 9), entry(11, 18),
			entry(12, 10),
			// last week
			entry(5, 10),
		},
	}
	enduranceActivities := &enduranceRepoMock{
		activities: []endurance.Activity{
			{
				Type: "Run", Name: "Morning Run",
				StartDate:      time.Date(2025, 3, 12, 7, 0, 0, 0, time.UTC),
				DistanceMeters: 5000, MovingTimeSeconds: 1500,
			},
		},
	}
	prefs := &preferencesRepoMock{weightUnit: "kg"}

	s := newTestSummarizer(strengthLog, enduranceActivities, prefs, now)
	result, err := s.Summarize(context.Background(), 1, 30)
	require.NoError(t, err)
	require.NotNil(t, result)

	expectedStart := now.AddDate(0, 0, -30)
	assert.Equal(t, expectedStart, strengthLog.calledSince)
	assert.Equal(t, expectedStart, enduranceActivities.calledSince)

	assert.Equal(t, 3, result.TotalWorkoutSessions)
	assert.Equal(t, 1, result.TotalRunSessions)
	// day with two entries sums to 90, the other two days 45 each
	assert.Equal(t, float64(60), result.AvgWorkoutDurationMinutes)
	assert.Equal(t, float64(5000), result.AvgRunDistanceMeters)
	assert.Equal(t, float64(1500), result.AvgRunDurationSeconds)
	assert.Equal(t, 2, result.WorkoutDaysThisWeek)
	assert.Equal(t, 1, result.WorkoutDaysLastWeek)

	require.Contains(t, result.MuscleGroupSummary, "Chest")
	require.Len(t, result.DynamicExerciseProgression, 1)
	assert.Equal(t, "Bench Press", result.DynamicExerciseProgression[0].ExerciseName)
	assert.Equal(t, "3x10@60kg", result.DynamicExerciseProgression[0].LastSessions[0].Performance)
	require.Len(t, result.Last3Runs, 1)
	assert.Equal(t, "05:00", result.Last3Runs[0].AvgPaceMinKm)
}

func TestSummarize_NoData(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	s := newTestSummarizer(
		&strengthLogRepoMock{},
		&enduranceRepoMock{},
		&preferencesRepoMock{weightUnit: "kg"},
		now,
	)

	result, err := s.Summarize(context.Background(), 1, 30)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 0, result.TotalWorkoutSessions)
	assert.Equal(t, 0, result.TotalRunSessions)
	assert.Equal(t, float64(0), result.AvgWorkoutDurationMinutes)
	assert.Equal(t, float64(0), result.AvgRunDistanceMeters)
	assert.Equal(t, float64(0), result.AvgRunDurationSeconds)
	assert.Equal(t, 0, result.WorkoutDaysThisWeek)
	assert.Equal(t, 0, result.WorkoutDaysLastWeek)
	assert.Equal(t, PaceTrendNoData, result.RecentRunPaceTrend)

	// lists and maps are present, not null, for the JSON consumers
	require.NotNil(t, result.MuscleGroupSummary)
	assert.Empty(t, result.MuscleGroupSummary)
	require.NotNil(t, result.Last3Runs)
	assert.Empty(t, result.Last3Runs)
	assert.Empty(t, result.DynamicExerciseProgression)
}

func TestSummarize_WeightUnitPropagates(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	reps := 5
	weight := 100.0
	legs := "Legs"
	strengthLog := &strengthLogRepoMock{
		entries: []strengthlog.Entry{{
			UserID:       1,
			ExerciseName: "Squat",
			MuscleGroup:  &legs,
			Sets:         5,
			Reps:         &reps,
			Weight:       &weight,
			RecordedAt:   time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		}},
	}

	s := newTestSummarizer(
		strengthLog,
		&enduranceRepoMock{},
		&preferencesRepoMock{weightUnit: "lbs"},
		now,
	)

	result, err := s.Summarize(context.Background(), 1, 30)
	require.NoError(t, err)
	require.Len(t, result.DynamicExerciseProgression, 1)
	assert.Equal(t, "5x5@100lbs", result.DynamicExerciseProgression[0].LastSessions[0].Performance)
}

func TestSummarize_RepoErrors(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	prefsErr := errors.New("prefs down")
	strengthErr := errors.New("strength log down")
	enduranceErr := errors.New("endurance down")

	for name, tc := range map[string]struct {
		summarizer  *Summarizer
		expectedErr error
	}{
		"preferences repo fails": {
			summarizer: newTestSummarizer(
				&strengthLogRepoMock{},
				&enduranceRepoMock{},
				&preferencesRepoMock{err: prefsErr},
				now,
			),
			expectedErr: prefsErr,
		},
		"strength log repo fails": {
			summarizer: newTestSummarizer(
				&strengthLogRepoMock{err: strengthErr},
				&enduranceRepoMock{},
				&preferencesRepoMock{weightUnit: "kg"},
				now,
			),
			expectedErr: strengthErr,
		},
		"endurance repo fails": {
			summarizer: newTestSummarizer(
				&strengthLogRepoMock{},
				&enduranceRepoMock{err: enduranceErr},
				&preferencesRepoMock{weightUnit: "kg"},
				now,
			),
			expectedErr: enduranceErr,
		},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := tc.summarizer.Summarize(context.Background(), 1, 30)
			require.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, result)
		})
	}
}
