package summary_test

import (
	"testing"
	"time"

	"github.com/2beens/trainstats/internal/strengthlog"
	"github.com/2beens/trainstats/internal/summary"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func strengthEntry(
	exercise, muscleGroup string,
	sets int, reps *int, weight *float64,
	recordedAt time.Time,
) strengthlog.Entry {
	var mg *string
	if muscleGroup != "" {
		mg = &muscleGroup
	}
	return strengthlog.Entry{
		UserID:       1,
		ExerciseName: exercise,
		MuscleGroup:  mg,
		Sets:         sets,
		Reps:         reps,
		Weight:       weight,
		Notes:        strPtr(gofakeit.Sentence(4)),
		RecordedAt:   recordedAt,
	}
}

func TestAggregateMuscleGroups(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	entries := []strengthlog.Entry{
		// chest: 3x10@60 = 1800
		strengthEntry("Bench Press", "Chest", 3, intPtr(10), floatPtr(60), day1),
		// chest: 3x8@40 = 960
		strengthEntry("Incline Press", "Chest", 3, intPtr(8), floatPtr(40), day2),
		// chest, bodyweight: volume 0, still a distinct exercise
		strengthEntry("Push Up", "Chest", 4, intPtr(15), nil, day2),
		// legs: 5x5@100 = 2500
		strengthEntry("Squat", "Legs", 5, intPtr(5), floatPtr(100), day1),
		// no muscle group: excluded from this stage entirely
		strengthEntry("Farmer Walk", "", 3, intPtr(1), floatPtr(40), day2),
	}

	result := summary.AggregateMuscleGroups(entries)
	require.Len(t, result, 2)

	chest, ok := result["Chest"]
	require.True(t, ok)
	assert.Equal(t, 10, chest.TotalSets)
	assert.Equal(t, float64(2760), chest.TotalVolume)
	assert.Equal(t, 3, chest.DistinctExercisesCount)
	assert.Equal(t, "2025-03-12", chest.LastTrainedDate)
	// zero-volume exercises are not listed among the top ones
	require.Len(t, chest.Top3ExercisesByVolume, 2)
	assert.Equal(t, "Bench Press", chest.Top3ExercisesByVolume[0].ExerciseName)
	assert.Equal(t, float64(1800), chest.Top3ExercisesByVolume[0].ExerciseVolume)
	assert.Equal(t, "Incline Press", chest.Top3ExercisesByVolume[1].ExerciseName)

	legs, ok := result["Legs"]
	require.True(t, ok)
	assert.Equal(t, 5, legs.TotalSets)
	assert.Equal(t, float64(2500), legs.TotalVolume)
	assert.Equal(t, 1, legs.DistinctExercisesCount)
	assert.Equal(t, "2025-03-10", legs.LastTrainedDate)
}

func TestAggregateMuscleGroups_TopThreeCapAndTieBreak(t *testing.T) {
	day := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	entries := []strengthlog.Entry{
		// 1x10@50 = 500 each for the tied pair
		strengthEntry("Curl B", "Arms", 1, intPtr(10), floatPtr(50), day),
		strengthEntry("Curl A", "Arms", 1, intPtr(10), floatPtr(50), day),
		// 1x10@80 = 800
		strengthEntry("Close Grip Bench", "Arms", 1, intPtr(10), floatPtr(80), day),
		// 1x10@20 = 200, pushed out of the top 3
		strengthEntry("Wrist Curl", "Arms", 1, intPtr(10), floatPtr(20), day),
	}

	result := summary.AggregateMuscleGroups(entries)
	arms := result["Arms"]

	assert.Equal(t, 4, arms.DistinctExercisesCount)
	// total volume covers all exercises, not just the listed top 3
	assert.Equal(t, float64(2000), arms.TotalVolume)

	require.Len(t, arms.Top3ExercisesByVolume, 3)
	assert.Equal(t, "Close Grip Bench", arms.Top3ExercisesByVolume[0].ExerciseName)
	// equal volumes are ordered by exercise name
	assert.Equal(t, "Curl A", arms.Top3ExercisesByVolume[1].ExerciseName)
	assert.Equal(t, "Curl B", arms.Top3ExercisesByVolume[2].ExerciseName)
}

func TestAggregateMuscleGroups_VolumeDefaults(t *testing.T) {
	day := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	entries := []strengthlog.Entry{
		// reps missing: defaults to 1 for volume math -> 3x1x80 = 240
		strengthEntry("Squat", "Legs", 3, nil, floatPtr(80), day),
		// weight missing: volume 0, sets still count
		strengthEntry("Lunge", "Legs", 2, intPtr(12), nil, day),
	}

	result := summary.AggregateMuscleGroups(entries)
	legs := result["Legs"]

	assert.Equal(t, 5, legs.TotalSets)
	assert.Equal(t, float64(240), legs.TotalVolume)
	assert.Equal(t, 2, legs.DistinctExercisesCount)
	require.Len(t, legs.Top3ExercisesByVolume, 1)
	assert.Equal(t, "Squat", legs.Top3ExercisesByVolume[0].ExerciseName)
}

func TestAggregateMuscleGroups_MalformedRowsClamped(t *testing.T) {
	day := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	entries := []strengthlog.Entry{
		strengthEntry("Bench Press", "Chest", -3, intPtr(10), floatPtr(60), day),
		strengthEntry("Incline Press", "Chest", 2, intPtr(-8), floatPtr(40), day),
		strengthEntry("Flye", "Chest", 2, intPtr(10), floatPtr(-15), day),
	}

	result := summary.AggregateMuscleGroups(entries)
	chest := result["Chest"]

	// bad rows contribute nothing instead of failing the aggregation
	assert.Equal(t, 4, chest.TotalSets)
	assert.Equal(t, float64(0), chest.TotalVolume)
	assert.Equal(t, 3, chest.DistinctExercisesCount)
	assert.Empty(t, chest.Top3ExercisesByVolume)
}

func TestAggregateMuscleGroups_NoEntries(t *testing.T) {
	result := summary.AggregateMuscleGroups(nil)
	require.NotNil(t, result)
	assert.Empty(t, result)
}
