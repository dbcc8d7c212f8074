package summary

// Trend classifies the most recent daily session of an exercise against
// its immediately preceding one. The set of values is a contract with
// the consumers (coaching prompt builder, dashboard) - do not extend it.
const (
	TrendIncreasing   = "Increasing"
	TrendDecreasing   = "Decreasing"
	TrendStagnant     = "Stagnant"
	TrendFirstSession = "First Session"
	TrendNA           = "N/A"
)

// Pace trend values, same contract rules as the exercise trend values.
const (
	PaceTrendNoData       = "No Pace Data"
	PaceTrendNoRecentData = "No Recent Pace Data"
	PaceTrendNoOlderData  = "No Older Pace Data for Comparison"
	PaceTrendFaster       = "Faster"
	PaceTrendSlower       = "Slower"
	PaceTrendConsistent   = "Consistent"
)

const dateLayout = "2006-01-02"

// ExerciseVolume is one entry of the top-exercises-by-volume list.
type ExerciseVolume struct {
	ExerciseName   string  `json:"exercise_name"`
	ExerciseVolume float64 `json:"exercise_volume"`
}

// MuscleGroupSummary aggregates all entries of one muscle group within
// the period. TotalVolume covers all exercises of the group, not just
// the ones listed in Top3ExercisesByVolume.
type MuscleGroupSummary struct {
	TotalSets              int              `json:"total_sets"`
	LastTrainedDate        string           `json:"last_trained_date"`
	TotalVolume            float64          `json:"total_volume"`
	DistinctExercisesCount int              `json:"distinct_exercises_count"`
	Top3ExercisesByVolume  []ExerciseVolume `json:"top_3_exercises_by_volume"`
}

// SessionSummary is one collapsed daily session of a tracked exercise.
type SessionSummary struct {
	Date        string `json:"date"`
	Performance string `json:"performance"`
	Notes       string `json:"notes"`
}

// ExerciseProgressionEntry holds the session window and trend for one
// of the top-N most frequently trained exercises.
type ExerciseProgressionEntry struct {
	ExerciseName  string           `json:"exercise_name"`
	FrequencyRank int              `json:"frequency_rank"`
	LastSessions  []SessionSummary `json:"last_sessions"`
	Trend         string           `json:"trend"`
}

// RunSummaryEntry is one formatted recent run.
type RunSummaryEntry struct {
	RunDate        string  `json:"run_date"`
	Name           string  `json:"name"`
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    float64 `json:"duration_min"`
	AvgPaceMinKm   string  `json:"avg_pace_min_km"`
	ElevationGainM float64 `json:"elevation_gain_m"`
	RunType        string  `json:"run_type"`
}

// ActivitySummary is the full activity summary for one (user, period)
// request. All numeric fields default to zero and all lists are present
// (possibly empty) even when no qualifying rows exist.
type ActivitySummary struct {
	TotalWorkoutSessions       int                           `json:"total_workout_sessions"`
	TotalRunSessions           int                           `json:"total_run_sessions"`
	AvgWorkoutDurationMinutes  float64                       `json:"avg_workout_duration_minutes"`
	AvgRunDistanceMeters       float64                       `json:"avg_run_distance_meters"`
	AvgRunDurationSeconds      float64                       `json:"avg_run_duration_seconds"`
	MuscleGroupSummary         map[string]MuscleGroupSummary `json:"muscle_group_summary"`
	DynamicExerciseProgression []ExerciseProgressionEntry    `json:"dynamic_exercise_progression"`
	Last3Runs                  []RunSummaryEntry             `json:"last_3_runs"`
	RecentRunPaceTrend         string                        `json:"recent_run_pace_trend"`
	WorkoutDaysThisWeek        int                           `json:"workout_days_this_week"`
	WorkoutDaysLastWeek        int                           `json:"workout_days_last_week"`
}
