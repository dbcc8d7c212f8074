package strengthlog

import "time"

// Entry is a single strength log row as recorded by the user.
// Multiple entries can share the same exercise and day (sets logged
// separately). Reps, Weight, MuscleGroup, Notes and DurationMinutes
// are nullable at the DB level.
type Entry struct {
	ID              int       `json:"id"`
	UserID          int64     `json:"userId"`
	ExerciseName    string    `json:"exerciseName"`
	MuscleGroup     *string   `json:"muscleGroup"`
	Sets            int       `json:"sets"`
	Reps            *int      `json:"reps"`
	Weight          *float64  `json:"weight"`
	Notes           *string   `json:"notes"`
	DurationMinutes *float64  `json:"durationMinutes"`
	RecordedAt      time.Time `json:"recordedAt"`
}
