package summary

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/trainstats/internal/strengthlog"
)

const topExercisesPerMuscleGroup = 3

// entryVolume is the load contribution of a single log entry:
// sets x reps x weight, with reps defaulting to 1 and weight to 0 when
// not logged. Impossible negative values are clamped to zero
// contribution instead of aborting the whole aggregation.
func entryVolume(e strengthlog.Entry) float64 {
	sets := float64(e.Sets)
	if sets < 0 {
		sets = 0
	}

	reps := 1.0
	if e.Reps != nil {
		reps = float64(*e.Reps)
		if reps < 0 {
			reps = 0
		}
	}

	weight := 0.0
	if e.Weight != nil {
		weight = *e.Weight
		if weight < 0 {
			weight = 0
		}
	}

	return sets * reps * weight
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type muscleGroupAcc struct {
	totalSets         int
	totalVolume       float64
	lastTrained       time.Time
	volumePerExercise map[string]float64
}

// AggregateMuscleGroups groups strength log entries by muscle group and
// computes per-group totals plus the top 3 exercises by volume. Entries
// without a muscle group are skipped entirely; groups with no matching
// entries are simply absent from the result.
func AggregateMuscleGroups(entries []strengthlog.Entry) map[string]MuscleGroupSummary {
	groups := make(map[string]*muscleGroupAcc)
	for _, e := range entries {
		if e.MuscleGroup == nil {
			continue
		}

		acc, ok := groups[*e.MuscleGroup]
		if !ok {
			acc = &muscleGroupAcc{
				volumePerExercise: make(map[string]float64),
			}
			groups[*e.MuscleGroup] = acc
		}

		sets := e.Sets
		if sets < 0 {
			sets = 0
		}
		acc.totalSets += sets

		volume := entryVolume(e)
		acc.totalVolume += volume
		// zero-volume exercises still register here, so they count
		// toward the distinct exercises tally below
		acc.volumePerExercise[e.ExerciseName] += volume

		if e.RecordedAt.After(acc.lastTrained) {
			acc.lastTrained = e.RecordedAt
		}
	}

	result := make(map[string]MuscleGroupSummary, len(groups))
	for group, acc := range groups {
		result[group] = MuscleGroupSummary{
			TotalSets:              acc.totalSets,
			LastTrainedDate:        acc.lastTrained.Format(dateLayout),
			TotalVolume:            round2(acc.totalVolume),
			DistinctExercisesCount: len(acc.volumePerExercise),
			Top3ExercisesByVolume:  topExercisesByVolume(acc.volumePerExercise),
		}
	}

	return result
}

func topExercisesByVolume(volumePerExercise map[string]float64) []ExerciseVolume {
	ranked := make([]ExerciseVolume, 0, len(volumePerExercise))
	for name, volume := range volumePerExercise {
		if volume <= 0 {
			continue
		}
		ranked = append(ranked, ExerciseVolume{
			ExerciseName:   name,
			ExerciseVolume: round2(volume),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ExerciseVolume != ranked[j].ExerciseVolume {
			return ranked[i].ExerciseVolume > ranked[j].ExerciseVolume
		}
		return ranked[i].ExerciseName < ranked[j].ExerciseName
	})

	if len(ranked) > topExercisesPerMuscleGroup {
		ranked = ranked[:topExercisesPerMuscleGroup]
	}
	return ranked
}
