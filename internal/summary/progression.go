package summary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/2beens/trainstats/internal/strengthlog"
)

const (
	// trackedExercisesCount is the number of most frequently trained
	// exercises that receive progression tracking.
	trackedExercisesCount = 3
	// sessionWindowSize caps the returned list of recent daily sessions.
	sessionWindowSize = 3
)

// trackedForProgression is the progression filter: entries need a
// muscle group that is not cardio, a named exercise, and actual work
// done (sets > 0, reps > 0). This is deliberately stricter than the
// muscle group aggregation, which defaults missing reps to 1 for
// volume math.
func trackedForProgression(e strengthlog.Entry) bool {
	if e.MuscleGroup == nil || strings.EqualFold(*e.MuscleGroup, "Cardio") {
		return false
	}
	if e.ExerciseName == "" {
		return false
	}
	if e.Sets <= 0 {
		return false
	}
	reps := 0
	if e.Reps != nil {
		reps = *e.Reps
	}
	return reps > 0
}

// dailySession is the collapse of all entries for one exercise on one
// calendar day. The representative entry is the highest-volume one of
// the day (tie-break: most recent timestamp).
type dailySession struct {
	date        string
	totalVolume float64

	repr       strengthlog.Entry
	reprVolume float64
}

type exerciseStats struct {
	name        string
	sessionDays int
	totalVolume float64
	sessions    map[string]*dailySession
}

// AnalyzeProgression selects the top-N most frequently trained
// exercises (by distinct training days) and produces, for each, the
// recent daily session window and a trend classification comparing the
// most recent daily volume against its chronological predecessor.
func AnalyzeProgression(entries []strengthlog.Entry, weightUnit string) []ExerciseProgressionEntry {
	perExercise := make(map[string]*exerciseStats)
	for _, e := range entries {
		if !trackedForProgression(e) {
			continue
		}

		stats, ok := perExercise[e.ExerciseName]
		if !ok {
			stats = &exerciseStats{
				name:     e.ExerciseName,
				sessions: make(map[string]*dailySession),
			}
			perExercise[e.ExerciseName] = stats
		}

		volume := entryVolume(e)
		stats.totalVolume += volume

		day := e.RecordedAt.Format(dateLayout)
		session, ok := stats.sessions[day]
		if !ok {
			session = &dailySession{date: day, repr: e, reprVolume: volume}
			stats.sessions[day] = session
			session.totalVolume = volume
			continue
		}

		session.totalVolume += volume
		if volume > session.reprVolume ||
			(volume == session.reprVolume && e.RecordedAt.After(session.repr.RecordedAt)) {
			session.repr = e
			session.reprVolume = volume
		}
	}

	ranked := make([]*exerciseStats, 0, len(perExercise))
	for _, stats := range perExercise {
		stats.sessionDays = len(stats.sessions)
		ranked = append(ranked, stats)
	}

	// frequency first: exercises trained on more distinct days rank
	// higher than one-off high-volume attempts
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].sessionDays != ranked[j].sessionDays {
			return ranked[i].sessionDays > ranked[j].sessionDays
		}
		if ranked[i].totalVolume != ranked[j].totalVolume {
			return ranked[i].totalVolume > ranked[j].totalVolume
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > trackedExercisesCount {
		ranked = ranked[:trackedExercisesCount]
	}

	progression := make([]ExerciseProgressionEntry, 0, len(ranked))
	for i, stats := range ranked {
		progression = append(progression, ExerciseProgressionEntry{
			ExerciseName:  stats.name,
			FrequencyRank: i + 1,
			LastSessions:  sessionWindow(stats, weightUnit),
			Trend:         sessionTrend(stats),
		})
	}

	return progression
}

func chronologicalSessions(stats *exerciseStats) []*dailySession {
	sessions := make([]*dailySession, 0, len(stats.sessions))
	for _, s := range stats.sessions {
		sessions = append(sessions, s)
	}
	// dates are YYYY-MM-DD, lexicographic order is chronological
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].date < sessions[j].date
	})
	return sessions
}

// sessionTrend compares the most recent daily session to its strictly
// chronological predecessor - not to the second entry of the returned
// window, which may skip over session days.
func sessionTrend(stats *exerciseStats) string {
	sessions := chronologicalSessions(stats)
	if len(sessions) == 0 {
		return TrendNA
	}
	if len(sessions) == 1 {
		return TrendFirstSession
	}

	current := sessions[len(sessions)-1].totalVolume
	previous := sessions[len(sessions)-2].totalVolume
	switch {
	case current > previous:
		return TrendIncreasing
	case current < previous:
		return TrendDecreasing
	default:
		return TrendStagnant
	}
}

func sessionWindow(stats *exerciseStats, weightUnit string) []SessionSummary {
	sessions := chronologicalSessions(stats)

	window := make([]SessionSummary, 0, sessionWindowSize)
	for i := len(sessions) - 1; i >= 0 && len(window) < sessionWindowSize; i-- {
		s := sessions[i]
		notes := ""
		if s.repr.Notes != nil {
			notes = *s.repr.Notes
		}
		window = append(window, SessionSummary{
			Date:        s.date,
			Performance: performanceString(s.repr, weightUnit),
			Notes:       notes,
		})
	}
	return window
}

// performanceString renders the representative entry of a daily session
// as e.g. "3x10@60kg". Values are echoed as logged, no unit conversion.
func performanceString(e strengthlog.Entry, weightUnit string) string {
	reps := 0
	if e.Reps != nil {
		reps = *e.Reps
	}
	weight := 0.0
	if e.Weight != nil {
		weight = *e.Weight
	}
	return fmt.Sprintf(
		"%dx%d@%s%s",
		e.Sets, reps, strconv.FormatFloat(weight, 'f', -1, 64), weightUnit,
	)
}
