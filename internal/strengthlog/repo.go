package strengthlog

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListSince returns all strength log entries for the given user with
// recorded_at >= since, most recent first.
func (r *Repo) ListSince(ctx context.Context, userID int64, since time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strengthlog.listsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, exercise_name, muscle_group, sets, reps, weight, notes, duration_minutes, recorded_at
			FROM strength_log_entry
				WHERE user_id = $1
				AND recorded_at >= $2
			ORDER BY recorded_at DESC;`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2entries: %w", err)
	}
	return entries, nil
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ExerciseName, &e.MuscleGroup,
			&e.Sets, &e.Reps, &e.Weight, &e.Notes,
			&e.DurationMinutes, &e.RecordedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return entries, nil
}
