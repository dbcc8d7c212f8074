package endurance

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

// ListSince returns all endurance activities for the given user with
// start_date >= since, most recent first.
func (r *Repo) ListSince(ctx context.Context, userID int64, since time.Time) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.endurance.listsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, COALESCE(type, ''), COALESCE(name, ''),
				start_date, distance, moving_time, total_elevation_gain
			FROM endurance_activity
				WHERE user_id = $1
				AND start_date >= $2
			ORDER BY start_date DESC;`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	activities, err := r.rows2activities(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2activities: %w", err)
	}
	return activities, nil
}

func (r *Repo) rows2activities(rows pgx.Rows) ([]Activity, error) {
	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Type, &a.Name,
			&a.StartDate, &a.DistanceMeters, &a.MovingTimeSeconds, &a.ElevationGainMeters,
		); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	if activities == nil {
		activities = make([]Activity, 0)
	}

	return activities, nil
}
