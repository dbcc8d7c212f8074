package users

import (
	"context"
	"errors"

	"github.com/2beens/trainstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

// DefaultWeightUnit is used when the user has no stored preference.
const DefaultWeightUnit = "kg"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// WeightUnit returns the user's weight unit preference ("kg" or "lbs").
// A user without a stored preference gets DefaultWeightUnit; a missing
// user yields ErrUserNotFound.
func (r *Repo) WeightUnit(ctx context.Context, userID int64) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.weightunit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	var unit string
	err = r.db.QueryRow(
		ctx,
		`
			SELECT COALESCE(p.weight_unit, $2)
			FROM platform_user u
			LEFT JOIN user_preference p ON p.user_id = u.id
			WHERE u.id = $1;`,
		userID, DefaultWeightUnit,
	).Scan(&unit)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	return unit, nil
}
