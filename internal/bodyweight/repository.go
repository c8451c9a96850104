package bodyweight

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rnwgym/gym-booking-backend/internal/reservation"
)

type Repository interface {
	// CreateExclusive inserts the reservation only if the member holds no
	// active booking (equipment or bodyweight) for the slot, using the same
	// lock-then-insert transaction as the equipment store.
	CreateExclusive(ctx context.Context, r *Reservation) error

	List(ctx context.Context, filter Filter) ([]*Reservation, error)
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateExclusive(ctx context.Context, res *Reservation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create bodyweight tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Same serialization as the equipment store: advisory lock per
	// (user, slot), held until commit or rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`,
		reservation.ExclusiveLockKey(res.UserID, res.TimeSlotID)); err != nil {
		return fmt.Errorf("acquire user slot lock failed: %w", err)
	}

	const countActive = `
		SELECT (SELECT count(*) FROM public.bookings
		        WHERE user_id = $1 AND time_slot_id = $2 AND NOT done)
		     + (SELECT count(*) FROM public.bodyweight_bookings
		        WHERE user_id = $1 AND time_slot_id = $2 AND NOT done)
	`
	var held int
	if err := tx.QueryRow(ctx, countActive, res.UserID, res.TimeSlotID).Scan(&held); err != nil {
		return fmt.Errorf("count user bookings failed: %w", err)
	}
	if held > 0 {
		return ErrUserDoubleBooked
	}

	const insert = `
		INSERT INTO public.bodyweight_bookings (exercise_name, time_slot_id, user_id, done)
		VALUES ($1, $2, $3, false)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insert, res.ExerciseName, res.TimeSlotID, res.UserID).
		Scan(&res.ID, &res.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrUserDoubleBooked
		}
		return fmt.Errorf("insert bodyweight reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create bodyweight tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"bw.id", "bw.exercise_name", "bw.time_slot_id", "t.hour", "t.minute",
		"bw.user_id", "bw.done", "bw.created_at",
	).
		From("public.bodyweight_bookings bw").
		Join("public.time_slots t ON bw.time_slot_id = t.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"bw.user_id": filter.UserID})
	}
	if !filter.IncludeDone {
		query = query.Where(squirrel.Eq{"bw.done": false})
	}

	query = query.OrderBy("bw.created_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bodyweight query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bodyweight reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		var res Reservation
		var hour, minute int
		if err := rows.Scan(
			&res.ID, &res.ExerciseName, &res.TimeSlotID, &hour, &minute,
			&res.UserID, &res.Done, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bodyweight reservation failed: %w", err)
		}
		res.SlotLabel = fmt.Sprintf("%02d:%02d", hour, minute)
		reservations = append(reservations, &res)
	}

	return reservations, rows.Err()
}

func (r *pgxRepository) MarkDone(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bodyweight_bookings").
		Set("done", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark done query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark bodyweight done failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bodyweight_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete bodyweight query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete bodyweight reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
