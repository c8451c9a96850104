package reservation

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Partial unique indexes backing the exclusivity invariants. The conditional
// insert relies on them as the authoritative guard against races that slip
// past the advisory conflict check.
const (
	constraintEquipmentSlot = "ux_bookings_equipment_slot_active"
	constraintUserSlot      = "ux_bookings_user_slot_active"
)

// ExclusiveLockKey derives the advisory lock key that serializes creates per
// (user, slot) across the equipment and bodyweight stores. Row locks cannot
// serialize the empty case (there is no row to lock before the first insert)
// and a unique index cannot span two tables, so both create transactions
// take pg_advisory_xact_lock on this key before checking for existing rows.
func ExclusiveLockKey(userID string, timeSlotID int64) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s:%d", userID, timeSlotID)
	return int64(h.Sum64())
}

type Repository interface {
	// CreateExclusive inserts the reservation only if no conflicting active
	// row exists. It runs in a single short transaction that serializes
	// concurrent attempts per (user, slot) across equipment and bodyweight
	// stores, and maps unique violations to the matching conflict error.
	CreateExclusive(ctx context.Context, r *Reservation) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, error)

	// ActiveForConflict returns the occupied intervals relevant to a
	// candidate: active reservations on the same equipment plus all of the
	// member's active reservations (equipment and bodyweight).
	ActiveForConflict(ctx context.Context, equipmentID int64, userID string) ([]Occupied, error)

	// ActiveByEquipmentIDs returns occupied intervals for the given
	// equipment, for probing alternative availability.
	ActiveByEquipmentIDs(ctx context.Context, equipmentIDs []int64) ([]Occupied, error)

	// ActiveSlotIDsByUser returns the distinct slot ids the member currently
	// holds, across equipment and bodyweight reservations.
	ActiveSlotIDsByUser(ctx context.Context, userID string) ([]int64, error)

	// Complete marks the reservation done and appends the history record in
	// one transaction; partial states are never observable.
	Complete(ctx context.Context, id string) (*Reservation, error)

	Cancel(ctx context.Context, id string) error
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
		return fmt.Errorf("begin create reservation tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent creates for this (user, slot) across both
	// stores. The lock is released at commit or rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`,
		ExclusiveLockKey(res.UserID, res.TimeSlotID)); err != nil {
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
		INSERT INTO public.bookings (equipment_id, time_slot_id, user_id, done)
		VALUES ($1, $2, $3, false)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insert, res.EquipmentID, res.TimeSlotID, res.UserID).
		Scan(&res.ID, &res.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case constraintEquipmentSlot:
				return ErrEquipmentOverlap
			case constraintUserSlot:
				return ErrUserDoubleBooked
			}
			return ErrEquipmentOverlap
		}
		return fmt.Errorf("insert reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create reservation tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.equipment_id", "e.name", "b.time_slot_id", "t.hour", "t.minute",
		"b.user_id", "b.done", "b.created_at",
	).
		From("public.bookings b").
		Join("public.equipment e ON b.equipment_id = e.id").
		Join("public.time_slots t ON b.time_slot_id = t.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	res, err := scanReservation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.equipment_id", "e.name", "b.time_slot_id", "t.hour", "t.minute",
		"b.user_id", "b.done", "b.created_at",
	).
		From("public.bookings b").
		Join("public.equipment e ON b.equipment_id = e.id").
		Join("public.time_slots t ON b.time_slot_id = t.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.EquipmentID != 0 {
		query = query.Where(squirrel.Eq{"b.equipment_id": filter.EquipmentID})
	}
	if !filter.IncludeDone {
		query = query.Where(squirrel.Eq{"b.done": false})
	}

	query = query.OrderBy("t.hour", "t.minute", "b.created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

func (r *pgxRepository) ActiveForConflict(ctx context.Context, equipmentID int64, userID string) ([]Occupied, error) {
	const query = `
		SELECT b.equipment_id, b.user_id, t.hour * 60 + t.minute AS start_min
		FROM public.bookings b
		JOIN public.time_slots t ON b.time_slot_id = t.id
		WHERE NOT b.done AND (b.equipment_id = $1 OR b.user_id = $2)
		UNION ALL
		SELECT 0, bw.user_id, t.hour * 60 + t.minute
		FROM public.bodyweight_bookings bw
		JOIN public.time_slots t ON bw.time_slot_id = t.id
		WHERE NOT bw.done AND bw.user_id = $2
	`

	return r.queryOccupied(ctx, query, equipmentID, userID)
}

func (r *pgxRepository) ActiveByEquipmentIDs(ctx context.Context, equipmentIDs []int64) ([]Occupied, error) {
	const query = `
		SELECT b.equipment_id, b.user_id, t.hour * 60 + t.minute AS start_min
		FROM public.bookings b
		JOIN public.time_slots t ON b.time_slot_id = t.id
		WHERE NOT b.done AND b.equipment_id = ANY($1)
	`

	return r.queryOccupied(ctx, query, equipmentIDs)
}

func (r *pgxRepository) queryOccupied(ctx context.Context, query string, args ...any) ([]Occupied, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query occupied intervals failed: %w", err)
	}
	defer rows.Close()

	var occupied []Occupied
	for rows.Next() {
		var o Occupied
		var start int
		if err := rows.Scan(&o.EquipmentID, &o.UserID, &start); err != nil {
			return nil, fmt.Errorf("scan occupied interval failed: %w", err)
		}
		o.Start = start
		o.End = start + slotDurationMinutes
		occupied = append(occupied, o)
	}

	return occupied, rows.Err()
}

func (r *pgxRepository) ActiveSlotIDsByUser(ctx context.Context, userID string) ([]int64, error) {
	const query = `
		SELECT time_slot_id FROM public.bookings
		WHERE user_id = $1 AND NOT done
		UNION
		SELECT time_slot_id FROM public.bodyweight_bookings
		WHERE user_id = $1 AND NOT done
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query user slot ids failed: %w", err)
	}
	defer rows.Close()

	var slotIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan slot id failed: %w", err)
		}
		slotIDs = append(slotIDs, id)
	}

	return slotIDs, rows.Err()
}

func (r *pgxRepository) Complete(ctx context.Context, id string) (*Reservation, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin complete tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional update: only a still-active row transitions. The history
	// append below shares the transaction, so either both are durable or
	// neither is observable.
	const update = `
		UPDATE public.bookings b
		SET done = true
		FROM public.equipment e, public.time_slots t
		WHERE b.id = $1 AND NOT b.done
		  AND e.id = b.equipment_id AND t.id = b.time_slot_id
		RETURNING b.id, b.equipment_id, e.name, b.time_slot_id, t.hour, t.minute,
		          b.user_id, b.done, b.created_at
	`

	res, err := scanReservation(tx.QueryRow(ctx, update, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.completeMissReason(ctx, id)
		}
		return nil, fmt.Errorf("complete reservation failed: %w", err)
	}

	const archive = `
		INSERT INTO public.booking_history (booking_id, user_id, equipment_id, time_slot_id, completed_at)
		VALUES ($1, $2, $3, $4, now())
	`
	if _, err := tx.Exec(ctx, archive, res.ID, res.UserID, res.EquipmentID, res.TimeSlotID); err != nil {
		return nil, fmt.Errorf("archive reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit complete tx failed: %w", err)
	}
	return res, nil
}

// completeMissReason distinguishes a stale id from a repeat completion.
func (r *pgxRepository) completeMissReason(ctx context.Context, id string) error {
	var done bool
	err := r.pool.QueryRow(ctx, `SELECT done FROM public.bookings WHERE id = $1`, id).Scan(&done)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check reservation state failed: %w", err)
	}
	if done {
		return ErrAlreadyCompleted
	}
	return ErrNotFound
}

func (r *pgxRepository) Cancel(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cancel reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("cancel reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const slotDurationMinutes = 15

func scanReservation(row pgx.Row) (*Reservation, error) {
	var res Reservation
	var hour, minute int
	if err := row.Scan(
		&res.ID, &res.EquipmentID, &res.EquipmentName, &res.TimeSlotID, &hour, &minute,
		&res.UserID, &res.Done, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	res.SlotLabel = fmt.Sprintf("%02d:%02d", hour, minute)
	return &res, nil
}
