package history

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Record, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Record, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"h.id", "h.booking_id", "h.user_id", "h.equipment_id", "e.name",
		"h.time_slot_id", "t.hour", "t.minute", "h.completed_at",
	).
		From("public.booking_history h").
		Join("public.equipment e ON h.equipment_id = e.id").
		Join("public.time_slots t ON h.time_slot_id = t.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"h.user_id": filter.UserID})
	}

	query = query.OrderBy("h.completed_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list history query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list history failed: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		var hour, minute int
		if err := rows.Scan(
			&rec.ID, &rec.ReservationID, &rec.UserID, &rec.EquipmentID, &rec.EquipmentName,
			&rec.TimeSlotID, &hour, &minute, &rec.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history record failed: %w", err)
		}
		rec.SlotLabel = fmt.Sprintf("%02d:%02d", hour, minute)
		records = append(records, &rec)
	}

	return records, rows.Err()
}
