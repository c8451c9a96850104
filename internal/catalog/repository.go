package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	ListMuscleGroups(ctx context.Context) ([]*MuscleGroup, error)
	GetMuscleGroupByName(ctx context.Context, name string) (*MuscleGroup, error)
	ListEquipment(ctx context.Context) ([]*Equipment, error)
	ListEquipmentByGroup(ctx context.Context, muscleGroupID int64) ([]*Equipment, error)
	GetEquipmentByID(ctx context.Context, id int64) (*Equipment, error)
	SetMaintenance(ctx context.Context, equipmentID int64, maintenance bool) error
	ListTimeSlots(ctx context.Context) ([]TimeSlot, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListMuscleGroups(ctx context.Context) ([]*MuscleGroup, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name").
		From("public.muscle_groups").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list muscle groups query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups failed: %w", err)
	}
	defer rows.Close()

	var groups []*MuscleGroup
	for rows.Next() {
		var g MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan muscle group failed: %w", err)
		}
		groups = append(groups, &g)
	}

	return groups, rows.Err()
}

func (r *pgxRepository) GetMuscleGroupByName(ctx context.Context, name string) (*MuscleGroup, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name").
		From("public.muscle_groups").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get muscle group query failed: %w", err)
	}

	var g MuscleGroup
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMuscleGroupNotFound
		}
		return nil, fmt.Errorf("get muscle group failed: %w", err)
	}
	return &g, nil
}

func (r *pgxRepository) ListEquipment(ctx context.Context) ([]*Equipment, error) {
	return r.listEquipment(ctx, squirrel.Sqlizer(nil))
}

func (r *pgxRepository) ListEquipmentByGroup(ctx context.Context, muscleGroupID int64) ([]*Equipment, error) {
	return r.listEquipment(ctx, squirrel.Eq{"muscle_group_id": muscleGroupID})
}

func (r *pgxRepository) listEquipment(ctx context.Context, where squirrel.Sqlizer) ([]*Equipment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select("id", "name", "muscle_group_id", "maintenance").
		From("public.equipment").
		OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list equipment query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment failed: %w", err)
	}
	defer rows.Close()

	var items []*Equipment
	for rows.Next() {
		var e Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroupID, &e.Maintenance); err != nil {
			return nil, fmt.Errorf("scan equipment failed: %w", err)
		}
		items = append(items, &e)
	}

	return items, rows.Err()
}

func (r *pgxRepository) GetEquipmentByID(ctx context.Context, id int64) (*Equipment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "muscle_group_id", "maintenance").
		From("public.equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get equipment query failed: %w", err)
	}

	var e Equipment
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.Name, &e.MuscleGroupID, &e.Maintenance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("get equipment failed: %w", err)
	}
	return &e, nil
}

func (r *pgxRepository) SetMaintenance(ctx context.Context, equipmentID int64, maintenance bool) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.equipment").
		Set("maintenance", maintenance).
		Where(squirrel.Eq{"id": equipmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set maintenance query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set maintenance failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

func (r *pgxRepository) ListTimeSlots(ctx context.Context) ([]TimeSlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "hour", "minute").
		From("public.time_slots").
		OrderBy("hour", "minute").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time slots failed: %w", err)
	}
	defer rows.Close()

	var slots []TimeSlot
	for rows.Next() {
		var t TimeSlot
		if err := rows.Scan(&t.ID, &t.Hour, &t.Minute); err != nil {
			return nil, fmt.Errorf("scan time slot failed: %w", err)
		}
		slots = append(slots, t)
	}

	return slots, rows.Err()
}
