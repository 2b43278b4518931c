package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/rosterhq/roster-backend-go/internal/pkg/database"
)

type shiftTemplateRepositoryImpl struct {
	db *database.DB
}

func NewShiftTemplateRepository(db *database.DB) shift.ShiftTemplateRepository {
	return &shiftTemplateRepositoryImpl{db: db}
}

func (r *shiftTemplateRepositoryImpl) Create(ctx context.Context, tmpl shift.ShiftTemplate) (shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	if tmpl.ID == "" {
		tmpl.ID = uuid.New().String()
	}
	now := time.Now()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	query := `
		INSERT INTO shift_templates (id, name, start_time, end_time, break_policy, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		tmpl.ID, tmpl.Name, tmpl.StartTime, tmpl.EndTime, tmpl.BreakPolicy,
		tmpl.CreatedAt, tmpl.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftTemplate{}, err
	}

	return tmpl, nil
}

func (r *shiftTemplateRepositoryImpl) GetByID(ctx context.Context, id string) (shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, break_policy, created_at, updated_at
		FROM shift_templates
		WHERE id = $1
	`

	var tmpl shift.ShiftTemplate
	err := q.QueryRow(ctx, query, id).Scan(
		&tmpl.ID, &tmpl.Name, &tmpl.StartTime, &tmpl.EndTime, &tmpl.BreakPolicy,
		&tmpl.CreatedAt, &tmpl.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.ShiftTemplate{}, shift.ErrTemplateNotFound
	}
	if err != nil {
		return shift.ShiftTemplate{}, err
	}

	return tmpl, nil
}

func (r *shiftTemplateRepositoryImpl) GetByName(ctx context.Context, name string) (shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, break_policy, created_at, updated_at
		FROM shift_templates
		WHERE name = $1
	`

	var tmpl shift.ShiftTemplate
	err := q.QueryRow(ctx, query, name).Scan(
		&tmpl.ID, &tmpl.Name, &tmpl.StartTime, &tmpl.EndTime, &tmpl.BreakPolicy,
		&tmpl.CreatedAt, &tmpl.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.ShiftTemplate{}, shift.ErrTemplateNotFound
	}
	if err != nil {
		return shift.ShiftTemplate{}, err
	}

	return tmpl, nil
}

func (r *shiftTemplateRepositoryImpl) List(ctx context.Context) ([]shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, break_policy, created_at, updated_at
		FROM shift_templates
		ORDER BY start_time, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]shift.ShiftTemplate, 0)
	for rows.Next() {
		var tmpl shift.ShiftTemplate
		if err := rows.Scan(
			&tmpl.ID, &tmpl.Name, &tmpl.StartTime, &tmpl.EndTime, &tmpl.BreakPolicy,
			&tmpl.CreatedAt, &tmpl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	return templates, rows.Err()
}

func (r *shiftTemplateRepositoryImpl) Update(ctx context.Context, tmpl shift.ShiftTemplate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_templates
		SET name = $2, start_time = $3, end_time = $4, break_policy = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, tmpl.ID, tmpl.Name, tmpl.StartTime, tmpl.EndTime, tmpl.BreakPolicy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrTemplateNotFound
	}

	return nil
}

func (r *shiftTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrTemplateNotFound
	}

	return nil
}
