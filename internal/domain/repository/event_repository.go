package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golden9_club/internal/common"
	"golden9_club/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	FindBySlug(ctx context.Context, slug string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
}

type pgEventRepository struct {
	db *sql.DB
}

func NewPgEventRepository(db *sql.DB) EventRepository {
	return &pgEventRepository{db: db}
}

const eventColumns = `event_id, title, slug, description, location, start_time, end_time, status, fee, max_participants, creator_id, created_at, updated_at`

func (r *pgEventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (event_id, title, slug, description, location, start_time, end_time, status, fee, max_participants, creator_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.Title, event.Slug, event.Description, event.Location,
		event.StartTime, event.EndTime, event.Status, event.Fee, event.MaxParticipants, event.CreatorID,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("event with given slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgEventRepository.Create: %w", err)
	}
	return nil
}

func (r *pgEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (r *pgEventRepository) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug), "FindBySlug")
}

func (r *pgEventRepository) List(ctx context.Context) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgEventRepository.List: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var event model.Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Slug, &event.Description, &event.Location,
			&event.StartTime, &event.EndTime, &event.Status, &event.Fee,
			&event.MaxParticipants, &event.CreatorID, &event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgEventRepository.List: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEventRepository.List: %w", err)
	}
	return events, nil
}

func (r *pgEventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `UPDATE events
	          SET title = $1, slug = $2, description = $3, location = $4, start_time = $5,
	              end_time = $6, status = $7, fee = $8, max_participants = $9,
	              updated_at = CURRENT_TIMESTAMP
	          WHERE event_id = $10
	          RETURNING creator_id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		event.Title, event.Slug, event.Description, event.Location, event.StartTime,
		event.EndTime, event.Status, event.Fee, event.MaxParticipants, event.ID,
	).Scan(&event.CreatorID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("pgEventRepository.Update: %w", err)
	}
	return nil
}

func (r *pgEventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgEventRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgEventRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgEventRepository) scanOne(row *sql.Row, op string) (*model.Event, error) {
	event := &model.Event{}
	err := row.Scan(
		&event.ID, &event.Title, &event.Slug, &event.Description, &event.Location,
		&event.StartTime, &event.EndTime, &event.Status, &event.Fee,
		&event.MaxParticipants, &event.CreatorID, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEventRepository.%s: %w", op, err)
	}
	return event, nil
}
