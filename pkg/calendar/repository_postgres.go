package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

// PgxQuerier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type PgxQuerier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxQuerier
}

func NewPostgresRepository(db PgxQuerier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) StoreEvent(ctx context.Context, event Event) (int, error) {
	query := `INSERT INTO events (title, start_date, end_date, start_time, end_time, description,
                    is_recurring, recurring_type, color, url)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query, pgEventArgs(event)...).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) UpdateEvent(ctx context.Context, event Event) (bool, error) {
	query := `UPDATE events SET title = $1, start_date = $2, end_date = $3, start_time = $4, end_time = $5,
                  description = $6, is_recurring = $7, recurring_type = $8, color = $9, url = $10
              WHERE id = $11`

	args := append(pgEventArgs(event), event.Id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) DeleteEvent(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) GetEvent(ctx context.Context, id int) (Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanPgEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Event{}, ErrEventNotFound
		}
		err := fmt.Errorf("failed to get event %d: %w", id, err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

func (r *PostgresRepository) GetAllEvents(ctx context.Context) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date, start_time NULLS FIRST`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		event, err := scanPgEvent(rows)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate events: %w", err)
	}
	return events, nil
}

func scanPgEvent(row pgx.Row) (Event, error) {
	var event Event
	var startDate, endDate time.Time
	var startTime, endTime, description, recurringType, color, url *string
	err := row.Scan(
		&event.Id,
		&event.Title,
		&startDate,
		&endDate,
		&startTime,
		&endTime,
		&description,
		&event.IsRecurring,
		&recurringType,
		&color,
		&url,
	)
	if err != nil {
		return Event{}, err
	}
	event.StartDate = DateOf(startDate)
	event.EndDate = DateOf(endDate)
	event.StartTime = deref(startTime)
	event.EndTime = deref(endTime)
	event.Description = deref(description)
	event.RecurringType = RecurrenceType(deref(recurringType))
	event.Color = Color(deref(color))
	event.URL = deref(url)
	return event, nil
}

func pgEventArgs(event Event) []any {
	return []any{
		event.Title,
		event.StartDate,
		event.EndDate,
		optional(event.StartTime),
		optional(event.EndTime),
		event.Description,
		event.IsRecurring,
		optional(string(event.RecurringType)),
		optional(string(event.Color)),
		optional(event.URL),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
