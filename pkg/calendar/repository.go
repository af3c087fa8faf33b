package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Repository is the event store. UpdateEvent replaces every field of the
// stored record; UpdateEvent and DeleteEvent report false when no record
// with the given id exists.
type Repository interface {
	StoreEvent(ctx context.Context, event Event) (int, error)
	UpdateEvent(ctx context.Context, event Event) (bool, error)
	DeleteEvent(ctx context.Context, id int) (bool, error)
	GetEvent(ctx context.Context, id int) (Event, error)
	GetAllEvents(ctx context.Context) ([]Event, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const eventColumns = `id, title, start_date, end_date, start_time, end_time, description, is_recurring, recurring_type, color, url`

func (r *SQLiteRepository) StoreEvent(ctx context.Context, event Event) (int, error) {
	query := `INSERT INTO events (
                    title,
                    start_date,
                    end_date,
                    start_time,
                    end_time,
                    description,
                    is_recurring,
                    recurring_type,
                    color,
                    url
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, eventArgs(event)...)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not read inserted event id: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(id), nil
}

func (r *SQLiteRepository) UpdateEvent(ctx context.Context, event Event) (bool, error) {
	query := `UPDATE events SET
                  title = ?,
                  start_date = ?,
                  end_date = ?,
                  start_time = ?,
                  end_time = ?,
                  description = ?,
                  is_recurring = ?,
                  recurring_type = ?,
                  color = ?,
                  url = ?
              WHERE id = ?`

	args := append(eventArgs(event), event.Id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *SQLiteRepository) DeleteEvent(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *SQLiteRepository) GetEvent(ctx context.Context, id int) (Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrEventNotFound
		}
		err := fmt.Errorf("failed to get event %d: %w", id, err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

func (r *SQLiteRepository) GetAllEvents(ctx context.Context) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date, start_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, 16)
	for rows.Next() {
		event, err := scanEvent(rows)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var event Event
	var startDate, endDate string
	var startTime, endTime, description, recurringType, color, url sql.NullString
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
	if event.StartDate, err = ParseDate(startDate); err != nil {
		return Event{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	if endDate == "" {
		event.EndDate = event.StartDate
	} else if event.EndDate, err = ParseDate(endDate); err != nil {
		return Event{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	event.StartTime = startTime.String
	event.EndTime = endTime.String
	event.Description = description.String
	event.RecurringType = RecurrenceType(recurringType.String)
	event.Color = Color(color.String)
	event.URL = url.String
	return event, nil
}

func eventArgs(event Event) []any {
	return []any{
		event.Title,
		event.StartDate.Format(DateLayout),
		event.EndDate.Format(DateLayout),
		nullString(event.StartTime),
		nullString(event.EndTime),
		event.Description,
		event.IsRecurring,
		nullString(string(event.RecurringType)),
		nullString(string(event.Color)),
		nullString(event.URL),
	}
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
