package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Repository persists the settings row. GetTitle reports found=false when the
// row has not been created yet.
type Repository interface {
	GetTitle(ctx context.Context) (title string, found bool, err error)
	SetTitle(ctx context.Context, title string) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetTitle(ctx context.Context) (string, bool, error) {
	var title string
	err := r.db.QueryRowContext(ctx, "SELECT calendar_title FROM settings WHERE id = 1").Scan(&title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		err := fmt.Errorf("could not read calendar title: %w", err)
		log.Error(err)
		return "", false, err
	}
	return title, true, nil
}

func (r *SQLiteRepository) SetTitle(ctx context.Context, title string) error {
	query := `INSERT INTO settings (id, calendar_title) VALUES (1, ?)
              ON CONFLICT (id) DO UPDATE SET calendar_title = excluded.calendar_title`
	_, err := r.db.ExecContext(ctx, query, title)
	if err != nil {
		err := fmt.Errorf("could not store calendar title: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
