package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

type PgxQuerier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxQuerier
}

func NewPostgresRepository(db PgxQuerier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetTitle(ctx context.Context) (string, bool, error) {
	var title string
	err := r.db.QueryRow(ctx, "SELECT calendar_title FROM settings WHERE id = 1").Scan(&title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		err := fmt.Errorf("could not read calendar title: %w", err)
		log.Error(err)
		return "", false, err
	}
	return title, true, nil
}

func (r *PostgresRepository) SetTitle(ctx context.Context, title string) error {
	query := `INSERT INTO settings (id, calendar_title) VALUES (1, $1)
              ON CONFLICT (id) DO UPDATE SET calendar_title = EXCLUDED.calendar_title`
	_, err := r.db.Exec(ctx, query, title)
	if err != nil {
		err := fmt.Errorf("could not store calendar title: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
