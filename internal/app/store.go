package app

import (
	"database/sql"
	"fmt"

	"github.com/codegod100/cal/internal/config"
	"github.com/codegod100/cal/internal/database"
	"github.com/codegod100/cal/pkg/calendar"
	"github.com/codegod100/cal/pkg/settings"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Store owns the long lived database handle of the configured driver and the
// repositories built on it.
type Store struct {
	Events   calendar.Repository
	Settings settings.Repository
	close    func()
}

// OpenStore applies the migrations and opens the configured database.
func OpenStore(cfg config.Database) (*Store, error) {
	if err := database.Migrate(cfg); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg)
		if err != nil {
			return nil, err
		}
		log.Infof("Using sqlite database at %s", cfg.Path)
		return NewSQLiteStore(db), nil
	case config.DriverPostgres:
		pool, err := database.OpenPostgres(cfg)
		if err != nil {
			return nil, err
		}
		log.Infof("Using postgres database %s on %s:%d", cfg.Name, cfg.Host, cfg.Port)
		return NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func NewSQLiteStore(db *sql.DB) *Store {
	return &Store{
		Events:   calendar.NewSQLiteRepository(db),
		Settings: settings.NewSQLiteRepository(db),
		close: func() {
			if err := db.Close(); err != nil {
				log.Errorf("failed to close database: %v", err)
			}
		},
	}
}

func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Events:   calendar.NewPostgresRepository(pool),
		Settings: settings.NewPostgresRepository(pool),
		close:    pool.Close,
	}
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}
