package address

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

// Repository persists the saved address list as one record that is
// read at startup and overwritten wholesale on every save.
type Repository struct {
	db *sql.DB
}

type RepoInterface interface {
	Load(ctx context.Context) ([]string, error)
	Store(ctx context.Context, addresses []string) error
	Close() error
	RunMigrations(string) error
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Load reads the saved address list in insertion order.
func (r *Repository) Load(ctx context.Context) ([]string, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT addresses FROM address_book WHERE id = 1`,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	var addresses []string
	if err := json.Unmarshal([]byte(raw), &addresses); err != nil {
		return nil, fmt.Errorf("failed to decode address book: %w", err)
	}
	return addresses, nil
}

// Store overwrites the whole saved address list.
func (r *Repository) Store(ctx context.Context, addresses []string) error {
	raw, err := json.Marshal(addresses)
	if err != nil {
		return fmt.Errorf("failed to encode address book: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO address_book (id, addresses, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			addresses = excluded.addresses,
			updated_at = excluded.updated_at
	`, string(raw))
	if err != nil {
		return fmt.Errorf("failed to store address book: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
