package repository

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var fs embed.FS

func migrationSource() (source.Driver, error) {
	d, err := iofs.New(fs, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load migration files: %w", err)
	}
	return d, nil
}

// Migrate moves the applications schema "up" to the latest version or
// "down" to an empty database.
func Migrate(direction string, dbConnStr string) error {
	if direction != "up" && direction != "down" {
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	d, err := migrationSource()
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dbConnStr)
	if err != nil {
		return fmt.Errorf("failed create new source instance: %w", err)
	}
	defer m.Close()

	migrateMethod := m.Up
	if direction == "down" {
		migrateMethod = m.Down
	}
	if err := migrateMethod(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %v: %w", direction, err)
	}
	return nil
}
