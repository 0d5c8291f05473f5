// Package migrations applies the embedded schema migrations to PostgreSQL.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Run brings the schema up to the latest version. A schema that is already
// current is not an error.
func Run(db *sql.DB) error {
	const op = "migrations.Run"

	source, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "pgx_v5", driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Versions lists the migration versions shipped with the binary.
func Versions() ([]uint, error) {
	const op = "migrations.Versions"

	source, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = source.Close()
	}()

	v, err := source.First()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	versions := []uint{v}
	for {
		v, err = source.Next(v)
		if err != nil {
			break
		}
		versions = append(versions, v)
	}
	return versions, nil
}
