package db

import (
	"embed"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

func Initialize(dsn string) (*sqlx.DB, error) {
	return sqlx.Connect("sqlite", dsn)
}

func ApplyMigrations(db *sqlx.DB, migrations embed.FS) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return err
	}

	return goose.Up(db.DB, ".")
}
