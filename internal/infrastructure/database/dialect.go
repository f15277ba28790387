package database

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Supported DB_DRIVER values
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Dialect captures the SQL differences between the supported stores.
type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat
	// IdentityColumn is the DDL for an auto-assigned integer primary key.
	IdentityColumn string
	// LockForShare is appended to existence checks made inside a transaction so
	// the referenced row cannot be deleted before the transaction commits.
	// Empty when the store serializes writers itself.
	LockForShare string
}

var (
	Postgres = Dialect{
		Name:           DriverPostgres,
		Placeholder:    sq.Dollar,
		IdentityColumn: "BIGSERIAL PRIMARY KEY",
		LockForShare:   "FOR KEY SHARE",
	}
	SQLite = Dialect{
		Name:           DriverSQLite,
		Placeholder:    sq.Question,
		IdentityColumn: "INTEGER PRIMARY KEY AUTOINCREMENT",
	}
)

// DialectFor resolves a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverPostgres, "pgx", "postgresql":
		return Postgres, nil
	case DriverSQLite, "sqlite":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}
