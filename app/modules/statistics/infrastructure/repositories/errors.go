package statisticsdb

import (
	"database/sql"
	"errors"
)

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("statistics record not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows, typically a
	// job update racing a row that was never saved.
	ErrNoRowsAffected = errors.New("no rows affected")
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
