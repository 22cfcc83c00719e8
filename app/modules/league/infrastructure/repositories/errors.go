package leaguedb

import (
	"database/sql"
	"errors"
)

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("league record not found")
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
