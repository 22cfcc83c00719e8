package predictiondb

import (
	"database/sql"
	"errors"
)

// Sentinel errors for the repository layer. These signal database state;
// the service layer decides whether they are domain failures.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("prediction record not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
