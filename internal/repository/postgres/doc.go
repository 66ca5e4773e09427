// Package postgres implements the service repositories on PostgreSQL using
// database/sql and lib/pq.
//
// Ids are UUID columns. A malformed id can never match a row, so lookups
// report it as the service's ErrNotFound instead of surfacing the driver's
// cast error.
package postgres

import "github.com/google/uuid"

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
