package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/annotatehub/annotation-backend/internal/middlewares"
)

// executor returns the transaction bound to the request context when one is
// present, otherwise the shared database handle.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// squash collapses a multi-line query into a single line for logging.
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
