package logging

import (
	"io"
	"log/slog"
)

// SafeCloseWithLogging closes a resource and logs any errors that occur
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, operation string) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close resource", err,
			slog.String("operation", operation),
			slog.String("component", "resource_management"))
	}
}

// SafeRollbackWithLogging rolls back a transaction and logs any errors that
// occur. The "already committed or rolled back" error is ignored because it is
// expected when rollback is deferred after a successful commit.
func SafeRollbackWithLogging(tx interface{ Rollback() error }, logger *slog.Logger, operation string) {
	if tx == nil {
		return
	}

	if err := tx.Rollback(); err != nil {
		if err.Error() == "sql: transaction has already been committed or rolled back" {
			return
		}

		LogError(logger, "failed to rollback transaction", err,
			slog.String("operation", operation),
			slog.String("component", "database"))
	}
}
