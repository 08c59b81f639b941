package wastedb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"wastewatch.io/internal/logging"
)

// Client is the main entry point for the cleaned-dataset cache
type Client struct {
	config  Config
	logger  *slog.Logger
	DB      *sql.DB
	Queries *Queries
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("creating waste database: %w", err)
	}
	if config.verbose {
		logging.LogOperation(logger, "waste_db_created", slog.String("path", config.DBPath))
	}

	return &Client{
		config:  config,
		logger:  logger,
		DB:      db,
		Queries: New(db),
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ReplaceDataset atomically replaces the cached cleaned dataset with the
// provided rows. Problem reports are preserved across refreshes.
func (c *Client) ReplaceDataset(ctx context.Context, countries []Country) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "replace_dataset")

	if _, err := tx.ExecContext(ctx, `DELETE FROM countries;`); err != nil {
		return fmt.Errorf("error clearing countries: %w", err)
	}

	if err := insertCountryBatch(ctx, tx, countries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
