// Package export writes offline analysis artifacts for a dataset snapshot:
// an Excel workbook with the cleaned data and a couple of static charts.
// It exists for the analysts who want the numbers without running the API.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wastewatch.io/internal/dataset"
	"wastewatch.io/internal/logging"
)

const (
	WorkbookFileName      = "food_waste_analysis.xlsx"
	RankingsChartFileName = "rankings.png"
	ClusterChartFileName  = "clusters.png"
)

// WriteAll writes the workbook and both charts into dir, creating the
// directory first if needed.
func WriteAll(manager *dataset.Manager, dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	start := time.Now()

	if err := WriteWorkbook(manager, filepath.Join(dir, WorkbookFileName)); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	if err := WriteRankingsChart(manager, filepath.Join(dir, RankingsChartFileName)); err != nil {
		return fmt.Errorf("writing rankings chart: %w", err)
	}

	if err := WriteClusterChart(manager, filepath.Join(dir, ClusterChartFileName)); err != nil {
		return fmt.Errorf("writing cluster chart: %w", err)
	}

	logging.LogOperation(logger, "export_complete",
		slog.String("dir", dir),
		slog.Duration("duration", time.Since(start)))

	return nil
}
