package wastedb

import (
	"context"
	"fmt"
)

// InsertProblemReport stores a user-submitted data-quality report
func (q *Queries) InsertProblemReport(ctx context.Context, report ProblemReport) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO problem_reports (
			report_id, country_id, code, user_comment, created_at
		) VALUES (?, ?, ?, ?, ?);
	`,
		report.ID, report.CountryID, report.Code, report.UserComment, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting problem report: %w", err)
	}
	return nil
}

// ListProblemReportsForCountry retrieves stored reports for one country,
// newest first.
func (q *Queries) ListProblemReportsForCountry(ctx context.Context, countryID string) ([]ProblemReport, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT report_id, country_id, code, user_comment, created_at
		FROM problem_reports
		WHERE country_id = ?
		ORDER BY created_at DESC`, countryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var reports []ProblemReport
	for rows.Next() {
		var report ProblemReport
		if err := rows.Scan(&report.ID, &report.CountryID, &report.Code,
			&report.UserComment, &report.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// CountProblemReports returns the number of stored reports
func (q *Queries) CountProblemReports(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM problem_reports`).Scan(&count)
	return count, err
}
