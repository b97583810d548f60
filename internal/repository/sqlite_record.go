package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) All(ctx context.Context) (domain.GoalRecords, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT record_key, done FROM goal_records`)
	if err != nil {
		return nil, fmt.Errorf("querying goal records: %w", err)
	}
	defer rows.Close()

	records := domain.GoalRecords{}
	for rows.Next() {
		var key string
		var done int
		if err := rows.Scan(&key, &done); err != nil {
			return nil, fmt.Errorf("scanning goal record: %w", err)
		}
		records[key] = intToBool(done)
	}
	return records, rows.Err()
}

func (r *SQLiteRecordRepo) Set(ctx context.Context, key string, done bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO goal_records (record_key, done) VALUES (?, ?)
		 ON CONFLICT(record_key) DO UPDATE SET done = excluded.done`,
		key, boolToInt(done))
	if err != nil {
		return fmt.Errorf("setting goal record: %w", err)
	}
	return nil
}

// DeleteByGoal removes every record whose key starts with "<goalID>_".
func (r *SQLiteRecordRepo) DeleteByGoal(ctx context.Context, goalID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM goal_records WHERE substr(record_key, 1, length(?)) = ?`,
		goalID+"_", goalID+"_")
	if err != nil {
		return 0, fmt.Errorf("deleting goal records: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRecordRepo) ReplaceAll(ctx context.Context, records domain.GoalRecords) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goal_records`); err != nil {
		return fmt.Errorf("clearing goal records: %w", err)
	}
	for key, done := range records {
		if err := r.Set(ctx, key, done); err != nil {
			return err
		}
	}
	return nil
}
