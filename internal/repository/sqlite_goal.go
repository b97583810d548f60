package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, color FROM goals ORDER BY position, rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Color); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	var g domain.Goal
	err := r.db.QueryRowContext(ctx, `SELECT id, title, color FROM goals WHERE id = ?`, id).
		Scan(&g.ID, &g.Title, &g.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return &g, nil
}

// Create appends g after the existing goals.
func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (id, title, color, position)
		 VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM goals))`,
		g.ID, g.Title, domain.CoalesceStr(g.Color, domain.DefaultGoalColor))
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}

// ReplaceAll swaps the stored goals for goals. A later goal with a repeated
// id overwrites the earlier one.
func (r *SQLiteGoalRepo) ReplaceAll(ctx context.Context, goals []domain.Goal) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("clearing goals: %w", err)
	}
	for i, g := range goals {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO goals (id, title, color, position) VALUES (?, ?, ?, ?)`,
			g.ID, g.Title, domain.CoalesceStr(g.Color, domain.DefaultGoalColor), i)
		if err != nil {
			return fmt.Errorf("inserting goal %s: %w", g.ID, err)
		}
	}
	return nil
}
