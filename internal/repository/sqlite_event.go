package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

const eventColumns = `lineage, token, title, time, date, type`

func (r *SQLiteEventRepo) List(ctx context.Context) ([]domain.CalendarEvent, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY position`)
}

func (r *SQLiteEventRepo) ListByDate(ctx context.Context, date domain.DateKey) ([]domain.CalendarEvent, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events WHERE date = ? ORDER BY position`, string(date))
}

func (r *SQLiteEventRepo) ListByLineage(ctx context.Context, lineage string) ([]domain.CalendarEvent, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events WHERE lineage = ? ORDER BY position`, lineage)
}

// GetByID returns the first event in collection order carrying id.
func (r *SQLiteEventRepo) GetByID(ctx context.Context, id domain.EventID) (*domain.CalendarEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE lineage = ? AND token = ? ORDER BY position LIMIT 1`,
		id.Lineage, id.Token)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}
	return &ev, nil
}

func (r *SQLiteEventRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return n, nil
}

// ReplaceAll swaps the stored collection for events, keeping their order.
// Run it inside a transaction so readers never see a partial collection.
func (r *SQLiteEventRepo) ReplaceAll(ctx context.Context, events []domain.CalendarEvent) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("clearing events: %w", err)
	}
	for i, ev := range events {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO events (position, lineage, token, title, time, date, type) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, ev.ID.Lineage, ev.ID.Token, ev.Title, ev.Time, string(ev.Date), string(ev.Type))
		if err != nil {
			return fmt.Errorf("inserting event %s: %w", ev.ID, err)
		}
	}
	return nil
}

func (r *SQLiteEventRepo) query(ctx context.Context, query string, args ...any) ([]domain.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (domain.CalendarEvent, error) {
	var ev domain.CalendarEvent
	var date, typ string
	if err := s.Scan(&ev.ID.Lineage, &ev.ID.Token, &ev.Title, &ev.Time, &date, &typ); err != nil {
		return domain.CalendarEvent{}, err
	}
	ev.Date = domain.DateKey(date)
	ev.Type = domain.EventType(typ)
	return ev, nil
}
