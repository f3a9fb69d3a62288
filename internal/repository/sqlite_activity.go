package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.LoggedActivity) error {
	query := `INSERT INTO activities (id, class_type, note, minutes, logged_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ClassType,
		a.Note,
		a.Minutes,
		a.LoggedAt.Format(time.RFC3339),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.LoggedActivity, error) {
	query := `SELECT id, class_type, note, minutes, logged_at, created_at
		FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var a domain.LoggedActivity
	var loggedAtStr, createdAtStr string
	err := row.Scan(&a.ID, &a.ClassType, &a.Note, &a.Minutes, &loggedAtStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}
	return populateActivity(&a, loggedAtStr, createdAtStr)
}

func (r *SQLiteActivityRepo) ListByDay(ctx context.Context, day time.Time) ([]domain.LoggedActivity, error) {
	start, next := dayBounds(day)
	query := `SELECT id, class_type, note, minutes, logged_at, created_at
		FROM activities
		WHERE logged_at >= ? AND logged_at < ?
		ORDER BY logged_at`
	rows, err := r.db.QueryContext(ctx, query,
		start.Format(time.RFC3339), next.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing activities by day: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) CountByClassType(ctx context.Context, from, to time.Time) (map[string]int, error) {
	query := `SELECT class_type, COUNT(*)
		FROM activities
		WHERE logged_at >= ? AND logged_at < ?
		GROUP BY class_type`
	rows, err := r.db.QueryContext(ctx, query,
		from.Format(time.RFC3339), to.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("counting activities by class type: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var classType string
		var n int
		if err := rows.Scan(&classType, &n); err != nil {
			return nil, fmt.Errorf("scanning activity count: %w", err)
		}
		counts[classType] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func scanActivities(rows *sql.Rows) ([]domain.LoggedActivity, error) {
	var activities []domain.LoggedActivity
	for rows.Next() {
		var a domain.LoggedActivity
		var loggedAtStr, createdAtStr string
		if err := rows.Scan(&a.ID, &a.ClassType, &a.Note, &a.Minutes, &loggedAtStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		populated, err := populateActivity(&a, loggedAtStr, createdAtStr)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func populateActivity(a *domain.LoggedActivity, loggedAtStr, createdAtStr string) (*domain.LoggedActivity, error) {
	var err error
	a.LoggedAt, err = time.Parse(time.RFC3339, loggedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing logged_at: %w", err)
	}
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return a, nil
}
