package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) ListTargets(ctx context.Context, weekStart time.Time) (map[domain.GoalDimension]int, error) {
	query := `SELECT dimension, target FROM weekly_goal_targets WHERE week_start = ?`
	rows, err := r.db.QueryContext(ctx, query, dayString(weekStart))
	if err != nil {
		return nil, fmt.Errorf("listing goal targets: %w", err)
	}
	defer rows.Close()

	targets := make(map[domain.GoalDimension]int)
	for rows.Next() {
		var dim string
		var target int
		if err := rows.Scan(&dim, &target); err != nil {
			return nil, fmt.Errorf("scanning goal target: %w", err)
		}
		targets[domain.GoalDimension(dim)] = target
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal targets: %w", err)
	}
	return targets, nil
}

func (r *SQLiteGoalRepo) UpsertTarget(ctx context.Context, weekStart time.Time, dim domain.GoalDimension, target int) error {
	query := `INSERT INTO weekly_goal_targets (week_start, dimension, target, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(week_start, dimension) DO UPDATE SET target = excluded.target`
	_, err := r.db.ExecContext(ctx, query,
		dayString(weekStart), string(dim), target, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting goal target: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) DeleteTargets(ctx context.Context, weekStart time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM weekly_goal_targets WHERE week_start = ?`, dayString(weekStart))
	if err != nil {
		return fmt.Errorf("deleting goal targets: %w", err)
	}
	return nil
}
