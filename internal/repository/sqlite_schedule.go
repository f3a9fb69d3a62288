package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, c *domain.ScheduledClass) error {
	query := `INSERT INTO scheduled_classes (id, weekday, class_name, class_type, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		int(c.Weekday),
		c.ClassName,
		nullableStrToValue(c.ClassType),
		c.StartTime,
		c.EndTime,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scheduled class: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) ListByWeekday(ctx context.Context, weekday time.Weekday) ([]domain.ScheduledClass, error) {
	query := `SELECT id, weekday, class_name, class_type, start_time, end_time, created_at
		FROM scheduled_classes WHERE weekday = ? ORDER BY start_time, created_at`
	rows, err := r.db.QueryContext(ctx, query, int(weekday))
	if err != nil {
		return nil, fmt.Errorf("listing classes by weekday: %w", err)
	}
	defer rows.Close()
	return scanClasses(rows)
}

func (r *SQLiteScheduleRepo) ListAll(ctx context.Context) ([]domain.ScheduledClass, error) {
	query := `SELECT id, weekday, class_name, class_type, start_time, end_time, created_at
		FROM scheduled_classes ORDER BY weekday, start_time, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all classes: %w", err)
	}
	defer rows.Close()
	return scanClasses(rows)
}

func (r *SQLiteScheduleRepo) DeleteByWeekday(ctx context.Context, weekday time.Weekday) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_classes WHERE weekday = ?`, int(weekday))
	if err != nil {
		return fmt.Errorf("clearing weekday schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_classes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scheduled class: %w", err)
	}
	return nil
}

func scanClasses(rows *sql.Rows) ([]domain.ScheduledClass, error) {
	var classes []domain.ScheduledClass
	for rows.Next() {
		var c domain.ScheduledClass
		var weekday int
		var classType sql.NullString
		var createdAtStr string
		if err := rows.Scan(&c.ID, &weekday, &c.ClassName, &classType, &c.StartTime, &c.EndTime, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning scheduled class row: %w", err)
		}
		c.Weekday = time.Weekday(weekday)
		c.ClassType = parseNullableStr(classType)
		created, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		c.CreatedAt = created
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheduled classes: %w", err)
	}
	return classes, nil
}
