package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/domain"
)

// SQLiteReflectionRepo implements ReflectionRepo using a SQLite database.
type SQLiteReflectionRepo struct {
	db db.DBTX
}

// NewSQLiteReflectionRepo creates a new SQLiteReflectionRepo.
func NewSQLiteReflectionRepo(db db.DBTX) *SQLiteReflectionRepo {
	return &SQLiteReflectionRepo{db: db}
}

// Upsert writes the reflection for its day, replacing any earlier entry.
// One reflection per day: re-reflecting overwrites.
func (r *SQLiteReflectionRepo) Upsert(ctx context.Context, ref *domain.Reflection) error {
	query := `INSERT INTO reflections (id, day, intention, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET intention = excluded.intention, created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		ref.ID,
		dayString(ref.Day),
		ref.Intention,
		ref.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting reflection: %w", err)
	}
	return nil
}

func (r *SQLiteReflectionRepo) GetByDay(ctx context.Context, day time.Time) (*domain.Reflection, error) {
	query := `SELECT id, day, intention, created_at FROM reflections WHERE day = ?`
	row := r.db.QueryRowContext(ctx, query, dayString(day))

	var ref domain.Reflection
	var dayStr, createdAtStr string
	err := row.Scan(&ref.ID, &dayStr, &ref.Intention, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reflection: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reflection: %w", err)
	}

	ref.Day, err = time.Parse("2006-01-02", dayStr)
	if err != nil {
		return nil, fmt.Errorf("parsing reflection day: %w", err)
	}
	ref.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &ref, nil
}
