// Package students provides the PostgreSQL-backed repository for the
// "Students" table.
package students

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/dbx"
	"github.com/dmitrijs2005/roster/internal/roster"
	"github.com/dmitrijs2005/roster/internal/server/models"
)

// PostgresRepository implements student storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every row, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT id, first_name, last_name, roll_no, email, department, created_at
		FROM "Students" ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select students: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Student, 0)
	for rows.Next() {
		var item models.Student
		if err := rows.Scan(
			&item.ID, &item.FirstName, &item.LastName, &item.RollNo, &item.Email,
			&item.Department, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Insert stores f and returns the row with its server-assigned id and
// creation time.
func (r *PostgresRepository) Insert(ctx context.Context, f roster.Fields) (*models.Student, error) {
	query := `INSERT INTO "Students" (first_name, last_name, roll_no, email, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	item := &models.Student{Fields: f}
	err := r.db.QueryRowContext(ctx, query, f.FirstName, f.LastName, f.RollNo, f.Email, f.Department).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// Update overwrites the five user fields of row id. A missing row is
// common.ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id int64, f roster.Fields) error {
	query := `UPDATE "Students"
		SET first_name = $1, last_name = $2, roll_no = $3, email = $4, department = $5
		WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query, f.FirstName, f.LastName, f.RollNo, f.Email, f.Department, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes row id. Deleting a row that does not exist succeeds.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM "Students" WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
