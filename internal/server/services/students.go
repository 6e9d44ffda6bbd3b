// Package services holds the server's use cases on top of the repositories.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/roster/internal/roster"
	"github.com/dmitrijs2005/roster/internal/server/repositories/repomanager"
)

// StudentService serves the "Students" table to RPC handlers.
type StudentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewStudentService(db *sql.DB, m repomanager.RepositoryManager) *StudentService {
	return &StudentService{
		db:          db,
		repomanager: m,
	}
}

// List returns all students, newest first.
func (s *StudentService) List(ctx context.Context) ([]roster.Student, error) {
	rows, err := s.repomanager.Students(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	out := make([]roster.Student, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Roster())
	}
	return out, nil
}

// Insert validates f and stores it. Invalid input matches
// common.ErrValidation and never reaches the database.
func (s *StudentService) Insert(ctx context.Context, f roster.Fields) (roster.Student, error) {
	if err := roster.Validate(f).Err(); err != nil {
		return roster.Student{}, err
	}

	row, err := s.repomanager.Students(s.db).Insert(ctx, f)
	if err != nil {
		return roster.Student{}, fmt.Errorf("error inserting student: %w", err)
	}
	return row.Roster(), nil
}

// Update validates f and overwrites student id. A missing row matches
// common.ErrNotFound.
func (s *StudentService) Update(ctx context.Context, id int64, f roster.Fields) error {
	if err := roster.Validate(f).Err(); err != nil {
		return err
	}

	if err := s.repomanager.Students(s.db).Update(ctx, id, f); err != nil {
		return fmt.Errorf("error updating student %d: %w", id, err)
	}
	return nil
}

// Delete removes student id. Removing an absent id succeeds.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Students(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student %d: %w", id, err)
	}
	return nil
}
