package client

import (
	"context"

	"github.com/dmitrijs2005/roster/internal/roster"
)

// Client is the transport-agnostic contract of the remote students table.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	ListStudents(ctx context.Context) ([]roster.Student, error)
	InsertStudent(ctx context.Context, f roster.Fields) (*roster.Student, error)
	UpdateStudent(ctx context.Context, id int64, f roster.Fields) error
	DeleteStudent(ctx context.Context, id int64) error
}
