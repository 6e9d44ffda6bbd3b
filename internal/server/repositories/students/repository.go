package students

import (
	"context"

	"github.com/dmitrijs2005/roster/internal/roster"
	"github.com/dmitrijs2005/roster/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Student, error)
	Insert(ctx context.Context, f roster.Fields) (*models.Student, error)
	Update(ctx context.Context, id int64, f roster.Fields) error
	Delete(ctx context.Context, id int64) error
}
