package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/roster/internal/dbx"
	"github.com/dmitrijs2005/roster/internal/server/repositories/students"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Students(db dbx.DBTX) students.Repository
}
