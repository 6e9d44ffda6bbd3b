package students

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var fields = roster.Fields{
	FirstName:  "Ann",
	LastName:   "Lee",
	RollNo:     "R1",
	Email:      "ann@x.io",
	Department: roster.DepartmentComputers,
}

var columns = []string{"id", "first_name", "last_name", "roll_no", "email", "department", "created_at"}

func TestList_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, first_name, last_name, roll_no, email, department, created_at\s+FROM "Students" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(2), "Bo", "Ray", "R2", "bo@x.io", roster.DepartmentMechanical, t1).
			AddRow(int64(1), "Ann", "Lee", "R1", "ann@x.io", roster.DepartmentComputers, t2))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "Bo", got[0].FirstName)
	assert.Equal(t, t1, got[0].CreatedAt)
	assert.Equal(t, fields, got[1].Fields)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM "Students"`).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM "Students"`).WillReturnError(errors.New("db is down"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select students")
}

func TestList_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM "Students"`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("not-a-number", "Ann", "Lee", "R1", "ann@x.io", roster.DepartmentComputers, time.Now()))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestList_RowsError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM "Students"`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Ann", "Lee", "R1", "ann@x.io", roster.DepartmentComputers, time.Now()).
			RowError(0, errors.New("row-err")))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestInsert_ReturnsIDAndCreatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO "Students" \(first_name, last_name, roll_no, email, department\)\s+VALUES .*\s+RETURNING id, created_at`).
		WithArgs("Ann", "Lee", "R1", "ann@x.io", roster.DepartmentComputers).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), created))

	got, err := repo.Insert(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, fields, got.Fields)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "Students"`).WillReturnError(errors.New("db is down"))

	_, err := repo.Insert(context.Background(), fields)
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "Students"\s+SET first_name = \$1, last_name = \$2, roll_no = \$3, email = \$4, department = \$5\s+WHERE id = \$6`).
		WithArgs("Ann", "Lee", "R1", "ann@x.io", roster.DepartmentComputers, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), 7, fields))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NoRowsIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "Students"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 7, fields)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		expect func(sqlmock.Sqlmock)
		want   string
	}{
		{
			name: "exec error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`UPDATE "Students"`).WillReturnError(errors.New("db is down"))
			},
			want: "db error",
		},
		{
			name: "rows affected error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`UPDATE "Students"`).WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))
			},
			want: "rows affected error",
		},
		{
			name: "too many rows",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`UPDATE "Students"`).WillReturnResult(sqlmock.NewResult(0, 2))
			},
			want: "unexpected rows affected: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()
			tt.expect(mock)

			err := repo.Update(context.Background(), 1, fields)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM "Students" WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "Students" WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 7))
	require.NoError(t, repo.Delete(context.Background(), 8), "absent row is not an error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM "Students"`).WillReturnError(errors.New("db is down"))

	err := repo.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is down")
}
