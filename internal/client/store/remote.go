package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/roster/internal/client/client"
	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/roster"
)

// RemoteStore talks to the server's students table. List returns the newest
// record first.
type RemoteStore struct {
	client client.Client
}

func NewRemoteStore(c client.Client) *RemoteStore {
	return &RemoteStore{client: c}
}

func (s *RemoteStore) List(ctx context.Context) ([]roster.Student, error) {
	students, err := s.client.ListStudents(ctx)
	if err != nil {
		return nil, wrapAs(common.ErrStoreUnavailable, err)
	}
	return students, nil
}

func (s *RemoteStore) Create(ctx context.Context, f roster.Fields) (*roster.Student, error) {
	student, err := s.client.InsertStudent(ctx, f)
	if err != nil {
		return nil, wrapAs(common.ErrWrite, err)
	}
	return student, nil
}

func (s *RemoteStore) Update(ctx context.Context, id string, f roster.Fields) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("student %s: %w", id, common.ErrNotFound)
	}

	err = s.client.UpdateStudent(ctx, n, f)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNotFound):
		return fmt.Errorf("student %s: %w", id, err)
	default:
		return wrapAs(common.ErrWrite, err)
	}
}

func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// no such row can exist
		return nil
	}

	err = s.client.DeleteStudent(ctx, n)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return wrapAs(common.ErrWrite, err)
	}
	return nil
}

func wrapAs(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

var _ Store = (*RemoteStore)(nil)
