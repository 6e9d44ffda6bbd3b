package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/roster/internal/client/kv"
	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/roster"
)

// StudentsKey names the entry holding the JSON array of students.
const StudentsKey = "students"

// DecodeError reports a stored value that is not a JSON array of students.
// It is not translated into a store sentinel: it means the entry was written
// by something other than this package.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", StudentsKey, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// LocalStore keeps every student in a single key/value entry that is read on
// every operation and rewritten on every change. List returns insertion order.
type LocalStore struct {
	repo kv.Repository
	now  func() time.Time
}

type LocalOption func(*LocalStore)

// WithClock replaces time.Now as the source of ids and creation times.
func WithClock(now func() time.Time) LocalOption {
	return func(s *LocalStore) { s.now = now }
}

func NewLocalStore(repo kv.Repository, opts ...LocalOption) *LocalStore {
	s := &LocalStore{repo: repo, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *LocalStore) List(ctx context.Context) ([]roster.Student, error) {
	raw, err := s.repo.Get(ctx, StudentsKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	return decode(raw)
}

func (s *LocalStore) Create(ctx context.Context, f roster.Fields) (*roster.Student, error) {
	var created roster.Student

	err := s.modify(ctx, func(students []roster.Student) ([]roster.Student, error) {
		now := s.now()
		created = roster.Student{
			ID:        nextID(now, students),
			Fields:    f,
			CreatedAt: now.UTC(),
		}
		return append(students, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *LocalStore) Update(ctx context.Context, id string, f roster.Fields) error {
	return s.modify(ctx, func(students []roster.Student) ([]roster.Student, error) {
		for i := range students {
			if students[i].ID == id {
				students[i].Fields = f
				return students, nil
			}
		}
		return nil, fmt.Errorf("student %s: %w", id, common.ErrNotFound)
	})
}

func (s *LocalStore) Delete(ctx context.Context, id string) error {
	return s.modify(ctx, func(students []roster.Student) ([]roster.Student, error) {
		out := students[:0]
		for _, st := range students {
			if st.ID != id {
				out = append(out, st)
			}
		}
		return out, nil
	})
}

// modify runs fn over the decoded list inside one repository update.
// Errors returned by fn and decode errors pass through unchanged; everything
// else the repository reports becomes common.ErrWrite.
func (s *LocalStore) modify(ctx context.Context, fn func([]roster.Student) ([]roster.Student, error)) error {
	var fnErr error

	err := s.repo.Update(ctx, StudentsKey, func(current []byte) ([]byte, error) {
		students, err := decode(current)
		if err != nil {
			fnErr = err
			return nil, err
		}
		next, err := fn(students)
		if err != nil {
			fnErr = err
			return nil, err
		}
		return json.Marshal(next)
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrWrite, err)
	}
	return nil
}

func decode(raw []byte) ([]roster.Student, error) {
	students := []roster.Student{}
	if len(raw) == 0 {
		return students, nil
	}
	if err := json.Unmarshal(raw, &students); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return students, nil
}

// nextID derives an id from the clock in milliseconds, stepping forward while
// it collides with an existing record.
func nextID(now time.Time, existing []roster.Student) string {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s.ID] = struct{}{}
	}

	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if _, ok := taken[id]; !ok {
			return id
		}
		n++
	}
}

var _ Store = (*LocalStore)(nil)

// IsDecodeError reports whether err comes from a malformed stored entry.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
