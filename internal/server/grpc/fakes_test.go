package grpc

import (
	"context"
	"net"
	"sync"

	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster"
)

// recLogger records message texts at every level.
type recLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recLogger) add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func (l *recLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}

func (l *recLogger) Debug(_ context.Context, msg string, _ ...any) { l.add(msg) }
func (l *recLogger) Info(_ context.Context, msg string, _ ...any)  { l.add(msg) }
func (l *recLogger) Warn(_ context.Context, msg string, _ ...any)  { l.add(msg) }
func (l *recLogger) Error(_ context.Context, msg string, _ ...any) { l.add(msg) }
func (l *recLogger) With(...any) logging.Logger                    { return l }

// brokenListener fails every Accept.
type brokenListener struct{ err error }

func (l brokenListener) Accept() (net.Conn, error) { return nil, l.err }
func (l brokenListener) Close() error              { return nil }
func (l brokenListener) Addr() net.Addr            { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)} }

type fakeStudents struct {
	mu sync.Mutex

	listOut []roster.Student
	listErr error

	insertOut roster.Student
	insertErr error
	inserted  []roster.Fields

	updateErr error
	updatedID []int64
	updated   []roster.Fields

	deleteErr error
	deleted   []int64
}

func (f *fakeStudents) List(context.Context) ([]roster.Student, error) {
	return f.listOut, f.listErr
}

func (f *fakeStudents) Insert(_ context.Context, in roster.Fields) (roster.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, in)
	return f.insertOut, f.insertErr
}

func (f *fakeStudents) Update(_ context.Context, id int64, in roster.Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updatedID = append(f.updatedID, id)
	f.updated = append(f.updated, in)
	return f.updateErr
}

func (f *fakeStudents) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

var validFields = roster.Fields{
	FirstName:  "Ann",
	LastName:   "Lee",
	RollNo:     "R1",
	Email:      "ann@x.io",
	Department: roster.DepartmentComputers,
}
