package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster"
	"github.com/dmitrijs2005/roster/internal/rpc"
	"github.com/dmitrijs2005/roster/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newTestServer(ss StudentService) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop(), ss, "secret")
}

func TestPing(t *testing.T) {
	s := newTestServer(&fakeStudents{})

	resp, err := s.Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetValue())
}

func TestList(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fs := &fakeStudents{listOut: []roster.Student{
		{ID: "2", Fields: validFields, CreatedAt: created},
		{ID: "1", Fields: validFields, CreatedAt: created.Add(-time.Hour)},
	}}
	s := newTestServer(fs)

	lv, err := s.List(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)

	got, err := rpc.StudentsFromList(lv)
	require.NoError(t, err)
	assert.Equal(t, fs.listOut, got)
}

func TestList_Error(t *testing.T) {
	s := newTestServer(&fakeStudents{listErr: errors.New("db is down")})

	_, err := s.List(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "internal error", status.Convert(err).Message())
}

func TestInsert(t *testing.T) {
	fs := &fakeStudents{insertOut: roster.Student{ID: "5", Fields: validFields}}
	s := newTestServer(fs)

	in, err := rpc.FieldsToStruct(validFields)
	require.NoError(t, err)

	out, err := s.Insert(context.Background(), in)
	require.NoError(t, err)

	got, err := rpc.StudentFromStruct(out)
	require.NoError(t, err)
	assert.Equal(t, "5", got.ID)
	assert.Equal(t, []roster.Fields{validFields}, fs.inserted)
}

func TestInsert_BadPayload(t *testing.T) {
	fs := &fakeStudents{}
	s := newTestServer(fs)

	in, err := structpb.NewStruct(map[string]any{"first_name": 12})
	require.NoError(t, err)

	_, err = s.Insert(context.Background(), in)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, fs.inserted)
}

func TestInsert_ValidationError(t *testing.T) {
	verr := roster.Validate(roster.Fields{}).Err()
	s := newTestServer(&fakeStudents{insertErr: verr})

	in, err := rpc.FieldsToStruct(roster.Fields{})
	require.NoError(t, err)

	_, err = s.Insert(context.Background(), in)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "First name is required")
}

func TestUpdate(t *testing.T) {
	fs := &fakeStudents{}
	s := newTestServer(fs)

	in, err := rpc.UpdateToStruct(9007199254740993, validFields)
	require.NoError(t, err)

	_, err = s.Update(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []int64{9007199254740993}, fs.updatedID)
	assert.Equal(t, []roster.Fields{validFields}, fs.updated)
}

func TestUpdate_BadID(t *testing.T) {
	tests := []struct {
		name string
		id   any
	}{
		{name: "missing", id: nil},
		{name: "not a number", id: "abc"},
		{name: "not a string", id: 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &fakeStudents{}
			s := newTestServer(fs)

			m := map[string]any{"first_name": "Ann"}
			if tt.id != nil {
				m["id"] = tt.id
			}
			in, err := structpb.NewStruct(m)
			require.NoError(t, err)

			_, err = s.Update(context.Background(), in)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Empty(t, fs.updatedID)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	s := newTestServer(&fakeStudents{updateErr: fmt.Errorf("error updating student 1: %w", common.ErrNotFound)})

	in, err := rpc.UpdateToStruct(1, validFields)
	require.NoError(t, err)

	_, err = s.Update(context.Background(), in)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDelete(t *testing.T) {
	fs := &fakeStudents{}
	s := newTestServer(fs)

	_, err := s.Delete(context.Background(), wrapperspb.Int64(3))
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, fs.deleted)
}

func TestDelete_Error(t *testing.T) {
	s := newTestServer(&fakeStudents{deleteErr: errors.New("db is down")})

	_, err := s.Delete(context.Background(), wrapperspb.Int64(3))
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestToStatus_ContextErrors(t *testing.T) {
	s := newTestServer(&fakeStudents{})

	assert.Equal(t, codes.Canceled, status.Code(s.toStatus(context.Background(), context.Canceled)))
	assert.Equal(t, codes.DeadlineExceeded, status.Code(s.toStatus(context.Background(), fmt.Errorf("x: %w", context.DeadlineExceeded))))
}

func TestCallAttrs(t *testing.T) {
	s := newTestServer(&fakeStudents{})

	assert.Equal(t, []any{"id", 1}, s.callAttrs(context.Background(), "id", 1))

	ctx := context.WithValue(context.Background(), requestIDKey, "req-1")
	ctx = context.WithValue(ctx, roleKey, auth.RoleAnon)
	assert.Equal(t, []any{"request_id", "req-1", "role", "anon", "id", 1}, s.callAttrs(ctx, "id", 1))
}
