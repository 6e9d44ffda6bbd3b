package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/rpc"
	"github.com/dmitrijs2005/roster/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeStudents{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), &fakeStudents{}, "secret")

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}

func TestServe_AcceptFailureReleasesStopper(t *testing.T) {
	t.Parallel()

	log := &recLogger{}
	srv := NewGRPCServer("127.0.0.1:0", log, &fakeStudents{}, "secret")
	acceptErr := errors.New("accept failed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, brokenListener{err: acceptErr}) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, acceptErr)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after accept failure")
	}

	// the stop goroutine has already left, so a late cancel stops nothing
	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.NotContains(t, log.messages(), "Stopping gRPC server...")
}

func dialBufconn(t *testing.T, s *GRPCServer) rpc.StudentsClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return rpc.NewStudentsClient(conn)
}

func TestServe_EndToEnd(t *testing.T) {
	fs := &fakeStudents{}
	c := dialBufconn(t, newTestServer(fs))

	pong, err := c.Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetValue())

	_, err = c.List(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	key, err := auth.GenerateAPIKey(auth.RoleAnon, []byte("secret"), time.Hour)
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.APIKeyHeaderName, key)

	in, err := rpc.FieldsToStruct(validFields)
	require.NoError(t, err)
	fs.insertOut.ID = "1"
	fs.insertOut.Fields = validFields

	out, err := c.Insert(ctx, in)
	require.NoError(t, err)
	got, err := rpc.StudentFromStruct(out)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = c.Delete(ctx, wrapperspb.Int64(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, fs.deleted)
}
