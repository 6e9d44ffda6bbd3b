package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/roster"
	"github.com/dmitrijs2005/roster/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      rpc.StudentsClient
	apiKey      string
}

func withAPIKey(ctx context.Context, key string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.APIKeyHeaderName)
	if key != "" {
		md.Set(common.APIKeyHeaderName, key)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) apiKeyInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ctx = withAPIKey(ctx, s.apiKey)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a client for endpointURL. No connection is made
// until the first call.
func NewGRPCClient(endpointURL, apiKey string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, apiKey: apiKey, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.apiKeyInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewStudentsClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetValue() != "OK" {
		return common.ErrStoreUnavailable
	}
	return nil
}

func (s *GRPCClient) ListStudents(ctx context.Context) ([]roster.Student, error) {
	resp, err := s.client.List(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	students, err := rpc.StudentsFromList(resp)
	if err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return students, nil
}

func (s *GRPCClient) InsertStudent(ctx context.Context, f roster.Fields) (*roster.Student, error) {
	req, err := rpc.FieldsToStruct(f)
	if err != nil {
		return nil, fmt.Errorf("encode student: %w", err)
	}

	resp, err := s.client.Insert(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	student, err := rpc.StudentFromStruct(resp)
	if err != nil {
		return nil, fmt.Errorf("decode student: %w", err)
	}
	return &student, nil
}

func (s *GRPCClient) UpdateStudent(ctx context.Context, id int64, f roster.Fields) error {
	req, err := rpc.UpdateToStruct(id, f)
	if err != nil {
		return fmt.Errorf("encode student: %w", err)
	}

	if _, err := s.client.Update(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteStudent(ctx context.Context, id int64) error {
	if _, err := s.client.Delete(ctx, wrapperspb.Int64(id)); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrStoreUnavailable, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
