package grpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/rpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}

func (s *GRPCServer) List(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	result, err := s.students.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	lv, err := rpc.StudentsToList(result)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return lv, nil
}

func (s *GRPCServer) Insert(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f, err := rpc.FieldsFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	created, err := s.students.Insert(ctx, f)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Student inserted", s.callAttrs(ctx, "id", created.ID)...)

	out, err := rpc.StudentToStruct(created)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) Update(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	rawID, err := rpc.IDFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id %q", rawID)
	}

	f, err := rpc.FieldsFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.students.Update(ctx, id, f); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Student updated", s.callAttrs(ctx, "id", id)...)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	if err := s.students.Delete(ctx, req.GetValue()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Student deleted", s.callAttrs(ctx, "id", req.GetValue())...)
	return &emptypb.Empty{}, nil
}

// toStatus maps service errors onto gRPC codes. Unexpected errors are logged
// and reported as Internal without details.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "student not found")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, "request failed", s.callAttrs(ctx, "error", err)...)
	return status.Error(codes.Internal, "internal error")
}

// callAttrs prefixes args with the request id and caller role, when known.
func (s *GRPCServer) callAttrs(ctx context.Context, args ...any) []any {
	out := make([]any, 0, len(args)+4)
	if id := RequestIDFromContext(ctx); id != "" {
		out = append(out, "request_id", id)
	}
	if role, ok := RoleFromContext(ctx); ok {
		out = append(out, "role", string(role))
	}
	return append(out, args...)
}
