package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/rpc"
	"github.com/dmitrijs2005/roster/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "requestID"
)

// RoleFromContext returns the role of the API key that authorised the call.
func RoleFromContext(ctx context.Context) (auth.Role, bool) {
	r, ok := ctx.Value(roleKey).(auth.Role)
	return r, ok
}

// RequestIDFromContext returns the id assigned by requestLogInterceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// apiKeyInterceptor requires a valid API key in the "apikey" metadata on
// every method except Ping.
func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == rpc.PingMethod {
		return handler(ctx, req)
	}

	var apiKey string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.APIKeyHeaderName)
		if len(values) > 0 {
			apiKey = values[0]
		}
	}
	if len(apiKey) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing api key")
	}

	claims, err := auth.ParseAPIKey(apiKey, s.jwtSecret)
	if err != nil {
		s.logger.Warn(ctx, "rejected api key", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}

	ctx = context.WithValue(ctx, roleKey, claims.Role)

	return handler(ctx, req)
}

// requestLogInterceptor tags each call with a request id and logs its
// outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, id)

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "request",
		"request_id", id,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
