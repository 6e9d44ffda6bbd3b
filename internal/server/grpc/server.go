// Package grpc exposes the "Students" table over the roster.v1.Students
// gRPC service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster"
	"github.com/dmitrijs2005/roster/internal/rpc"
	"google.golang.org/grpc"
)

// StudentService is what the handlers need from the service layer.
type StudentService interface {
	List(ctx context.Context) ([]roster.Student, error)
	Insert(ctx context.Context, f roster.Fields) (roster.Student, error)
	Update(ctx context.Context, id int64, f roster.Fields) error
	Delete(ctx context.Context, id int64) error
}

type GRPCServer struct {
	address   string
	students  StudentService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, ss StudentService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		students:  ss,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with interceptors and the service
// registered, without binding a listener.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.apiKeyInterceptor))
	rpc.RegisterStudentsServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
