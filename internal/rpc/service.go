package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "roster.v1.Students"

const (
	PingMethod   = "/" + ServiceName + "/Ping"
	ListMethod   = "/" + ServiceName + "/List"
	InsertMethod = "/" + ServiceName + "/Insert"
	UpdateMethod = "/" + ServiceName + "/Update"
	DeleteMethod = "/" + ServiceName + "/Delete"
)

// StudentsClient is the client API for the Students service.
type StudentsClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Delete(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type studentsClient struct {
	cc grpc.ClientConnInterface
}

func NewStudentsClient(cc grpc.ClientConnInterface) StudentsClient {
	return &studentsClient{cc: cc}
}

func (c *studentsClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, PingMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *studentsClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *studentsClient) Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, InsertMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *studentsClient) Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, UpdateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *studentsClient) Delete(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, DeleteMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StudentsServer is the server API for the Students service.
type StudentsServer interface {
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	List(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Insert(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Update(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Delete(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
}

func RegisterStudentsServer(s grpc.ServiceRegistrar, srv StudentsServer) {
	s.RegisterService(&StudentsServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodDesc handler.
func unaryHandler[Req any, Resp any](fullMethod string, newReq func() *Req, call func(StudentsServer, context.Context, *Req) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StudentsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StudentsServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var StudentsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StudentsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler: unaryHandler(PingMethod, func() *emptypb.Empty { return new(emptypb.Empty) },
				func(s StudentsServer, ctx context.Context, in *emptypb.Empty) (*wrapperspb.StringValue, error) {
					return s.Ping(ctx, in)
				}),
		},
		{
			MethodName: "List",
			Handler: unaryHandler(ListMethod, func() *emptypb.Empty { return new(emptypb.Empty) },
				func(s StudentsServer, ctx context.Context, in *emptypb.Empty) (*structpb.ListValue, error) {
					return s.List(ctx, in)
				}),
		},
		{
			MethodName: "Insert",
			Handler: unaryHandler(InsertMethod, func() *structpb.Struct { return new(structpb.Struct) },
				func(s StudentsServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return s.Insert(ctx, in)
				}),
		},
		{
			MethodName: "Update",
			Handler: unaryHandler(UpdateMethod, func() *structpb.Struct { return new(structpb.Struct) },
				func(s StudentsServer, ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
					return s.Update(ctx, in)
				}),
		},
		{
			MethodName: "Delete",
			Handler: unaryHandler(DeleteMethod, func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
				func(s StudentsServer, ctx context.Context, in *wrapperspb.Int64Value) (*emptypb.Empty, error) {
					return s.Delete(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "roster/v1/students.proto",
}
