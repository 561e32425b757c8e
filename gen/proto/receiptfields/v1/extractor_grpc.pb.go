// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: receiptfields/v1/extractor.proto

package receiptfieldsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExtractorService_CreateSession_FullMethodName   = "/receiptfields.v1.ExtractorService/CreateSession"
	ExtractorService_ResetSession_FullMethodName    = "/receiptfields.v1.ExtractorService/ResetSession"
	ExtractorService_CloseSession_FullMethodName    = "/receiptfields.v1.ExtractorService/CloseSession"
	ExtractorService_ExtractFields_FullMethodName   = "/receiptfields.v1.ExtractorService/ExtractFields"
	ExtractorService_SelectCandidate_FullMethodName = "/receiptfields.v1.ExtractorService/SelectCandidate"
	ExtractorService_RejectCandidate_FullMethodName = "/receiptfields.v1.ExtractorService/RejectCandidate"
)

// ExtractorServiceClient is the client API for ExtractorService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExtractorServiceClient interface {
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error)
	ResetSession(ctx context.Context, in *ResetSessionRequest, opts ...grpc.CallOption) (*ResetSessionResponse, error)
	CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error)
	ExtractFields(ctx context.Context, in *ExtractFieldsRequest, opts ...grpc.CallOption) (*ExtractFieldsResponse, error)
	SelectCandidate(ctx context.Context, in *SelectCandidateRequest, opts ...grpc.CallOption) (*SelectCandidateResponse, error)
	RejectCandidate(ctx context.Context, in *RejectCandidateRequest, opts ...grpc.CallOption) (*RejectCandidateResponse, error)
}

type extractorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractorServiceClient(cc grpc.ClientConnInterface) ExtractorServiceClient {
	return &extractorServiceClient{cc}
}

func (c *extractorServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSessionResponse)
	err := c.cc.Invoke(ctx, ExtractorService_CreateSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) ResetSession(ctx context.Context, in *ResetSessionRequest, opts ...grpc.CallOption) (*ResetSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetSessionResponse)
	err := c.cc.Invoke(ctx, ExtractorService_ResetSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CloseSessionResponse)
	err := c.cc.Invoke(ctx, ExtractorService_CloseSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) ExtractFields(ctx context.Context, in *ExtractFieldsRequest, opts ...grpc.CallOption) (*ExtractFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractFieldsResponse)
	err := c.cc.Invoke(ctx, ExtractorService_ExtractFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) SelectCandidate(ctx context.Context, in *SelectCandidateRequest, opts ...grpc.CallOption) (*SelectCandidateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SelectCandidateResponse)
	err := c.cc.Invoke(ctx, ExtractorService_SelectCandidate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) RejectCandidate(ctx context.Context, in *RejectCandidateRequest, opts ...grpc.CallOption) (*RejectCandidateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RejectCandidateResponse)
	err := c.cc.Invoke(ctx, ExtractorService_RejectCandidate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractorServiceServer is the server API for ExtractorService service.
// All implementations must embed UnimplementedExtractorServiceServer
// for forward compatibility.
type ExtractorServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error)
	ResetSession(context.Context, *ResetSessionRequest) (*ResetSessionResponse, error)
	CloseSession(context.Context, *CloseSessionRequest) (*CloseSessionResponse, error)
	ExtractFields(context.Context, *ExtractFieldsRequest) (*ExtractFieldsResponse, error)
	SelectCandidate(context.Context, *SelectCandidateRequest) (*SelectCandidateResponse, error)
	RejectCandidate(context.Context, *RejectCandidateRequest) (*RejectCandidateResponse, error)
	mustEmbedUnimplementedExtractorServiceServer()
}

// UnimplementedExtractorServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractorServiceServer struct{}

func (UnimplementedExtractorServiceServer) CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedExtractorServiceServer) ResetSession(context.Context, *ResetSessionRequest) (*ResetSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetSession not implemented")
}
func (UnimplementedExtractorServiceServer) CloseSession(context.Context, *CloseSessionRequest) (*CloseSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseSession not implemented")
}
func (UnimplementedExtractorServiceServer) ExtractFields(context.Context, *ExtractFieldsRequest) (*ExtractFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractFields not implemented")
}
func (UnimplementedExtractorServiceServer) SelectCandidate(context.Context, *SelectCandidateRequest) (*SelectCandidateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectCandidate not implemented")
}
func (UnimplementedExtractorServiceServer) RejectCandidate(context.Context, *RejectCandidateRequest) (*RejectCandidateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectCandidate not implemented")
}
func (UnimplementedExtractorServiceServer) mustEmbedUnimplementedExtractorServiceServer() {}
func (UnimplementedExtractorServiceServer) testEmbeddedByValue()                          {}

// UnsafeExtractorServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractorServiceServer will
// result in compilation errors.
type UnsafeExtractorServiceServer interface {
	mustEmbedUnimplementedExtractorServiceServer()
}

func RegisterExtractorServiceServer(s grpc.ServiceRegistrar, srv ExtractorServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractorServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractorService_ServiceDesc, srv)
}

func _ExtractorService_CreateSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_CreateSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).CreateSession(ctx, req.(*CreateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_ResetSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).ResetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_ResetSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).ResetSession(ctx, req.(*ResetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_CloseSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).CloseSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_CloseSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).CloseSession(ctx, req.(*CloseSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_ExtractFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).ExtractFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_ExtractFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).ExtractFields(ctx, req.(*ExtractFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_SelectCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).SelectCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_SelectCandidate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).SelectCandidate(ctx, req.(*SelectCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_RejectCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).RejectCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_RejectCandidate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).RejectCandidate(ctx, req.(*RejectCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractorService_ServiceDesc is the grpc.ServiceDesc for ExtractorService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "receiptfields.v1.ExtractorService",
	HandlerType: (*ExtractorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSession",
			Handler:    _ExtractorService_CreateSession_Handler,
		},
		{
			MethodName: "ResetSession",
			Handler:    _ExtractorService_ResetSession_Handler,
		},
		{
			MethodName: "CloseSession",
			Handler:    _ExtractorService_CloseSession_Handler,
		},
		{
			MethodName: "ExtractFields",
			Handler:    _ExtractorService_ExtractFields_Handler,
		},
		{
			MethodName: "SelectCandidate",
			Handler:    _ExtractorService_SelectCandidate_Handler,
		},
		{
			MethodName: "RejectCandidate",
			Handler:    _ExtractorService_RejectCandidate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "receiptfields/v1/extractor.proto",
}
