// Package proto holds the Go bindings of codec.proto.
package proto

import (
	"context"

	protobuf "github.com/golang/protobuf/proto"
	"google.golang.org/grpc"
)

// EncodeRequest asks for Text to be percent-encoded.
type EncodeRequest struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *EncodeRequest) Reset()         { *m = EncodeRequest{} }
func (m *EncodeRequest) String() string { return protobuf.CompactTextString(m) }
func (*EncodeRequest) ProtoMessage()    {}

// GetText returns Text, or "" for a nil message.
func (m *EncodeRequest) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

// EncodeResponse carries the encoded text.
type EncodeResponse struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *EncodeResponse) Reset()         { *m = EncodeResponse{} }
func (m *EncodeResponse) String() string { return protobuf.CompactTextString(m) }
func (*EncodeResponse) ProtoMessage()    {}

// GetText returns Text, or "" for a nil message.
func (m *EncodeResponse) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

// DecodeRequest asks for Text to be decoded.
type DecodeRequest struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *DecodeRequest) Reset()         { *m = DecodeRequest{} }
func (m *DecodeRequest) String() string { return protobuf.CompactTextString(m) }
func (*DecodeRequest) ProtoMessage()    {}

// GetText returns Text, or "" for a nil message.
func (m *DecodeRequest) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

// DecodeResponse carries the decoded text.
type DecodeResponse struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *DecodeResponse) Reset()         { *m = DecodeResponse{} }
func (m *DecodeResponse) String() string { return protobuf.CompactTextString(m) }
func (*DecodeResponse) ProtoMessage()    {}

// GetText returns Text, or "" for a nil message.
func (m *DecodeResponse) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

// BatchRequest is used by both batch calls.
type BatchRequest struct {
	Texts []string `protobuf:"bytes,1,rep,name=texts,proto3" json:"texts,omitempty"`
}

func (m *BatchRequest) Reset()         { *m = BatchRequest{} }
func (m *BatchRequest) String() string { return protobuf.CompactTextString(m) }
func (*BatchRequest) ProtoMessage()    {}

// GetTexts returns Texts, or nil for a nil message.
func (m *BatchRequest) GetTexts() []string {
	if m != nil {
		return m.Texts
	}
	return nil
}

// BatchResponse holds the results in the same order as the request.
type BatchResponse struct {
	Texts []string `protobuf:"bytes,1,rep,name=texts,proto3" json:"texts,omitempty"`
}

func (m *BatchResponse) Reset()         { *m = BatchResponse{} }
func (m *BatchResponse) String() string { return protobuf.CompactTextString(m) }
func (*BatchResponse) ProtoMessage()    {}

// GetTexts returns Texts, or nil for a nil message.
func (m *BatchResponse) GetTexts() []string {
	if m != nil {
		return m.Texts
	}
	return nil
}

// CodecServiceServer is the server API for the urlencoder.CodecService service.
type CodecServiceServer interface {
	Encode(context.Context, *EncodeRequest) (*EncodeResponse, error)
	Decode(context.Context, *DecodeRequest) (*DecodeResponse, error)
	EncodeBatch(context.Context, *BatchRequest) (*BatchResponse, error)
	DecodeBatch(context.Context, *BatchRequest) (*BatchResponse, error)
}

// RegisterCodecServiceServer registers srv on s.
func RegisterCodecServiceServer(s *grpc.Server, srv CodecServiceServer) {
	s.RegisterService(&codecServiceDesc, srv)
}

func encodeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EncodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServiceServer).Encode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/urlencoder.CodecService/Encode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServiceServer).Encode(ctx, req.(*EncodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func decodeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServiceServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/urlencoder.CodecService/Decode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServiceServer).Decode(ctx, req.(*DecodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func encodeBatchHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServiceServer).EncodeBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/urlencoder.CodecService/EncodeBatch"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServiceServer).EncodeBatch(ctx, req.(*BatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func decodeBatchHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServiceServer).DecodeBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/urlencoder.CodecService/DecodeBatch"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServiceServer).DecodeBatch(ctx, req.(*BatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var codecServiceDesc = grpc.ServiceDesc{
	ServiceName: "urlencoder.CodecService",
	HandlerType: (*CodecServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encode", Handler: encodeHandler},
		{MethodName: "Decode", Handler: decodeHandler},
		{MethodName: "EncodeBatch", Handler: encodeBatchHandler},
		{MethodName: "DecodeBatch", Handler: decodeBatchHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "codec.proto",
}

// CodecServiceClient is the client API for the urlencoder.CodecService service.
type CodecServiceClient interface {
	Encode(ctx context.Context, in *EncodeRequest, opts ...grpc.CallOption) (*EncodeResponse, error)
	Decode(ctx context.Context, in *DecodeRequest, opts ...grpc.CallOption) (*DecodeResponse, error)
	EncodeBatch(ctx context.Context, in *BatchRequest, opts ...grpc.CallOption) (*BatchResponse, error)
	DecodeBatch(ctx context.Context, in *BatchRequest, opts ...grpc.CallOption) (*BatchResponse, error)
}

type codecServiceClient struct {
	cc *grpc.ClientConn
}

// NewCodecServiceClient creates a client using the given connection.
func NewCodecServiceClient(cc *grpc.ClientConn) CodecServiceClient {
	return &codecServiceClient{cc}
}

func (c *codecServiceClient) Encode(ctx context.Context, in *EncodeRequest, opts ...grpc.CallOption) (*EncodeResponse, error) {
	out := new(EncodeResponse)
	if err := c.cc.Invoke(ctx, "/urlencoder.CodecService/Encode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *codecServiceClient) Decode(ctx context.Context, in *DecodeRequest, opts ...grpc.CallOption) (*DecodeResponse, error) {
	out := new(DecodeResponse)
	if err := c.cc.Invoke(ctx, "/urlencoder.CodecService/Decode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *codecServiceClient) EncodeBatch(ctx context.Context, in *BatchRequest, opts ...grpc.CallOption) (*BatchResponse, error) {
	out := new(BatchResponse)
	if err := c.cc.Invoke(ctx, "/urlencoder.CodecService/EncodeBatch", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *codecServiceClient) DecodeBatch(ctx context.Context, in *BatchRequest, opts ...grpc.CallOption) (*BatchResponse, error) {
	out := new(BatchResponse)
	if err := c.cc.Invoke(ctx, "/urlencoder.CodecService/DecodeBatch", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
