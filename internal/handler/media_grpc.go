package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	MediaServiceName = "media.v1.MediaService"

	uploadMethod          = "/media.v1.MediaService/Upload"
	uploadStreamMethod    = "/media.v1.MediaService/UploadStream"
	deleteMethod          = "/media.v1.MediaService/Delete"
	resolvePublicIDMethod = "/media.v1.MediaService/ResolvePublicID"
)

type UploadRequest struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"content"`
}

type UploadResponse struct {
	PublicID     string `json:"public_id"`
	AssetID      string `json:"asset_id"`
	URL          string `json:"url"`
	SecureURL    string `json:"secure_url"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
	ContentType  string `json:"content_type"`
	Version      int    `json:"version"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"file_size"`
	UploadedAt   string `json:"uploaded_at"`
}

// UploadStreamRequest carries either the file metadata (first message) or a content chunk.
type UploadStreamRequest struct {
	Metadata *FileMetadata `json:"metadata,omitempty"`
	Chunk    []byte        `json:"chunk,omitempty"`
}

type FileMetadata struct {
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size,omitempty"`
}

type DeleteRequest struct {
	URL          string            `json:"url"`
	ResourceType string            `json:"resource_type,omitempty"`
	Type         string            `json:"type,omitempty"`
	Invalidate   *bool             `json:"invalidate,omitempty"`
	Overrides    map[string]string `json:"overrides,omitempty"`
}

type DeleteResponse struct {
	Success  bool   `json:"success"`
	Outcome  string `json:"outcome"`
	PublicID string `json:"public_id,omitempty"`
	Message  string `json:"message"`
}

type ResolvePublicIDRequest struct {
	URL string `json:"url"`
}

type ResolvePublicIDResponse struct {
	PublicID string `json:"public_id"`
	Found    bool   `json:"found"`
}

// MediaServiceServer is the server API for the media service
type MediaServiceServer interface {
	Upload(context.Context, *UploadRequest) (*UploadResponse, error)
	UploadStream(MediaService_UploadStreamServer) error
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
	ResolvePublicID(context.Context, *ResolvePublicIDRequest) (*ResolvePublicIDResponse, error)
}

// UnimplementedMediaServiceServer can be embedded for forward compatibility
type UnimplementedMediaServiceServer struct{}

func (UnimplementedMediaServiceServer) Upload(context.Context, *UploadRequest) (*UploadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Upload not implemented")
}

func (UnimplementedMediaServiceServer) UploadStream(MediaService_UploadStreamServer) error {
	return status.Error(codes.Unimplemented, "method UploadStream not implemented")
}

func (UnimplementedMediaServiceServer) Delete(context.Context, *DeleteRequest) (*DeleteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}

func (UnimplementedMediaServiceServer) ResolvePublicID(context.Context, *ResolvePublicIDRequest) (*ResolvePublicIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResolvePublicID not implemented")
}

func RegisterMediaServiceServer(s grpc.ServiceRegistrar, srv MediaServiceServer) {
	s.RegisterService(&MediaService_ServiceDesc, srv)
}

func _MediaService_Upload_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).Upload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: uploadMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MediaServiceServer).Upload(ctx, req.(*UploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_UploadStream_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(MediaServiceServer).UploadStream(&mediaServiceUploadStreamServer{stream})
}

type MediaService_UploadStreamServer interface {
	SendAndClose(*UploadResponse) error
	Recv() (*UploadStreamRequest, error)
	grpc.ServerStream
}

type mediaServiceUploadStreamServer struct {
	grpc.ServerStream
}

func (x *mediaServiceUploadStreamServer) SendAndClose(m *UploadResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *mediaServiceUploadStreamServer) Recv() (*UploadStreamRequest, error) {
	m := new(UploadStreamRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _MediaService_Delete_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: deleteMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MediaServiceServer).Delete(ctx, req.(*DeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_ResolvePublicID_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResolvePublicIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).ResolvePublicID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: resolvePublicIDMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MediaServiceServer).ResolvePublicID(ctx, req.(*ResolvePublicIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MediaService_ServiceDesc is the grpc.ServiceDesc for the media service
var MediaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MediaServiceName,
	HandlerType: (*MediaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Upload", Handler: _MediaService_Upload_Handler},
		{MethodName: "Delete", Handler: _MediaService_Delete_Handler},
		{MethodName: "ResolvePublicID", Handler: _MediaService_ResolvePublicID_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "UploadStream",
			Handler:       _MediaService_UploadStream_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "media/v1/media.json",
}

// MediaServiceClient is the client API for the media service
type MediaServiceClient interface {
	Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error)
	UploadStream(ctx context.Context, opts ...grpc.CallOption) (MediaService_UploadStreamClient, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	ResolvePublicID(ctx context.Context, in *ResolvePublicIDRequest, opts ...grpc.CallOption) (*ResolvePublicIDResponse, error)
}

type mediaServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMediaServiceClient returns a client whose calls use the JSON codec
func NewMediaServiceClient(cc grpc.ClientConnInterface) MediaServiceClient {
	return &mediaServiceClient{cc}
}

func (c *mediaServiceClient) Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error) {
	out := new(UploadResponse)
	if err := c.cc.Invoke(ctx, uploadMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) UploadStream(ctx context.Context, opts ...grpc.CallOption) (MediaService_UploadStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &MediaService_ServiceDesc.Streams[0], uploadStreamMethod, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return &mediaServiceUploadStreamClient{stream}, nil
}

type MediaService_UploadStreamClient interface {
	Send(*UploadStreamRequest) error
	CloseAndRecv() (*UploadResponse, error)
	grpc.ClientStream
}

type mediaServiceUploadStreamClient struct {
	grpc.ClientStream
}

func (x *mediaServiceUploadStreamClient) Send(m *UploadStreamRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *mediaServiceUploadStreamClient) CloseAndRecv() (*UploadResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(UploadResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *mediaServiceClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.cc.Invoke(ctx, deleteMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) ResolvePublicID(ctx context.Context, in *ResolvePublicIDRequest, opts ...grpc.CallOption) (*ResolvePublicIDResponse, error) {
	out := new(ResolvePublicIDResponse)
	if err := c.cc.Invoke(ctx, resolvePublicIDMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
