package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "atelier.AtelierService"

// Full method names, as seen by interceptors.
const (
	AtelierService_Ping_FullMethodName              = "/" + ServiceName + "/Ping"
	AtelierService_Register_FullMethodName          = "/" + ServiceName + "/Register"
	AtelierService_Login_FullMethodName             = "/" + ServiceName + "/Login"
	AtelierService_RefreshToken_FullMethodName      = "/" + ServiceName + "/RefreshToken"
	AtelierService_UploadArtwork_FullMethodName     = "/" + ServiceName + "/UploadArtwork"
	AtelierService_RetryArtworkRow_FullMethodName   = "/" + ServiceName + "/RetryArtworkRow"
	AtelierService_DeleteArtwork_FullMethodName     = "/" + ServiceName + "/DeleteArtwork"
	AtelierService_ListGallery_FullMethodName       = "/" + ServiceName + "/ListGallery"
	AtelierService_ListSharedGallery_FullMethodName = "/" + ServiceName + "/ListSharedGallery"
	AtelierService_GetShareLink_FullMethodName      = "/" + ServiceName + "/GetShareLink"
	AtelierService_RotateShareLink_FullMethodName   = "/" + ServiceName + "/RotateShareLink"
	AtelierService_RevokeShareLink_FullMethodName   = "/" + ServiceName + "/RevokeShareLink"
	AtelierService_ListShareHistory_FullMethodName  = "/" + ServiceName + "/ListShareHistory"
	AtelierService_CreateChild_FullMethodName       = "/" + ServiceName + "/CreateChild"
	AtelierService_ListChildren_FullMethodName      = "/" + ServiceName + "/ListChildren"
	AtelierService_DeleteChild_FullMethodName       = "/" + ServiceName + "/DeleteChild"
)

// AtelierServiceServer is the server API for AtelierService.
type AtelierServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	UploadArtwork(context.Context, *UploadArtworkRequest) (*UploadArtworkResponse, error)
	RetryArtworkRow(context.Context, *RetryArtworkRowRequest) (*RetryArtworkRowResponse, error)
	DeleteArtwork(context.Context, *DeleteArtworkRequest) (*DeleteArtworkResponse, error)
	ListGallery(context.Context, *ListGalleryRequest) (*ListGalleryResponse, error)
	ListSharedGallery(context.Context, *ListSharedGalleryRequest) (*ListSharedGalleryResponse, error)
	GetShareLink(context.Context, *GetShareLinkRequest) (*GetShareLinkResponse, error)
	RotateShareLink(context.Context, *RotateShareLinkRequest) (*RotateShareLinkResponse, error)
	RevokeShareLink(context.Context, *RevokeShareLinkRequest) (*RevokeShareLinkResponse, error)
	ListShareHistory(context.Context, *ListShareHistoryRequest) (*ListShareHistoryResponse, error)
	CreateChild(context.Context, *CreateChildRequest) (*CreateChildResponse, error)
	ListChildren(context.Context, *ListChildrenRequest) (*ListChildrenResponse, error)
	DeleteChild(context.Context, *DeleteChildRequest) (*DeleteChildResponse, error)
}

// UnimplementedAtelierServiceServer answers every method with
// codes.Unimplemented. Embed it to stay forward compatible.
type UnimplementedAtelierServiceServer struct{}

func (UnimplementedAtelierServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedAtelierServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAtelierServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAtelierServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedAtelierServiceServer) UploadArtwork(context.Context, *UploadArtworkRequest) (*UploadArtworkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadArtwork not implemented")
}
func (UnimplementedAtelierServiceServer) RetryArtworkRow(context.Context, *RetryArtworkRowRequest) (*RetryArtworkRowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RetryArtworkRow not implemented")
}
func (UnimplementedAtelierServiceServer) DeleteArtwork(context.Context, *DeleteArtworkRequest) (*DeleteArtworkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteArtwork not implemented")
}
func (UnimplementedAtelierServiceServer) ListGallery(context.Context, *ListGalleryRequest) (*ListGalleryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListGallery not implemented")
}
func (UnimplementedAtelierServiceServer) ListSharedGallery(context.Context, *ListSharedGalleryRequest) (*ListSharedGalleryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSharedGallery not implemented")
}
func (UnimplementedAtelierServiceServer) GetShareLink(context.Context, *GetShareLinkRequest) (*GetShareLinkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShareLink not implemented")
}
func (UnimplementedAtelierServiceServer) RotateShareLink(context.Context, *RotateShareLinkRequest) (*RotateShareLinkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RotateShareLink not implemented")
}
func (UnimplementedAtelierServiceServer) RevokeShareLink(context.Context, *RevokeShareLinkRequest) (*RevokeShareLinkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RevokeShareLink not implemented")
}
func (UnimplementedAtelierServiceServer) ListShareHistory(context.Context, *ListShareHistoryRequest) (*ListShareHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListShareHistory not implemented")
}
func (UnimplementedAtelierServiceServer) CreateChild(context.Context, *CreateChildRequest) (*CreateChildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateChild not implemented")
}
func (UnimplementedAtelierServiceServer) ListChildren(context.Context, *ListChildrenRequest) (*ListChildrenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListChildren not implemented")
}
func (UnimplementedAtelierServiceServer) DeleteChild(context.Context, *DeleteChildRequest) (*DeleteChildResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteChild not implemented")
}

// unaryMethod adapts one AtelierServiceServer method, given as a method
// expression, to a grpc.MethodDesc.
func unaryMethod[Req, Resp any](name string, call func(AtelierServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AtelierServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AtelierServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// AtelierService_ServiceDesc is the grpc.ServiceDesc for AtelierService.
var AtelierService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AtelierServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("Ping", AtelierServiceServer.Ping),
		unaryMethod("Register", AtelierServiceServer.Register),
		unaryMethod("Login", AtelierServiceServer.Login),
		unaryMethod("RefreshToken", AtelierServiceServer.RefreshToken),
		unaryMethod("UploadArtwork", AtelierServiceServer.UploadArtwork),
		unaryMethod("RetryArtworkRow", AtelierServiceServer.RetryArtworkRow),
		unaryMethod("DeleteArtwork", AtelierServiceServer.DeleteArtwork),
		unaryMethod("ListGallery", AtelierServiceServer.ListGallery),
		unaryMethod("ListSharedGallery", AtelierServiceServer.ListSharedGallery),
		unaryMethod("GetShareLink", AtelierServiceServer.GetShareLink),
		unaryMethod("RotateShareLink", AtelierServiceServer.RotateShareLink),
		unaryMethod("RevokeShareLink", AtelierServiceServer.RevokeShareLink),
		unaryMethod("ListShareHistory", AtelierServiceServer.ListShareHistory),
		unaryMethod("CreateChild", AtelierServiceServer.CreateChild),
		unaryMethod("ListChildren", AtelierServiceServer.ListChildren),
		unaryMethod("DeleteChild", AtelierServiceServer.DeleteChild),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "atelier.proto",
}

func RegisterAtelierServiceServer(s grpc.ServiceRegistrar, srv AtelierServiceServer) {
	s.RegisterService(&AtelierService_ServiceDesc, srv)
}

// AtelierServiceClient is the client API for AtelierService.
type AtelierServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	UploadArtwork(ctx context.Context, in *UploadArtworkRequest, opts ...grpc.CallOption) (*UploadArtworkResponse, error)
	RetryArtworkRow(ctx context.Context, in *RetryArtworkRowRequest, opts ...grpc.CallOption) (*RetryArtworkRowResponse, error)
	DeleteArtwork(ctx context.Context, in *DeleteArtworkRequest, opts ...grpc.CallOption) (*DeleteArtworkResponse, error)
	ListGallery(ctx context.Context, in *ListGalleryRequest, opts ...grpc.CallOption) (*ListGalleryResponse, error)
	ListSharedGallery(ctx context.Context, in *ListSharedGalleryRequest, opts ...grpc.CallOption) (*ListSharedGalleryResponse, error)
	GetShareLink(ctx context.Context, in *GetShareLinkRequest, opts ...grpc.CallOption) (*GetShareLinkResponse, error)
	RotateShareLink(ctx context.Context, in *RotateShareLinkRequest, opts ...grpc.CallOption) (*RotateShareLinkResponse, error)
	RevokeShareLink(ctx context.Context, in *RevokeShareLinkRequest, opts ...grpc.CallOption) (*RevokeShareLinkResponse, error)
	ListShareHistory(ctx context.Context, in *ListShareHistoryRequest, opts ...grpc.CallOption) (*ListShareHistoryResponse, error)
	CreateChild(ctx context.Context, in *CreateChildRequest, opts ...grpc.CallOption) (*CreateChildResponse, error)
	ListChildren(ctx context.Context, in *ListChildrenRequest, opts ...grpc.CallOption) (*ListChildrenResponse, error)
	DeleteChild(ctx context.Context, in *DeleteChildRequest, opts ...grpc.CallOption) (*DeleteChildResponse, error)
}

type atelierServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAtelierServiceClient(cc grpc.ClientConnInterface) AtelierServiceClient {
	return &atelierServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *atelierServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, AtelierService_Ping_FullMethodName, in, opts)
}
func (c *atelierServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, AtelierService_Register_FullMethodName, in, opts)
}
func (c *atelierServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AtelierService_Login_FullMethodName, in, opts)
}
func (c *atelierServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, AtelierService_RefreshToken_FullMethodName, in, opts)
}
func (c *atelierServiceClient) UploadArtwork(ctx context.Context, in *UploadArtworkRequest, opts ...grpc.CallOption) (*UploadArtworkResponse, error) {
	return invoke[UploadArtworkResponse](ctx, c.cc, AtelierService_UploadArtwork_FullMethodName, in, opts)
}
func (c *atelierServiceClient) RetryArtworkRow(ctx context.Context, in *RetryArtworkRowRequest, opts ...grpc.CallOption) (*RetryArtworkRowResponse, error) {
	return invoke[RetryArtworkRowResponse](ctx, c.cc, AtelierService_RetryArtworkRow_FullMethodName, in, opts)
}
func (c *atelierServiceClient) DeleteArtwork(ctx context.Context, in *DeleteArtworkRequest, opts ...grpc.CallOption) (*DeleteArtworkResponse, error) {
	return invoke[DeleteArtworkResponse](ctx, c.cc, AtelierService_DeleteArtwork_FullMethodName, in, opts)
}
func (c *atelierServiceClient) ListGallery(ctx context.Context, in *ListGalleryRequest, opts ...grpc.CallOption) (*ListGalleryResponse, error) {
	return invoke[ListGalleryResponse](ctx, c.cc, AtelierService_ListGallery_FullMethodName, in, opts)
}
func (c *atelierServiceClient) ListSharedGallery(ctx context.Context, in *ListSharedGalleryRequest, opts ...grpc.CallOption) (*ListSharedGalleryResponse, error) {
	return invoke[ListSharedGalleryResponse](ctx, c.cc, AtelierService_ListSharedGallery_FullMethodName, in, opts)
}
func (c *atelierServiceClient) GetShareLink(ctx context.Context, in *GetShareLinkRequest, opts ...grpc.CallOption) (*GetShareLinkResponse, error) {
	return invoke[GetShareLinkResponse](ctx, c.cc, AtelierService_GetShareLink_FullMethodName, in, opts)
}
func (c *atelierServiceClient) RotateShareLink(ctx context.Context, in *RotateShareLinkRequest, opts ...grpc.CallOption) (*RotateShareLinkResponse, error) {
	return invoke[RotateShareLinkResponse](ctx, c.cc, AtelierService_RotateShareLink_FullMethodName, in, opts)
}
func (c *atelierServiceClient) RevokeShareLink(ctx context.Context, in *RevokeShareLinkRequest, opts ...grpc.CallOption) (*RevokeShareLinkResponse, error) {
	return invoke[RevokeShareLinkResponse](ctx, c.cc, AtelierService_RevokeShareLink_FullMethodName, in, opts)
}
func (c *atelierServiceClient) ListShareHistory(ctx context.Context, in *ListShareHistoryRequest, opts ...grpc.CallOption) (*ListShareHistoryResponse, error) {
	return invoke[ListShareHistoryResponse](ctx, c.cc, AtelierService_ListShareHistory_FullMethodName, in, opts)
}
func (c *atelierServiceClient) CreateChild(ctx context.Context, in *CreateChildRequest, opts ...grpc.CallOption) (*CreateChildResponse, error) {
	return invoke[CreateChildResponse](ctx, c.cc, AtelierService_CreateChild_FullMethodName, in, opts)
}
func (c *atelierServiceClient) ListChildren(ctx context.Context, in *ListChildrenRequest, opts ...grpc.CallOption) (*ListChildrenResponse, error) {
	return invoke[ListChildrenResponse](ctx, c.cc, AtelierService_ListChildren_FullMethodName, in, opts)
}
func (c *atelierServiceClient) DeleteChild(ctx context.Context, in *DeleteChildRequest, opts ...grpc.CallOption) (*DeleteChildResponse, error) {
	return invoke[DeleteChildResponse](ctx, c.cc, AtelierService_DeleteChild_FullMethodName, in, opts)
}
