package proto

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type echoServer struct {
	UnimplementedAtelierServiceServer
}

func (s *echoServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}

func (s *echoServer) UploadArtwork(_ context.Context, in *UploadArtworkRequest) (*UploadArtworkResponse, error) {
	return &UploadArtworkResponse{Artwork: &Artwork{Id: string(in.Image), Memo: in.GetMeta().Memo, Tags: in.GetMeta().Tags}}, nil
}

func dial(t *testing.T, srv AtelierServiceServer, opts ...grpc.ServerOption) AtelierServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterAtelierServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewAtelierServiceClient(conn)
}

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)

	b, err := c.Marshal(&LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c","password":"pw"}`, string(b))

	var out LoginRequest
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "a@b.c", out.Email)
}

func TestRoundTripOverGRPC(t *testing.T) {
	client := dial(t, &echoServer{})
	ctx := context.Background()

	pong, err := client.Ping(ctx, &PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetStatus())

	resp, err := client.UploadArtwork(ctx, &UploadArtworkRequest{
		Image: []byte("img"),
		Meta:  &ArtworkMeta{Memo: "m", Tags: []string{"a", "b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "img", resp.Artwork.Id)
	assert.Equal(t, "m", resp.Artwork.Memo)
	assert.Equal(t, []string{"a", "b"}, resp.Artwork.Tags)
}

func TestUnimplementedMethods(t *testing.T) {
	client := dial(t, &echoServer{})

	_, err := client.DeleteChild(context.Background(), &DeleteChildRequest{Id: "x"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestInterceptorSeesFullMethod(t *testing.T) {
	var seen string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	client := dial(t, &echoServer{}, grpc.UnaryInterceptor(interceptor))

	_, err := client.Ping(context.Background(), &PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, AtelierService_Ping_FullMethodName, seen)
}

func TestGettersAreNilSafe(t *testing.T) {
	var up *UploadArtworkRequest
	assert.NotNil(t, up.GetMeta())
	var ping *PingResponse
	assert.Empty(t, ping.GetStatus())
	var rot *RotateShareLinkResponse
	assert.Nil(t, rot.GetLink())
	var ref *RefreshTokenResponse
	assert.Empty(t, ref.GetAccessToken())
	assert.Empty(t, ref.GetRefreshToken())
}
