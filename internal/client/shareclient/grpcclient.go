package shareclient

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/secureshare/internal/common"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.ShareServiceClient
	health       healthpb.HealthClient
	sessionToken string
}

var _ Client = (*GRPCClient)(nil)

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// sessionTokenInterceptor attaches the current session token to Stream
// calls. Other methods authenticate with the PIN in the request body.
func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method == pb.ShareService_Stream_FullMethodName && s.sessionToken != "" {
		ctx = withSessionToken(ctx, s.sessionToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewShareClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewShareServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// SessionToken returns the token obtained by the last successful Access.
func (s *GRPCClient) SessionToken() string {
	return s.sessionToken
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Upload(ctx context.Context, req *pb.UploadRequest) (*pb.UploadResponse, error) {
	resp, err := s.client.Upload(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Access(ctx context.Context, req *pb.AccessRequest) (*pb.AccessResponse, error) {
	resp, err := s.client.Access(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	s.sessionToken = resp.SessionToken
	return resp, nil
}

func (s *GRPCClient) Stream(ctx context.Context, contentID string) (*pb.StreamResponse, error) {
	if s.sessionToken == "" {
		return nil, ErrNoSession
	}
	resp, err := s.client.Stream(ctx, &pb.ContentRequest{ContentId: contentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Status(ctx context.Context, contentID string) (*pb.StatusResponse, error) {
	resp, err := s.client.Status(ctx, &pb.ContentRequest{ContentId: contentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Terminate(ctx context.Context, contentID, pin string) (*pb.CertificateResponse, error) {
	resp, err := s.client.Terminate(ctx, &pb.TerminateRequest{ContentId: contentID, Pin: pin})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) RotatePin(ctx context.Context, req *pb.RotatePinRequest) (*pb.RotatePinResponse, error) {
	resp, err := s.client.RotatePin(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ReportActivity(ctx context.Context, req *pb.ActivityRequest) (*pb.ActivityResponse, error) {
	resp, err := s.client.ReportActivity(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Certificate(ctx context.Context, contentID string) (*pb.CertificateResponse, error) {
	resp, err := s.client.Certificate(ctx, &pb.ContentRequest{ContentId: contentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Stats(ctx context.Context) (*pb.StatsResponse, error) {
	resp, err := s.client.Stats(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// mapError turns a gRPC status into the matching sentinel, keeping the
// server's message for display.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var target error
	switch st.Code() {
	case codes.Unauthenticated:
		target = ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		target = common.ErrorNotFound
	case codes.InvalidArgument:
		target = common.ErrValidation
	case codes.PermissionDenied:
		target = common.ErrForbidden
	case codes.FailedPrecondition:
		target = common.ErrGone
	case codes.AlreadyExists:
		target = common.ErrConflict
	case codes.ResourceExhausted:
		target = ErrExhausted
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", target, st.Message())
}
