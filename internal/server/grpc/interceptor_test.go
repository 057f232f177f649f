package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/logging"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

func newTestServer() *GRPCServer {
	return &GRPCServer{logger: logging.Nop{}}
}

func TestInterceptor_NonStream_AllowsWithoutToken(t *testing.T) {
	s := newTestServer()

	info := &grpc.UnaryServerInfo{FullMethod: pb.ShareService_Status_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.sessionTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Stream_MissingToken(t *testing.T) {
	s := newTestServer()

	info := &grpc.UnaryServerInfo{FullMethod: pb.ShareService_Stream_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.sessionTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestInterceptor_Stream_TokenFromMetadata(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.ShareService_Stream_FullMethodName}

	for name, md := range map[string]metadata.MD{
		"session_token": metadata.Pairs(common.SessionTokenHeaderName, "tok"),
		"authorization": metadata.Pairs("authorization", "Bearer tok"),
	} {
		t.Run(name, func(t *testing.T) {
			ctx := metadata.NewIncomingContext(context.Background(), md)
			var got string
			h := func(ctx context.Context, req interface{}) (interface{}, error) {
				got, _ = ctx.Value(sessionTokenKey).(string)
				return nil, nil
			}
			if _, err := s.sessionTokenInterceptor(ctx, nil, info, h); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != "tok" {
				t.Fatalf("token = %q, want tok", got)
			}
		})
	}
}

func TestErrorInterceptor(t *testing.T) {
	s := newTestServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.ShareService_Access_FullMethodName}

	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.Validationf("bad"), codes.InvalidArgument},
		{common.ErrUnsupportedType, codes.InvalidArgument},
		{common.ErrPayloadTooLarge, codes.ResourceExhausted},
		{common.ErrInvalidPin, codes.Unauthenticated},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{common.ErrDeviceLimitReached, codes.PermissionDenied},
		{common.ErrBiometricRequired, codes.PermissionDenied},
		{common.ErrorNotFound, codes.NotFound},
		{&common.GoneError{Status: "viewed"}, codes.FailedPrecondition},
		{common.ErrPinInUse, codes.AlreadyExists},
		{&common.LockedError{}, codes.ResourceExhausted},
		{status.Error(codes.Canceled, "x"), codes.Canceled},
		{errors.New("db error: boom"), codes.Internal},
	}
	for _, tt := range tests {
		h := func(ctx context.Context, req interface{}) (interface{}, error) { return nil, tt.err }
		_, err := s.errorInterceptor(context.Background(), nil, info, h)
		if got := status.Code(err); got != tt.want {
			t.Errorf("%v: code = %v, want %v", tt.err, got, tt.want)
		}
	}

	h := func(ctx context.Context, req interface{}) (interface{}, error) { return nil, errors.New("db error: secret dsn") }
	_, err := s.errorInterceptor(context.Background(), nil, info, h)
	if st, _ := status.FromError(err); st.Message() != "internal error" {
		t.Fatalf("internal error leaked: %q", st.Message())
	}
}
