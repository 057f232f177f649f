package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/secureshare/internal/common"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

type ctxKey string

const sessionTokenKey ctxKey = "sessionToken"

// sessionTokenInterceptor requires a session token in the metadata of
// Stream calls and hands it to the handler through the context.
func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == pb.ShareService_Stream_FullMethodName {

		var token string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(common.SessionTokenHeaderName); len(values) > 0 {
				token = values[0]
			} else if values := md.Get("authorization"); len(values) > 0 {
				token = strings.TrimPrefix(values[0], "Bearer ")
			}
		}
		if len(token) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing session token")
		}

		ctx = context.WithValue(ctx, sessionTokenKey, token)
	}

	return handler(ctx, req)
}

// errorInterceptor turns service errors into gRPC statuses.
func (s *GRPCServer) errorInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}
	if _, ok := status.FromError(err); ok {
		return nil, err
	}

	code := codeFor(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "call failed", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return nil, status.Error(code, err.Error())
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "call", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}

// codeFor maps the error taxonomy onto gRPC codes. Gone is checked before
// Conflict because a viewed item matches both.
func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrPayloadTooLarge):
		return codes.ResourceExhausted
	case errors.Is(err, common.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrInvalidPin), errors.Is(err, common.ErrInvalidToken):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrForbidden):
		return codes.PermissionDenied
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrGone):
		return codes.FailedPrecondition
	case errors.Is(err, common.ErrConflict):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrLocked):
		return codes.ResourceExhausted
	default:
		return codes.Internal
	}
}
