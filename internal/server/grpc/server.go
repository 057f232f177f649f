package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/secureshare/internal/logging"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
	"github.com/dmitrijs2005/secureshare/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedShareServiceServer
	address string
	shares  *services.ShareService
	baseURL string
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, s *services.ShareService, baseURL string) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		shares:  s,
		baseURL: baseURL,
	}
}

// newServer builds the grpc.Server with the share and health services
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.errorInterceptor,
		s.sessionTokenInterceptor,
	))

	pb.RegisterShareServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.ShareService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
