package grpc

import (
	"context"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	pb "github.com/dmitrijs2005/secureshare/internal/proto"
	"github.com/dmitrijs2005/secureshare/internal/server/wire"
)

func callerIP(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

func userAgent(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("user-agent"); len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func (s *GRPCServer) Upload(ctx context.Context, req *pb.UploadRequest) (*pb.UploadResponse, error) {

	res, err := s.shares.Upload(ctx, wire.UploadRequest(req))
	if err != nil {
		return nil, err
	}
	return wire.UploadResponse(res, s.baseURL), nil

}

func (s *GRPCServer) Access(ctx context.Context, req *pb.AccessRequest) (*pb.AccessResponse, error) {

	res, err := s.shares.Access(ctx, wire.AccessRequest(req, callerIP(ctx), userAgent(ctx)))
	if err != nil {
		return nil, err
	}
	return wire.AccessResponse(res), nil

}

func (s *GRPCServer) Stream(ctx context.Context, req *pb.ContentRequest) (*pb.StreamResponse, error) {

	token, _ := ctx.Value(sessionTokenKey).(string)

	res, err := s.shares.Stream(ctx, req.ContentId, token)
	if err != nil {
		return nil, err
	}
	return wire.StreamResponse(res), nil

}

func (s *GRPCServer) Status(ctx context.Context, req *pb.ContentRequest) (*pb.StatusResponse, error) {

	res, err := s.shares.Status(ctx, req.ContentId)
	if err != nil {
		return nil, err
	}
	return wire.StatusResponse(res), nil

}

func (s *GRPCServer) Terminate(ctx context.Context, req *pb.TerminateRequest) (*pb.CertificateResponse, error) {

	cert, err := s.shares.Terminate(ctx, req.ContentId, req.Pin)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Terminated", "content_id", req.ContentId)
	return wire.Certificate(cert, true), nil

}

func (s *GRPCServer) RotatePin(ctx context.Context, req *pb.RotatePinRequest) (*pb.RotatePinResponse, error) {

	res, err := s.shares.RotatePin(ctx, wire.RotatePinRequest(req.ContentId, req))
	if err != nil {
		return nil, err
	}
	return wire.RotatePinResponse(res), nil

}

func (s *GRPCServer) ReportActivity(ctx context.Context, req *pb.ActivityRequest) (*pb.ActivityResponse, error) {

	res, err := s.shares.ReportActivity(ctx, wire.ActivityReport(req.ContentId, req, callerIP(ctx)))
	if err != nil {
		return nil, err
	}
	return wire.ActivityResponse(res), nil

}

func (s *GRPCServer) Certificate(ctx context.Context, req *pb.ContentRequest) (*pb.CertificateResponse, error) {

	cert, verified, err := s.shares.Certificate(ctx, req.ContentId)
	if err != nil {
		return nil, err
	}
	return wire.Certificate(cert, verified), nil

}

func (s *GRPCServer) Stats(ctx context.Context, _ *pb.Empty) (*pb.StatsResponse, error) {

	st, err := s.shares.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return wire.Stats(st), nil

}

func (s *GRPCServer) Cleanup(ctx context.Context, _ *pb.Empty) (*pb.CleanupResponse, error) {

	res, err := s.shares.Sweep(ctx)
	if err != nil {
		return nil, err
	}
	return wire.Cleanup(res), nil

}
