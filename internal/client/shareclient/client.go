// Package shareclient talks to the SecureShare gRPC endpoint.
//
// GRPCClient owns one connection, remembers the session token handed out by
// Access and attaches it to Stream calls, and maps gRPC status codes back to
// sentinel errors so callers can match them with errors.Is.
package shareclient

import (
	"context"

	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Upload(ctx context.Context, req *pb.UploadRequest) (*pb.UploadResponse, error)
	Access(ctx context.Context, req *pb.AccessRequest) (*pb.AccessResponse, error)
	Stream(ctx context.Context, contentID string) (*pb.StreamResponse, error)
	Status(ctx context.Context, contentID string) (*pb.StatusResponse, error)
	Terminate(ctx context.Context, contentID, pin string) (*pb.CertificateResponse, error)
	RotatePin(ctx context.Context, req *pb.RotatePinRequest) (*pb.RotatePinResponse, error)
	ReportActivity(ctx context.Context, req *pb.ActivityRequest) (*pb.ActivityResponse, error)
	Certificate(ctx context.Context, contentID string) (*pb.CertificateResponse, error)
	Stats(ctx context.Context) (*pb.StatsResponse, error)
}
