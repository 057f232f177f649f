package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/secureshare/internal/client/config"
	"github.com/dmitrijs2005/secureshare/internal/common"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

// fakeClient records requests and serves uploaded ciphertext back on access.
type fakeClient struct {
	uploaded  *pb.UploadRequest
	accessReq *pb.AccessRequest
	rotateReq *pb.RotatePinRequest
	reportReq *pb.ActivityRequest
	terminate [2]string
	pingErr   error
	err       error
	closed    bool

	activity *pb.ActivityResponse
	cert     *pb.CertificateResponse
}

func (f *fakeClient) Close() error                   { f.closed = true; return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) Upload(ctx context.Context, req *pb.UploadRequest) (*pb.UploadResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploaded = req
	return &pb.UploadResponse{ContentId: "c1", Pin: "4821", ShareUrl: "http://share/c1", AccessMode: req.AccessMode, DeviceLimit: 1}, nil
}

func (f *fakeClient) Access(ctx context.Context, req *pb.AccessRequest) (*pb.AccessResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.accessReq = req
	u := f.uploaded
	return &pb.AccessResponse{
		ContentId:        req.ContentId,
		EncryptedContent: u.EncryptedContent,
		Iv:               u.Iv,
		KeyHash:          u.KeyHash,
		ContentType:      u.ContentType,
		FileName:         u.FileName,
		AccessMode:       u.AccessMode,
		ViewsRemaining:   0,
	}, nil
}

func (f *fakeClient) Stream(ctx context.Context, contentID string) (*pb.StreamResponse, error) {
	return &pb.StreamResponse{}, f.err
}

func (f *fakeClient) Status(ctx context.Context, contentID string) (*pb.StatusResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.StatusResponse{ContentId: contentID, Status: "active", AccessMode: common.AccessModeTimeBased,
		ContentType: "text", MaxDevices: 2, CurrentDevices: 1, ViewsCount: 1, ViewsRemaining: 1, TimeRemaining: "59m"}, nil
}

func (f *fakeClient) Terminate(ctx context.Context, contentID, pin string) (*pb.CertificateResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.terminate = [2]string{contentID, pin}
	return f.certificate(contentID), nil
}

func (f *fakeClient) RotatePin(ctx context.Context, req *pb.RotatePinRequest) (*pb.RotatePinResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rotateReq = req
	return &pb.RotatePinResponse{Pin: "9999"}, nil
}

func (f *fakeClient) ReportActivity(ctx context.Context, req *pb.ActivityRequest) (*pb.ActivityResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.reportReq = req
	if f.activity != nil {
		return f.activity, nil
	}
	return &pb.ActivityResponse{Recorded: true, Count: 1}, nil
}

func (f *fakeClient) Certificate(ctx context.Context, contentID string) (*pb.CertificateResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.certificate(contentID), nil
}

func (f *fakeClient) Stats(ctx context.Context) (*pb.StatsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.StatsResponse{TotalContent: 3, ActiveContent: 1, CertificatesIssued: 2}, nil
}

func (f *fakeClient) certificate(contentID string) *pb.CertificateResponse {
	if f.cert != nil {
		return f.cert
	}
	return &pb.CertificateResponse{CertificateId: "cert-1", ContentId: contentID, Reason: "terminated",
		DestroyedAt: timestamppb.New(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)), ProofHash: "abc", Verified: true}
}

func newTestApp(t *testing.T, f *fakeClient, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.OutputDir = t.TempDir()
	return &App{config: cfg, client: f, reader: bufio.NewReader(strings.NewReader(stdin)), out: out}, out
}

func stubHostname(t *testing.T, name string) {
	t.Helper()
	old := hostname
	t.Cleanup(func() { hostname = old })
	hostname = func() (string, error) { return name, nil }
}
