package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/secureshare/internal/common"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

func TestShareLifecycleOverGRPC(t *testing.T) {
	client := pb.NewShareServiceClient(dialBufconn(t))
	ctx := context.Background()

	up, err := client.Upload(ctx, &pb.UploadRequest{
		EncryptedContent: []byte("sealed"),
		Iv:               "iv-hex",
		KeyHash:          "kh",
		AccessMode:       common.AccessModeTimeBased,
		DurationMinutes:  60,
		DeviceLimit:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://share.example/s/"+up.ContentId, up.ShareUrl)
	require.NotNil(t, up.ExpiresAt)

	info, err := structpb.NewStruct(map[string]any{"platform": "linux"})
	require.NoError(t, err)
	acc, err := client.Access(ctx, &pb.AccessRequest{Pin: up.Pin, DeviceId: "laptop", DeviceInfo: info})
	require.NoError(t, err)
	assert.Equal(t, up.ContentId, acc.ContentId)
	assert.Equal(t, []byte("sealed"), acc.EncryptedContent)
	assert.Equal(t, int32(1), acc.ViewsRemaining)
	assert.True(t, acc.ExpiresAt.AsTime().Equal(up.ExpiresAt.AsTime()))

	_, err = client.Stream(ctx, &pb.ContentRequest{ContentId: up.ContentId})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	tokCtx := metadata.AppendToOutgoingContext(ctx, common.SessionTokenHeaderName, acc.SessionToken)
	stream, err := client.Stream(tokCtx, &pb.ContentRequest{ContentId: up.ContentId})
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed"), stream.EncryptedContent)

	st, err := client.Status(ctx, &pb.ContentRequest{ContentId: up.ContentId})
	require.NoError(t, err)
	assert.Equal(t, "active", st.Status)
	assert.Equal(t, int32(1), st.CurrentDevices)
	assert.NotNil(t, st.LastAccessedAt)

	rot, err := client.RotatePin(ctx, &pb.RotatePinRequest{ContentId: up.ContentId, CurrentPin: up.Pin})
	require.NoError(t, err)
	assert.NotEqual(t, up.Pin, rot.Pin)

	_, err = client.Terminate(ctx, &pb.TerminateRequest{ContentId: up.ContentId, Pin: up.Pin})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	cert, err := client.Terminate(ctx, &pb.TerminateRequest{ContentId: up.ContentId, Pin: rot.Pin})
	require.NoError(t, err)
	assert.Equal(t, "terminated", cert.Reason)

	_, err = client.Status(ctx, &pb.ContentRequest{ContentId: up.ContentId})
	assert.Equal(t, codes.NotFound, status.Code(err))

	got, err := client.Certificate(ctx, &pb.ContentRequest{ContentId: up.ContentId})
	require.NoError(t, err)
	assert.True(t, got.Verified)
	assert.Equal(t, cert.ProofHash, got.ProofHash)
	assert.Equal(t, int32(1), got.GetMetadata().GetDevices())

	stats, err := client.Stats(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), stats.CertificatesIssued)

	_, err = client.Cleanup(ctx, &pb.Empty{})
	require.NoError(t, err)
}

func TestActivityAndOneTimeOverGRPC(t *testing.T) {
	client := pb.NewShareServiceClient(dialBufconn(t))
	ctx := context.Background()

	up, err := client.Upload(ctx, &pb.UploadRequest{
		EncryptedContent: []byte("x"), Iv: "iv", KeyHash: "kh", AccessMode: common.AccessModeOneTime,
	})
	require.NoError(t, err)

	act, err := client.ReportActivity(ctx, &pb.ActivityRequest{ContentId: up.ContentId, ActivityType: "copy_attempt"})
	require.NoError(t, err)
	assert.True(t, act.Recorded)
	assert.Equal(t, int32(1), act.Count)

	acc, err := client.Access(ctx, &pb.AccessRequest{ContentId: up.ContentId, Pin: up.Pin, DeviceId: "a"})
	require.NoError(t, err)
	assert.Equal(t, int32(0), acc.ViewsRemaining)

	_, err = client.Access(ctx, &pb.AccessRequest{ContentId: up.ContentId, Pin: up.Pin, DeviceId: "a"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Upload(ctx, &pb.UploadRequest{Iv: "iv", KeyHash: "kh"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpload_OptionalFlagsReachService(t *testing.T) {
	client := pb.NewShareServiceClient(dialBufconn(t))
	ctx := context.Background()

	off := false
	up, err := client.Upload(ctx, &pb.UploadRequest{
		EncryptedContent:     []byte("x"),
		Iv:                   "iv",
		KeyHash:              "kh",
		AccessMode:           common.AccessModeTimeBased,
		AutoTerminate:        &off,
		ScreenshotProtection: &off,
	})
	require.NoError(t, err)
	assert.False(t, up.GetSecurity().GetAutoTerminate())
	assert.False(t, up.GetSecurity().GetScreenshotProtection())

	up, err = client.Upload(ctx, &pb.UploadRequest{
		EncryptedContent: []byte("x"), Iv: "iv", KeyHash: "kh", AccessMode: common.AccessModeTimeBased,
	})
	require.NoError(t, err)
	assert.True(t, up.GetSecurity().GetAutoTerminate())
	assert.True(t, up.GetSecurity().GetScreenshotProtection())
}
