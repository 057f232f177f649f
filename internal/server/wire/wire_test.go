package wire

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/secureshare/internal/proto"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/services"
)

func TestAccessRequest_TakesAddressFromTransport(t *testing.T) {
	info, err := structpb.NewStruct(map[string]any{"os": "ios"})
	if err != nil {
		t.Fatal(err)
	}
	got := AccessRequest(&pb.AccessRequest{
		ContentId:         "c1",
		Pin:               "1234",
		DeviceId:          "phone",
		DeviceInfo:        info,
		BiometricVerified: true,
	}, "10.0.0.1", "curl/8")

	want := services.AccessRequest{
		ContentID: "c1",
		Pin:       "1234",
		Device: services.Device{
			ID:        "phone",
			Info:      map[string]any{"os": "ios"},
			IPAddress: "10.0.0.1",
			UserAgent: "curl/8",
		},
		BiometricVerified: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("AccessRequest mismatch (-want +got):\n%s", diff)
	}
}

func TestUploadResponse(t *testing.T) {
	exp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	res := &services.UploadResult{
		Pin: "4321",
		Content: &models.Content{
			ID:            "c1",
			AccessMode:    models.AccessModeTimeBased,
			ContentType:   "pdf",
			FileSize:      42,
			MaxDevices:    2,
			ExpiresAt:     &exp,
			AutoTerminate: true,
		},
	}

	got := UploadResponse(res, "https://s.example")
	want := &pb.UploadResponse{
		ContentId:   "c1",
		Pin:         "4321",
		ShareUrl:    "https://s.example/s/c1",
		AccessMode:  "time_based",
		ContentType: "pdf",
		FileSize:    42,
		DeviceLimit: 2,
		ExpiresAt:   timestamppb.New(exp),
		Security:    &pb.SecurityFlags{AutoTerminate: true},
	}
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Fatalf("UploadResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestCertificate(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	got := Certificate(&models.DestructionCertificate{
		ID:          "cert",
		ContentID:   "c1",
		Reason:      models.ReasonSuspicious,
		DestroyedAt: at,
		ProofHash:   "p",
		Signature:   "s",
		Metadata:    models.CertificateMetadata{AccessMode: models.AccessModeOneTime, ViewsCount: 1},
	}, true)

	if got.Reason != "suspicious_activity" || got.GetMetadata().GetAccessMode() != "one_time" || !got.Verified {
		t.Fatalf("unexpected certificate message: %+v", got)
	}
	if !got.DestroyedAt.AsTime().Equal(at) {
		t.Fatalf("destroyed_at = %v, want %v", got.DestroyedAt.AsTime(), at)
	}
}

func TestAccessRequest_NoDeviceInfo(t *testing.T) {
	got := AccessRequest(&pb.AccessRequest{Pin: "1234"}, "", "")
	if got.Device.Info != nil {
		t.Fatalf("device info = %v, want nil", got.Device.Info)
	}
}

func TestStatusResponse_UnsetTimesStayNil(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := StatusResponse(&services.StatusResult{
		Content:          &models.Content{ID: "c1", Status: models.StatusActive, CreatedAt: created, ViewsCount: 3},
		SecondsRemaining: 90,
	})
	if got.ExpiresAt != nil || got.LastAccessedAt != nil {
		t.Fatalf("optional times should be unset: %+v", got)
	}
	if got.ViewsCount != 3 || got.SecondsRemaining != 90 || !got.CreatedAt.AsTime().Equal(created) {
		t.Fatalf("unexpected status message: %+v", got)
	}
}
