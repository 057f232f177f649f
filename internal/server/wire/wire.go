// Package wire converts between service results and the transport messages
// shared by the HTTP and gRPC front ends.
package wire

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/secureshare/internal/proto"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/render"
	"github.com/dmitrijs2005/secureshare/internal/server/services"
)

func UploadRequest(req *pb.UploadRequest) services.UploadRequest {
	return services.UploadRequest{
		Ciphertext:           req.EncryptedContent,
		IV:                   req.Iv,
		KeyHash:              req.KeyHash,
		Pin:                  req.Pin,
		AccessMode:           models.AccessMode(req.AccessMode),
		DurationMinutes:      int(req.DurationMinutes),
		DeviceLimit:          int(req.DeviceLimit),
		ContentType:          req.ContentType,
		FileName:             req.FileName,
		MimeType:             req.MimeType,
		AutoTerminate:        req.AutoTerminate,
		RequireBiometric:     req.RequireBiometric,
		DynamicPin:           req.DynamicPin,
		PinRotationMinutes:   int(req.PinRotationMinutes),
		ScreenshotProtection: req.ScreenshotProtection,
		Watermarking:         req.Watermarking,
	}
}

// Timestamp maps an optional instant; nil stays unset on the wire.
func Timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func Flags(c *models.Content) *pb.SecurityFlags {
	return &pb.SecurityFlags{
		AutoTerminate:        c.AutoTerminate,
		RequireBiometric:     c.RequireBiometric,
		DynamicPin:           c.DynamicPin,
		ScreenshotProtection: c.ScreenshotProtection,
		Watermarking:         c.Watermarking,
	}
}

func UploadResponse(res *services.UploadResult, baseURL string) *pb.UploadResponse {
	c := res.Content
	return &pb.UploadResponse{
		ContentId:   c.ID,
		Pin:         res.Pin,
		ShareUrl:    render.ShareURL(baseURL, c.ID),
		AccessMode:  string(c.AccessMode),
		ContentType: c.ContentType,
		FileSize:    c.FileSize,
		DeviceLimit: int32(c.MaxDevices),
		ExpiresAt:   Timestamp(c.ExpiresAt),
		Security:    Flags(c),
	}
}

// AccessRequest fills the device descriptor; ip and userAgent come from the
// transport, never from the message body.
func AccessRequest(req *pb.AccessRequest, ip, userAgent string) services.AccessRequest {
	var info map[string]any
	if req.DeviceInfo != nil {
		info = req.DeviceInfo.AsMap()
	}
	return services.AccessRequest{
		ContentID: req.ContentId,
		Pin:       req.Pin,
		Device: services.Device{
			ID:          req.DeviceId,
			Fingerprint: req.DeviceFingerprint,
			Info:        info,
			IPAddress:   ip,
			UserAgent:   userAgent,
		},
		BiometricVerified: req.BiometricVerified,
	}
}

func AccessResponse(res *services.AccessResult) *pb.AccessResponse {
	c := res.Content
	return &pb.AccessResponse{
		ContentId:        c.ID,
		EncryptedContent: res.Ciphertext,
		Iv:               c.IV,
		KeyHash:          c.KeyHash,
		ContentType:      c.ContentType,
		FileName:         c.FileName,
		MimeType:         c.MimeType,
		AccessMode:       string(c.AccessMode),
		SessionToken:     res.SessionToken,
		ViewsRemaining:   int32(res.ViewsRemaining),
		ExpiresAt:        Timestamp(c.ExpiresAt),
		Security:         Flags(c),
	}
}

func StreamResponse(res *services.StreamResult) *pb.StreamResponse {
	return &pb.StreamResponse{
		EncryptedContent: res.Ciphertext,
		Iv:               res.Content.IV,
		KeyHash:          res.Content.KeyHash,
	}
}

func StatusResponse(res *services.StatusResult) *pb.StatusResponse {
	c := res.Content
	return &pb.StatusResponse{
		ContentId:        c.ID,
		Status:           string(c.Status),
		AccessMode:       string(c.AccessMode),
		ContentType:      c.ContentType,
		ViewsCount:       int32(c.ViewsCount),
		CurrentDevices:   int32(c.CurrentDevices),
		MaxDevices:       int32(c.MaxDevices),
		ViewsRemaining:   int32(res.ViewsRemaining),
		CreatedAt:        timestamppb.New(c.CreatedAt),
		ExpiresAt:        Timestamp(c.ExpiresAt),
		LastAccessedAt:   Timestamp(c.LastAccessedAt),
		TimeRemaining:    res.TimeRemaining,
		SecondsRemaining: int32(res.SecondsRemaining),
	}
}

func RotatePinRequest(contentID string, req *pb.RotatePinRequest) services.RotatePinRequest {
	return services.RotatePinRequest{ContentID: contentID, CurrentPin: req.CurrentPin, NewPin: req.NewPin}
}

func RotatePinResponse(res *services.RotatePinResult) *pb.RotatePinResponse {
	return &pb.RotatePinResponse{Pin: res.Pin, NextRotationAt: Timestamp(res.NextRotationAt)}
}

func ActivityReport(contentID string, req *pb.ActivityRequest, ip string) services.ActivityReport {
	return services.ActivityReport{
		ContentID:    contentID,
		ActivityType: req.ActivityType,
		DeviceID:     req.DeviceId,
		IPAddress:    ip,
		Description:  req.Description,
	}
}

func ActivityResponse(res *services.ActivityResult) *pb.ActivityResponse {
	return &pb.ActivityResponse{Recorded: true, Count: int32(res.Count), Terminated: res.Terminated}
}

func Certificate(c *models.DestructionCertificate, verified bool) *pb.CertificateResponse {
	return &pb.CertificateResponse{
		CertificateId: c.ID,
		ContentId:     c.ContentID,
		Reason:        string(c.Reason),
		DestroyedAt:   timestamppb.New(c.DestroyedAt),
		ProofHash:     c.ProofHash,
		Signature:     c.Signature,
		Metadata: &pb.CertificateMetadata{
			ContentType: c.Metadata.ContentType,
			AccessMode:  string(c.Metadata.AccessMode),
			ViewsCount:  int32(c.Metadata.ViewsCount),
			Devices:     int32(c.Metadata.Devices),
			FileSize:    c.Metadata.FileSize,
			CreatedAt:   timestamppb.New(c.Metadata.CreatedAt),
		},
		Verified: verified,
	}
}

func Stats(st *models.Stats) *pb.StatsResponse {
	return &pb.StatsResponse{
		TotalContent:       int32(st.TotalContent),
		ActiveContent:      int32(st.ActiveContent),
		TimeBasedContent:   int32(st.TimeBasedContent),
		OneTimeContent:     int32(st.OneTimeContent),
		TotalViews:         int32(st.TotalViews),
		CertificatesIssued: int32(st.Certificates),
	}
}

func Cleanup(res *services.SweepResult) *pb.CleanupResponse {
	return &pb.CleanupResponse{Expired: int32(res.Expired), Destroyed: int32(res.Destroyed)}
}
