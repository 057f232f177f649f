package cli

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/cryptox"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

// mimeFor guesses a bare MIME type from the file extension, or "" so the
// server falls back to a generic document.
func mimeFor(path string) string {
	t := mime.TypeByExtension(filepath.Ext(path))
	if t == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return mediaType
}

func (a *App) upload(ctx context.Context, args []string) error {
	fs := newFlagSet("upload")
	mode := fs.String("mode", common.AccessModeTimeBased, "access mode")
	duration := fs.Int("duration", 60, "lifetime in minutes (time_based)")
	devices := fs.Int("devices", 0, "device limit (0 = server default)")
	pin := fs.String("pin", "", "PIN to use instead of a generated one")
	biometric := fs.Bool("biometric", false, "require biometric verification")
	dynamicPin := fs.Bool("dynamic-pin", false, "enable PIN rotation")
	rotation := fs.Int("rotation", 0, "PIN rotation interval in minutes")
	watermark := fs.Bool("watermark", false, "ask viewers to watermark")
	noAutoTerminate := fs.Bool("no-auto-terminate", false, "keep content on suspicious activity")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: at most one file", ErrUsage)
	}

	req := &pb.UploadRequest{
		Pin:                *pin,
		AccessMode:         *mode,
		DeviceLimit:        int32(*devices),
		RequireBiometric:   *biometric,
		DynamicPin:         *dynamicPin,
		PinRotationMinutes: int32(*rotation),
		Watermarking:       *watermark,
	}
	if *mode == common.AccessModeTimeBased {
		req.DurationMinutes = int32(*duration)
	}
	if *noAutoTerminate {
		off := false
		req.AutoTerminate = &off
	}

	var enc *cryptox.EncryptedContent
	if len(positional) == 1 {
		path := positional[0]
		enc, err = cryptox.EncryptFile(path)
		if err != nil {
			return fmt.Errorf("encrypt %s: %w", path, err)
		}
		req.FileName = filepath.Base(path)
		req.MimeType = mimeFor(path)
	} else {
		text, err := GetMultiline(a.reader, "Enter text to share", a.out)
		if err != nil {
			return err
		}
		if text == "" {
			return fmt.Errorf("%w: nothing to share", ErrUsage)
		}
		plaintext := []byte(text)
		enc, err = cryptox.EncryptContent(plaintext)
		common.WipeByteArray(plaintext)
		if err != nil {
			return err
		}
		req.ContentType = "text"
		req.MimeType = "text/plain"
	}
	defer common.WipeByteArray(enc.Key)

	req.EncryptedContent = enc.Ciphertext
	req.Iv = enc.IVHex()
	req.KeyHash = cryptox.KeyHash(enc.Key)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.Upload(ctx, req)
	if err != nil {
		return err
	}
	a.remember(ctx, req, resp)

	fmt.Fprintf(a.out, "Content ID: %s\n", resp.ContentId)
	fmt.Fprintf(a.out, "PIN:        %s\n", resp.Pin)
	fmt.Fprintf(a.out, "Key:        %s\n", enc.KeyHex())
	fmt.Fprintf(a.out, "Share URL:  %s\n", resp.ShareUrl)
	fmt.Fprintf(a.out, "Mode:       %s, %d device(s)\n", resp.AccessMode, resp.DeviceLimit)
	if resp.ExpiresAt != nil {
		fmt.Fprintf(a.out, "Expires:    %s\n", resp.ExpiresAt.AsTime().Local().Format(time.RFC1123))
	}
	fmt.Fprintln(a.out, "Send the key and the PIN to the recipient over separate channels.")
	return nil
}
