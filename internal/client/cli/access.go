package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"runtime"

	"github.com/dmitrijs2005/secureshare/internal/filex"
	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/cryptox"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

// hostname is a test seam for os.Hostname.
var hostname = os.Hostname

// deviceFingerprint identifies this machine to the device quota. Only the
// hash leaves the client.
func deviceFingerprint() (string, error) {
	host, err := hostname()
	if err != nil {
		return "", err
	}
	return cryptox.DeviceFingerprint(map[string]any{
		"hostname": host,
		"os":       runtime.GOOS,
		"arch":     runtime.GOARCH,
		"client":   "secureshare-cli",
	})
}

func (a *App) access(ctx context.Context, args []string) error {
	fs := newFlagSet("access")
	key := fs.String("key", "", "hex content key received from the sender")
	pin := fs.String("pin", "", "PIN (prompted when omitted)")
	biometric := fs.Bool("biometric", false, "confirm biometric verification")
	printText := fs.Bool("print", false, "print text content instead of saving it")

	id, err := contentID(fs, args)
	if err != nil {
		return err
	}
	if *key == "" {
		return fmt.Errorf("%w: -key is required", ErrUsage)
	}
	if _, err := hex.DecodeString(*key); err != nil {
		return fmt.Errorf("%w: -key must be hex", ErrUsage)
	}

	p, err := a.pinOrPrompt(*pin, "PIN")
	if err != nil {
		return err
	}
	fp, err := deviceFingerprint()
	if err != nil {
		return fmt.Errorf("device fingerprint: %w", err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.Access(ctx, &pb.AccessRequest{
		ContentId:         id,
		Pin:               p,
		DeviceFingerprint: fp,
		BiometricVerified: *biometric,
	})
	if err != nil {
		return err
	}

	plaintext, err := cryptox.DecryptContent(resp.EncryptedContent, *key, resp.Iv, resp.KeyHash)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	defer common.WipeByteArray(plaintext)

	if *printText && resp.ContentType == "text" {
		fmt.Fprintln(a.out, string(plaintext))
	} else {
		dir, err := filex.EnsureDir(a.config.OutputDir)
		if err != nil {
			return err
		}
		path, err := filex.WriteNew(dir, filex.SafeName(resp.FileName, resp.ContentId), plaintext)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Saved to %s\n", path)
	}

	if resp.AccessMode == common.AccessModeOneTime {
		fmt.Fprintln(a.out, "This was a one-time view; the content is now being destroyed.")
	} else {
		fmt.Fprintf(a.out, "Views remaining: %d\n", resp.ViewsRemaining)
	}
	if resp.GetSecurity().GetWatermarking() {
		fmt.Fprintln(a.out, "The sender asked for this content to be watermarked when displayed.")
	}
	return nil
}
