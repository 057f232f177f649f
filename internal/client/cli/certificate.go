package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/filex"
	"github.com/dmitrijs2005/secureshare/internal/netx"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

func (a *App) printCertificate(c *pb.CertificateResponse) {
	fmt.Fprintf(a.out, "Certificate: %s\n", c.CertificateId)
	fmt.Fprintf(a.out, "Content:     %s\n", c.ContentId)
	fmt.Fprintf(a.out, "Reason:      %s\n", c.Reason)
	fmt.Fprintf(a.out, "Destroyed:   %s\n", c.DestroyedAt.AsTime().Local().Format(time.RFC1123))
	fmt.Fprintf(a.out, "Proof hash:  %s\n", c.ProofHash)
	if c.Verified {
		fmt.Fprintln(a.out, "Signature:   valid")
	} else {
		fmt.Fprintln(a.out, "Signature:   INVALID")
	}
}

// apiURL joins the HTTP API base with path segments, escaping each one.
func (a *App) apiURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.TrimRight(a.config.HTTPBaseURL, "/") + "/api/v1/" + strings.Join(escaped, "/")
}

// save downloads url into the output directory under name.
func (a *App) save(ctx context.Context, rawURL, name string) (string, error) {
	body, _, err := netx.Download(ctx, rawURL)
	if err != nil {
		return "", err
	}
	dir, err := filex.EnsureDir(a.config.OutputDir)
	if err != nil {
		return "", err
	}
	return filex.WriteNew(dir, name, body)
}

func (a *App) certificate(ctx context.Context, args []string) error {
	fs := newFlagSet("certificate")
	pdf := fs.Bool("pdf", false, "also download the certificate as PDF")

	id, err := contentID(fs, args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cert, err := a.client.Certificate(ctx, id)
	if err != nil {
		return err
	}
	a.printCertificate(cert)

	if *pdf {
		path, err := a.save(ctx, a.apiURL("certificates", id, "pdf"), "certificate-"+filex.SafeName(id, "content")+".pdf")
		if err != nil {
			return fmt.Errorf("download pdf: %w", err)
		}
		fmt.Fprintf(a.out, "PDF saved to %s\n", path)
	}
	return nil
}

func (a *App) qr(ctx context.Context, args []string) error {
	id, err := contentID(newFlagSet("qr"), args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	path, err := a.save(ctx, a.apiURL("content", id, "qr"), "share-"+filex.SafeName(id, "content")+".png")
	if err != nil {
		return fmt.Errorf("download qr: %w", err)
	}
	fmt.Fprintf(a.out, "QR code saved to %s\n", path)
	return nil
}
