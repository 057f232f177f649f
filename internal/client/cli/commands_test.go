package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/cryptox"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

var keyLine = regexp.MustCompile(`Key:\s+([0-9a-f]+)`)

func uploadedKey(t *testing.T, output string) string {
	t.Helper()
	m := keyLine.FindStringSubmatch(output)
	require.Len(t, m, 2, "no key in output: %s", output)
	return m[1]
}

func TestExecute_HelpAndUnknown(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{}, "")

	require.NoError(t, app.Execute(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "access <content-id>")
	assert.Contains(t, out.String(), "upload [file]")

	err := app.Execute(context.Background(), []string{"frobnicate"})
	require.ErrorIs(t, err, ErrUsage)
}

func TestUploadThenAccess_FileRoundTrip(t *testing.T) {
	stubHostname(t, "laptop")
	f := &fakeClient{}
	app, out := newTestApp(t, f, "")

	src := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(src, []byte("secret document"), 0o600))

	require.NoError(t, app.Execute(context.Background(), []string{"upload", src, "-mode", common.AccessModeOneTime, "-devices", "2"}))

	req := f.uploaded
	require.NotNil(t, req)
	assert.Equal(t, common.AccessModeOneTime, req.AccessMode)
	assert.Zero(t, req.DurationMinutes, "duration only applies to time-based items")
	assert.Equal(t, int32(2), req.DeviceLimit)
	assert.Equal(t, "report.pdf", req.FileName)
	assert.Equal(t, "application/pdf", req.MimeType)
	assert.NotContains(t, string(req.EncryptedContent), "secret document")
	assert.Contains(t, out.String(), "PIN:        4821")

	key := uploadedKey(t, out.String())
	assert.Equal(t, req.KeyHash, keyHashHex(t, key))

	out.Reset()
	require.NoError(t, app.Execute(context.Background(), []string{"access", "c1", "-key", key, "-pin", "4821"}))

	assert.Equal(t, "c1", f.accessReq.ContentId)
	assert.Equal(t, "4821", f.accessReq.Pin)
	assert.NotEmpty(t, f.accessReq.DeviceFingerprint)

	saved, err := os.ReadFile(filepath.Join(app.config.OutputDir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "secret document", string(saved))
	assert.Contains(t, out.String(), "one-time view")
}

func keyHashHex(t *testing.T, keyHex string) string {
	t.Helper()
	key, err := hex.DecodeString(keyHex)
	require.NoError(t, err)
	return cryptox.KeyHash(key)
}

func TestUpload_TextFromPromptAndPrint(t *testing.T) {
	stubHostname(t, "laptop")
	f := &fakeClient{}
	app, out := newTestApp(t, f, "line one\nline two\n\n")

	require.NoError(t, app.Execute(context.Background(), []string{"upload", "-duration", "15", "-no-auto-terminate"}))
	require.NotNil(t, f.uploaded)
	assert.Equal(t, "text", f.uploaded.ContentType)
	assert.Equal(t, common.AccessModeTimeBased, f.uploaded.AccessMode)
	assert.Equal(t, int32(15), f.uploaded.DurationMinutes)
	require.NotNil(t, f.uploaded.AutoTerminate)
	assert.False(t, *f.uploaded.AutoTerminate)

	key := uploadedKey(t, out.String())
	out.Reset()
	require.NoError(t, app.Execute(context.Background(), []string{"access", "-print", "-pin", "4821", "c1", "-key", key}))
	assert.Contains(t, out.String(), "line one\nline two")
	assert.Contains(t, out.String(), "Views remaining: 0")
}

func TestAccess_WrongKeyFailsBeforeWriting(t *testing.T) {
	stubHostname(t, "laptop")
	f := &fakeClient{}
	app, _ := newTestApp(t, f, "hello\n\n")
	require.NoError(t, app.Execute(context.Background(), []string{"upload"}))

	wrong := "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
	err := app.Execute(context.Background(), []string{"access", "c1", "-key", wrong, "-pin", "4821"})
	require.ErrorIs(t, err, cryptox.ErrKeyMismatch)

	entries, err := os.ReadDir(app.config.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAccess_UsageErrors(t *testing.T) {
	app, _ := newTestApp(t, &fakeClient{}, "")

	require.ErrorIs(t, app.Execute(context.Background(), []string{"access", "c1"}), ErrUsage)
	require.ErrorIs(t, app.Execute(context.Background(), []string{"access", "c1", "-key", "zz"}), ErrUsage)
	require.ErrorIs(t, app.Execute(context.Background(), []string{"access", "-key", "00"}), ErrUsage)
	require.ErrorIs(t, app.Execute(context.Background(), []string{"status"}), ErrUsage)
	require.ErrorIs(t, app.Execute(context.Background(), []string{"status", "a", "b"}), ErrUsage)
	require.ErrorIs(t, app.Execute(context.Background(), []string{"report", "c1"}), ErrUsage)
	require.ErrorIs(t, app.Execute(context.Background(), []string{"upload", "-devices", "x"}), ErrUsage)
}

func TestTerminate_PromptsForPin(t *testing.T) {
	stubPin(t, "4821", nil)
	f := &fakeClient{}
	app, out := newTestApp(t, f, "")

	require.NoError(t, app.Execute(context.Background(), []string{"terminate", "c1"}))
	assert.Equal(t, [2]string{"c1", "4821"}, f.terminate)
	assert.Contains(t, out.String(), "Content destroyed.")
	assert.Contains(t, out.String(), "Certificate: cert-1")
	assert.Contains(t, out.String(), "Signature:   valid")
}

func TestRotateReportStatusStats(t *testing.T) {
	f := &fakeClient{activity: &pb.ActivityResponse{Recorded: true, Count: 3, Terminated: true}}
	app, out := newTestApp(t, f, "")
	ctx := context.Background()

	require.NoError(t, app.Execute(ctx, []string{"rotate", "c1", "-pin", "4821", "-new", "5555"}))
	assert.True(t, proto.Equal(&pb.RotatePinRequest{ContentId: "c1", CurrentPin: "4821", NewPin: "5555"}, f.rotateReq))
	assert.Contains(t, out.String(), "New PIN: 9999")

	require.NoError(t, app.Execute(ctx, []string{"report", "c1", "-type", "screenshot_attempt", "-device", "d1"}))
	assert.Equal(t, "screenshot_attempt", f.reportReq.ActivityType)
	assert.Equal(t, "d1", f.reportReq.DeviceId)
	assert.Contains(t, out.String(), "terminated due to suspicious activity")

	require.NoError(t, app.Execute(ctx, []string{"status", "c1"}))
	assert.Contains(t, out.String(), "Devices:   1/2")

	require.NoError(t, app.Execute(ctx, []string{"stats"}))
	assert.Contains(t, out.String(), "Certificates: 2")
}

func TestExecute_PropagatesClientErrors(t *testing.T) {
	f := &fakeClient{err: common.ErrGone}
	app, _ := newTestApp(t, f, "")

	err := app.Execute(context.Background(), []string{"status", "c1"})
	require.ErrorIs(t, err, common.ErrGone)
}

func TestCertificateAndQR_Downloads(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/certificates/c1/pdf":
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF"))
		case "/api/v1/content/c1/qr":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("PNG"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	app, out := newTestApp(t, &fakeClient{}, "")
	app.config.HTTPBaseURL = ts.URL + "/"

	require.NoError(t, app.Execute(context.Background(), []string{"certificate", "c1", "-pdf"}))
	assert.Contains(t, out.String(), "Reason:      terminated")
	pdf, err := os.ReadFile(filepath.Join(app.config.OutputDir, "certificate-c1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf))

	require.NoError(t, app.Execute(context.Background(), []string{"qr", "c1"}))
	png, err := os.ReadFile(filepath.Join(app.config.OutputDir, "share-c1.png"))
	require.NoError(t, err)
	assert.Equal(t, "PNG", string(png))

	err = app.Execute(context.Background(), []string{"qr", "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download qr")
}

func TestPing_SetsMode(t *testing.T) {
	f := &fakeClient{}
	app, _ := newTestApp(t, f, "")

	require.NoError(t, app.Execute(context.Background(), []string{"ping"}))
	assert.Equal(t, ModeOnline, app.Mode())

	f.pingErr = errors.New("down")
	require.Error(t, app.Execute(context.Background(), []string{"ping"}))
	assert.Equal(t, ModeOffline, app.Mode())
	assert.Equal(t, "(offline)", app.getStatus())
}

func TestMimeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", mimeFor("a.pdf"))
	assert.Equal(t, "image/png", mimeFor("photo.PNG"))
	assert.Equal(t, "", mimeFor("blob.unknownext"))
}
