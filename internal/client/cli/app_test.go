package cli

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode())
	assert.NotEmpty(t, buf.String(), "expected log output on mode change")

	buf.Reset()
	app.setMode(ModeOnline)
	assert.Empty(t, buf.String(), "no log output when mode doesn't change")

	app.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode())
	assert.NotEmpty(t, buf.String())
}

func TestGetStatus(t *testing.T) {
	app := &App{}
	assert.Equal(t, "", app.getStatus())
	app.setMode(ModeOnline)
	assert.Equal(t, "(online)", app.getStatus())
}

func TestStartOnlineStatusWatcher(t *testing.T) {
	f := &fakeClient{pingErr: errors.New("down")}
	app, _ := newTestApp(t, f, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.Mode() == ModeOffline }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestRun_ExecutesCommandAndClosesClient(t *testing.T) {
	f := &fakeClient{}
	app, out := newTestApp(t, f, "")

	require.NoError(t, app.Run(context.Background(), []string{"stats"}))
	assert.Contains(t, out.String(), "Content:      3 total, 1 active")
	assert.True(t, f.closed)
}

func TestRun_InteractiveReadsFromReader(t *testing.T) {
	captureOutput(t)
	f := &fakeClient{}
	app, out := newTestApp(t, f, "stats\nquit\n")
	app.config.OnlineCheckInterval = time.Hour

	require.NoError(t, app.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "Certificates: 2")
	assert.True(t, f.closed)
}
