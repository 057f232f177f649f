package sessions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func sampleSession() *models.AccessSession {
	at := time.Date(2025, 2, 2, 8, 0, 0, 0, time.UTC)
	return &models.AccessSession{
		ID: "s-1", ContentID: "c-1", DeviceID: "d-1", DeviceFingerprint: "fp",
		SessionToken: "tok", StartedAt: at, LastActivity: at, ViewCount: 1, IsActive: true,
		IPAddress: "10.0.0.1", UserAgent: "curl",
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	s := sampleSession()

	mock.ExpectExec(`INSERT INTO access_sessions`).
		WithArgs("s-1", "c-1", "d-1", "fp", "tok", s.StartedAt, s.LastActivity, 1, true, "10.0.0.1", "curl").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO access_sessions`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	require.NoError(t, repo.Create(context.Background(), s))
	assert.ErrorIs(t, repo.Create(context.Background(), s), common.ErrConflict)
}

func TestGetByDevice(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	want := sampleSession()

	mock.ExpectQuery(`FROM access_sessions WHERE content_id = \$1 AND device_fingerprint = \$2`).
		WithArgs("c-1", "fp").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content_id", "device_id", "device_fingerprint",
			"session_token", "started_at", "last_activity", "view_count", "is_active", "ip_address", "user_agent"}).
			AddRow(want.ID, want.ContentID, want.DeviceID, want.DeviceFingerprint, want.SessionToken,
				want.StartedAt, want.LastActivity, want.ViewCount, want.IsActive, want.IPAddress, want.UserAgent))

	got, err := repo.GetByDevice(context.Background(), "c-1", "fp")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM access_sessions WHERE id = \$1`).WithArgs("s-x").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "s-x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	s := sampleSession()
	s.ViewCount = 2

	q := `(?s)UPDATE access_sessions SET session_token = \$2.*WHERE id = \$1`
	mock.ExpectExec(q).
		WithArgs("s-1", "tok", s.LastActivity, 2, true, "10.0.0.1", "curl").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Update(context.Background(), s))
	assert.ErrorIs(t, repo.Update(context.Background(), s), common.ErrorNotFound)
}

func TestDeleteByContentID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM access_sessions WHERE content_id = \$1`).
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteByContentID(context.Background(), "c-1"))
}
