package pins

import (
	"context"
	"database/sql"
	"errors"
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

var columns = []string{"id", "content_id", "pin_hash", "lookup_key", "is_active", "failed_attempts",
	"locked_until", "created_at", "next_rotation_at", "rotation_interval_seconds"}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	p := &models.PinCredential{
		ID: "p-1", ContentID: "c-1", PinHash: "h", LookupKey: "lk", IsActive: true,
		CreatedAt: time.Now(), RotationInterval: time.Hour,
	}

	mock.ExpectExec(`INSERT INTO pin_credentials`).
		WithArgs("p-1", "c-1", "h", "lk", true, 0, nil, sqlmock.AnyArg(), nil, int64(3600)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO pin_credentials`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	require.NoError(t, repo.Create(context.Background(), p))
	assert.ErrorIs(t, repo.Create(context.Background(), p), common.ErrPinInUse)
}

func TestGetActiveByLookup(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	locked := created.Add(15 * time.Minute)

	mock.ExpectQuery(`FROM pin_credentials WHERE lookup_key = \$1 AND is_active$`).
		WithArgs("lk").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p-1", "c-1", "h", "lk", true, 3, locked, created, nil, int64(600)))

	got, err := repo.GetActiveByLookup(context.Background(), "lk")
	require.NoError(t, err)

	want := &models.PinCredential{
		ID: "p-1", ContentID: "c-1", PinHash: "h", LookupKey: "lk", IsActive: true,
		FailedAttempts: 3, LockedUntil: &locked, CreatedAt: created, RotationInterval: 10 * time.Minute,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("credential mismatch (-want +got):\n%s", diff)
	}
}

func TestGetByContentID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM pin_credentials WHERE content_id = \$1`).WithArgs("c-x").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByContentID(context.Background(), "c-x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	p := &models.PinCredential{ID: "p-1", PinHash: "h2", LookupKey: "lk2", IsActive: true, FailedAttempts: 1}

	q := `(?s)UPDATE pin_credentials SET pin_hash = \$2, lookup_key = \$3.*WHERE id = \$1`
	mock.ExpectExec(q).WithArgs("p-1", "h2", "lk2", true, 1, nil, nil).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectExec(q).WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Update(context.Background(), p))
	assert.ErrorIs(t, repo.Update(context.Background(), p), common.ErrorNotFound)
	assert.ErrorIs(t, repo.Update(context.Background(), p), common.ErrPinInUse)
	err := repo.Update(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestDeleteByContentID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM pin_credentials WHERE content_id = \$1`).
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteByContentID(context.Background(), "c-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
