package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/notification/repository"
	"lead-notification-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "user_id", "type", "title", "message", "lead_id", "read", "created_at"}

func newRepo(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(log.NewNop(), db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	leadID := "lead-1"

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs("u-1", "lead_assigned", "New Lead Assigned", "msg", "lead-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("6a1b6f3e-1f0e-4c57-a9a4-3c4b9d7c2f10", "u-1", "lead_assigned", "New Lead Assigned", "msg", "lead-1", false, now))

	got, err := repo.Create(context.Background(), repository.CreateOptions{
		UserID:  "u-1",
		Type:    model.NotificationTypeLeadAssigned,
		Title:   "New Lead Assigned",
		Message: "msg",
		LeadID:  &leadID,
	})
	require.NoError(t, err)
	assert.Equal(t, "6a1b6f3e-1f0e-4c57-a9a4-3c4b9d7c2f10", got.ID)
	require.NotNil(t, got.LeadID)
	assert.Equal(t, "lead-1", *got.LeadID)
	assert.False(t, got.Read)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithoutLead(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs("u-1", "new_lead", "t", "m", nil).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("6a1b6f3e-1f0e-4c57-a9a4-3c4b9d7c2f11", "u-1", "new_lead", "t", "m", nil, false, time.Now()))

	got, err := repo.Create(context.Background(), repository.CreateOptions{
		UserID: "u-1", Type: model.NotificationTypeNewLead, Title: "t", Message: "m",
	})
	require.NoError(t, err)
	assert.Nil(t, got.LeadID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCapsLimit(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("u-1", defaultListLimit).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("6a1b6f3e-1f0e-4c57-a9a4-3c4b9d7c2f12", "u-1", "new_lead", "t2", "m2", nil, false, time.Now()).
			AddRow("6a1b6f3e-1f0e-4c57-a9a4-3c4b9d7c2f13", "u-1", "new_lead", "t1", "m1", nil, true, time.Now().Add(-time.Hour)))

	got, err := repo.List(context.Background(), repository.ListOptions{UserID: "u-1", Limit: 500})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t2", got[0].Title)
	assert.True(t, got[1].Read)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(countUnreadQuery)).WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountUnread(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	const id = "6a1b6f3e-1f0e-4c57-a9a4-3c4b9d7c2f14"

	t.Run("owned notification", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(markReadQuery)).WithArgs(id, "u-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id, "u-1", "new_lead", "t", "m", nil, true, time.Now()))

		got, err := repo.MarkRead(context.Background(), repository.MarkReadOptions{ID: id, UserID: "u-1"})
		require.NoError(t, err)
		assert.True(t, got.Read)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("someone else's notification", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(markReadQuery)).WithArgs(id, "u-2").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.MarkRead(context.Background(), repository.MarkReadOptions{ID: id, UserID: "u-2"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed id never reaches the database", func(t *testing.T) {
		repo, mock := newRepo(t)

		_, err := repo.MarkRead(context.Background(), repository.MarkReadOptions{ID: "nope", UserID: "u-1"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkAllRead(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(markAllReadQuery)).WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.MarkAllRead(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
