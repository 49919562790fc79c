package repository

import (
	"context"
	"regexp"
	"testing"

	"evtele/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReplayRepository_IncrementViews(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplayRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "replays" SET "views"=views + 1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.IncrementViews(ctx, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplayRepository_IncrementViews_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplayRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "replays" SET "views"=views + 1`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.IncrementViews(ctx, 99)
	assert.Error(t, err)
	appErr, ok := err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplayRepository_IncrementLikes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplayRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "replays" SET "likes"=likes + 1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.IncrementLikes(ctx, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplayRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplayRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "replays"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	replay, err := repo.GetByID(ctx, 42)
	assert.Nil(t, replay)
	assert.Error(t, err)
	appErr, ok := err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplayRepository_ListRelated(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplayRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "replays" WHERE category = $1 AND id <> $2`)).
		WithArgs("Music", 3, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category"}).
			AddRow(5, "Concert A", "Music").
			AddRow(6, "Concert B", "Music"))

	replays, err := repo.ListRelated(ctx, "Music", 3, 4)
	assert.NoError(t, err)
	assert.Len(t, replays, 2)
	assert.Equal(t, "Concert A", replays[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
