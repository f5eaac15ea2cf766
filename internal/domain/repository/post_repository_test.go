package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"inkpress/internal/common"
	"inkpress/internal/domain/model"
)

var postColumns = []string{
	"id", "title", "slug", "body", "post_date", "feature_image", "published",
	"category_id", "category_name", "created_at",
}

func TestPostCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPostRepository(db)

	post := &model.Post{
		ID:       "post-1",
		Title:    "Trip",
		Slug:     "trip",
		Body:     "...",
		PostDate: time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO posts").
		WithArgs(post.ID, post.Title, post.Slug, post.Body, post.PostDate, nil, false, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), post))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostListNoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPostRepository(db)

	rows := sqlmock.NewRows(postColumns).
		AddRow("post-1", "Trip", "trip", "...", time.Now(), nil, true, nil, nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM posts p\\s+LEFT JOIN categories c").
		WillReturnRows(rows)

	posts, err := repo.List(context.Background(), PostFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Nil(t, posts[0].FeatureImage)
}

func TestPostListPublishedAndCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPostRepository(db)

	mock.ExpectQuery(`WHERE p\.published = TRUE AND p\.category_id = \$1`).
		WithArgs("cat-1").
		WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.List(context.Background(), PostFilter{PublishedOnly: true, CategoryID: "cat-1"})
	require.NoError(t, err)
	require.NotNil(t, posts, "no matches is an empty slice, not an error")
	require.Empty(t, posts)
}

func TestPostListMinDateIsInclusive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPostRepository(db)

	minDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE p\.post_date >= \$1`).
		WithArgs(minDate).
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := repo.List(context.Background(), PostFilter{MinDate: &minDate})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostListQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPostRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background(), PostFilter{})
	require.ErrorIs(t, err, common.ErrPersistence)
}

func TestPostFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPostRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPostDeleteByIDZeroRowsIsSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgPostRepository(db)

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), "missing"))
}
