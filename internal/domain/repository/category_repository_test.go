package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"inkpress/internal/domain/model"
)

func TestCategoryCreateWithAbsentName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgCategoryRepository(db)

	mock.ExpectExec("INSERT INTO categories").
		WithArgs("cat-1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), &model.Category{ID: "cat-1"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgCategoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow("cat-1", "Travel", time.Now())
	mock.ExpectQuery("SELECT id, name, created_at FROM categories").
		WillReturnRows(rows)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "Travel", *categories[0].Name)
}

func TestCategoryListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgCategoryRepository(db)

	mock.ExpectQuery("SELECT id, name, created_at FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, categories)
	require.Empty(t, categories)
}

func TestCategoryDeleteByIDZeroRowsIsSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgCategoryRepository(db)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), "missing"))
}
