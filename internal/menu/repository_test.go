package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"item_id", "name", "price", "description", "category", "created_at",
	})
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`FROM menu_items`).
			WillReturnRows(menuRows().
				AddRow("m1", "Burger", "8.50", nil, "Mains", "1700000000").
				AddRow("m2", "Fries", "3.25", "crispy", "Sides", "1700000001"))

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Burger", items[0].Name)
		assert.Equal(t, "8.50", items[0].Price)
		assert.Nil(t, items[0].Description)
		require.NotNil(t, items[1].Description)
		assert.Equal(t, "crispy", *items[1].Description)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`FROM menu_items`).WillReturnError(errors.New("db error"))

		_, err = repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`WHERE item_id = \$1`).
			WithArgs("m1").
			WillReturnRows(menuRows().AddRow("m1", "Burger", "8.50", nil, "Mains", "1700000000"))

		item, err := repo.GetByID(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, "Burger", item.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`WHERE item_id = \$1`).
			WithArgs("missing").
			WillReturnRows(menuRows())

		_, err = repo.GetByID(ctx, "missing")
		assert.True(t, errors.Is(err, ErrItemNotFound))
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	item := &MenuItem{
		ItemID:    "m1",
		Name:      "Burger",
		Price:     "8.50",
		Category:  "Mains",
		CreatedAt: "1700000000",
	}

	mock.ExpectExec(`INSERT INTO menu_items`).
		WithArgs("m1", "Burger", "8.50", nil, "Mains", "1700000000").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(ctx, item))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	item := &MenuItem{
		ItemID:    "m1",
		Name:      "Burger",
		Price:     "9.00",
		Category:  "Mains",
		CreatedAt: "1700000000",
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE menu_items`).
			WithArgs("m1", "Burger", "9.00", nil, "Mains").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, item))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE menu_items`).WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Update(ctx, item)
		assert.True(t, errors.Is(err, ErrItemNotFound))
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM menu_items`).
			WithArgs("m1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, "m1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM menu_items`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Delete(ctx, "missing")
		assert.True(t, errors.Is(err, ErrItemNotFound))
	})
}
