package tables

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateDefaults(t *testing.T) {
	ctx := context.Background()

	insert := regexp.QuoteMeta(`
				INSERT INTO tables (id, status, order_id, updated_at)
				VALUES ($1, 'free', NULL, NOW())
				ON CONFLICT (id) DO NOTHING
			`)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		for _, id := range DefaultTableIDs {
			mock.ExpectExec(insert).
				WithArgs(id).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		err = repo.CreateDefaults(ctx, DefaultTableIDs)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListFree(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		now := time.Now()

		mock.ExpectQuery(`SELECT id, status, order_id, updated_at\s+FROM tables\s+WHERE status = 'free'\s+ORDER BY id`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "order_id", "updated_at"}).
				AddRow("table1", StatusFree, nil, now).
				AddRow("table4", StatusFree, nil, now))

		free, err := repo.ListFree(ctx)

		assert.NoError(t, err)
		require.Len(t, free, 2)
		assert.Equal(t, "table1", free[0].ID)
		assert.Nil(t, free[0].OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success - setting free clears order_id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE tables
				SET status = $1, order_id = NULL, updated_at = NOW()
				WHERE id = $2
				RETURNING id, status, order_id, updated_at
			`)).
			WithArgs(StatusFree, "table1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "order_id", "updated_at"}).
				AddRow("table1", StatusFree, nil, now))

		table, err := repo.SetStatus(ctx, "table1", StatusFree)

		assert.NoError(t, err)
		assert.Equal(t, StatusFree, table.Status)
		assert.Nil(t, table.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - other statuses keep order_id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		orderID := "order-1"

		mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE tables
				SET status = $1, updated_at = NOW()
				WHERE id = $2
				RETURNING id, status, order_id, updated_at
			`)).
			WithArgs(StatusReserved, "table2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "order_id", "updated_at"}).
				AddRow("table2", StatusReserved, orderID, now))

		table, err := repo.SetStatus(ctx, "table2", StatusReserved)

		assert.NoError(t, err)
		assert.Equal(t, StatusReserved, table.Status)
		require.NotNil(t, table.OrderID)
		assert.Equal(t, orderID, *table.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error - not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`
				UPDATE tables
				SET status = $1, updated_at = NOW()
				WHERE id = $2
				RETURNING id, status, order_id, updated_at
			`)).
			WithArgs(StatusOccupied, "table9").
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "order_id", "updated_at"}))

		table, err := repo.SetStatus(ctx, "table9", StatusOccupied)

		assert.Nil(t, table)
		assert.Equal(t, ErrTableNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Release(t *testing.T) {
	ctx := context.Background()

	release := regexp.QuoteMeta(`
			UPDATE tables
			SET status = 'free', order_id = NULL, updated_at = NOW()
			WHERE id = $1
		`)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec(release).
			WithArgs("table1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Release(ctx, "table1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error - not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec(release).
			WithArgs("table9").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Release(ctx, "table9")

		assert.Equal(t, ErrTableNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
