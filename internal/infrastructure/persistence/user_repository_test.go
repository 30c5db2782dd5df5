package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockUserRepository(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormUserRepository(gormDB), mock, mockDB
}

func userRows(userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "full_name", "phone", "role", "is_active",
	}).AddRow(userID, "owner@poultry.test", "Amina Yusuf", "0712345678", "farm_owner", true)
}

func TestGormUserRepository_FindAll(t *testing.T) {
	t.Run("lists users with pagination and default ordering", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		filter := shared.DefaultFilter()

		mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY created_at DESC LIMIT .*`).
			WillReturnRows(userRows(userID))

		users, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, userID, users[0].ID)
		assert.Equal(t, "owner@poultry.test", users[0].Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies role and search filters", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		filter := shared.DefaultFilter()
		filter.Search = "amina"
		filter.Filters["role"] = "farm_owner"

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE \(email ILIKE \$1 OR full_name ILIKE \$2\) AND role = \$3 ORDER BY created_at DESC LIMIT .*`).
			WithArgs("%amina%", "%amina%", "farm_owner", 20).
			WillReturnRows(userRows(uuid.New()))

		users, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to created_at for unknown sort fields", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		filter := shared.DefaultFilter()
		filter.OrderBy = "password_hash"

		mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY created_at DESC LIMIT .*`).
			WillReturnRows(userRows(uuid.New()))

		_, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_Count(t *testing.T) {
	t.Run("counts all users", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		count, err := repo.Count(context.Background(), shared.DefaultFilter())

		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counts only the filtered role", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		filter := shared.DefaultFilter()
		filter.Filters["role"] = "worker"

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE role = \$1`).
			WithArgs("worker").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.Count(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
