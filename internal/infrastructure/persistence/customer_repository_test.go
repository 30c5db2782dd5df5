package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farmcore/backend/internal/domain/partner"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCustomerRepository creates a GormCustomerRepository with a mocked SQL connection
func newMockCustomerRepository(t *testing.T) (*GormCustomerRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormCustomerRepository(gormDB), mock, mockDB
}

func customerRows(customerID, farmID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "farm_id", "customer_code", "name", "phone", "customer_type", "preferred_products", "is_active",
	}).AddRow(customerID, farmID, "CUST0001", "Green Market", "0712345678", "retail", []byte(`["eggs"]`), true)
}

func TestNewGormCustomerRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		farmID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(customerRows(customerID, farmID))

		customer, err := repo.FindByID(context.Background(), customerID)

		assert.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, customerID, customer.ID)
		assert.Equal(t, "CUST0001", customer.CustomerCode)
		assert.Equal(t, []string{"eggs"}, customer.PreferredProducts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		customer, err := repo.FindByID(context.Background(), customerID)

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_FindByIDForFarm(t *testing.T) {
	t.Run("finds customer within farm", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		farmID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE farm_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(farmID, customerID, 1).
			WillReturnRows(customerRows(customerID, farmID))

		customer, err := repo.FindByIDForFarm(context.Background(), farmID, customerID)

		assert.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, farmID, customer.FarmID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for customer in another farm", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		farmID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE farm_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(farmID, customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		customer, err := repo.FindByIDForFarm(context.Background(), farmID, customerID)

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_Save(t *testing.T) {
	t.Run("saves customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()
		customer, err := partner.NewCustomer(farmID, "CUST0001", "Green Market", partner.CustomerTypeRetail)
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "customers" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), customer)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_CountForFarm(t *testing.T) {
	t.Run("counts customers for farm", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE farm_id = \$1`).
			WithArgs(farmID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		count, err := repo.CountForFarm(context.Background(), farmID, shared.Filter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_ExistsActiveCode(t *testing.T) {
	t.Run("returns true when active customer uses code", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE farm_id = \$1 AND customer_code = \$2 AND is_active = \$3`).
			WithArgs(farmID, "CUST0001", true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsActiveCode(context.Background(), farmID, "cust0001", uuid.Nil)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("excludes the given customer on update", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()
		excludeID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE \(farm_id = \$1 AND customer_code = \$2 AND is_active = \$3\) AND id <> \$4`).
			WithArgs(farmID, "CUST0001", true, excludeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsActiveCode(context.Background(), farmID, "CUST0001", excludeID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_Stats(t *testing.T) {
	t.Run("computes order aggregates", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		lastOrderDate := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE customer_id = \$1 AND status <> \$2`).
			WithArgs(customerID, "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(net_amount\), 0\) FROM "orders" WHERE customer_id = \$1 AND status <> \$2`).
			WithArgs(customerID, "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1250.50"))

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE customer_id = \$1 AND status <> \$2 ORDER BY order_date DESC.* LIMIT .*`).
			WithArgs(customerID, "cancelled", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "order_date"}).
				AddRow(uuid.New(), customerID, lastOrderDate))

		stats, err := repo.Stats(context.Background(), customerID)

		assert.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(4), stats.OrderCount)
		assert.Equal(t, "1250.5", stats.LifetimeValue.String())
		require.NotNil(t, stats.LastOrderDate)
		assert.True(t, lastOrderDate.Equal(*stats.LastOrderDate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("leaves last order date nil without orders", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE customer_id = \$1 AND status <> \$2`).
			WithArgs(customerID, "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(net_amount\), 0\) FROM "orders" WHERE customer_id = \$1 AND status <> \$2`).
			WithArgs(customerID, "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE customer_id = \$1 AND status <> \$2 ORDER BY order_date DESC.* LIMIT .*`).
			WithArgs(customerID, "cancelled", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		stats, err := repo.Stats(context.Background(), customerID)

		assert.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(0), stats.OrderCount)
		assert.True(t, stats.LifetimeValue.IsZero())
		assert.Nil(t, stats.LastOrderDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements CustomerRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		var _ partner.CustomerRepository = repo
	})
}
