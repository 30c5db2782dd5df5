package farm

import (
	"context"
	"testing"
	"time"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/flock"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type farmServiceMocks struct {
	farms     *MockFarmRepository
	houses    *MockHouseRepository
	batches   *MockBatchRepository
	customers *MockCustomerRepository
	orders    *MockOrderRepository
	prod      *MockProductionRepository
}

func newFarmService() (*FarmService, farmServiceMocks) {
	m := farmServiceMocks{
		farms:     new(MockFarmRepository),
		houses:    new(MockHouseRepository),
		batches:   new(MockBatchRepository),
		customers: new(MockCustomerRepository),
		orders:    new(MockOrderRepository),
		prod:      new(MockProductionRepository),
	}
	service := NewFarmService(m.farms, m.houses, m.batches, m.customers, m.orders, m.prod)
	return service, m
}

func TestFarmService_Create(t *testing.T) {
	service, m := newFarmService()
	ownerID := uuid.New()

	m.farms.On("Save", mock.Anything, mock.AnythingOfType("*farm.Farm")).Return(nil)

	resp, err := service.Create(context.Background(), ownerID, CreateFarmRequest{
		Name:     "Sunrise Poultry",
		Location: "Nakuru",
		FarmType: "layer",
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, resp.OwnerID)
	assert.Equal(t, "layer", resp.FarmType)
	assert.True(t, resp.IsActive)
	m.farms.AssertExpectations(t)
}

func TestFarmService_List(t *testing.T) {
	newFarm := func(t *testing.T, ownerID uuid.UUID, name string) farm.Farm {
		f, err := farm.NewFarm(ownerID, name, "Nakuru", farm.FarmTypeMixed)
		require.NoError(t, err)
		return *f
	}

	t.Run("owners see only their farms", func(t *testing.T) {
		service, m := newFarmService()
		ownerID := uuid.New()
		farms := []farm.Farm{newFarm(t, ownerID, "Sunrise Poultry")}

		m.farms.On("FindByOwner", mock.Anything, ownerID, mock.Anything).Return(farms, nil)
		m.farms.On("CountByOwner", mock.Anything, ownerID, mock.Anything).Return(int64(1), nil)

		responses, total, err := service.List(context.Background(), ownerID, false, ListFarmsRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, responses, 1)
		assert.Equal(t, "Sunrise Poultry", responses[0].Name)
		m.farms.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("admins see every farm", func(t *testing.T) {
		service, m := newFarmService()
		adminID := uuid.New()
		farms := []farm.Farm{
			newFarm(t, uuid.New(), "Sunrise Poultry"),
			newFarm(t, uuid.New(), "Hilltop Layers"),
		}

		m.farms.On("FindAll", mock.Anything, mock.Anything).Return(farms, nil)
		m.farms.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

		responses, total, err := service.List(context.Background(), adminID, true, ListFarmsRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, responses, 2)
	})

	t.Run("applies list defaults", func(t *testing.T) {
		service, m := newFarmService()
		ownerID := uuid.New()

		m.farms.On("FindByOwner", mock.Anything, ownerID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.OrderBy == "created_at" && f.OrderDir == "desc"
		})).Return([]farm.Farm{}, nil)
		m.farms.On("CountByOwner", mock.Anything, ownerID, mock.Anything).Return(int64(0), nil)

		_, _, err := service.List(context.Background(), ownerID, false, ListFarmsRequest{})
		require.NoError(t, err)
		m.farms.AssertExpectations(t)
	})
}

func TestFarmService_Update(t *testing.T) {
	service, m := newFarmService()
	f, err := farm.NewFarm(uuid.New(), "Sunrise Poultry", "Nakuru", farm.FarmTypeLayer)
	require.NoError(t, err)

	m.farms.On("FindByID", mock.Anything, f.ID).Return(f, nil)
	m.farms.On("Save", mock.Anything, f).Return(nil)

	location := "Eldoret"
	resp, err := service.Update(context.Background(), f.ID, UpdateFarmRequest{Location: &location})

	require.NoError(t, err)
	assert.Equal(t, "Sunrise Poultry", resp.Name)
	assert.Equal(t, "Eldoret", resp.Location)
}

func TestFarmService_Delete(t *testing.T) {
	t.Run("deactivates a farm with no active batches", func(t *testing.T) {
		service, m := newFarmService()
		f, err := farm.NewFarm(uuid.New(), "Sunrise Poultry", "Nakuru", farm.FarmTypeLayer)
		require.NoError(t, err)

		m.farms.On("FindByID", mock.Anything, f.ID).Return(f, nil)
		m.batches.On("CountActiveForFarm", mock.Anything, f.ID).Return(int64(0), nil)
		m.farms.On("Save", mock.Anything, f).Return(nil)

		require.NoError(t, service.Delete(context.Background(), f.ID))
		assert.False(t, f.IsActive)
	})

	t.Run("refuses while batches are active", func(t *testing.T) {
		service, m := newFarmService()
		f, err := farm.NewFarm(uuid.New(), "Sunrise Poultry", "Nakuru", farm.FarmTypeLayer)
		require.NoError(t, err)

		m.farms.On("FindByID", mock.Anything, f.ID).Return(f, nil)
		m.batches.On("CountActiveForFarm", mock.Anything, f.ID).Return(int64(2), nil)

		err = service.Delete(context.Background(), f.ID)

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "HAS_DEPENDENTS", domainErr.Code)
		assert.True(t, f.IsActive)
		m.farms.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestFarmService_Dashboard(t *testing.T) {
	service, m := newFarmService()
	f, err := farm.NewFarm(uuid.New(), "Sunrise Poultry", "Nakuru", farm.FarmTypeMixed)
	require.NoError(t, err)

	batch, err := flock.NewBatch(f.ID, uuid.New(), "B-001", "Cobb 500", flock.BirdTypeBroiler, 1200,
		time.Now().AddDate(0, 0, -14), 0)
	require.NoError(t, err)
	require.NoError(t, batch.RecordLosses(50))

	m.farms.On("FindByID", mock.Anything, f.ID).Return(f, nil)
	m.houses.On("CountForFarm", mock.Anything, f.ID, mock.Anything).Return(int64(4), nil)
	m.batches.On("CountActiveForFarm", mock.Anything, f.ID).Return(int64(1), nil)
	m.batches.On("FindAllForFarm", mock.Anything, f.ID, mock.Anything).Return([]flock.Batch{*batch}, nil)
	m.customers.On("CountForFarm", mock.Anything, f.ID, mock.Anything).Return(int64(7), nil)
	m.orders.On("CountByStatusForFarm", mock.Anything, f.ID).Return(map[trade.OrderStatus]int64{
		trade.OrderStatusPending:   2,
		trade.OrderStatusDelivered: 5,
	}, nil)
	m.orders.On("RevenueForFarm", mock.Anything, f.ID).Return(decimal.RequireFromString("15400.50"), nil)
	m.prod.On("FarmTotalsSince", mock.Anything, f.ID, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("820.25"), 3400, nil)

	resp, err := service.Dashboard(context.Background(), f.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ActiveHouses)
	assert.Equal(t, int64(1), resp.ActiveBatches)
	assert.Equal(t, 1150, resp.TotalBirds)
	assert.Equal(t, int64(7), resp.ActiveCustomers)
	assert.Equal(t, int64(2), resp.OrdersByStatus["pending"])
	assert.Equal(t, int64(5), resp.OrdersByStatus["delivered"])
	assert.True(t, resp.TotalRevenue.Equal(decimal.RequireFromString("15400.50")))
	assert.True(t, resp.FeedLast30DaysKg.Equal(decimal.RequireFromString("820.25")))
	assert.Equal(t, 3400, resp.EggsLast30Days)
}
