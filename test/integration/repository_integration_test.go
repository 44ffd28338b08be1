package integration

import (
	"context"
	"testing"
	"time"

	"grill-master/internal/model"
	"grill-master/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := repository.NewProductRepository(testDB.Pool, logger)

	t.Run("GetAll returns all products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 5)
	})

	t.Run("GetAll on empty table returns no products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		products, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("GetByID returns the product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "GRIL-001")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Poulet braisé", product.Name)
		assert.Equal(t, "Grillades", product.Category)
		assert.Equal(t, int64(3500), product.Price)
		assert.True(t, product.Available)
	})

	t.Run("GetByID returns nil for unknown product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "P999")
		require.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := repository.NewOrderRepository(testDB.Pool, logger)

	t.Run("CreateOrder inserts the header row", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		order := &model.Order{
			ID:              uuid.New(),
			CustomerName:    "Jean Mballa",
			CustomerPhone:   "699000000",
			DeliveryAddress: "Bonapriso, Douala",
			TotalAmount:     7500,
			Status:          model.OrderStatusPending,
			CreatedAt:       time.Now(),
		}

		require.NoError(t, repo.CreateOrder(ctx, order))

		var count int
		err := testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE id = $1", order.ID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("CreateOrderItems inserts one row per line", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		order := &model.Order{
			ID:            uuid.New(),
			CustomerName:  "Jean Mballa",
			CustomerPhone: "699000000",
			TotalAmount:   7500,
			Status:        model.OrderStatusPending,
			CreatedAt:     time.Now(),
		}
		require.NoError(t, repo.CreateOrder(ctx, order))

		items := []model.OrderItem{
			{ID: uuid.New(), OrderID: order.ID, ProductID: "GRIL-001", Quantity: 2, UnitPrice: 3500},
			{ID: uuid.New(), OrderID: order.ID, ProductID: "BOIS-001", Quantity: 1, UnitPrice: 500},
		}
		require.NoError(t, repo.CreateOrderItems(ctx, items))

		var count int
		err := testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM order_items WHERE order_id = $1", order.ID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("CreateOrderItems with unknown product fails", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		order := &model.Order{
			ID:            uuid.New(),
			CustomerName:  "Jean Mballa",
			CustomerPhone: "699000000",
			TotalAmount:   100,
			Status:        model.OrderStatusPending,
			CreatedAt:     time.Now(),
		}
		require.NoError(t, repo.CreateOrder(ctx, order))

		items := []model.OrderItem{
			{ID: uuid.New(), OrderID: order.ID, ProductID: "P999", Quantity: 1, UnitPrice: 100},
		}
		err := repo.CreateOrderItems(ctx, items)
		require.Error(t, err)

		// The header survives the failed item batch
		var count int
		err = testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE id = $1", order.ID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("CreateOrder stores the table reference", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedTables(t, testDB.Pool)

		tableID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
		tableNumber := 1
		order := &model.Order{
			ID:            uuid.New(),
			CustomerName:  "Jean Mballa",
			CustomerPhone: "699000000",
			TotalAmount:   3500,
			Status:        model.OrderStatusPending,
			TableID:       &tableID,
			TableNumber:   &tableNumber,
			CreatedAt:     time.Now(),
		}
		require.NoError(t, repo.CreateOrder(ctx, order))

		var gotNumber int
		err := testDB.Pool.QueryRow(ctx, "SELECT table_number FROM orders WHERE id = $1", order.ID).Scan(&gotNumber)
		require.NoError(t, err)
		assert.Equal(t, 1, gotNumber)
	})
}

func TestTableRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := repository.NewTableRepository(testDB.Pool, logger)

	t.Run("GetAll returns tables ordered by number", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedTables(t, testDB.Pool)

		tables, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, tables, 3)
		assert.Equal(t, 1, tables[0].TableNumber)
		assert.Equal(t, model.ZoneInterior, tables[0].Zone)
		assert.Equal(t, 3, tables[2].TableNumber)
		assert.False(t, tables[2].IsAvailable)
	})

	t.Run("GetAll on empty table returns no tables", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		tables, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tables)
	})
}
