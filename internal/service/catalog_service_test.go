package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"grill-master/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func testCatalogProducts() []model.Product {
	now := time.Now()
	return []model.Product{
		{ID: "ACCO-001", Name: "Plantain frit", Category: "Accompagnements", Price: 1000, Available: true, CreatedAt: now},
		{ID: "BOIS-001", Name: "Jus de bissap", Category: "Boissons", Price: 500, Available: true, CreatedAt: now},
		{ID: "GRIL-001", Name: "Poulet braisé", Category: "Grillades", Price: 3500, Available: true, CreatedAt: now},
		{ID: "GRIL-002", Name: "Poisson braisé", Category: "Grillades", Price: 4000, Available: true, CreatedAt: now},
		{ID: "MISC-001", Name: "Article inconnu", Category: "Divers", Price: 100, Available: true, CreatedAt: now},
	}
}

func TestCatalogService_GetCatalog(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetAll", ctx).Return(testCatalogProducts(), nil)

	svc := NewCatalogService(mockRepo, logger)
	groups := svc.GetCatalog(ctx)

	// Fixed bucket order, empty buckets omitted
	require.Len(t, groups, 3)
	assert.Equal(t, "Grillades", groups[0].Category)
	assert.Equal(t, "Accompagnements", groups[1].Category)
	assert.Equal(t, "Boissons", groups[2].Category)

	assert.Len(t, groups[0].Products, 2)
	assert.Len(t, groups[1].Products, 1)
	assert.Len(t, groups[2].Products, 1)

	assert.Equal(t, "flame", groups[0].Icon)
	assert.Equal(t, "from-orange-500 to-red-500", groups[0].Color)

	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetCatalog_UnknownCategoryDropped(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetAll", ctx).Return(testCatalogProducts(), nil)

	svc := NewCatalogService(mockRepo, logger)
	groups := svc.GetCatalog(ctx)

	// "Divers" is not a known bucket; its product must not appear anywhere
	for _, g := range groups {
		assert.NotEqual(t, "Divers", g.Category)
		for _, p := range g.Products {
			assert.NotEqual(t, "MISC-001", p.ID)
		}
	}
}

func TestCatalogService_GetCatalog_FetchFailureDegradesToEmpty(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetAll", ctx).Return(nil, errors.New("connection refused"))

	svc := NewCatalogService(mockRepo, logger)
	groups := svc.GetCatalog(ctx)

	require.NotNil(t, groups)
	assert.Empty(t, groups)

	mockRepo.AssertExpectations(t)
}

func TestMetaFor(t *testing.T) {
	tests := []struct {
		category      string
		expectedIcon  string
		expectedColor string
	}{
		{"Grillades", "flame", "from-orange-500 to-red-500"},
		{"Boissons", "coffee", "from-blue-500 to-cyan-500"},
		{"Eau Minerale", "droplet", "from-cyan-500 to-blue-500"},
		{"Inconnue", "flame", "from-gray-500 to-gray-600"},
		{"", "flame", "from-gray-500 to-gray-600"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			icon, color := MetaFor(tt.category)
			assert.Equal(t, tt.expectedIcon, icon)
			assert.Equal(t, tt.expectedColor, color)
		})
	}
}
