package impl

import (
	"context"
	"testing"

	"canopy/internal/domain/entity"
	mockRepo "canopy/internal/mocks/repository"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service     usecase.DirectoryUsecase
	partyRepo   *mockRepo.MockPartyRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	partyRepo := mockRepo.NewMockPartyRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewDirectoryService(DirectoryServiceParams{
		PartyRepo:   partyRepo,
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})

	return directoryServiceFixtures{
		service:     service,
		partyRepo:   partyRepo,
		productRepo: productRepo,
	}
}

func TestDirectoryService_GetSuppliers_TrimsSearchTerm(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	suppliers := []*entity.Supplier{
		{ID: uuid.New(), CompanyName: "Cacao Coop"},
		{ID: uuid.New(), CompanyName: "Cacao Valley"},
	}

	fx.partyRepo.EXPECT().SearchSuppliers(ctx, "cacao", 50).Return(suppliers, nil)

	got, err := fx.service.GetSuppliers(ctx, "  cacao  ", 50)

	require.NoError(t, err)
	assert.Equal(t, suppliers, got)
}

func TestDirectoryService_GetSuppliers_RepoError(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.partyRepo.EXPECT().SearchSuppliers(ctx, "", 0).Return(nil, errors.New("db error"))

	_, err := fx.service.GetSuppliers(ctx, "", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search suppliers")
}

func TestDirectoryService_GetProducts(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New(), Name: "Cocoa beans", Category: "Cocoa"}}

	fx.productRepo.EXPECT().List(ctx, "cocoa", 20).Return(products, nil)

	got, err := fx.service.GetProducts(ctx, "cocoa", 20)

	require.NoError(t, err)
	assert.Equal(t, products, got)
}
