package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/mocks"
	"github.com/captain-burah/estateflow-pro/internal/repository"
	"github.com/captain-burah/estateflow-pro/internal/service"
	"github.com/captain-burah/estateflow-pro/internal/validator"
)

func TestPropertyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid property with defaults", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Property")).
			Return(nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		p := &domain.Property{
			Title:     "Marina Loft",
			Category:  domain.CategorySale,
			Status:    domain.StatusAvailable,
			Price:     1250000,
			PriceType: domain.PriceSale,
			Location:  "Dubai Marina, Dubai",
			Area:      1150,
			Agent:     "Sara Haddad",
		}
		got, err := svc.Create(ctx, p)

		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, domain.FurnishingUnfurnished, got.FurnishingType)
		assert.Equal(t, domain.ComplianceRERA, got.ComplianceType)
		assert.Equal(t, domain.ProjectCompleted, got.ProjectStatus)
		assert.Equal(t, domain.ApprovalApproved, got.ApprovalStatus)
		assert.False(t, got.IsPortalEnhanced)
		assert.Nil(t, got.PendingChanges)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("ignores client-supplied workflow state", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		p := approvedProperty("")
		p.ApprovalStatus = domain.ApprovalPending
		p.IsPortalEnhanced = true
		p.PendingChanges = &domain.PropertyPatch{Price: float64Ptr(1)}

		got, err := svc.Create(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalApproved, got.ApprovalStatus)
		assert.False(t, got.IsPortalEnhanced)
		assert.Nil(t, got.PendingChanges)
	})

	t.Run("rejects an invalid property", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		p := approvedProperty("")
		p.Title = "ab"
		_, err := svc.Create(ctx, p)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})

	t.Run("rejects a zero price", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		p := approvedProperty("")
		p.Price = 0
		_, err := svc.Create(ctx, p)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, err := svc.Create(ctx, approvedProperty(""))

		require.Error(t, err)
	})
}

func TestPropertyService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the property", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "prop-1").Return(approvedProperty("prop-1"), nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		got, err := svc.Get(ctx, "prop-1")

		require.NoError(t, err)
		assert.Equal(t, "prop-1", got.ID)
	})

	t.Run("maps a missing record to not found", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, err := svc.Get(ctx, "missing")

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "property", nf.Resource)
	})
}

func TestPropertyService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes a valid filter through", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		filter := repository.PropertyFilter{Category: "sale", Page: 2, PageSize: 5}
		mockRepo.EXPECT().
			List(mock.Anything, filter).
			Return([]domain.Property{*approvedProperty("prop-1")}, 11, nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		properties, total, err := svc.List(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, 11, total)
		assert.Len(t, properties, 1)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, _, err := svc.List(ctx, repository.PropertyFilter{Category: "timeshare"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "type", verr.Field)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, _, err := svc.List(ctx, repository.PropertyFilter{Status: "vaporized"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "status", verr.Field)
	})
}

func TestPropertyService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the patch directly to the live record", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		prop := approvedProperty("prop-1")
		expectUpdateAtomic(mockRepo, "prop-1", prop)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		got, err := svc.Update(ctx, "prop-1", &domain.PropertyPatch{Price: float64Ptr(1190000)})

		require.NoError(t, err)
		assert.Equal(t, 1190000.0, got.Price)
		assert.Nil(t, got.PendingChanges)
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, err := svc.Update(ctx, "prop-1", &domain.PropertyPatch{})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("aborts when the patched record is invalid", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		prop := approvedProperty("prop-1")
		expectUpdateAtomic(mockRepo, "prop-1", prop)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, err := svc.Update(ctx, "prop-1", &domain.PropertyPatch{Location: strPtr("")})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("propagates not found", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		expectUpdateAtomic(mockRepo, "missing", nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, err := svc.Update(ctx, "missing", &domain.PropertyPatch{Price: float64Ptr(1)})

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestPropertyService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the property", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().Delete(mock.Anything, "prop-1").Return(nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		require.NoError(t, svc.Delete(ctx, "prop-1"))
	})

	t.Run("propagates not found", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().
			Delete(mock.Anything, "missing").
			Return(&domain.NotFoundError{Resource: "property", ID: "missing"})

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		err := svc.Delete(ctx, "missing")

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestPropertyService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("searches with the given limit", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().
			Search(mock.Anything, "marina", 5).
			Return([]domain.Property{*approvedProperty("prop-1")}, nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		properties, err := svc.Search(ctx, "marina", 5)

		require.NoError(t, err)
		assert.Len(t, properties, 1)
	})

	t.Run("clamps an out-of-range limit", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		mockRepo.EXPECT().
			Search(mock.Anything, "marina", 20).
			Return(nil, nil)

		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, err := svc.Search(ctx, "marina", 500)

		require.NoError(t, err)
	})

	t.Run("requires a query", func(t *testing.T) {
		mockRepo := mocks.NewMockPropertyRepository(t)
		svc := service.NewPropertyService(mockRepo, validator.NewValidator())

		_, err := svc.Search(ctx, "", 10)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "q", verr.Field)
	})
}

func TestPropertyService_PendingApprovals(t *testing.T) {
	ctx := context.Background()

	mockRepo := mocks.NewMockPropertyRepository(t)
	pending := approvedProperty("prop-1")
	pending.ApprovalStatus = domain.ApprovalPending
	mockRepo.EXPECT().
		ListPendingApprovals(mock.Anything).
		Return([]domain.Property{*pending}, nil)

	svc := service.NewPropertyService(mockRepo, validator.NewValidator())

	properties, err := svc.PendingApprovals(ctx)

	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, domain.ApprovalPending, properties[0].ApprovalStatus)
}
