package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/repository"
)

func newTestProperty() *domain.Property {
	now := time.Now().Truncate(time.Millisecond)
	return &domain.Property{
		ID:             uuid.New().String(),
		Title:          "Marina Loft",
		Category:       domain.CategorySale,
		Status:         domain.StatusAvailable,
		Price:          1250000,
		PriceType:      domain.PriceSale,
		Location:       "Dubai Marina",
		Bedrooms:       2,
		Bathrooms:      2,
		Area:           1400,
		Agent:          "Sarah Malik",
		FurnishingType: domain.FurnishingUnfurnished,
		ComplianceType: domain.ComplianceRERA,
		ProjectStatus:  domain.ProjectCompleted,
		ApprovalStatus: domain.ApprovalApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestPostgresPropertyRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPropertyRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and fetch round trip", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		desc := "A very nice loft with marina views"
		p.Description = &desc
		p.Amenities = []string{"pool", "gym"}

		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "Marina Loft", got.Title)
		assert.Equal(t, domain.CategorySale, got.Category)
		assert.Equal(t, domain.PriceSale, got.PriceType)
		require.NotNil(t, got.Description)
		assert.Equal(t, desc, *got.Description)
		assert.Equal(t, []string{"pool", "gym"}, got.Amenities)
		assert.Empty(t, got.PublishedPortals)
		assert.Nil(t, got.PortalConfigs)
		assert.Nil(t, got.PendingChanges)
	})

	t.Run("portal configs survive round trip", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		p.PortalConfigs = map[domain.PortalName]*domain.PortalConfig{
			domain.PortalPropertyFinder: {
				Portal:       domain.PortalPropertyFinder,
				PortalStatus: domain.PortalStatusDraft,
				LocationID:   "PF-1234",
			},
		}
		p.PublishedPortals = []domain.PortalName{domain.PortalBayut}

		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, []domain.PortalName{domain.PortalBayut}, got.PublishedPortals)
		cfg := got.PortalConfig(domain.PortalPropertyFinder)
		require.NotNil(t, cfg)
		assert.Equal(t, "PF-1234", cfg.LocationID)
		assert.Equal(t, domain.PortalStatusDraft, cfg.PortalStatus)
	})

	t.Run("pending changes survive round trip", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		newTitle := "Renamed Loft"
		newPrice := 999000.0
		p.ApprovalStatus = domain.ApprovalPending
		p.PendingChanges = &domain.PropertyPatch{Title: &newTitle, Price: &newPrice}

		require.NoError(t, repo.Create(ctx, p))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.PendingChanges)
		require.NotNil(t, got.PendingChanges.Title)
		assert.Equal(t, newTitle, *got.PendingChanges.Title)
		require.NotNil(t, got.PendingChanges.Price)
		assert.Equal(t, newPrice, *got.PendingChanges.Price)
	})

	t.Run("get missing property returns nil without error", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		got, err := repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPostgresPropertyRepository_ListAndSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPropertyRepository(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T, mutate func(*domain.Property)) *domain.Property {
		t.Helper()
		p := newTestProperty()
		mutate(p)
		require.NoError(t, repo.Create(ctx, p))
		return p
	}

	t.Run("list filters by category", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")
		seed(t, func(p *domain.Property) { p.Category = domain.CategoryRental })
		seed(t, func(p *domain.Property) { p.Category = domain.CategorySale })
		seed(t, func(p *domain.Property) { p.Category = domain.CategorySale })

		properties, total, err := repo.List(ctx, repository.PropertyFilter{Category: "sale"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, properties, 2)
		for _, p := range properties {
			assert.Equal(t, domain.CategorySale, p.Category)
		}
	})

	t.Run("list paginates and reports full total", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")
		for i := 0; i < 5; i++ {
			seed(t, func(p *domain.Property) {})
		}

		properties, total, err := repo.List(ctx, repository.PropertyFilter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, properties, 2)
	})

	t.Run("list filters by city substring", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")
		seed(t, func(p *domain.Property) { p.Location = "Downtown Dubai" })
		seed(t, func(p *domain.Property) { p.Location = "Abu Dhabi Corniche" })

		properties, total, err := repo.List(ctx, repository.PropertyFilter{City: "dubai"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, properties, 1)
		assert.Equal(t, "Downtown Dubai", properties[0].Location)
	})

	t.Run("search matches title or location", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")
		seed(t, func(p *domain.Property) { p.Title = "Palm Villa" })
		seed(t, func(p *domain.Property) { p.Location = "Palm Jumeirah" })
		seed(t, func(p *domain.Property) { p.Title = "City Apartment"; p.Location = "Business Bay" })

		properties, err := repo.Search(ctx, "palm", 10)
		require.NoError(t, err)
		assert.Len(t, properties, 2)
	})

	t.Run("pending approvals ordered by most recent edit", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		older := time.Now().Add(-2 * time.Hour)
		newer := time.Now().Add(-1 * time.Hour)
		first := seed(t, func(p *domain.Property) {
			p.ApprovalStatus = domain.ApprovalPending
			p.EditedAt = &older
		})
		second := seed(t, func(p *domain.Property) {
			p.ApprovalStatus = domain.ApprovalPending
			p.EditedAt = &newer
		})
		seed(t, func(p *domain.Property) { p.ApprovalStatus = domain.ApprovalApproved })

		pending, err := repo.ListPendingApprovals(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, second.ID, pending[0].ID)
		assert.Equal(t, first.ID, pending[1].ID)
	})

	t.Run("list by agent", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")
		seed(t, func(p *domain.Property) { p.Agent = "Omar Haddad" })
		seed(t, func(p *domain.Property) { p.Agent = "Sarah Malik" })

		properties, err := repo.ListByAgent(ctx, "Omar Haddad")
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Omar Haddad", properties[0].Agent)
	})
}

func TestPostgresPropertyRepository_UpdateAtomic(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPropertyRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("mutation is persisted", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		require.NoError(t, repo.Create(ctx, p))

		updated, err := repo.UpdateAtomic(ctx, p.ID, func(prop *domain.Property) error {
			prop.ApprovalStatus = domain.ApprovalPending
			actor := "agent-1"
			prop.EditedBy = &actor
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalPending, updated.ApprovalStatus)

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.ApprovalPending, got.ApprovalStatus)
		require.NotNil(t, got.EditedBy)
		assert.Equal(t, "agent-1", *got.EditedBy)
	})

	t.Run("mutate error rolls back all writes", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		require.NoError(t, repo.Create(ctx, p))

		boom := errors.New("transition refused")
		_, err := repo.UpdateAtomic(ctx, p.ID, func(prop *domain.Property) error {
			prop.Title = "should never persist"
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Marina Loft", got.Title)
	})

	t.Run("missing property returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		_, err := repo.UpdateAtomic(ctx, uuid.New().String(), func(prop *domain.Property) error {
			return nil
		})

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "property", notFound.Resource)
	})
}

func TestPostgresPropertyRepository_UpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPropertyRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("update persists every column", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		require.NoError(t, repo.Create(ctx, p))

		p.Title = "Marina Loft Deluxe"
		p.Price = 1500000
		p.IsPortalEnhanced = true
		require.NoError(t, repo.Update(ctx, p))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Marina Loft Deluxe", got.Title)
		assert.Equal(t, 1500000.0, got.Price)
		assert.True(t, got.IsPortalEnhanced)
	})

	t.Run("update of missing property returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		err := repo.Update(ctx, p)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		testDB.TruncateTables(t, "properties")

		p := newTestProperty()
		require.NoError(t, repo.Create(ctx, p))
		require.NoError(t, repo.Delete(ctx, p.ID))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, repo.Delete(ctx, p.ID), &notFound)
	})
}

func TestPostgresPropertyRepository_DashboardStats(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresPropertyRepository(testDB.Pool)
	ctx := context.Background()

	testDB.TruncateTables(t, "properties")

	mk := func(mutate func(*domain.Property)) {
		p := newTestProperty()
		mutate(p)
		require.NoError(t, repo.Create(ctx, p))
	}

	mk(func(p *domain.Property) { p.Category = domain.CategorySale; p.Status = domain.StatusSold; p.Price = 1000000 })
	mk(func(p *domain.Property) { p.Category = domain.CategoryRental; p.Status = domain.StatusRented; p.Price = 80000 })
	mk(func(p *domain.Property) { p.Category = domain.CategoryLuxury; p.Status = domain.StatusAvailable; p.Price = 5000000 })
	mk(func(p *domain.Property) { p.Price = 1250000 })

	stats, err := repo.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalProperties)
	assert.Equal(t, 7250000.0, stats.TotalRevenue)
	assert.Equal(t, 80000.0, stats.RentalRevenue)
	assert.Equal(t, 1, stats.LuxuryInventory)
	assert.Equal(t, 2, stats.AvailableListings)
}
