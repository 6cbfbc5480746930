package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/middleware"
	"github.com/captain-burah/estateflow-pro/internal/mocks"
	"github.com/captain-burah/estateflow-pro/internal/service"
)

func TestPortalHandler_Enhance(t *testing.T) {
	t.Run("enhances with the actor from the identity header", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)

		enhanced := sampleProperty("prop-1")
		enhanced.IsPortalEnhanced = true
		mockPortal.EXPECT().
			Enhance(mock.Anything, "prop-1", mock.AnythingOfType("service.EnhancementInput"), "user-7").
			Return(enhanced, nil)

		router := gin.New()
		router.Use(middleware.Identity(""))
		router.POST("/api/v1/properties/:id/enhance", NewPortalHandler(mockPortal, mockLocation).Enhance)

		body := `{"furnishingType":"furnished","locations":{"bayut":{"locationId":"BY-51","locationFullName":"Dubai Marina"}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/prop-1/enhance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "user-7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"isPortalEnhanced":true`)
	})

	t.Run("maps an empty input to 400", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockPortal.EXPECT().
			Enhance(mock.Anything, "prop-1", mock.Anything, mock.Anything).
			Return(nil, &domain.ValidationError{Message: "nothing to update"})

		router := gin.New()
		router.POST("/api/v1/properties/:id/enhance", NewPortalHandler(mockPortal, mockLocation).Enhance)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/prop-1/enhance", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPortalHandler_BulkEnhance(t *testing.T) {
	t.Run("reports per-property outcomes", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockPortal.EXPECT().
			BulkEnhance(mock.Anything, []string{"prop-1", "prop-2"}, mock.AnythingOfType("service.EnhancementInput"), mock.Anything).
			Return(&service.BulkEnhanceResult{
				Updated: []string{"prop-1"},
				Failed:  map[string]string{"prop-2": "property prop-2 not found"},
			}, nil)

		router := gin.New()
		router.POST("/api/v1/properties/bulk-enhance", NewPortalHandler(mockPortal, mockLocation).BulkEnhance)

		body := `{"propertyIds":["prop-1","prop-2"],"furnishingType":"furnished"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/bulk-enhance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result service.BulkEnhanceResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, []string{"prop-1"}, result.Updated)
		assert.Contains(t, result.Failed, "prop-2")
	})

	t.Run("maps bulk location mappings to 400", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockPortal.EXPECT().
			BulkEnhance(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &domain.ValidationError{Field: "locations", Message: "location mappings are not allowed in bulk mode"})

		router := gin.New()
		router.POST("/api/v1/properties/bulk-enhance", NewPortalHandler(mockPortal, mockLocation).BulkEnhance)

		body := `{"propertyIds":["prop-1"],"locations":{"bayut":{"locationId":"BY-1"}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/bulk-enhance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPortalHandler_Readiness(t *testing.T) {
	t.Run("checks a single portal from the query", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockPortal.EXPECT().
			Readiness(mock.Anything, "prop-1", []domain.PortalName{domain.PortalBayut}).
			Return([]domain.PortalReadinessCheck{
				{Portal: domain.PortalBayut, CanPublish: false, MissingFields: []string{"locationId"}},
			}, nil)

		router := gin.New()
		router.GET("/api/v1/properties/:id/readiness", NewPortalHandler(mockPortal, mockLocation).Readiness)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/prop-1/readiness?portal=bayut", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"canPublish":false`)
		assert.Contains(t, w.Body.String(), "locationId")
	})

	t.Run("checks every portal without a query", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockPortal.EXPECT().
			Readiness(mock.Anything, "prop-1", []domain.PortalName(nil)).
			Return([]domain.PortalReadinessCheck{
				{Portal: domain.PortalPropertyFinder, CanPublish: true, MissingFields: []string{}},
				{Portal: domain.PortalBayut, CanPublish: true, MissingFields: []string{}},
				{Portal: domain.PortalDubizzle, CanPublish: true, MissingFields: []string{}},
			}, nil)

		router := gin.New()
		router.GET("/api/v1/properties/:id/readiness", NewPortalHandler(mockPortal, mockLocation).Readiness)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/prop-1/readiness", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPortalHandler_Publish(t *testing.T) {
	t.Run("publishes to the requested portals", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)

		published := sampleProperty("prop-1")
		published.PublishedPortals = []domain.PortalName{domain.PortalBayut}
		mockPortal.EXPECT().
			Publish(mock.Anything, "prop-1", []domain.PortalName{domain.PortalBayut}).
			Return(published, nil)

		router := gin.New()
		router.POST("/api/v1/properties/:id/publish", NewPortalHandler(mockPortal, mockLocation).Publish)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/prop-1/publish", bytes.NewBufferString(`{"portals":["bayut"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"publishedPortals":["bayut"]`)
	})

	t.Run("maps readiness failures to 422 with per-portal detail", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockPortal.EXPECT().
			Publish(mock.Anything, "prop-1", mock.Anything).
			Return(nil, &domain.PortalReadinessError{
				Failures: map[domain.PortalName][]string{
					domain.PortalDubizzle: {"locationId", "descriptionEn"},
				},
			})

		router := gin.New()
		router.POST("/api/v1/properties/:id/publish", NewPortalHandler(mockPortal, mockLocation).Publish)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/prop-1/publish", bytes.NewBufferString(`{"portals":["bayut","dubizzle"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "dubizzle")
		assert.Contains(t, w.Body.String(), "locationId")
	})

	t.Run("maps an un-enhanced property to 409", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockPortal.EXPECT().
			Publish(mock.Anything, "prop-1", mock.Anything).
			Return(nil, &domain.InvalidStateError{Op: "publish", State: "not portal enhanced"})

		router := gin.New()
		router.POST("/api/v1/properties/:id/publish", NewPortalHandler(mockPortal, mockLocation).Publish)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/prop-1/publish", bytes.NewBufferString(`{"portals":["bayut"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "not portal enhanced")
	})
}

func TestPortalHandler_SearchLocations(t *testing.T) {
	t.Run("returns location candidates", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockLocation.EXPECT().
			Search(mock.Anything, domain.PortalBayut, "marina").
			Return([]domain.PortalLocation{
				{ID: "BY-51", Name: "Dubai Marina", Portal: domain.PortalBayut},
			}, nil)

		router := gin.New()
		router.GET("/api/v1/properties/portal-locations", NewPortalHandler(mockPortal, mockLocation).SearchLocations)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/portal-locations?portal=bayut&q=marina", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "BY-51")
	})

	t.Run("maps an unknown portal to 400", func(t *testing.T) {
		mockPortal := mocks.NewMockPortalServiceInterface(t)
		mockLocation := mocks.NewMockLocationServiceInterface(t)
		mockLocation.EXPECT().
			Search(mock.Anything, domain.PortalName("zillow"), "marina").
			Return(nil, &domain.ValidationError{Field: "portal", Message: "unknown portal zillow"})

		router := gin.New()
		router.GET("/api/v1/properties/portal-locations", NewPortalHandler(mockPortal, mockLocation).SearchLocations)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/portal-locations?portal=zillow&q=marina", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
