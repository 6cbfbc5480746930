package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/middleware"
	"github.com/captain-burah/estateflow-pro/internal/service"
)

// PortalHandler handles portal enhancement, readiness, publishing, and
// location lookup requests.
type PortalHandler struct {
	portalService   service.PortalServiceInterface
	locationService service.LocationServiceInterface
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(portalService service.PortalServiceInterface, locationService service.LocationServiceInterface) *PortalHandler {
	return &PortalHandler{
		portalService:   portalService,
		locationService: locationService,
	}
}

// Enhance handles POST /api/v1/properties/:id/enhance
func (h *PortalHandler) Enhance(c *gin.Context) {
	var input service.EnhancementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	p, err := h.portalService.Enhance(c.Request.Context(), c.Param("id"), input, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type bulkEnhanceRequest struct {
	PropertyIDs []string `json:"propertyIds"`
	service.EnhancementInput
}

// BulkEnhance handles POST /api/v1/properties/bulk-enhance
func (h *PortalHandler) BulkEnhance(c *gin.Context) {
	var req bulkEnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.portalService.BulkEnhance(c.Request.Context(), req.PropertyIDs, req.EnhancementInput, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Readiness handles GET /api/v1/properties/:id/readiness
func (h *PortalHandler) Readiness(c *gin.Context) {
	var portals []domain.PortalName
	if portal := c.Query("portal"); portal != "" {
		portals = append(portals, domain.PortalName(portal))
	}

	checks, err := h.portalService.Readiness(c.Request.Context(), c.Param("id"), portals)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": checks})
}

type publishRequest struct {
	Portals []domain.PortalName `json:"portals"`
}

// Publish handles POST /api/v1/properties/:id/publish
func (h *PortalHandler) Publish(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	p, err := h.portalService.Publish(c.Request.Context(), c.Param("id"), req.Portals)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SearchLocations handles GET /api/v1/properties/portal-locations
func (h *PortalHandler) SearchLocations(c *gin.Context) {
	portal := domain.PortalName(c.Query("portal"))

	locations, err := h.locationService.Search(c.Request.Context(), portal, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	if locations == nil {
		locations = []domain.PortalLocation{}
	}
	c.JSON(http.StatusOK, gin.H{"data": locations})
}
