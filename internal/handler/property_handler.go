package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/repository"
	"github.com/captain-burah/estateflow-pro/internal/service"
)

// PropertyHandler handles property CRUD and search requests.
type PropertyHandler struct {
	propertyService service.PropertyServiceInterface
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PropertyListResponse is the paginated property listing envelope.
type PropertyListResponse struct {
	Data     []domain.Property `json:"data"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// decodePatch parses a partial-update body strictly: unknown keys are a 400,
// so typos in field names fail loudly instead of silently dropping the edit.
func decodePatch(c *gin.Context) (*domain.PropertyPatch, error) {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var patch domain.PropertyPatch
	if err := dec.Decode(&patch); err != nil {
		return nil, &domain.ValidationError{Message: "invalid request body: " + err.Error()}
	}
	return &patch, nil
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filter := repository.PropertyFilter{
		Category: c.Query("type"),
		City:     c.Query("city"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	properties, total, err := h.propertyService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}

	c.JSON(http.StatusOK, PropertyListResponse{
		Data:     properties,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// Create handles POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var p domain.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	created, err := h.propertyService.Create(c.Request.Context(), &p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles PATCH /api/v1/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	patch, err := decodePatch(c)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := h.propertyService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/v1/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.propertyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}

// Search handles GET /api/v1/properties/search
func (h *PropertyHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	properties, err := h.propertyService.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	c.JSON(http.StatusOK, gin.H{"data": properties})
}

// PendingApprovals handles GET /api/v1/properties/approvals/pending
func (h *PropertyHandler) PendingApprovals(c *gin.Context) {
	properties, err := h.propertyService.PendingApprovals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	c.JSON(http.StatusOK, gin.H{"data": properties})
}
