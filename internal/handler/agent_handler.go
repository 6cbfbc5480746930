package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/service"
)

// AgentHandler handles agent directory requests.
type AgentHandler struct {
	agentService service.AgentServiceInterface
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(agentService service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// List handles GET /api/v1/agents
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.agentService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if agents == nil {
		agents = []domain.Agent{}
	}
	c.JSON(http.StatusOK, gin.H{"data": agents})
}

// Create handles POST /api/v1/agents
func (h *AgentHandler) Create(c *gin.Context) {
	var a domain.Agent
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	created, err := h.agentService.Create(c.Request.Context(), &a)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/v1/agents/:id
func (h *AgentHandler) Get(c *gin.Context) {
	a, err := h.agentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Update handles PATCH /api/v1/agents/:id
func (h *AgentHandler) Update(c *gin.Context) {
	var upd service.AgentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	a, err := h.agentService.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Performance handles GET /api/v1/agents/:id/performance
func (h *AgentHandler) Performance(c *gin.Context) {
	perf, err := h.agentService.Performance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

// Properties handles GET /api/v1/agents/:id/properties
func (h *AgentHandler) Properties(c *gin.Context) {
	properties, err := h.agentService.Properties(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	c.JSON(http.StatusOK, gin.H{"data": properties})
}
