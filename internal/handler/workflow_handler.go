package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/captain-burah/estateflow-pro/internal/middleware"
	"github.com/captain-burah/estateflow-pro/internal/service"
)

// WorkflowHandler handles approval workflow requests.
type WorkflowHandler struct {
	workflowService service.WorkflowServiceInterface
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(workflowService service.WorkflowServiceInterface) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

// SaveDraft handles POST /api/v1/properties/:id/draft-changes
func (h *WorkflowHandler) SaveDraft(c *gin.Context) {
	patch, err := decodePatch(c)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := h.workflowService.SaveDraft(c.Request.Context(), c.Param("id"), patch, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SubmitForApproval handles POST /api/v1/properties/:id/submit-approval
func (h *WorkflowHandler) SubmitForApproval(c *gin.Context) {
	p, err := h.workflowService.SubmitForApproval(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Approve handles PATCH /api/v1/properties/:id/approve
func (h *WorkflowHandler) Approve(c *gin.Context) {
	p, err := h.workflowService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// Reject handles PATCH /api/v1/properties/:id/reject
func (h *WorkflowHandler) Reject(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	p, err := h.workflowService.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
