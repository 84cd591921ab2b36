package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oia-portal/docflow/internal/application/service"
	"github.com/oia-portal/docflow/internal/domain/rbac"
	"github.com/oia-portal/docflow/internal/domain/workflow"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	transitionService service.TransitionService
	documentService   service.DocumentService
	historyService    service.HistoryService
	logger            Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	transitionService service.TransitionService,
	documentService service.DocumentService,
	historyService service.HistoryService,
	logger Logger,
) *Handlers {
	return &Handlers{
		transitionService: transitionService,
		documentService:   documentService,
		historyService:    historyService,
		logger:            logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// CreateDocumentRequest is the payload for POST /documents
type CreateDocumentRequest struct {
	Type       string `json:"type" binding:"required"`
	OwnerID    string `json:"owner_id" binding:"required"`
	AssignedTo string `json:"assigned_to"`
	Department string `json:"department"`
}

// TransitionRequest is the payload for POST /documents/:id/transitions.
// Actor identity arrives in the body because the upstream gateway, which owns
// authentication, has already resolved and validated it.
type TransitionRequest struct {
	ActorID   string `json:"actor_id" binding:"required"`
	ActorRole string `json:"actor_role" binding:"required"`
	ToStatus  string `json:"to_status" binding:"required"`
	Comment   string `json:"comment"`
}

// ListDocumentsRequest represents query parameters for listing documents
type ListDocumentsRequest struct {
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
	OwnerID string `form:"owner_id"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// CreateDocument handles POST /api/v1/documents
func (h *Handlers) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), service.CreateDocumentRequest{
		Type:       workflow.DocumentType(req.Type),
		OwnerID:    req.OwnerID,
		AssignedTo: req.AssignedTo,
		Department: req.Department,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Data: doc})
}

// GetDocument handles GET /api/v1/documents/:id
func (h *Handlers) GetDocument(c *gin.Context) {
	doc, err := h.documentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: doc})
}

// ListDocuments handles GET /api/v1/documents
func (h *Handlers) ListDocuments(c *gin.Context) {
	var req ListDocumentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid query parameters"})
		return
	}

	ctx := c.Request.Context()
	if req.OwnerID != "" {
		docs, err := h.documentService.ListByOwner(ctx, req.OwnerID, req.Limit, req.Offset)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Data: docs})
		return
	}

	docs, err := h.documentService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: docs})
}

// GetDocumentHistory handles GET /api/v1/documents/:id/history
func (h *Handlers) GetDocumentHistory(c *gin.Context) {
	records, err := h.historyService.ListFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: records})
}

// GetPermittedTargets handles GET /api/v1/documents/:id/targets.
// UI hint only: the answer ignores the caller's permissions.
func (h *Handlers) GetPermittedTargets(c *gin.Context) {
	targets, err := h.documentService.PermittedTargets(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: targets})
}

// RequestTransition handles POST /api/v1/documents/:id/transitions
func (h *Handlers) RequestTransition(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	record, err := h.transitionService.RequestTransition(c.Request.Context(), service.TransitionRequest{
		DocumentID: c.Param("id"),
		ActorID:    req.ActorID,
		ActorRole:  rbac.Role(req.ActorRole),
		ToStatus:   workflow.Status(req.ToStatus),
		Comment:    req.Comment,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: record})
}

// respondError maps the service error taxonomy to HTTP status codes. Internal
// failures surface generically; details stay in the logs.
func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "document not found"})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, Response{Success: false, Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, Response{Success: false, Error: "forbidden"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, Response{Success: false, Error: "document was modified concurrently, refetch and retry"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		h.logger.Error("Unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "internal error"})
	}
}
