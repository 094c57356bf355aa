package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/dto"
)

const defaultOrderListLimit = 50

// AdminHandler manages order review and stock reconciliation endpoints.
type AdminHandler struct {
	facade AdminFacade
	proofs PaymentFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade, proofs PaymentFacade) *AdminHandler {
	return &AdminHandler{facade: facade, proofs: proofs}
}

// Orders handles GET /api/admin/orders?status=...&limit=...
func (h *AdminHandler) Orders(c *gin.Context) {
	status := model.OrderStatus(c.Query("status"))
	if status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	limit := defaultOrderListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	orders, err := h.facade.OrdersByStatus(c.Request.Context(), status, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// SetOrderStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) SetOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.SetOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case domainErrors.IsInvalidTransition(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Proof handles GET /api/admin/proofs/:id.
func (h *AdminHandler) Proof(c *gin.Context) {
	proofID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	proof, err := h.proofs.PaymentProof(c.Request.Context(), proofID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toProofResponse(*proof))
}

// ApproveProof handles POST /api/admin/proofs/:id/approve.
func (h *AdminHandler) ApproveProof(c *gin.Context) {
	proofID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.proofs.ApprovePaymentProof(c.Request.Context(), proofID)
	if err != nil {
		h.writeProofError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// RejectProof handles POST /api/admin/proofs/:id/reject.
func (h *AdminHandler) RejectProof(c *gin.Context) {
	proofID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.RejectProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.proofs.RejectPaymentProof(c.Request.Context(), proofID, req.Notes)
	if err != nil {
		h.writeProofError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func (h *AdminHandler) writeProofError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrProofResolved):
		c.Status(http.StatusConflict)
	case domainErrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

// Incidences handles GET /api/admin/stock/incidences.
func (h *AdminHandler) Incidences(c *gin.Context) {
	incidences, err := h.facade.StockIncidences(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.IncidenceResponse, 0, len(incidences))
	for _, inc := range incidences {
		response = append(response, dto.IncidenceResponse{
			ProductID:       inc.ProductID,
			SKU:             inc.SKU,
			LocalAvailable:  inc.LocalAvailable,
			RemoteAvailable: inc.RemoteAvailable,
			Difference:      inc.Difference,
		})
	}
	c.JSON(http.StatusOK, response)
}

// SyncStock handles POST /api/admin/stock/sync. Without explicit product ids
// it reconciles every currently detected incidence.
func (h *AdminHandler) SyncStock(c *gin.Context) {
	var req dto.SyncStockRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	ids := req.ProductIDs
	if len(ids) == 0 {
		incidences, err := h.facade.StockIncidences(c.Request.Context())
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		for _, inc := range incidences {
			ids = append(ids, inc.ProductID)
		}
	}

	synced, err := h.facade.SyncStockBatch(c.Request.Context(), ids)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.SyncStockResponse{Synced: synced})
}
