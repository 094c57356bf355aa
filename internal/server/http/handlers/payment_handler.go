package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/dto"
)

// PaymentHandler manages buyer payment proof endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Upload handles POST /api/user/orders/:id/proof.
func (h *PaymentHandler) Upload(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UploadProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	proof, err := h.facade.UploadPaymentProof(c.Request.Context(), userID, orderID, req.FileKey)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingFileKey):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrNotOrderOwner):
			c.Status(http.StatusForbidden)
		case domainErrors.IsInvalidTransition(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toProofResponse(*proof))
}
