package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/dto"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:         order.ID,
		Status:     string(order.Status),
		TotalCents: order.TotalCents,
		ExpiresAt:  order.ExpiresAt,
		CreatedAt:  order.CreatedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		})
	}
	return resp
}

func toProofResponse(proof model.PaymentProof) dto.ProofResponse {
	return dto.ProofResponse{
		ID:         proof.ID,
		OrderID:    proof.OrderID,
		Status:     string(proof.Status),
		FileKey:    proof.FileKey,
		AdminNotes: proof.AdminNotes,
		CreatedAt:  proof.CreatedAt,
	}
}
