package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order lifecycle directly, next to the chat
// flow the oracle drives.
type OrderHandler struct {
	svc  *usecase.OrderService
	idem usecase.IdempotencyStore // nil disables dedup
}

func NewOrderHandler(svc *usecase.OrderService, idem usecase.IdempotencyStore) *OrderHandler {
	return &OrderHandler{svc: svc, idem: idem}
}

type placeOrderReq struct {
	Item        string `json:"item" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Quantity    int    `json:"quantity" binding:"omitempty,gt=0"`
}

type orderResp struct {
	OrderID string        `json:"orderId"`
	Message string        `json:"message"`
	Order   *entity.Order `json:"order,omitempty"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	idemKey := c.GetHeader("X-Idempotency-Key") // prevent duplicated requests

	ctx, cancel := context.WithTimeout(c.Request.Context(), 8*time.Second)
	defer cancel()

	if h.idem != nil && idemKey != "" {
		if id, ok, _ := h.idem.Recall(ctx, req.PhoneNumber, idemKey); ok {
			c.JSON(http.StatusOK, orderResp{OrderID: id, Message: "order already placed"})
			return
		}
		ok, err := h.idem.TryLock(ctx, req.PhoneNumber, idemKey)
		if err != nil {
			logging.From(c).Error("idempotency store failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
			return
		}
		if !ok {
			c.JSON(http.StatusConflict, gin.H{"error": usecase.ErrDuplicate.Error()})
			return
		}
	}

	res, err := h.svc.PlaceOrder(ctx, usecase.PlaceOrderInput{
		Item:        req.Item,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Quantity:    req.Quantity,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			status = http.StatusNotFound
		case errors.Is(err, entity.ErrInvalidQuantity), errors.Is(err, entity.ErrInvalidPhone):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":       err.Error(),
			"message":     res.Message,
			"suggestions": res.Suggestions,
		})
		return
	}

	if h.idem != nil && idemKey != "" {
		_ = h.idem.Remember(ctx, req.PhoneNumber, idemKey, res.OrderID)
	}

	c.JSON(http.StatusCreated, orderResp{OrderID: res.OrderID, Message: res.Message, Order: res.Order})
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	o, err := h.svc.CheckOrderStatus(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type updateOrderReq struct {
	Item     *string `json:"item"`
	Quantity *int    `json:"quantity"`
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 8*time.Second)
	defer cancel()

	res, err := h.svc.UpdateOrder(ctx, usecase.UpdateOrderInput{
		OrderID:  c.Param("id"),
		Item:     req.Item,
		Quantity: req.Quantity,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, usecase.ErrProductNotFound), errors.Is(err, entity.ErrInvalidQuantity):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "message": res.Message})
		return
	}
	c.JSON(http.StatusOK, orderResp{OrderID: res.OrderID, Message: res.Message, Order: res.Order})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	res, err := h.svc.CancelOrder(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, orderResp{OrderID: res.OrderID, Message: res.Message, Order: res.Order})
}
