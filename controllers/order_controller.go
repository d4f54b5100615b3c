package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/take-two/storefront/cart"
	apperrors "github.com/take-two/storefront/errors"
	"github.com/take-two/storefront/kafka"
	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
)

type OrderController struct {
	orders   *repository.OrderRepository
	stores   StoreFactory
	producer *kafka.OrderEventProducer
}

func NewOrderController(orders *repository.OrderRepository, stores StoreFactory, producer *kafka.OrderEventProducer) *OrderController {
	return &OrderController{orders: orders, stores: stores, producer: producer}
}

// Checkout snapshots the session cart into an order, clears the cart and
// publishes a best-effort order.created event.
func (oc *OrderController) Checkout(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	crt := cart.Open(c, oc.stores(sessionID))
	items := crt.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	order := &models.Order{
		SessionID: sessionID,
		Items:     items,
		Total:     crt.TotalPrice(),
		Status:    models.OrderStatusCreated,
	}
	if err := oc.orders.Create(c, order); err != nil {
		logger.Error(c, "failed to create order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	// Downstream consumers are optional; checkout must not depend on them.
	if oc.producer != nil {
		_ = oc.producer.SendOrderCreated(c, models.OrderCreatedEvent{
			Event:     "order.created",
			OrderID:   order.ID.Hex(),
			SessionID: sessionID,
			Items:     items,
			Total:     order.Total,
			Timestamp: time.Now().UTC(),
		})
	}

	if err := crt.Clear(c); err != nil {
		logger.Warn(c, "failed to clear cart after checkout")
	}

	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) List(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	orders, err := oc.orders.FindBySession(c, sessionID)
	if err != nil {
		logger.Error(c, "failed to list orders", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (oc *OrderController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.ErrBadRequest)
		return
	}

	order, err := oc.orders.FindByID(c, id)
	if err != nil {
		_ = c.Error(apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}
