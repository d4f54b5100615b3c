package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
	"github.com/take-two/storefront/services"
)

type PaymentController struct {
	orders *repository.OrderRepository
	stripe *services.StripeService
}

func NewPaymentController(orders *repository.OrderRepository, stripe *services.StripeService) *PaymentController {
	return &PaymentController{orders: orders, stripe: stripe}
}

type paymentIntentRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// CreateIntent creates a Stripe payment intent for an order total.
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := pc.orders.FindByID(c, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if order.Status == models.OrderStatusPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order already paid"})
		return
	}

	amount := int64(math.Round(order.Total * 100))
	intent, err := pc.stripe.CreatePaymentIntent(amount, "egp", order.ID.Hex())
	if err != nil {
		logger.Error(c, "failed to create payment intent", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider error"})
		return
	}

	updates := bson.M{
		"status":            models.OrderStatusPaymentPending,
		"payment_intent_id": intent.ID,
	}
	if err := pc.orders.Update(c, orderID, updates); err != nil {
		logger.Error(c, "failed to record payment intent", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"intent_id":     intent.ID,
		"client_secret": intent.ClientSecret,
	})
}
