package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
)

type AdminController struct {
	users     *repository.UserRepository
	products  *repository.ProductRepository
	orders    *repository.OrderRepository
	delivered repository.DeliveryLogRepository
}

func NewAdminController(
	users *repository.UserRepository,
	products *repository.ProductRepository,
	orders *repository.OrderRepository,
	delivered repository.DeliveryLogRepository,
) *AdminController {
	return &AdminController{users: users, products: products, orders: orders, delivered: delivered}
}

// Stats returns store-wide counts for the admin dashboard.
func (ac *AdminController) Stats(c *gin.Context) {
	userCount, err := ac.users.Count(c)
	if err != nil {
		logger.Error(c, "failed to count users", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to gather stats"})
		return
	}
	productCount, err := ac.products.Count(c)
	if err != nil {
		logger.Error(c, "failed to count products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to gather stats"})
		return
	}
	orderCount, err := ac.orders.Count(c)
	if err != nil {
		logger.Error(c, "failed to count orders", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to gather stats"})
		return
	}

	stats := gin.H{
		"users":    userCount,
		"products": productCount,
		"orders":   orderCount,
	}

	if ac.delivered != nil {
		_, sentCount, err := ac.delivered.GetLogs(c, models.DeliveryLogFilter{Status: models.DeliveryStatusSent, PageSize: 1})
		if err == nil {
			stats["messages_sent"] = sentCount
		}
	}

	c.JSON(http.StatusOK, stats)
}
