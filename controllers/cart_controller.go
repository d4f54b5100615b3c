package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/take-two/storefront/cart"
	"github.com/take-two/storefront/cartstore"
	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/view"
)

// StoreFactory opens the persistent slot for one session.
type StoreFactory func(slot string) cartstore.Store

type CartController struct {
	stores StoreFactory
}

func NewCartController(stores StoreFactory) *CartController {
	return &CartController{stores: stores}
}

func (cc *CartController) open(c *gin.Context) (*cart.Cart, bool) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
		return nil, false
	}
	return cart.Open(c, cc.stores(sessionID)), true
}

// GetCart returns the current cart projection for a session
func (cc *CartController) GetCart(c *gin.Context) {
	crt, ok := cc.open(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, view.Project(crt.Items()))
}

// AddItem adds or merges an item in the cart
func (cc *CartController) AddItem(c *gin.Context) {
	crt, ok := cc.open(c)
	if !ok {
		return
	}

	var params cart.AddParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := crt.Add(c, params); err != nil {
		if ve, isValidation := err.(*cart.ValidationError); isValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
			return
		}
		logger.Error(c, "failed to save cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, view.Project(crt.Items()))
}

// RemoveItem removes the row at the given display position
func (cc *CartController) RemoveItem(c *gin.Context) {
	crt, ok := cc.open(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	if err := crt.Remove(c, index); err != nil {
		logger.Error(c, "failed to save cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, view.Project(crt.Items()))
}

// ClearCart removes all items from the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	crt, ok := cc.open(c)
	if !ok {
		return
	}

	if err := crt.Clear(c); err != nil {
		logger.Error(c, "failed to clear cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// Widget renders the HTML cart widget for the session
func (cc *CartController) Widget(c *gin.Context) {
	crt, ok := cc.open(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := view.Render(c.Writer, view.Project(crt.Items())); err != nil {
		logger.Error(c, "failed to render cart widget", err)
	}
}
