package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/take-two/storefront/errors"
	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
)

type ProductController struct {
	products *repository.ProductRepository
}

func NewProductController(products *repository.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

func (pc *ProductController) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	products, err := pc.products.FindAll(c, limit, (page-1)*limit)
	if err != nil {
		logger.Error(c, "failed to list products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	total, err := pc.products.Count(c)
	if err != nil {
		logger.Error(c, "failed to count products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": total, "page": page})
}

func (pc *ProductController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.ErrBadRequest)
		return
	}

	product, err := pc.products.FindByID(c, id)
	if err != nil {
		_ = c.Error(apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

type productRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    float64  `json:"price" binding:"min=0"`
	Image    string   `json:"img"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	Quantity int      `json:"quantity" binding:"min=0"`
}

func (pc *ProductController) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product := &models.Product{
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Sizes:    req.Sizes,
		Colors:   req.Colors,
		Quantity: req.Quantity,
	}
	if err := pc.products.Create(c, product); err != nil {
		logger.Error(c, "failed to create product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.ErrBadRequest)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updates := bson.M{
		"name":     req.Name,
		"price":    req.Price,
		"img":      req.Image,
		"sizes":    req.Sizes,
		"colors":   req.Colors,
		"quantity": req.Quantity,
	}
	if err := pc.products.Update(c, id, updates); err != nil {
		if err == mongo.ErrNoDocuments {
			_ = c.Error(apperrors.ErrNotFound)
			return
		}
		logger.Error(c, "failed to update product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.ErrBadRequest)
		return
	}

	if err := pc.products.Delete(c, id); err != nil {
		if err == mongo.ErrNoDocuments {
			_ = c.Error(apperrors.ErrNotFound)
			return
		}
		logger.Error(c, "failed to delete product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
