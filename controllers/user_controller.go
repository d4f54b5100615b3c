package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/repository"
)

type UserController struct {
	users *repository.UserRepository
}

func NewUserController(users *repository.UserRepository) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) callerID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, _ := c.Get("user_id")
	hex, _ := raw.(string)
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (uc *UserController) Me(c *gin.Context) {
	id, ok := uc.callerID(c)
	if !ok {
		return
	}

	user, err := uc.users.FindByID(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

func (uc *UserController) UpdateMe(c *gin.Context) {
	id, ok := uc.callerID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := uc.users.Update(c, id, bson.M{"name": req.Name}); err != nil {
		logger.Error(c, "failed to update profile", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
