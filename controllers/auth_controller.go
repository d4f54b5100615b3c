package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
	"github.com/take-two/storefront/services"
)

type AuthController struct {
	users     *repository.UserRepository
	tokens    services.TokenService
	passwords services.PasswordService
}

func NewAuthController(users *repository.UserRepository, tokens services.TokenService, passwords services.PasswordService) *AuthController {
	return &AuthController{users: users, tokens: tokens, passwords: passwords}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if _, err := ac.users.FindByEmail(c, req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	} else if err != mongo.ErrNoDocuments {
		logger.Error(c, "failed to look up user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	hash, err := ac.passwords.Hash(req.Password)
	if err != nil {
		logger.Error(c, "failed to hash password", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleCustomer,
	}
	if err := ac.users.Create(c, user); err != nil {
		logger.Error(c, "failed to create user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, err := ac.users.FindByEmail(c, req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err := ac.passwords.Compare(user.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	pair, err := ac.tokens.GenerateTokenPair(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		logger.Error(c, "failed to generate tokens", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully", "tokens": pair})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (ac *AuthController) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	claims, err := ac.tokens.ValidateToken(req.RefreshToken, "refresh")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	pair, err := ac.tokens.GenerateTokenPair(userID, email, role)
	if err != nil {
		logger.Error(c, "failed to generate tokens", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}
