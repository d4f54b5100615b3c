package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/take-two/storefront/config"
	"github.com/take-two/storefront/controllers"
	apperrors "github.com/take-two/storefront/errors"
	"github.com/take-two/storefront/middleware"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/services"
)

// Deps carries the constructed controllers into route registration.
type Deps struct {
	Auth    *controllers.AuthController
	Users   *controllers.UserController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Orders  *controllers.OrderController
	Payment *controllers.PaymentController
	Admin   *controllers.AdminController
	Email   *controllers.EmailController
	Contact *controllers.ContactController
	Tokens  services.TokenService
}

func Register(r *gin.Engine, cfg config.Config, d Deps) {
	r.GET("/api/health", controllers.HealthCheck(cfg.Env))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitMax))
	api.Use(apperrors.ErrorMiddleware())

	auth := api.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		// Stricter limiter guards against credential brute force.
		auth.POST("/login", middleware.RateLimitMiddleware(cfg.LoginRateLimitMax), d.Auth.Login)
		auth.POST("/refresh", d.Auth.Refresh)
	}

	users := api.Group("/users")
	users.Use(middleware.RequireAuth(d.Tokens))
	{
		users.GET("/me", d.Users.Me)
		users.PUT("/me", d.Users.UpdateMe)
	}

	products := api.Group("/products")
	{
		products.GET("/", d.Product.List)
		products.GET("/:id", d.Product.Get)
		products.POST("/", middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin), d.Product.Create)
		products.PUT("/:id", middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin), d.Product.Update)
		products.DELETE("/:id", middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin), d.Product.Delete)
	}

	cart := api.Group("/cart")
	{
		cart.GET("/", d.Cart.GetCart)
		cart.GET("/widget", d.Cart.Widget)
		cart.POST("/items", d.Cart.AddItem)
		cart.DELETE("/items/:index", d.Cart.RemoveItem)
		cart.DELETE("/", d.Cart.ClearCart)
	}

	orders := api.Group("/orders")
	{
		orders.POST("/checkout", d.Orders.Checkout)
		orders.GET("/", d.Orders.List)
		orders.GET("/:id", d.Orders.Get)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/intent", d.Payment.CreateIntent)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/stats", d.Admin.Stats)
	}

	email := api.Group("/email")
	{
		email.POST("/send", d.Email.Send)
		email.GET("/logs", middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin), d.Email.Logs)
	}

	contactGroup := api.Group("/contact")
	{
		contactGroup.POST("/", d.Contact.Submit)
		contactGroup.GET("/state", d.Contact.State)
	}
}
