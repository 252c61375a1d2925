// Package server exposes the storefront as a JSON API over gin. Every
// handler follows the same shape: bind a typed request, run one service
// operation, surface the result as a structured success/failure payload.
package server

import (
	"time"

	"roll-point/config"
	"roll-point/notify"
	"roll-point/services"
	"roll-point/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	accounts *services.Accounts
	orders   *services.Orders
	intake   *services.Intake
	sessions session.Store
	notifier *notify.Notifier

	adminEmail string
	cookieName string
	cookieTTL  time.Duration
}

func New(cfg *config.Config, accounts *services.Accounts, orders *services.Orders,
	intake *services.Intake, sessions session.Store, notifier *notify.Notifier) *Server {
	return &Server{
		accounts:   accounts,
		orders:     orders,
		intake:     intake,
		sessions:   sessions,
		notifier:   notifier,
		adminEmail: cfg.AdminEmail,
		cookieName: cfg.Session.CookieName,
		cookieTTL:  cfg.Session.TTL,
	}
}

// Router builds the gin engine with CORS, the session stage and all routes.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(s.withSession())

	api := router.Group("/api")
	{
		api.POST("/signup", s.handleSignup)
		api.POST("/login", s.handleLogin)
		api.POST("/logout", s.handleLogout)
		api.GET("/check-auth", s.handleCheckAuth)
		api.POST("/check-email", s.handleCheckEmail)
		api.POST("/check-phone", s.handleCheckPhone)
		api.GET("/reviews", s.handleListReviews)

		authed := api.Group("", s.requireAuth())
		{
			authed.GET("/menu", s.handleMenu)
			authed.GET("/drinks", s.handleDrinks)
			authed.GET("/ingredients", s.handleIngredients)

			authed.POST("/add_to_cart", s.handleAddToCart)
			authed.POST("/update_cart_qty", s.handleUpdateCartQty)
			authed.POST("/remove_cart_item", s.handleRemoveCartItem)
			authed.POST("/add_custom_roll", s.handleAddCustomRoll)
			authed.GET("/get_cart_info", s.handleGetCartInfo)

			authed.POST("/place_order", s.handlePlaceOrder)
			authed.GET("/get-orders", s.handleGetOrders)
			authed.GET("/order_details/:order_id", s.handleOrderDetails)
			authed.POST("/orders/:order_id/status", s.handleUpdateOrderStatus)

			authed.GET("/get-user-info", s.handleGetUserInfo)
			authed.POST("/update_profile", s.handleUpdateProfile)

			authed.POST("/submit-review", s.handleSubmitReview)
			authed.POST("/submit-contact", s.handleSubmitContact)
		}
	}
	return router
}
