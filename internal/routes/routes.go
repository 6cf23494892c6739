package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/handlers"
	"retail_edge_front/internal/middleware"
)

// Register pose la table de routes du front : entrées publiques (login,
// register), coquille authentifiée (catalogue, panier, commandes, profil),
// vues admin (dashboard, gestion des commandes, inventaire). Tout chemin
// inconnu renvoie vers /login.
func Register(r *gin.Engine, h *handlers.Handler, sessionMW gin.HandlerFunc, allowOrigin string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(sessionMW)

	// Entrées publiques
	r.GET("/login", h.LoginView)
	r.GET("/register", h.RegisterView)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/logout", h.Logout)

	// Coquille authentifiée
	authed := r.Group("/", middleware.AuthRequired())
	{
		authed.GET("/products", h.ListProducts)
		authed.GET("/products/:id", h.GetProduct)

		authed.GET("/cart", h.GetCart)
		authed.POST("/api/cart/add", h.AddToCart)
		authed.PUT("/api/cart/items/:productId", h.UpdateCartItem)
		authed.DELETE("/api/cart/items/:productId", h.RemoveCartItem)
		authed.DELETE("/api/cart", h.ClearCart)

		authed.POST("/api/checkout", h.Checkout)

		authed.GET("/orders", h.MyOrders)
		authed.GET("/orders/:id/qr", h.OrderQR)

		authed.GET("/profile", h.Profile)
		authed.GET("/api/nav", h.Nav)
	}

	// Vues réservées aux admins
	admin := r.Group("/", middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/dashboard", h.GetDashboard)
		admin.GET("/dashboard/sales", h.GetSales)
		admin.GET("/dashboard/top-products", h.GetTopProducts)

		admin.GET("/admin/orders", h.AllOrders)
		admin.PUT("/api/admin/orders/:id/status", h.UpdateOrderStatus)

		admin.GET("/inventory", h.GetInventory)
		admin.PUT("/api/inventory/:productId/threshold", h.UpdateThreshold)

		admin.POST("/api/admin/products", h.CreateProduct)
		admin.PUT("/api/admin/products/:id", h.UpdateProduct)
		admin.DELETE("/api/admin/products/:id", h.DeleteProduct)
	}

	// Chemin inconnu : retour à l'entrée
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
}
