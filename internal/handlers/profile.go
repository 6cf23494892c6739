package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/middleware"
)

// Profile — GET /profile
func (h *Handler) Profile(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": sess.CurrentUser()})
}

// Nav — GET /api/nav
// Alimente la coquille de navigation : entrées selon le rôle + badge panier.
func (h *Handler) Nav(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	cartStore := middleware.CartFrom(c)

	entries := []gin.H{
		{"label": "Catalogue", "path": "/products"},
		{"label": "Panier", "path": "/cart"},
		{"label": "Mes commandes", "path": "/orders"},
		{"label": "Profil", "path": "/profile"},
	}
	if sess.IsAdmin() {
		entries = append(entries,
			gin.H{"label": "Dashboard", "path": "/dashboard"},
			gin.H{"label": "Commandes", "path": "/admin/orders"},
			gin.H{"label": "Inventaire", "path": "/inventory"},
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":   entries,
		"cartCount": cartStore.ItemCount(),
		"isAdmin":   sess.IsAdmin(),
		"user":      sess.CurrentUser(),
	})
}
