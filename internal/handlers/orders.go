package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/models"
	"retail_edge_front/internal/utils"
)

// MyOrders — GET /orders
func (h *Handler) MyOrders(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	orders, err := h.Orders.Mine(c.Request.Context(), sess.Token())
	if err != nil {
		log.Printf("❌ Chargement de mes commandes impossible: %v", err)
		orders = nil
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// AllOrders — GET /admin/orders
func (h *Handler) AllOrders(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	orders, err := h.Orders.All(c.Request.Context(), sess.Token())
	if err != nil {
		log.Printf("❌ Chargement des commandes impossible: %v", err)
		orders = nil
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatus — PUT /admin/orders/:id/status {status}
// La transition est demandée au serveur puis la liste est relue entière.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var input models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut de commande inconnu"})
		return
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	order, err := h.Orders.UpdateStatus(ctx, sess.Token(), c.Param("id"), input.Status)
	if err != nil {
		log.Printf("❌ Changement de statut de %s impossible: %v", c.Param("id"), err)
		c.JSON(apiStatus(err), gin.H{"error": "Changement de statut impossible"})
		return
	}

	// Même contrat que les vues liste : relecture en échec ⇒ liste vide,
	// jamais null
	orders, err := h.Orders.All(ctx, sess.Token())
	if err != nil {
		log.Printf("⚠️ Relecture des commandes après changement de statut impossible: %v", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "orders": orders})
}

// OrderQR — GET /orders/:id/qr
// QR code PNG du lien de suivi, affiché sur la confirmation de commande.
func (h *Handler) OrderQR(c *gin.Context) {
	trackingURL := h.PublicBaseURL + "/orders/" + c.Param("id")

	png, err := utils.OrderQR(trackingURL)
	if err != nil {
		log.Printf("❌ Génération QR impossible pour %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Génération du QR code impossible"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
