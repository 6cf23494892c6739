package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/models"
)

// Checkout — POST /api/checkout
// Paiement simulé : la commande part telle quelle à l'API, qui reste seule
// juge du stock. Succès : panier vidé, reçu envoyé (si SMTP), QR de suivi.
// Échec : le panier reste intact et l'erreur est affichée en bannière.
func (h *Handler) Checkout(c *gin.Context) {
	cartStore := middleware.CartFrom(c)
	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	items := cartStore.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le panier est vide"})
		return
	}

	req := models.OrderRequest{Items: make([]models.OrderItemRequest, 0, len(items))}
	for _, item := range items {
		req.Items = append(req.Items, models.OrderItemRequest{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.Orders.Place(ctx, sess.Token(), req)
	if err != nil {
		log.Printf("❌ Commande refusée: %v", err)
		c.JSON(apiStatus(err), gin.H{"error": "La commande n'a pas pu être passée"})
		return
	}

	cartStore.ClearCart(ctx)
	log.Printf("✅ Commande %s passée (%.2f€)", order.ID, order.Total)

	// Reçu par e-mail, sans bloquer la réponse ni faire échouer la commande
	if h.Mailer != nil {
		if user := sess.CurrentUser(); user != nil && user.Email != "" {
			go func(email string, o models.Order) {
				if err := h.Mailer.SendOrderReceipt(email, o); err != nil {
					log.Printf("⚠️ Envoi du reçu à %s impossible: %v", email, err)
				}
			}(user.Email, *order)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order":     order,
		"qrUrl":     "/orders/" + order.ID + "/qr",
		"itemCount": cartStore.ItemCount(),
	})
}
