package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/cart"
	"retail_edge_front/internal/middleware"
)

// GetCart — GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartState(middleware.CartFrom(c)))
}

// AddToCart — POST /api/cart/add {productId, quantity}
// L'instantané produit est relu chez l'API au moment de l'ajout. Aucune
// vérification du stock demandé : le serveur tranchera à la commande.
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit requis"})
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	sess := middleware.SessionFrom(c)
	product, err := h.Products.Get(c.Request.Context(), sess.Token(), input.ProductID)
	if err != nil {
		log.Printf("❌ Produit %s introuvable pour ajout panier: %v", input.ProductID, err)
		c.JSON(apiStatus(err), gin.H{"error": "Produit introuvable"})
		return
	}

	cartStore := middleware.CartFrom(c)
	cartStore.AddToCart(c.Request.Context(), *product, input.Quantity)
	c.JSON(http.StatusOK, cartState(cartStore))
}

// UpdateCartItem — PUT /api/cart/items/:productId {quantity}
// Quantité ≤ 0 : la ligne est retirée.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	cartStore := middleware.CartFrom(c)
	cartStore.UpdateQuantity(c.Request.Context(), c.Param("productId"), input.Quantity)
	c.JSON(http.StatusOK, cartState(cartStore))
}

// RemoveCartItem — DELETE /api/cart/items/:productId
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cartStore := middleware.CartFrom(c)
	cartStore.RemoveFromCart(c.Request.Context(), c.Param("productId"))
	c.JSON(http.StatusOK, cartState(cartStore))
}

// ClearCart — DELETE /api/cart
func (h *Handler) ClearCart(c *gin.Context) {
	cartStore := middleware.CartFrom(c)
	cartStore.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, cartState(cartStore))
}

func cartState(s *cart.Store) gin.H {
	return gin.H{
		"items":     s.Items(),
		"itemCount": s.ItemCount(),
		"total":     s.Total(),
	}
}
