package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/models"
)

// ListProducts — GET /products?search=&category=
// Vue liste : une erreur API est loggée et la vue dégrade en catalogue vide.
func (h *Handler) ListProducts(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	cartStore := middleware.CartFrom(c)

	search := c.Query("search")
	category := c.Query("category")

	products, err := h.Products.List(c.Request.Context(), sess.Token(), search, category)
	if err != nil {
		log.Printf("❌ Chargement produits impossible: %v", err)
		products = nil
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":  products,
		"cartCount": cartStore.ItemCount(),
	})
}

// GetProduct — GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	product, err := h.Products.Get(c.Request.Context(), sess.Token(), c.Param("id"))
	if err != nil {
		log.Printf("❌ Chargement produit %s impossible: %v", c.Param("id"), err)
		c.JSON(apiStatus(err), gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct — POST /admin/products
// Mutation admin : création puis relecture complète du catalogue.
func (h *Handler) CreateProduct(c *gin.Context) {
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	product, err := h.Products.Create(ctx, sess.Token(), req)
	if err != nil {
		log.Printf("❌ Création produit impossible: %v", err)
		c.JSON(apiStatus(err), gin.H{"error": "Création du produit impossible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "products": h.refetchProducts(c, "création")})
}

// UpdateProduct — PUT /admin/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	product, err := h.Products.Update(ctx, sess.Token(), c.Param("id"), req)
	if err != nil {
		log.Printf("❌ Modification produit %s impossible: %v", c.Param("id"), err)
		c.JSON(apiStatus(err), gin.H{"error": "Modification du produit impossible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "products": h.refetchProducts(c, "modification")})
}

// DeleteProduct — DELETE /admin/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	if err := h.Products.Delete(ctx, sess.Token(), c.Param("id")); err != nil {
		log.Printf("❌ Suppression produit %s impossible: %v", c.Param("id"), err)
		c.JSON(apiStatus(err), gin.H{"error": "Suppression du produit impossible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": h.refetchProducts(c, "suppression")})
}

// refetchProducts relit le catalogue après une mutation admin. Comme les vues
// liste, une relecture en échec dégrade en liste vide, jamais en null.
func (h *Handler) refetchProducts(c *gin.Context, action string) []models.Product {
	sess := middleware.SessionFrom(c)
	products, err := h.Products.List(c.Request.Context(), sess.Token(), "", "")
	if err != nil {
		log.Printf("⚠️ Relecture catalogue après %s impossible: %v", action, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

// bindProductRequest valide le formulaire produit avant tout appel réseau.
func bindProductRequest(c *gin.Context) (models.ProductRequest, bool) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return req, false
	}
	switch {
	case req.Name == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom du produit est requis"})
	case req.Price < 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix ne peut pas être négatif"})
	case req.Stock < 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le stock ne peut pas être négatif"})
	case req.LowStockThreshold < 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le seuil ne peut pas être négatif"})
	default:
		return req, true
	}
	return req, false
}
