package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/models"
)

// inventoryRow décore chaque article de sa classification stock bas.
type inventoryRow struct {
	models.InventoryItem
	LowStock bool `json:"lowStock"`
}

func inventoryRows(items []models.InventoryItem) []inventoryRow {
	rows := make([]inventoryRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, inventoryRow{InventoryItem: item, LowStock: item.IsLowStock()})
	}
	return rows
}

// GetInventory — GET /inventory
func (h *Handler) GetInventory(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	items, err := h.Inventory.List(c.Request.Context(), sess.Token())
	if err != nil {
		log.Printf("❌ Chargement inventaire impossible: %v", err)
		items = nil
	}

	lowCount := 0
	for _, item := range items {
		if item.IsLowStock() {
			lowCount++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         inventoryRows(items),
		"lowStockCount": lowCount,
	})
}

// UpdateThreshold — PUT /inventory/:productId/threshold {threshold}
// Mutation admin : mise à jour puis relecture complète de l'inventaire.
func (h *Handler) UpdateThreshold(c *gin.Context) {
	var input models.UpdateThresholdRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Threshold < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le seuil ne peut pas être négatif"})
		return
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	item, err := h.Inventory.UpdateThreshold(ctx, sess.Token(), c.Param("productId"), input.Threshold)
	if err != nil {
		log.Printf("❌ Mise à jour du seuil de %s impossible: %v", c.Param("productId"), err)
		c.JSON(apiStatus(err), gin.H{"error": "Mise à jour du seuil impossible"})
		return
	}

	items, err := h.Inventory.List(ctx, sess.Token())
	if err != nil {
		log.Printf("⚠️ Relecture inventaire après mise à jour impossible: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"item": item, "items": inventoryRows(items)})
}
