package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/api"
	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/models"
)

// GetDashboard — GET /dashboard
func (h *Handler) GetDashboard(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	metrics, err := h.Dashboard.Metrics(c.Request.Context(), sess.Token())
	if err != nil {
		log.Printf("❌ Chargement des métriques impossible: %v", err)
		c.JSON(apiStatus(err), gin.H{"error": "Chargement des métriques impossible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// GetSales — GET /dashboard/sales?period=daily|weekly|monthly|yearly
// Période par défaut : monthly, comme la vue d'origine.
func (h *Handler) GetSales(c *gin.Context) {
	period := c.DefaultQuery("period", "monthly")
	if !api.SalesPeriods[period] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Période inconnue"})
		return
	}

	sess := middleware.SessionFrom(c)
	sales, err := h.Dashboard.Sales(c.Request.Context(), sess.Token(), period)
	if err != nil {
		log.Printf("❌ Chargement des ventes (%s) impossible: %v", period, err)
		sales = nil
	}
	if sales == nil {
		sales = []models.SalesData{}
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "sales": sales})
}

// GetTopProducts — GET /dashboard/top-products
func (h *Handler) GetTopProducts(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	top, err := h.Dashboard.TopProducts(c.Request.Context(), sess.Token())
	if err != nil {
		log.Printf("❌ Chargement du top produits impossible: %v", err)
		top = nil
	}
	if top == nil {
		top = []models.TopProduct{}
	}
	c.JSON(http.StatusOK, gin.H{"topProducts": top})
}
