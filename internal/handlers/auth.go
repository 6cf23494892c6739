package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/models"
)

// LoginView — GET /login
// Entrée publique : la cible de toutes les redirections de refus doit
// répondre 200, jamais rediriger à son tour.
func (h *Handler) LoginView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"view":   "login",
		"fields": []string{"email", "password"},
		"submit": "/api/auth/login",
	})
}

// RegisterView — GET /register
func (h *Handler) RegisterView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"view":   "register",
		"fields": []string{"name", "email", "password"},
		"submit": "/api/auth/register",
	})
}

// Login — POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var creds models.LoginRequest
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if creds.Email == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	sess := middleware.SessionFrom(c)
	resp, err := sess.Login(c.Request.Context(), creds)
	if err != nil {
		log.Printf("❌ Échec login %s: %v", creds.Email, err)
		c.JSON(apiStatus(err), gin.H{"error": "Identifiants incorrects"})
		return
	}

	log.Printf("✅ Connexion de %s", resp.Email)
	c.JSON(http.StatusOK, gin.H{
		"user":     sess.CurrentUser(),
		"redirect": landingFor(sess.IsAdmin()),
	})
}

// Register — POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var profile models.RegisterRequest
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if profile.Name == "" || profile.Email == "" || profile.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom, email et mot de passe requis"})
		return
	}

	sess := middleware.SessionFrom(c)
	resp, err := sess.Register(c.Request.Context(), profile)
	if err != nil {
		log.Printf("❌ Échec inscription %s: %v", profile.Email, err)
		c.JSON(apiStatus(err), gin.H{"error": "Inscription impossible"})
		return
	}

	log.Printf("✅ Inscription de %s", resp.Email)
	c.JSON(http.StatusOK, gin.H{
		"user":     sess.CurrentUser(),
		"redirect": "/products",
	})
}

// Logout — POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	sess.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

// landingFor : l'admin atterrit sur le dashboard, le client sur le catalogue.
func landingFor(isAdmin bool) string {
	if isAdmin {
		return "/dashboard"
	}
	return "/products"
}
