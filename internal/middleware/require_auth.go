package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthRequired refuse toute navigation sans session active : redirection vers
// l'entrée /login pour les vues, 401 JSON pour les appels /api.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).IsLoggedIn() {
			deny(c, http.StatusUnauthorized, "/login", "non authentifié")
			return
		}
		c.Next()
	}
}

func deny(c *gin.Context, status int, redirect, message string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(status, gin.H{"error": message})
	} else {
		c.Redirect(http.StatusFound, redirect)
	}
	c.Abort()
}
