package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired vérifie que la session porte le rôle admin. Un utilisateur
// connecté mais non admin est renvoyé vers le catalogue, pas vers /login.
// S'évalue toujours après AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).IsAdmin() {
			deny(c, http.StatusForbidden, "/products", "Accès réservé aux administrateurs")
			return
		}
		c.Next()
	}
}
