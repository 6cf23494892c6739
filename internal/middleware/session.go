package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"retail_edge_front/internal/cart"
	"retail_edge_front/internal/session"
	"retail_edge_front/internal/storage"
)

const (
	cookieName = "retail_edge_session"

	ctxSessionStore = "session_store"
	ctxCartStore    = "cart_store"
)

// NewCookieStore construit le store de cookies qui relie un navigateur à ses
// enregistrements locaux (panier, session).
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Session attache à chaque requête les magasins session et panier du
// navigateur appelant. L'identifiant de session est un uuid posé en cookie ;
// les magasins sont reconstruits depuis le stockage local à chaque requête.
func Session(cookies *sessions.CookieStore, kv storage.Store, auth session.AuthAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieSess, _ := cookies.Get(c.Request, cookieName)

		sid, ok := cookieSess.Values["sid"].(string)
		if !ok || sid == "" {
			sid = uuid.NewString()
			cookieSess.Values["sid"] = sid
			if err := cookieSess.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Écriture cookie session impossible: %v", err)
			}
		}

		ctx := c.Request.Context()
		c.Set(ctxSessionStore, session.NewStore(ctx, kv, auth, sid))
		c.Set(ctxCartStore, cart.NewStore(ctx, kv, sid))
		c.Next()
	}
}

// SessionFrom renvoie le magasin de session de la requête.
func SessionFrom(c *gin.Context) *session.Store {
	return c.MustGet(ctxSessionStore).(*session.Store)
}

// CartFrom renvoie le magasin panier de la requête.
func CartFrom(c *gin.Context) *cart.Store {
	return c.MustGet(ctxCartStore).(*cart.Store)
}
