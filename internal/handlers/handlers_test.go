package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail_edge_front/internal/api"
	"retail_edge_front/internal/handlers"
	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/models"
	"retail_edge_front/internal/routes"
	"retail_edge_front/internal/storage"
)

// fakeRetailEdgeAPI simule l'API distante : login par email (admin@… reçoit le
// rôle admin), catalogue fixe, commandes acceptées telles quelles.
func fakeRetailEdgeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	signToken := func(email string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": email,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("secret_api_test"))
		require.NoError(t, err)
		return signed
	}

	products := []models.Product{
		{ID: "p1", Name: "Clavier", Category: "informatique", Price: 500, Stock: 10, LowStockThreshold: 2},
		{ID: "p2", Name: "Souris", Category: "informatique", Price: 100, Stock: 1, LowStockThreshold: 3},
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Identifiants incorrects"})
			return
		}
		roles := []string{models.RoleCustomer}
		if strings.HasPrefix(creds.Email, "admin@") {
			roles = []string{models.RoleAdmin, models.RoleCustomer}
		}
		json.NewEncoder(w).Encode(models.JwtResponse{
			Token: signToken(creds.Email),
			ID:    "u-" + creds.Email,
			Email: creds.Email,
			Name:  "Testeur",
			Roles: roles,
		})
	})

	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(products)
	})

	mux.HandleFunc("GET /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range products {
			if p.ID == r.PathValue("id") {
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Produit introuvable"})
	})

	mux.HandleFunc("POST /api/orders/place", func(w http.ResponseWriter, r *http.Request) {
		var req models.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		order := models.Order{
			ID:           "o1",
			CustomerName: "Testeur",
			Date:         time.Now().Format(time.RFC3339),
			Status:       models.OrderPending,
		}
		for _, item := range req.Items {
			for _, p := range products {
				if p.ID == item.ProductID {
					order.Items = append(order.Items, models.OrderItem{
						ProductID:   p.ID,
						ProductName: p.Name,
						Quantity:    item.Quantity,
						Price:       p.Price,
					})
					order.Total += p.Price * float64(item.Quantity)
				}
			}
		}
		json.NewEncoder(w).Encode(order)
	})

	mux.HandleFunc("GET /api/inventory", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.InventoryItem{
			{ProductID: "p1", ProductName: "Clavier", Stock: 10, LowStockThreshold: 2},
			{ProductID: "p2", ProductName: "Souris", Stock: 1, LowStockThreshold: 3},
		})
	})

	mux.HandleFunc("GET /api/dashboard/metrics", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.KeyMetrics{TotalRevenue: 1500, TotalOrders: 1, NewCustomers: 2})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestFront(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	apiSrv := fakeRetailEdgeAPI(t)
	gw := api.NewGateway(apiSrv.URL)

	h := &handlers.Handler{
		Products:      api.NewProductsClient(gw),
		Orders:        api.NewOrdersClient(gw),
		Inventory:     api.NewInventoryClient(gw),
		Dashboard:     api.NewDashboardClient(gw),
		PublicBaseURL: "http://localhost:4200",
	}

	cookies := middleware.NewCookieStore("secret_front_test")
	sessionMW := middleware.Session(cookies, storage.NewMemory(), api.NewAuthClient(gw))

	r := gin.New()
	routes.Register(r, h, sessionMW, "http://localhost:4200")
	return r
}

// browser rejoue les requêtes en conservant le cookie de session, comme un
// vrai navigateur.
type browser struct {
	t       *testing.T
	r       *gin.Engine
	cookies []*http.Cookie
}

func (b *browser) do(method, path string, body any) *httptest.ResponseRecorder {
	b.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(b.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)

	if cs := w.Result().Cookies(); len(cs) > 0 {
		b.cookies = cs
	}
	return w
}

func (b *browser) login(email string) {
	b.t.Helper()
	w := b.do(http.MethodPost, "/api/auth/login", models.LoginRequest{Email: email, Password: "motdepasse"})
	require.Equal(b.t, http.StatusOK, w.Code, w.Body.String())
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLoginEntryIsPublicAndTerminates(t *testing.T) {
	// /login est la cible de toutes les redirections de refus : elle doit
	// répondre 200 sans session, jamais rediriger vers elle-même.
	b := &browser{t: t, r: newTestFront(t)}

	w := b.do(http.MethodGet, "/login", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, "login", decodeBody(t, w)["view"])

	w = b.do(http.MethodGet, "/register", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "register", decodeBody(t, w)["view"])

	// Même connecté, l'entrée reste accessible
	b.login("client@retailedge.shop")
	w = b.do(http.MethodGet, "/login", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnonymousDashboardRedirectsToLogin(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}

	w := b.do(http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestCustomerInventoryRedirectsToCatalog(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("client@retailedge.shop")

	w := b.do(http.MethodGet, "/inventory", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))

	// Le même client passe sur les vues non admin
	w = b.do(http.MethodGet, "/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnonymousInventoryRedirectsToLoginNotCatalog(t *testing.T) {
	// L'ordre des gardes compte : sans session on part vers /login,
	// pas vers /products.
	b := &browser{t: t, r: newTestFront(t)}

	w := b.do(http.MethodGet, "/inventory", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdminReachesAdminViews(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("admin@retailedge.shop")

	w := b.do(http.MethodGet, "/inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["lowStockCount"])

	w = b.do(http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAPIDenialsAreJSON(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}

	w := b.do(http.MethodPost, "/api/checkout", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestUnknownPathRedirectsToLogin(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}

	w := b.do(http.MethodGet, "/nimporte/quoi", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestCartFlowAcrossRequests(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("client@retailedge.shop")

	// Ajout 1 puis 2 exemplaires : une seule ligne, quantité 3, total 1500
	w := b.do(http.MethodPost, "/api/cart/add", gin.H{"productId": "p1", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = b.do(http.MethodPost, "/api/cart/add", gin.H{"productId": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["itemCount"])
	assert.Equal(t, float64(1500), body["total"])
	assert.Len(t, body["items"], 1)

	// Quantité à 0 : la ligne disparaît
	w = b.do(http.MethodPut, "/api/cart/items/p1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(0), body["itemCount"])
	assert.Empty(t, body["items"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("client@retailedge.shop")

	w := b.do(http.MethodPost, "/api/cart/add", gin.H{"productId": "absent", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutClearsCartAndKeepsSession(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("client@retailedge.shop")

	w := b.do(http.MethodPost, "/api/cart/add", gin.H{"productId": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = b.do(http.MethodPost, "/api/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["itemCount"])
	assert.Equal(t, "/orders/o1/qr", body["qrUrl"])

	order := body["order"].(map[string]any)
	assert.Equal(t, "o1", order["id"])
	assert.Equal(t, float64(1000), order["total"])

	// Panier vidé, session intacte
	w = b.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["itemCount"])

	w = b.do(http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "client@retailedge.shop", user["email"])
}

func TestCheckoutEmptyCartRejectedBeforeNetwork(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("client@retailedge.shop")

	w := b.do(http.MethodPost, "/api/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("client@retailedge.shop")

	w := b.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", decodeBody(t, w)["redirect"])

	w = b.do(http.MethodGet, "/products", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// fakeBrokenListsAPI accepte les mutations mais échoue sur toutes les
// relectures de liste.
func fakeBrokenListsAPI(t *testing.T) *httptest.Server {
	t.Helper()

	fail := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "indisponible"})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": creds.Email,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("secret_api_test"))
		require.NoError(t, err)
		json.NewEncoder(w).Encode(models.JwtResponse{
			Token: signed, ID: "u1", Email: creds.Email, Name: "Admin",
			Roles: []string{models.RoleAdmin},
		})
	})
	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Product{ID: "p9", Name: "Écran", Price: 200})
	})
	mux.HandleFunc("GET /api/products", fail)
	mux.HandleFunc("PUT /api/orders/o1/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Order{ID: "o1", Status: models.OrderShipped})
	})
	mux.HandleFunc("GET /api/orders", fail)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMutationRefetchFailureYieldsEmptyListNotNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gw := api.NewGateway(fakeBrokenListsAPI(t).URL)

	h := &handlers.Handler{
		Products:      api.NewProductsClient(gw),
		Orders:        api.NewOrdersClient(gw),
		Inventory:     api.NewInventoryClient(gw),
		Dashboard:     api.NewDashboardClient(gw),
		PublicBaseURL: "http://localhost:4200",
	}
	cookies := middleware.NewCookieStore("secret_front_test")
	sessionMW := middleware.Session(cookies, storage.NewMemory(), api.NewAuthClient(gw))
	r := gin.New()
	routes.Register(r, h, sessionMW, "http://localhost:4200")

	b := &browser{t: t, r: r}
	b.login("admin@retailedge.shop")

	// Création produit : la relecture échoue, la réponse porte [] et pas null
	w := b.do(http.MethodPost, "/api/admin/products", models.ProductRequest{Name: "Écran", Price: 200})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	require.Contains(t, body, "products")
	assert.NotNil(t, body["products"])
	assert.Empty(t, body["products"])

	// Même contrat pour le changement de statut de commande
	w = b.do(http.MethodPut, "/api/admin/orders/o1/status", models.UpdateOrderStatusRequest{Status: models.OrderShipped})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(t, w)
	require.Contains(t, body, "orders")
	assert.NotNil(t, body["orders"])
	assert.Empty(t, body["orders"])
}

func TestOrderQRIsPNG(t *testing.T) {
	b := &browser{t: t, r: newTestFront(t)}
	b.login("client@retailedge.shop")

	w := b.do(http.MethodGet, "/orders/o1/qr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}
