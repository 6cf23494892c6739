package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"retail_edge_front/internal/api"
	"retail_edge_front/internal/config"
	"retail_edge_front/internal/handlers"
	"retail_edge_front/internal/middleware"
	"retail_edge_front/internal/routes"
	"retail_edge_front/internal/storage"
	"retail_edge_front/internal/utils"
)

func main() {
	cfg := config.Load()

	kv := openStorage(cfg)
	defer kv.Close()

	gw := api.NewGateway(cfg.APIBaseURL)
	log.Println("✅ API RetailEdge ciblée:", cfg.APIBaseURL)

	h := &handlers.Handler{
		Products:      api.NewProductsClient(gw),
		Orders:        api.NewOrdersClient(gw),
		Inventory:     api.NewInventoryClient(gw),
		Dashboard:     api.NewDashboardClient(gw),
		Mailer:        utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom),
		PublicBaseURL: cfg.PublicBaseURL,
	}
	if h.Mailer == nil {
		log.Println("⚠️ SMTP non configuré — les reçus de commande ne seront pas envoyés")
	}

	cookies := middleware.NewCookieStore(cfg.SessionSecret)
	sessionMW := middleware.Session(cookies, kv, api.NewAuthClient(gw))

	r := gin.Default()
	routes.Register(r, h, sessionMW, cfg.PublicBaseURL)

	log.Println("🚀 Front RetailEdge lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}

// openStorage choisit l'adaptateur de persistance locale : Redis si configuré,
// sinon la base stoolap embarquée dans un fichier local.
func openStorage(cfg *config.Config) storage.Store {
	if cfg.RedisHost != "" {
		kv, err := storage.NewRedis(cfg.RedisHost, cfg.RedisPassword)
		if err != nil {
			log.Fatal("❌ Impossible d'initialiser Redis: ", err)
		}
		return kv
	}

	kv, err := storage.NewStoolap(cfg.StorePath)
	if err != nil {
		log.Fatal("❌ Impossible d'ouvrir le stockage local: ", err)
	}
	return kv
}
