package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration du front gateway.
// Tout vient de l'environnement (ou du .env en dev).
type Config struct {
	Port          string
	PublicBaseURL string

	// API RetailEdge distante (auth, produits, commandes, inventaire, dashboard)
	APIBaseURL string

	// Stockage local persistant (panier + session)
	RedisHost     string
	RedisPassword string
	StorePath     string

	// Cookie de session navigateur
	SessionSecret string

	// Envoi du reçu de commande (optionnel)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

func Load() *Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	return &Config{
		Port:          getenv("PORT", "4200"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:4200"),
		APIBaseURL:    getenv("API_BASE_URL", "http://localhost:8080"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		StorePath:     getenv("STORE_PATH", "file://retail_edge_front.db"),
		SessionSecret: getenv("SESSION_SECRET", "retail_edge_dev_secret"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getenvInt("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      getenv("MAIL_FROM", "noreply@retailedge.shop"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s invalide (%q), valeur par défaut %d utilisée", key, v, fallback)
		return fallback
	}
	return n
}
