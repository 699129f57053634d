package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string
	Port      string
	Domain    string
	CertFile  string
	KeyFile   string
	DataDir   string
	PublicDir string
	CartFile  string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	domain := getEnv("DOMAIN", "procodrr.cloud")

	AppConfig = &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("APP_PORT", getEnv("PORT", "3000")),
		Domain:    domain,
		CertFile:  getEnv("TLS_CERT_FILE", fmt.Sprintf("/etc/letsencrypt/live/%s/fullchain.pem", domain)),
		KeyFile:   getEnv("TLS_KEY_FILE", fmt.Sprintf("/etc/letsencrypt/live/%s/privkey.pem", domain)),
		DataDir:   getEnv("DATA_DIR", "./data"),
		PublicDir: getEnv("PUBLIC_DIR", "./public"),
		CartFile:  getEnv("CART_FILE", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
