package main

import (
	"log"
	"net/http"

	"techstore/config"
	_ "techstore/docs"
	"techstore/middleware"
	"techstore/routes"

	"github.com/gin-gonic/gin"
)

// @title TechStore API
// @version 1.0
// @description Read-only product and user catalog for the TechStore demo.
// @BasePath /
func main() {
	config.LoadConfig()

	isProd := config.AppConfig.AppEnv == "production"
	if isProd {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	if !isProd {
		port := ":" + config.AppConfig.Port
		log.Printf("Dev HTTP running on http://localhost%s", port)
		if err := router.Run(port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
		return
	}

	// Production: HTTPS on 443 plus a plain-HTTP listener on 80 that
	// only redirects.
	go func() {
		redirect := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := r.Host
			if host == "" {
				host = config.AppConfig.Domain
			}
			http.Redirect(w, r, "https://"+host+r.URL.RequestURI(), http.StatusMovedPermanently)
		})
		log.Println("HTTP redirect running on port 80")
		if err := http.ListenAndServe(":80", redirect); err != nil {
			log.Fatalf("Failed to start redirect server: %v", err)
		}
	}()

	log.Printf("HTTPS running on https://%s", config.AppConfig.Domain)
	if err := router.RunTLS(":443", config.AppConfig.CertFile, config.AppConfig.KeyFile); err != nil {
		log.Fatalf("Failed to start HTTPS server: %v", err)
	}
}
