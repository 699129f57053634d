package api

import (
	"net/http"
	"sync"

	"techstore/config"
	_ "techstore/docs"
	"techstore/middleware"
	"techstore/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.RequestIDMiddleware())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

// Handler is the serverless entrypoint; TLS is the platform's problem
// there, so the redirect listener from main.go is not wired in.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
