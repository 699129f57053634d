package routes

import (
	"net/http"
	"path/filepath"

	"techstore/config"
	"techstore/controllers"
	"techstore/repositories"
	"techstore/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	catalog := services.NewCatalogService(repositories.NewCatalogStore(config.AppConfig.DataDir))
	productCtrl := controllers.NewProductController(catalog)
	userCtrl := controllers.NewUserController(catalog)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", productCtrl.GetAllProducts)
		api.GET("/products/category/:category", productCtrl.GetProductsByCategory)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.GET("/users", userCtrl.GetAllUsers)
		api.GET("/users/:id", userCtrl.GetUserByID)
	}

	publicDir := config.AppConfig.PublicDir
	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(publicDir, "index.html"))
	})
	router.GET("/cart", func(c *gin.Context) {
		c.File(filepath.Join(publicDir, "cart.html"))
	})
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(publicDir))))
}
