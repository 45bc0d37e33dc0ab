package router

import (
	"net/http"

	"github.com/Vini9-9/api-quanto-foi/internal/config"
	"github.com/Vini9-9/api-quanto-foi/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine, CORS and all product routes.
func SetupRouter(cfg *config.Config, products *handler.ProductHandler) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	// service banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "api-quanto-foi",
			"version": "1.0.0",
			"endpoints": gin.H{
				"createProduct": "POST /products",
				"createBatch":   "POST /products/batch",
				"listProducts":  "GET /products",
				"getProduct":    "GET /products/{id}",
			},
		})
	})

	r.POST("/products", products.CreateProduct)
	r.POST("/products/batch", products.CreateBatch)
	r.GET("/products", products.ListProducts)
	r.GET("/products/:id", products.GetProduct)
	r.PATCH("/products/:sku/description", products.UpdateDescription)

	r.GET("/health", products.Health)

	return r
}
