package http

import (
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/http/middleware"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(ch *ChatHandler, oh *OrderHandler, cah *CatalogHandler, allowOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware(), middleware.CORS(allowOrigin))

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to Kharedo E-Commerce Agent Backend!"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/chat/start", ch.StartChat)
	r.GET("/categories", cah.GetCategories)

	v1 := r.Group("/v1")
	{
		v1.GET("/catalog", cah.GetCatalog)
		v1.GET("/offers", cah.GetOffers)
		v1.POST("/orders", oh.PlaceOrder)
		v1.GET("/orders/:id", oh.GetOrderByID)
		v1.PATCH("/orders/:id", oh.UpdateOrder)
		v1.DELETE("/orders/:id", oh.CancelOrder)
	}

	return r
}
