package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/delivery/http/handlers"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/delivery/http/middleware"
)

type RouterDeps struct {
	Payments    *handlers.PaymentHandler
	Credentials *handlers.CredentialsHandler
	Documents   *handlers.DocumentHandler
	AdminToken  string
	Logger      *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/payments/:gateway", deps.Payments.InitPayment)
		// Gateways deliver callbacks as browser redirects (GET) and as
		// server-to-server IPN posts.
		api.GET("/payments/:gateway/callback", deps.Payments.Callback)
		api.POST("/payments/:gateway/callback", deps.Payments.Callback)

		api.POST("/documents/invoice", deps.Documents.GenerateInvoice)
		api.POST("/documents/delivery-slip", deps.Documents.GenerateDeliverySlip)

		admin := api.Group("/admin", middleware.AdminAuth(deps.AdminToken))
		admin.POST("/credentials/encrypt", deps.Credentials.EncryptCredentials)
	}

	return router
}
