// Package api is the stateless HTTP surface: each handler delegates to one
// service and maps its result to a response.
package api

import (
	"net/http"
	"time"

	"github.com/example/cravecurve/pkg/config"
	"github.com/example/cravecurve/pkg/service"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *gin.Engine
	catalog  *service.CatalogService
	cart     *service.CartService
	orders   *service.OrderService
	comments *service.CommentService
}

func NewServer(cfg *config.Config, logger *zap.Logger, catalog *service.CatalogService, cart *service.CartService, orders *service.OrderService, comments *service.CommentService) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	s := &Server{
		config:   cfg,
		logger:   logger,
		router:   router,
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		comments: comments,
	}
	s.setupRoutes()
	return s
}

func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	products := s.router.Group("/products")
	{
		products.POST("", s.createProduct)
		products.GET("", s.listProducts)
		products.GET("/:id", s.getProduct)
		products.PUT("/:id", s.updateProduct)
		products.DELETE("/:id", s.deleteProduct)

		products.GET("/:id/comments", s.listComments)
		products.POST("/:id/comments", s.addComment)
	}

	cart := s.router.Group("/cart")
	{
		cart.POST("", s.addToCart)
		cart.GET("", s.listCart)
		cart.DELETE("/:productId", s.removeFromCart)
	}

	orders := s.router.Group("/orders")
	{
		orders.POST("", s.placeOrder)
		orders.GET("", s.listOrders)
		orders.PUT("/:id/status", s.setOrderStatus)
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
