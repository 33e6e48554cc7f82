package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/service"
)

// Config carries the dependencies of the HTTP surface
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	// Gatherer backs /metrics; nil serves the default registry
	Gatherer prometheus.Gatherer
	// Redis is only used by the readiness probe; may be nil
	Redis *redis.Client
	// Broker carries scope change events; nil uses an in-process broker
	Broker realtime.Broker
}

// Setup wires repositories, services and handlers and registers every route
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	broker := cfg.Broker
	if broker == nil {
		broker = realtime.NewMemoryBroker(cfg.Logger)
	}

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	boardRepo := repository.NewBoardRepository(cfg.DB)
	columnRepo := repository.NewColumnRepository(cfg.DB)
	cardRepo := repository.NewCardRepository(cfg.DB)

	boardService := service.NewBoardService(boardRepo, broker, cfg.Metrics, cfg.Logger)
	columnService := service.NewColumnService(columnRepo, cardRepo, broker, cfg.Metrics, cfg.Logger)
	cardService := service.NewCardService(columnRepo, cardRepo, broker, cfg.Metrics, cfg.Logger)

	boardHandler := handler.NewBoardHandler(boardService)
	columnHandler := handler.NewColumnHandler(columnService)
	cardHandler := handler.NewCardHandler(cardService)
	eventsHandler := handler.NewEventsHandler(broker, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// probes and metrics are served at the root and under the base path, without auth
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	basePath := strings.TrimSuffix(cfg.BasePath, "/")
	api := r.Group(basePath)
	if basePath != "" {
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
		api.GET("/metrics", metricsHandler)
	}

	protected := api.Group("")
	if cfg.JWTSecret != "" {
		protected.Use(middleware.Auth(cfg.JWTSecret))
	}
	{
		protected.POST("/boards", boardHandler.CreateBoard)
		protected.GET("/boards", boardHandler.ListBoards)
		protected.GET("/boards/:boardId", boardHandler.GetBoard)
		protected.DELETE("/boards/:boardId", boardHandler.DeleteBoard)
		protected.GET("/boards/:boardId/events", eventsHandler.StreamBoardEvents)

		protected.POST("/boards/:boardId/columns", columnHandler.CreateColumn)
		protected.PUT("/boards/:boardId/columns/order", columnHandler.ReorderColumns)
		protected.GET("/columns/:columnId", columnHandler.GetColumn)
		protected.DELETE("/columns/:columnId", columnHandler.DeleteColumn)
		protected.PATCH("/columns/:columnId/wip-limit", columnHandler.UpdateWipLimit)

		protected.POST("/columns/:columnId/cards", cardHandler.CreateCard)
		protected.PUT("/columns/:columnId/cards/order", cardHandler.ReorderCards)
		protected.GET("/cards/:cardId", cardHandler.GetCard)
		protected.DELETE("/cards/:cardId", cardHandler.DeleteCard)
		protected.PATCH("/cards/:cardId/parent", cardHandler.ReassignCard)
		protected.POST("/cards/:cardId/move", cardHandler.MoveCard)
	}

	return r
}
