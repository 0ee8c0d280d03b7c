package main

import (
	"log"
	"time"

	"boutique-backend/internal/config"
	"boutique-backend/internal/controllers/http"
	"boutique-backend/internal/infra"
	mmysql "boutique-backend/internal/infra/mysql"
	"boutique-backend/internal/infra/rabbitmq"
	"boutique-backend/internal/middleware"
	mysqlrepo "boutique-backend/internal/repository/mysql"
	"boutique-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := mmysql.NewMySQL(cfg.MySQL)
	if err != nil {
		logger.Fatal("db: connect", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db, logger)
	productRepo := mysqlrepo.NewProductRepository(db, logger)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
	if err != nil {
		logger.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	mailer := infra.NewSMTPMailer(cfg.SMTP)
	translator := infra.NewTranslationClient(cfg.TranslatorURL, 5*time.Second, logger)

	orderService := services.NewOrderService(orderRepo, productRepo, publisher, logger)
	productService := services.NewProductService(productRepo, translator, logger)
	notificationService := services.NewNotificationService(orderRepo, productRepo, mailer, logger)
	statsService := services.NewStatsService(orderRepo, productRepo, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	orderService.SetRedisClient(redisClient)

	handler := http.NewHandler(orderService, productService, notificationService, statsService, logger)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", middleware.PrometheusHandler())

	handler.RegisterRoutes(r)

	logger.Info("starting boutique backend", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
