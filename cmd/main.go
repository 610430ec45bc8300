package main

import (
	"net/http"

	cartapp "github.com/cafelumiere/cafe-api/application/cart"
	checkoutapp "github.com/cafelumiere/cafe-api/application/checkout"
	productapp "github.com/cafelumiere/cafe-api/application/product"
	userapp "github.com/cafelumiere/cafe-api/application/user"
	"github.com/cafelumiere/cafe-api/cmd/config"
	redisclient "github.com/cafelumiere/cafe-api/cmd/redis"
	_ "github.com/cafelumiere/cafe-api/docs"
	cartRepo "github.com/cafelumiere/cafe-api/repository/cart"
	categoryRepo "github.com/cafelumiere/cafe-api/repository/category"
	orderRepo "github.com/cafelumiere/cafe-api/repository/order"
	productRepo "github.com/cafelumiere/cafe-api/repository/product"
	redisRepo "github.com/cafelumiere/cafe-api/repository/redis"
	txRepo "github.com/cafelumiere/cafe-api/repository/tx"
	userRepo "github.com/cafelumiere/cafe-api/repository/user"
	"github.com/cafelumiere/cafe-api/thirdparty/rabbitmq"
	"github.com/cafelumiere/cafe-api/transport"
	"github.com/cafelumiere/cafe-api/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title Cafe Lumiere API
// @version 1.0
// @description Cafe Lumiere e-commerce API: catalog, cart, checkout, promo codes
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// RabbitMQ is optional: orders still commit when the broker is down,
	// only the notification events are skipped.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo, publisher)
	ProductApp := productapp.NewProductApp(ProductRepo, CategoryRepo)
	CartApp := cartapp.NewCartApp(CartRepo, ProductRepo)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, TxRepo, CartRepo, ProductRepo, OrderRepo, UserRepo, publisher)

	httpTransport := transport.NewTransport(UserApp, ProductApp, CartApp, CheckoutApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
