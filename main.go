package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nazmul-4/FoodChef-server/controllers"
	"github.com/Nazmul-4/FoodChef-server/database"
	"github.com/Nazmul-4/FoodChef-server/logger"
	"github.com/Nazmul-4/FoodChef-server/metrics"
	"github.com/Nazmul-4/FoodChef-server/middleware"
	"github.com/Nazmul-4/FoodChef-server/repository"
	"github.com/Nazmul-4/FoodChef-server/routes"
	"github.com/Nazmul-4/FoodChef-server/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer zap.L().Sync()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- 1. External collaborators ---

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	verifier, err := middleware.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentialsFile, cfg.FirebaseCredentialsJSON)
	if err != nil {
		zap.L().Fatal("Failed to initialize identity provider", zap.Error(err))
	}

	stripeService := services.NewStripeService(cfg.StripeSecretKey)

	// --- 2. Dependency injection ---

	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	if err := orderRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Fatal("Failed to create order indexes", zap.Error(err))
	}
	paymentRepo := repository.NewPaymentRepository(db)
	txRunner := repository.NewTxRunner(client)

	userService := services.NewUserService(userRepo)
	mealService := services.NewMealService(mealRepo)
	orderService := services.NewOrderService(orderRepo)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, stripeService, txRunner)

	userController := controllers.NewUserController(userService)
	mealController := controllers.NewMealController(mealService)
	orderController := controllers.NewOrderController(orderService)
	paymentController := controllers.NewPaymentController(paymentService)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(logger.RequestLogger())
	r.Use(metrics.Middleware())

	// Request timeout; a slow store or gateway call fails the request instead
	// of hanging it.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route registration ---

	routes.Register(r, verifier, mealController, userController, orderController, paymentController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", metrics.Handler())

	// --- 5. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("FoodChef server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down FoodChef server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(client); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("FoodChef server stopped gracefully")
}
