package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docflow/cmd"
	"docflow/internal/adapters/out/miniostore"
	"docflow/internal/adapters/out/postgres/analysisrepo"
	"docflow/internal/adapters/out/postgres/documentrepo"
	"docflow/internal/adapters/out/postgres/orderrepo"
	"docflow/internal/adapters/out/postgres/paymentrepo"
	"docflow/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fileStore, err := miniostore.NewMinioFileStore(ctx, miniostore.Config{
		Endpoint:  configs.MinioEndpoint,
		AccessKey: configs.MinioAccessKey,
		SecretKey: configs.MinioSecretKey,
		Bucket:    configs.MinioBucket,
		UseSSL:    configs.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, fileStore, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		MinioEndpoint:   envOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:     envOrDefault("MINIO_BUCKET", "documents"),
		MinioUseSSL:     os.Getenv("MINIO_USE_SSL") == "true",
		StripeBaseURL:   envOrDefault("STRIPE_BASE_URL", "https://api.stripe.com"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&documentrepo.DocumentDTO{},
		&analysisrepo.AnalysisDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return gormDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateServer()
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			logger.Error("Web server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
