package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"dispatch/api"
	"dispatch/cmd"
	_ "dispatch/docs"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title			Dispatch Marketplace API
// @version		1.0.0
// @description	Order lifecycle API for the courier dispatch marketplace.
// @BasePath		/api/v1
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if _, err := api.Load(); err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}

	app := cmd.NewCompositionRoot(configs)

	if configs.PendingOrderTTL != "" {
		ttl, err := time.ParseDuration(configs.PendingOrderTTL)
		if err != nil {
			log.Fatalf("Invalid PENDING_ORDER_TTL: %v", err)
		}

		jobManager := jobs.NewJobManager(app.CreateExpireStaleOrdersCommandHandler(), ttl, logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		PendingOrderTTL: os.Getenv("PENDING_ORDER_TTL"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Raw())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateStartWorkCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		app.CreateGetCourierActiveOrdersQueryHandler(),
		app.CreateGetCourierHistoryQueryHandler(),
		app.CreateGetCourierStatsQueryHandler(),
		app.CreateGetClientActiveOrdersQueryHandler(),
		app.CreateGetClientHistoryQueryHandler(),
		app.CreateGetPublicReviewsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
