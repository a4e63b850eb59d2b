package main

import (
	"context"
	"log"
	"os"

	"github.com/AkumaMonarch/NekoEats/external/storage"
	"github.com/AkumaMonarch/NekoEats/external/webhook"

	"github.com/AkumaMonarch/NekoEats/internal/db"
	"github.com/AkumaMonarch/NekoEats/internal/realtime"
	"github.com/AkumaMonarch/NekoEats/internal/repository"
	"github.com/AkumaMonarch/NekoEats/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	webhookClient := webhook.NewClient()

	var storageClient *storage.Client
	if os.Getenv("SUPABASE_URL") != "" {
		storageClient, err = storage.NewClient()
		if err != nil {
			log.Fatal(err)
		}
	}

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo)
	menuSvc := services.NewMenuService(menuRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo, orderRepo, settingsRepo, webhookClient)
	orderSvc := services.NewOrderService(orderRepo)
	settingsSvc := services.NewSettingsService(settingsRepo)
	reportSvc := services.NewReportService(orderRepo)

	if err := authSvc.EnsureSeedAdmin(context.Background(),
		os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal(err)
	}

	// ======================
	// REALTIME
	// ======================
	hub := realtime.NewHub()
	listenerCtx, stopListener := context.WithCancel(context.Background())
	defer stopListener()
	go realtime.NewListener(pool, hub).Run(listenerCtx)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/neko-eats")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerMenuRoutes(api, menuSvc)
	registerCategoryRoutes(api, categorySvc)
	registerCartRoutes(api, cartSvc)
	registerOrderRoutes(api, orderSvc)
	registerSettingsRoutes(api, settingsSvc)
	registerReportRoutes(api, reportSvc)
	registerUploadRoutes(api, storageClient)
	registerEventRoutes(api, hub)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
