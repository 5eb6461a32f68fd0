package main

import (
	"log"
	"net/http"

	"resto-admin-be/internal/auth"
	"resto-admin-be/internal/config"
	"resto-admin-be/internal/dashboard"
	"resto-admin-be/internal/db"
	"resto-admin-be/internal/logger"
	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/metrics"
	"resto-admin-be/internal/order"
	"resto-admin-be/internal/rest"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	dashboardSvc := dashboard.NewService(orderRepo, menuRepo)
	authSvc := auth.NewService(cfg)

	router := rest.NewRouter(rest.Deps{
		Menu:      menuSvc,
		Orders:    orderSvc,
		Dashboard: dashboardSvc,
		Auth:      authSvc,
		Metrics:   metrics.NewRegistry(),
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("🚀 Admin API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
