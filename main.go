package main

import (
	"flag"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/Mysterious135/delivery-app/configs"
	"github.com/Mysterious135/delivery-app/internal/auth"
	"github.com/Mysterious135/delivery-app/internal/db"
	"github.com/Mysterious135/delivery-app/internal/handlers"
)

func main() {

	seed := flag.Bool("seed", false, "reset and seed the catalog, then exit")
	flag.Parse()

	cfg := config.LoadAppConfig()

	db.Init()

	if *seed {
		if err := db.Seed(db.DB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Println("Database seeded successfully")
		return
	}

	authSvc := auth.New(cfg)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(handlers.RequestID())

	// ── public endpoints ──
	r.POST("/api/auth/register", authSvc.Register)
	r.POST("/api/auth/login", authSvc.Login)
	r.GET("/api/vendors", handlers.ListVendors)
	r.GET("/api/vendors/:vendorId/items", handlers.ListVendorItems)
	r.GET("/api/health-check", handlers.HealthCheck)

	// ── protected API ──
	api := r.Group("/api")
	api.Use(authSvc.RequireAuth())
	{
		api.POST("/orders", handlers.CreateOrder)
	}

	r.Run(":" + cfg.Port)
}
