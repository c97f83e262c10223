package main

import (
	"log"
	"net/http"

	"github.com/sergiodev3/taller-autos-app/internal/config"
	dbpkg "github.com/sergiodev3/taller-autos-app/internal/db"
	"github.com/sergiodev3/taller-autos-app/internal/middleware"
	"github.com/sergiodev3/taller-autos-app/internal/routes"
	"github.com/sergiodev3/taller-autos-app/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var store storage.FileStore
	if cfg.S3Bucket != "" {
		store = storage.NewS3Store(cfg)
	} else {
		local, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("failed to init upload dir: %v", err)
		}
		store = local
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Taller Autos API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"vehicles": "/api/vehicles",
				"owners":   "/api/owners",
				"defects":  "/api/defects",
			},
		})
	})

	routes.RegisterRoutes(r, db, cfg, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
