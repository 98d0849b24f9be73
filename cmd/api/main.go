package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/raumbelegung/room-booking-api/internal/config"
	dbpkg "github.com/raumbelegung/room-booking-api/internal/db"
	"github.com/raumbelegung/room-booking-api/internal/middleware"
	"github.com/raumbelegung/room-booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if opt, err := redis.ParseURL(cfg.RedisURL); err != nil {
		log.Printf("invalid REDIS_URL, rate limiting disabled: %v", err)
	} else {
		rdb = redis.NewClient(opt)
	}

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
