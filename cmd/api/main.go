package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberdesk/booking-api/internal/cache"
	"github.com/barberdesk/booking-api/internal/config"
	dbpkg "github.com/barberdesk/booking-api/internal/db"
	"github.com/barberdesk/booking-api/internal/jobs"
	"github.com/barberdesk/booking-api/internal/middleware"
	"github.com/barberdesk/booking-api/internal/notify"
	"github.com/barberdesk/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var store cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("redis unavailable, running without cache: %v", err)
		} else {
			store = redisCache
		}
	}

	reminders := jobs.NewReminderJob(db, notify.New(db), cfg.Timezone)
	reminders.Start()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, store, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
