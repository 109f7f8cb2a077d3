package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/LunaSuiteApps/salon-scheduler/internal/config"
	dbpkg "github.com/LunaSuiteApps/salon-scheduler/internal/db"
	"github.com/LunaSuiteApps/salon-scheduler/internal/logging"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.Env)

	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
