package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	v1 "go_certify/api/v1"
	"go_certify/internal/cache"
	"go_certify/internal/config"
	"go_certify/internal/db"
	"go_certify/internal/identifier"
	"go_certify/internal/issuance"
	"go_certify/internal/store"
	"go_certify/internal/verification"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logrus.Info("configuration loaded")

	// 2. Connect MySQL
	gdb, err := db.Open(cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MySQL")
	}
	defer db.Close(gdb)
	logrus.Info("MySQL connected")

	if cfg.Migrate {
		if err := db.Migrate(gdb); err != nil {
			logrus.WithError(err).Fatal("failed to migrate database")
		}
	}

	// 3. Optional Redis for the verify rate limiter
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to Redis")
		}
		defer redisClient.Close()
		logrus.Info("Redis connected, verify rate limiter enabled")
	}

	// 4. Wire services
	st := store.NewMySQLStore(gdb, time.Duration(cfg.StoreTimeoutSec)*time.Second)
	iss := issuance.New(st, identifier.New(), cfg.BaseURL)
	ver := verification.New(st)

	// 5. Router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1.SetupRouter(r, v1.Deps{
		Issuance:           iss,
		Verification:       ver,
		Store:              st,
		Redis:              redisClient,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
	})

	logrus.WithField("addr", cfg.HTTPAddr).Info("server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
