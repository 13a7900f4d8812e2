package main

import (
	"context"
	"net/http"
	"time"

	"civicdesk/backend/internal/api/handler"
	"civicdesk/backend/internal/config"
	"civicdesk/backend/internal/events"
	"civicdesk/backend/internal/logger"
	"civicdesk/backend/internal/storage"
	"civicdesk/backend/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.App, log *zap.Logger) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.PGDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect PostgreSQL", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to connect Redis", zap.Error(err))
	}

	return db, rdb
}

func main() {
	// .env is optional; production sets the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "civicdesk")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting civicdesk backend", zap.String("addr", cfg.HTTPAddr))

	db, rdb := setupDependencies(cfg, log)
	s := storage.NewStorageService(db, rdb, log)

	if err := s.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database and redis connections established, migrations complete")

	svc := tracker.NewService(s, log)
	hub := events.NewHub(s, log)
	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(svc, s, hub, log,
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.JWTExpireHr)*time.Hour)
	h.Routes(r)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal("server stopped", zap.Error(server.ListenAndServe()))
}
