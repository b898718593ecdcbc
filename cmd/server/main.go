package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"luckydraw-backend/internal/common/config"
	"luckydraw-backend/internal/common/logger"
	"luckydraw-backend/internal/common/middleware"
	drawhttp "luckydraw-backend/internal/features/draw/delivery/http"
	"luckydraw-backend/internal/features/draw/delivery/ws"
	"luckydraw-backend/internal/features/draw/store"
	drawsync "luckydraw-backend/internal/features/draw/sync"
	"luckydraw-backend/internal/features/program/catalog"
	programhttp "luckydraw-backend/internal/features/program/delivery/http"
	redisplatform "luckydraw-backend/internal/platform/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("luckydraw-backend", cfg.Sync.Role, cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.New(catalog.Default().ID)
	if cfg.DemoSeed {
		st.Seed(catalog.SeedPrizes(), catalog.SeedParticipants(80))
		logger.Info().Msg("demo seed loaded")
	}

	var transport drawsync.Transport
	switch cfg.Sync.Transport {
	case "memory":
		transport = drawsync.NewMemoryBus()
	default:
		addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		rdb, err := redisplatform.Open(ctx, addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis open failed")
		}
		defer rdb.Close()
		transport = drawsync.NewRedisTransport(rdb, cfg.Sync.Channel)
	}

	replicator := drawsync.NewReplicator(st, transport, drawsync.Role(cfg.Sync.Role))
	if err := replicator.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("replicator start failed")
	}

	hub := ws.NewHub(replicator)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:  []string{cfg.Server.Origin},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}),
	)

	api := router.Group("/api/v1")
	drawhttp.NewDrawHandler(st).RegisterRoutes(api)
	programhttp.NewProgramHandler().RegisterRoutes(api)
	hub.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	_ = transport.Close()
	logger.Info().Msg("server stopped")
}
