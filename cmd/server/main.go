package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Kukuru-Pingpong/kukuruPingpong/internal/ai"
	"github.com/Kukuru-Pingpong/kukuruPingpong/internal/config"
	"github.com/Kukuru-Pingpong/kukuruPingpong/internal/game"
	"github.com/Kukuru-Pingpong/kukuruPingpong/internal/history"
	"github.com/Kukuru-Pingpong/kukuruPingpong/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := realMain(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain(ctx context.Context) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("processing the config: %w", err)
	}

	logger := logging.New(cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rooms := game.NewRoomRegistry()
	conns := game.NewConnectionRegistry()
	coordinator := game.NewCoordinator(rooms, conns)
	hub := game.NewHub(coordinator, store, logger)

	aiService, err := ai.NewService(
		ai.Unconfigured{},
		ai.Unconfigured{},
		ai.Unconfigured{},
		ai.Unconfigured{},
		ai.StaticWords{},
		cfg.SentenceCacheSize,
		logger,
	)
	if err != nil {
		return err
	}

	r := createServer(cfg.AllowedOrigins)
	game.NewHandler(hub, cfg.AllowedOrigins, logger).Register(r)
	ai.NewHandler(aiService, logger).Register(r)
	history.NewHandler(store, logger).Register(r)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hub.Run(ctx)
	})
	g.Go(func() error {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func createServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}
