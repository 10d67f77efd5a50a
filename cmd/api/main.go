package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/punchamoorthee/bankmitra/internal/api"
	"github.com/punchamoorthee/bankmitra/internal/chat"
	"github.com/punchamoorthee/bankmitra/internal/config"
	"github.com/punchamoorthee/bankmitra/internal/domain"
	"github.com/punchamoorthee/bankmitra/internal/intent"
	"github.com/punchamoorthee/bankmitra/internal/ledger"
	"github.com/punchamoorthee/bankmitra/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()
	snapStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open snapshot store", zap.Error(err))
	}
	defer snapStore.Close()

	snap, err := snapStore.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoSnapshot) {
			logger.Fatal("failed to load snapshot", zap.Error(err))
		}
		logger.Info("no stored snapshot, starting from defaults")
	}

	// Persistence after each mutation is best effort; a failed save is
	// logged and the session carries on.
	saver := func(s domain.Snapshot) {
		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := snapStore.Save(saveCtx, &s); err != nil {
			logger.Warn("snapshot save failed", zap.Error(err))
		}
	}

	led := ledger.New(snap, saver)
	detector := intent.NewDetector(cfg.BillCategories)
	session := chat.NewSession(led, detector, chat.Vocabulary{
		Affirmative: cfg.AffirmativeTokens,
		Negative:    cfg.NegativeTokens,
	}, cfg.DefaultLanguage, logger)

	handler := api.NewHandler(session, led, cfg.ThinkingDelay, logger)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(handler),
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
	logger.Info("server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (store.SnapshotStore, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return store.NewPostgresStore(ctx, cfg.DBSource)
	case config.BackendRedis:
		return store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword)
	default:
		return store.NewMemoryStore(), nil
	}
}
