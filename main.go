package main

import (
	"context"
	"log"
	"time"

	internalApp "github.com/aminafridi/PhysioCare-sub000/internal/app"
	"github.com/aminafridi/PhysioCare-sub000/internal/config"
	"github.com/aminafridi/PhysioCare-sub000/pkg/app"
	"github.com/aminafridi/PhysioCare-sub000/pkg/logger"

	_ "github.com/aminafridi/PhysioCare-sub000/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "physiocare")
	if err != nil {
		log.Fatal("Error initializing logger:", err)
	}
	defer zapLogger.Sync()

	if cfg.UsingDefaultSecret() {
		zapLogger.Warn("SESSION_SECRET is not set; sessions are signed with the development secret")
	}

	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Storage and notifications
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	docs, err := internalApp.OpenStore(ctx, cfg, pb, zapLogger)
	if err != nil {
		cancel()
		zapLogger.Fatal("Invalid document store configuration", zap.Error(err))
	}
	notifier := internalApp.OpenNotifier(ctx, cfg, zapLogger)
	cancel()

	// 3. Container
	c, err := internalApp.NewContainer(pb, cfg, docs, notifier, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error initializing container", zap.Error(err))
	}

	// 4. Routes
	app.RegisterRoutes(pb, c)

	pb.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := docs.Close(closeCtx); err != nil {
			zapLogger.Warn("Error closing document store", zap.Error(err))
		}
		return e.Next()
	})

	if err := pb.Start(); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
