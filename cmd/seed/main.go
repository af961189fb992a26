// Command seed imports the built-in services, posts and testimonials into the
// configured document store and optionally creates a superadmin account.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	internalApp "github.com/aminafridi/PhysioCare-sub000/internal/app"
	"github.com/aminafridi/PhysioCare-sub000/internal/config"
	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"
	"github.com/aminafridi/PhysioCare-sub000/pkg/logger"

	_ "github.com/aminafridi/PhysioCare-sub000/migrations"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"
)

func main() {
	var (
		dataDir  string
		email    string
		password string
		name     string
		content  bool
	)
	flag.StringVar(&dataDir, "dir", "pb_data", "PocketBase data directory")
	flag.StringVar(&email, "email", os.Getenv("SEED_ADMIN_EMAIL"), "Superadmin email (skipped when empty)")
	flag.StringVar(&password, "password", os.Getenv("SEED_ADMIN_PASSWORD"), "Superadmin password")
	flag.StringVar(&name, "name", "Clinic Admin", "Superadmin display name")
	flag.BoolVar(&content, "content", true, "Import the built-in content")
	flag.Parse()

	cfg := config.Load()
	zapLogger, err := logger.NewLogger(cfg.Log.Level, "console", "physiocare-seed")
	if err != nil {
		log.Fatal("Error initializing logger:", err)
	}
	defer zapLogger.Sync()

	pb := pocketbase.NewWithConfig(pocketbase.Config{DefaultDataDir: dataDir})
	if err := pb.Bootstrap(); err != nil {
		zapLogger.Fatal("Bootstrap failed", zap.Error(err))
	}
	if err := pb.RunAllMigrations(); err != nil {
		zapLogger.Fatal("Migrations failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	docs, err := internalApp.OpenStore(ctx, cfg, pb, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error opening document store", zap.Error(err))
	}
	defer docs.Close(context.WithoutCancel(ctx))

	c, err := internalApp.NewContainer(pb, cfg, docs, nil, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error initializing container", zap.Error(err))
	}

	if content {
		importAll(ctx, c.Import, zapLogger)
	}

	if email != "" {
		if err := ensureSuperadmin(ctx, c.AdminUserRepo, email, password, name); err != nil {
			zapLogger.Fatal("Could not create superadmin", zap.Error(err))
		}
	}
}

func importAll(ctx context.Context, imp *service.ImportService, logger *zap.Logger) {
	steps := []struct {
		kind string
		run  func(context.Context) (int, error)
	}{
		{"services", imp.ImportServices},
		{"posts", imp.ImportPosts},
		{"testimonials", imp.ImportTestimonials},
	}
	for _, step := range steps {
		n, err := step.run(ctx)
		if err != nil {
			logger.Fatal("Import failed", zap.String("kind", step.kind), zap.Int("imported", n), zap.Error(err))
		}
		logger.Info("Imported", zap.String("kind", step.kind), zap.Int("count", n))
	}
}

func ensureSuperadmin(ctx context.Context, users domain.AdminUserRepository, email, password, name string) error {
	if existing := users.GetByEmail(ctx, email); existing != nil {
		fmt.Printf("Admin already exists: %s\n", existing.ID)
		return nil
	}

	u := domain.AdminUser{
		Email:        email,
		Password:     password,
		Name:         name,
		Role:         domain.RoleSuperadmin,
		AllowedPages: domain.AllPages,
	}
	if err := service.ValidateAdminUser(&u, true); err != nil {
		return err
	}

	id, err := users.Add(ctx, u)
	if err != nil {
		return err
	}
	fmt.Printf("Created superadmin: %s\n", id)
	return nil
}
