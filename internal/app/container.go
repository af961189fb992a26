// Package app wires the clinic's stores, services and handlers together.
package app

import (
	"context"
	"fmt"
	"html/template"

	"github.com/aminafridi/PhysioCare-sub000/internal/adapter/repository"
	"github.com/aminafridi/PhysioCare-sub000/internal/adapter/store"
	"github.com/aminafridi/PhysioCare-sub000/internal/config"
	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"
	"github.com/aminafridi/PhysioCare-sub000/internal/session"
	"github.com/aminafridi/PhysioCare-sub000/pkg/broker"
	"github.com/aminafridi/PhysioCare-sub000/pkg/cache"
	"github.com/aminafridi/PhysioCare-sub000/pkg/notification"
	"github.com/aminafridi/PhysioCare-sub000/views"

	"github.com/go-redis/redis/v8"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	App    core.App
	Config *config.Config
	Logger *zap.Logger

	Templates *template.Template
	Broker    *broker.SegmentedBroker
	Sessions  session.Store
	Store     domain.DocumentStore

	// Repositories
	ServiceRepo     domain.ServiceRepository
	BlogRepo        domain.BlogRepository
	TestimonialRepo domain.TestimonialRepository
	AppointmentRepo domain.AppointmentRepository
	AdminUserRepo   domain.AdminUserRepository
	AboutRepo       domain.AboutRepository
	SettingsRepo    domain.SettingsRepository

	// Services
	Catalog   *service.CatalogService
	Booking   *service.BookingService
	Contact   *service.ContactService
	Auth      *service.AuthService
	Dashboard *service.DashboardService
	Import    *service.ImportService
	Export    *service.ExportService
}

// NewContainer builds every service on top of an already opened store.
// notifier may be nil.
func NewContainer(
	app core.App,
	cfg *config.Config,
	docs domain.DocumentStore,
	notifier domain.NotificationService,
	logger *zap.Logger,
) (*Container, error) {
	c := &Container{
		App:    app,
		Config: cfg,
		Logger: logger,
		Store:  docs,
	}

	templates, err := InitTemplates(views.FS)
	if err != nil {
		return nil, fmt.Errorf("failed to init templates: %w", err)
	}
	c.Templates = templates

	c.Broker = broker.NewSegmentedBroker()
	c.Sessions = session.NewCookieStore(cfg.Session.Secret, cfg.Session.SecureCookie)

	c.ServiceRepo = repository.NewServiceRepo(docs, logger)
	c.BlogRepo = repository.NewBlogRepo(docs, logger)
	c.TestimonialRepo = repository.NewTestimonialRepo(docs, logger)
	c.AppointmentRepo = repository.NewAppointmentRepo(docs, logger)
	c.AdminUserRepo = repository.NewAdminUserRepo(docs, logger)
	c.AboutRepo = repository.NewAboutRepo(docs, logger)
	c.SettingsRepo = repository.NewSettingsRepo(docs, logger)

	c.Catalog = service.NewCatalogService(c.ServiceRepo, c.BlogRepo, c.TestimonialRepo, c.AboutRepo, c.SettingsRepo)
	c.Booking = service.NewBookingService(c.AppointmentRepo, notifier, c.Broker, logger)
	c.Contact = service.NewContactService(logger)
	c.Auth = service.NewAuthService(c.AdminUserRepo, c.Broker, logger)
	c.Dashboard = service.NewDashboardService(c.ServiceRepo, c.BlogRepo, c.TestimonialRepo, c.AppointmentRepo, c.AdminUserRepo)
	c.Import = service.NewImportService(c.ServiceRepo, c.BlogRepo, c.TestimonialRepo, logger)
	c.Export = service.NewExportService(c.AppointmentRepo)

	return c, nil
}

// OpenStore connects the configured document backend and, when enabled,
// puts the list cache in front of it. A backend that cannot be reached is
// logged and replaced by a store that fails every call, so public pages keep
// rendering built-in content; only an unknown driver is an error.
func OpenStore(ctx context.Context, cfg *config.Config, app core.App, logger *zap.Logger) (domain.DocumentStore, error) {
	var (
		docs domain.DocumentStore
		err  error
	)

	switch cfg.Store.Driver {
	case config.StorePocketBase:
		docs = store.NewPBStore(app)
	case config.StoreFirestore:
		docs, err = store.NewFirestoreStore(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	case config.StoreMongo:
		var ms *store.MongoStore
		ms, err = store.NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err == nil {
			docs = ms
			if perr := ms.Ping(ctx); perr != nil {
				// The driver keeps dialing; calls fail until the server answers.
				logger.Warn("MongoDB unreachable, serving built-in content until it answers",
					zap.String("database", cfg.Mongo.Database), zap.Error(perr))
			}
		}
	case config.StoreMemory:
		logger.Warn("Using the in-memory store; content is lost on restart")
		docs = store.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		logger.Warn("Document store unavailable, serving built-in content",
			zap.String("driver", cfg.Store.Driver), zap.Error(err))
		docs = store.NewUnavailableStore(err)
	} else {
		logger.Info("Document store ready", zap.String("driver", cfg.Store.Driver))
	}

	switch cfg.Cache.Driver {
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			// Reads still work without the cache; redis errors fall through.
			logger.Warn("Redis unreachable, continuing", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		docs = store.NewCachedStore(docs, cache.NewRedisKV(client), cfg.Cache.TTL, logger)
	case config.CacheMemory:
		docs = store.NewCachedStore(docs, cache.NewMemoryKV(), cfg.Cache.TTL, logger)
	}

	return docs, nil
}

// OpenNotifier returns nil when push notifications are disabled or the
// Firebase messaging client cannot be created.
func OpenNotifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) domain.NotificationService {
	if !cfg.FCM.Enabled {
		return nil
	}

	fcm, err := notification.NewFCMService(ctx, cfg.Firebase.CredentialsFile, cfg.FCM.Topic, "/admin/appointments", logger)
	if err != nil {
		logger.Warn("FCM disabled", zap.Error(err))
		return nil
	}
	logger.Info("FCM service initialized", zap.String("topic", cfg.FCM.Topic))
	return fcm
}
