package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"marine-api/internal/experiments"
	"marine-api/internal/services/health"
	"marine-api/internal/shared/config"
	"marine-api/internal/shared/server"
	"marine-api/internal/shared/storage/db"
	"marine-api/internal/shared/telemetry"
	"marine-api/internal/subjects"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	// DB is nil when running on in-memory repositories.
	DB     *sql.DB
	Driver db.Driver

	SubjectsRepo       subjects.Repo
	ExperimentsRepo    experiments.Repo
	SubjectsService    *subjects.Service
	ExperimentsService *experiments.Service
	HealthService      *health.Service
	SubjectsHandler    *subjects.Handler
	ExperimentsHandler *experiments.Handler

	// Now is the clock used for default experiment dates.
	Now func() time.Time
}

// Option customizes Build.
type Option func(*App)

// WithClock overrides the clock used for default experiment dates.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.Now = now }
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	app := &App{
		Config: cfg,
		Driver: db.ParseDriver(cfg.DBDriver),
		Now:    time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}

	sqlDB, err := buildDB(ctx, cfg, app.Driver)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   app.Config,
		Health:   app.HealthService,
		Handlers: []server.RouteRegistrar{app.SubjectsHandler, app.ExperimentsHandler},
	})

	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config, driver db.Driver) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" && driver != db.DriverSQLite {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, driver, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.RunMigrations(ctx, sqlDB, driver); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		telemetry.Info("bootstrap.migrated", map[string]any{"driver": string(driver)})
	}

	telemetry.Info("bootstrap.database", map[string]any{"driver": string(driver)})
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.SubjectsRepo = &subjects.SQLRepo{DB: app.DB, Driver: app.Driver}
		app.ExperimentsRepo = &experiments.SQLRepo{DB: app.DB, Driver: app.Driver}
	} else {
		subjectRepo := subjects.NewMemoryRepo(subjects.ReferenceSubjects()...)
		app.SubjectsRepo = subjectRepo
		app.ExperimentsRepo = experiments.NewMemoryRepo(
			subjectRepo,
			experiments.ReferenceTypes(),
			experiments.ReferenceExperiments()...,
		)
	}

	app.SubjectsService = subjects.NewService(app.SubjectsRepo)
	app.ExperimentsService = experiments.NewService(app.ExperimentsRepo, app.Now)
	app.HealthService = health.NewService(app.DB)
	app.SubjectsHandler = subjects.NewHandler(app.SubjectsService)
	app.ExperimentsHandler = experiments.NewHandler(app.ExperimentsService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
