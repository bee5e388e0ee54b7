// Package app wires the store, registries, enrichment and scheduler together.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smpe-admin/internal/accessor"
	"smpe-admin/internal/config"
	"smpe-admin/internal/diagnostic"
	"smpe-admin/internal/enrich"
	"smpe-admin/internal/entity"
	"smpe-admin/internal/lookup"
	"smpe-admin/internal/mapping"
	"smpe-admin/internal/quartz"
	"smpe-admin/internal/store"
	"smpe-admin/internal/system"
)

// ErrDeclarations is returned when the declaration file has errors.
var ErrDeclarations = errors.New("invalid declarations")

// App holds the wired components.
type App struct {
	Config       *config.Config
	Logger       *zap.Logger
	DB           *store.DB
	Accessors    *accessor.Registry
	Lookups      *lookup.Registry
	Declarations enrich.Declarations

	Jobs       *system.JobService
	Users      *system.UserService
	QuartzJobs *system.QuartzJobService
	Scheduler  *quartz.Manager
}

// NewRegistries returns the accessor and lookup registries of all entities
// and lookup services.
func NewRegistries() (*accessor.Registry, *lookup.Registry, error) {
	accessors := accessor.NewRegistry()
	entity.RegisterAccessors(accessors)

	lookups := lookup.NewRegistry()
	if err := system.RegisterLookups(lookups); err != nil {
		return nil, nil, fmt.Errorf("register lookups: %w", err)
	}

	return accessors, lookups, nil
}

// LoadDeclarations returns the compiled-in declarations overridden by the
// file at path, if any, together with the file's diagnostics. Errors in the
// file fail with ErrDeclarations.
func LoadDeclarations(path string, accessors *accessor.Registry, lookups *lookup.Registry) (enrich.Declarations, *diagnostic.Diagnostics, error) {
	decls := system.DefaultDeclarations()
	if path == "" {
		return decls, &diagnostic.Diagnostics{}, nil
	}

	f, err := mapping.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	diags := mapping.Validate(f, accessors, lookups)
	if err := diags.Error(); err != nil {
		return nil, diags, fmt.Errorf("%w in %s: %w", ErrDeclarations, path, err)
	}

	return decls.Merge(f.Declarations()), diags, nil
}

// New opens the database and wires every component. The scheduler is
// created but not started.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	accessors, lookups, err := NewRegistries()
	if err != nil {
		return nil, err
	}

	decls, diags, err := LoadDeclarations(cfg.Declarations, accessors, lookups)
	if err != nil {
		return nil, err
	}

	for _, w := range diags.Warnings {
		logger.Warn("declaration warning", zap.String("diagnostic", w.String()))
	}

	var schedOpts []quartz.Option

	if cfg.Scheduler.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
		if err != nil {
			return nil, fmt.Errorf("scheduler timezone: %w", err)
		}

		schedOpts = append(schedOpts, quartz.WithLocation(loc))
	}

	db, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Seed {
		if err := db.Seed(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	services := lookup.NewServiceMap()
	system.ProvideServices(services, db, logger.Named("task"))

	invoker := lookup.Throttled(
		lookup.NewInvoker(lookups, services),
		lookup.NewLimiter(cfg.Lookup.RateLimitRPS, cfg.Lookup.Burst),
	)

	engine := enrich.NewEngine(accessors, invoker, enrich.NewLogSink(logger.Named("enrich")))
	dispatcher := enrich.NewDispatcher(engine)

	logger.Debug("application wired",
		zap.String("db", db.Path()),
		zap.Strings("declarations", decls.Methods()),
		zap.Strings("lookups", lookups.Refs()))

	return &App{
		Config:       cfg,
		Logger:       logger,
		DB:           db,
		Accessors:    accessors,
		Lookups:      lookups,
		Declarations: decls,
		Jobs:         system.NewJobService(store.NewJobMapper(db), dispatcher, decls),
		Users:        system.NewUserService(store.NewUserMapper(db), dispatcher, decls),
		QuartzJobs:   system.NewQuartzJobService(store.NewQuartzJobMapper(db), dispatcher, decls),
		Scheduler:    quartz.NewManager(invoker, logger.Named("quartz"), schedOpts...),
	}, nil
}

// StartScheduler loads the task definitions and starts the scheduler.
// Definitions that fail to load are logged and skipped.
func (a *App) StartScheduler(ctx context.Context) error {
	if err := a.Scheduler.Restore(ctx, a.QuartzJobs); err != nil {
		if !errors.Is(err, quartz.ErrSchedule) {
			return err
		}

		a.Logger.Warn("some tasks were not scheduled", zap.Error(err))
	}

	a.Scheduler.Start()

	return nil
}

// Close stops the scheduler and closes the database.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(a.Scheduler.Stop(ctx), a.DB.Close())
}
