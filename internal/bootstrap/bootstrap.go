package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bryanwahyu/automaton-legal/internal/application"
	appanalysis "github.com/bryanwahyu/automaton-legal/internal/application/analysis"
	appdocs "github.com/bryanwahyu/automaton-legal/internal/application/documents"
	appreports "github.com/bryanwahyu/automaton-legal/internal/application/reports"
	apprewrite "github.com/bryanwahyu/automaton-legal/internal/application/rewrite"
	"github.com/bryanwahyu/automaton-legal/internal/config"
	domai "github.com/bryanwahyu/automaton-legal/internal/domain/ai"
	"github.com/bryanwahyu/automaton-legal/internal/domain/analyst"
	"github.com/bryanwahyu/automaton-legal/internal/domain/documents"
	"github.com/bryanwahyu/automaton-legal/internal/infra/ai/openai"
	"github.com/bryanwahyu/automaton-legal/internal/infra/db/memory"
	mysqlp "github.com/bryanwahyu/automaton-legal/internal/infra/db/mysql"
	"github.com/bryanwahyu/automaton-legal/internal/infra/db/postgres"
	redisp "github.com/bryanwahyu/automaton-legal/internal/infra/db/redis"
	"github.com/bryanwahyu/automaton-legal/internal/infra/httpserver"
	"github.com/bryanwahyu/automaton-legal/internal/infra/ocr"
	pdfreport "github.com/bryanwahyu/automaton-legal/internal/infra/report"
	minioStore "github.com/bryanwahyu/automaton-legal/internal/infra/storage"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
	"github.com/bryanwahyu/automaton-legal/internal/middleware"
)

// App holds the wired services and whatever must be closed on shutdown.
type App struct {
	Services httpserver.Services
	Health   map[string]middleware.HealthChecker
	closers  []func() error
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

// Build wires storage, OCR, the completion client and the use cases from cfg.
// A nil completer means the OpenAI client built from cfg.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger, completer domai.Completer) (*App, error) {
	app := &App{Health: map[string]middleware.HealthChecker{}}
	fail := func(err error) (*App, error) {
		app.Close()
		return nil, err
	}

	docs, history, err := app.repositories(ctx, cfg, log)
	if err != nil {
		return fail(err)
	}

	var store *minioStore.Store
	if cfg.Minio.Enabled {
		store, err = minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
			cfg.Minio.PresignTTL,
			log,
		)
		if err != nil {
			return fail(fmt.Errorf("minio init: %w", err))
		}
		app.Health["minio"] = store
	}

	extractor := &ocr.Mux{Text: ocr.PlainText{}}
	if cfg.OCR.Provider == "vision" {
		v, err := ocr.NewVision(ctx, cfg.OCR.CredentialsFile)
		if err != nil {
			return fail(fmt.Errorf("ocr init: %w", err))
		}
		app.closers = append(app.closers, v.Close)
		extractor.Scanned = v
	}

	if completer == nil {
		completer = openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	}

	clock := application.SystemClock{}
	reports := &appreports.Service{
		Renderer: pdfreport.NewPDF(cfg.Report.Compress),
		TempDir:  cfg.Report.TempDir,
		Clock:    clock,
		Log:      log.With("service", "reports"),
	}
	docSvc := &appdocs.Service{
		Repo:      docs,
		Extractor: extractor,
		Clock:     clock,
		Log:       log.With("service", "documents"),
	}
	if store != nil {
		reports.Artifacts = store
		docSvc.Sources = store
	}

	analysisSvc := &appanalysis.Service{
		Docs:    docs,
		Builder: &appanalysis.Builder{Log: log.With("service", "builder")},
		Engine:  &appanalysis.Engine{Client: completer, Model: cfg.OpenAI.Model},
		Clock:   clock,
		Log:     log.With("service", "analysis"),
	}
	if cfg.Storage.KeepHistory && history != nil {
		analysisSvc.History = history
	}

	app.Services = httpserver.Services{
		Documents: docSvc,
		Analysis:  analysisSvc,
		Reports:   reports,
		Rewrite: &apprewrite.Service{
			Client:  completer,
			Model:   cfg.OpenAI.RewriteModel,
			Reports: reports,
			Log:     log.With("service", "rewrite"),
		},
	}
	return app, nil
}

func (a *App) repositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (documents.Repository, analyst.Repository, error) {
	switch cfg.Storage.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("mysql connect: %w", err)
		}
		a.track(db)
		if cfg.Database.Migrate {
			if err := mysqlp.Migrate(ctx, db); err != nil {
				return nil, nil, fmt.Errorf("mysql migrate: %w", err)
			}
		}
		return mysqlp.NewDocumentRepository(db), mysqlp.NewAnalystRepository(db), nil

	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		a.track(db)
		if cfg.Database.Migrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				return nil, nil, fmt.Errorf("postgres migrate: %w", err)
			}
		}
		return postgres.NewDocumentRepository(db), postgres.NewAnalystRepository(db), nil

	case "redis":
		rdb, err := redisp.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("redis connect: %w", err)
		}
		a.closers = append(a.closers, rdb.Close)
		repo := redisp.NewDocumentRepository(rdb, cfg.Redis.TTL)
		a.Health["redis"] = repo
		if cfg.Storage.KeepHistory {
			log.Warn("analysis history is kept in memory with the redis driver")
		}
		return repo, memory.NewAnalystRepository(), nil
	}

	log.Warn("documents are kept in memory and lost on restart")
	return memory.NewDocumentRepository(), memory.NewAnalystRepository(), nil
}

func (a *App) track(db *sql.DB) {
	a.closers = append(a.closers, db.Close)
	a.Health["database"] = &middleware.DatabaseHealthChecker{DB: db}
}
