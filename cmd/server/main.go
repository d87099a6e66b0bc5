package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	anlcache "komek/internal/analysis/cache"
	"komek/internal/application"
	apphandler "komek/internal/application/handler"
	"komek/internal/audit"
	audithandler "komek/internal/audit/handler"
	"komek/internal/consent"
	consenthandler "komek/internal/consent/handler"
	"komek/internal/decisionprotocol"
	"komek/internal/eligibility"
	hmetrics "komek/internal/household/metrics"
	"komek/internal/platform/config"
	"komek/internal/platform/httpserver"
	"komek/internal/platform/logger"
	platformredis "komek/internal/platform/redis"
	"komek/internal/token"
	httptransport "komek/internal/transport/http"
	"komek/internal/workflow"
	wfmetrics "komek/internal/workflow/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ledger: in-memory primary for reads, mirrored asynchronously into
	// Postgres when configured.
	auditStore := audit.Store(audit.NewInMemoryStore())
	var auditWorker *audit.Worker
	if cfg.Postgres.URL != "" {
		db, err := sql.Open("pgx", cfg.Postgres.URL)
		if err != nil {
			log.Error("failed to open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres ping failed", "error", err)
			os.Exit(1)
		}

		inbox := make(chan audit.Entry, 256)
		auditWorker = audit.NewWorker(audit.NewPostgresStore(db), inbox)
		auditStore = audit.NewMirrorStore(auditStore, inbox)
	}
	recorder := audit.NewRecorder(auditStore)

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	var analysisCache *anlcache.Cache
	if redisClient != nil {
		defer redisClient.Close()
		analysisCache = anlcache.New(redisClient.Client, config.AnalysisCacheTTL)
	}

	appStore := application.NewInMemory()
	consentService := consent.NewService(consent.NewInMemoryStore())
	protocolService := decisionprotocol.NewService(decisionprotocol.NewInMemoryStore())

	evaluator := eligibility.NewService(eligibility.Config{
		GMI:               cfg.Benefit.GMI,
		BaseAmount:        cfg.Benefit.BaseAmount,
		BorderBonus:       cfg.Benefit.BorderBonus,
		ChildAgeLimit:     cfg.Benefit.ChildAgeLimit,
		DependentAgeLimit: cfg.Benefit.DependentAgeLimit,
	}, recorder, log, hmetrics.New()).WithCache(analysisCache)

	engine := workflow.NewEngine(
		appStore, recorder, protocolService, evaluator, log, wfmetrics.New(),
	).WithCache(analysisCache)

	tokenService := token.NewService(cfg.Server.JWTSigningKey, "komek", "komek-api")

	router := httptransport.NewRouter(httptransport.Deps{
		Applications: apphandler.New(engine, appStore, protocolService, recorder, log),
		Consents:     consenthandler.New(consentService, log),
		Audit:        audithandler.New(recorder, log),
		Validator:    token.NewServiceAdapter(tokenService),
		Logger:       log,
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting komek", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if auditWorker != nil {
		g.Go(func() error {
			if err := auditWorker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
