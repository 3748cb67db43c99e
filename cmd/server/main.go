package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httpadapter "github.com/alifrahmanhakim/AOC-RBS/internal/adapters/http"
	"github.com/alifrahmanhakim/AOC-RBS/internal/adapters/memory"
	pg "github.com/alifrahmanhakim/AOC-RBS/internal/adapters/postgres"
	"github.com/alifrahmanhakim/AOC-RBS/internal/config"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/history"
	"github.com/alifrahmanhakim/AOC-RBS/internal/logging"
	"github.com/alifrahmanhakim/AOC-RBS/internal/metrics"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
	opsvc "github.com/alifrahmanhakim/AOC-RBS/internal/services/operators"
	profsvc "github.com/alifrahmanhakim/AOC-RBS/internal/services/profiles"
	recomputesvc "github.com/alifrahmanhakim/AOC-RBS/internal/services/recompute"
	"github.com/alifrahmanhakim/AOC-RBS/internal/workers/recomputerunner"
	"github.com/alifrahmanhakim/AOC-RBS/internal/workers/snapshots"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil && !errors.Is(cfgErr, config.ErrNoDatabase) {
		log.Fatalf("config: %v", cfgErr)
	}
	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, cfgErr, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, cfgErr error, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tables := rbs.DefaultTables()
	if cfg.TablesFile != "" {
		t, err := rbs.LoadTables(cfg.TablesFile)
		if err != nil {
			return err
		}
		tables = t
		logger.Info("scoring tables loaded", zap.String("path", cfg.TablesFile))
	}
	engine, err := rbs.NewEngine(tables)
	if err != nil {
		return err
	}
	fm, err := findings.NewManager(findings.DefaultPolicy(), time.Now)
	if err != nil {
		return err
	}

	var (
		repo ports.OperatorRepository
		jobs ports.JobRepository
	)
	if errors.Is(cfgErr, config.ErrNoDatabase) {
		logger.Warn("DATABASE_URL not set, using in-memory storage; data is lost on exit")
		repo, jobs = memory.NewOperators(), memory.NewJobs()
	} else {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		repo, jobs = db, db
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	operators := opsvc.New(repo, engine, fm, history.NewRecorder(time.Now), m, logger.Named("operators"))
	recomputes := recomputesvc.New(repo, jobs)
	runner := recomputerunner.New(jobs, recomputerunner.OperatorProcessor{Operators: operators}, m, logger.Named("recompute"))

	srv := httpadapter.New(httpadapter.Deps{
		Engine:     engine,
		Findings:   fm,
		Operators:  operators,
		Profiles:   profsvc.New(repo, fm),
		Recomputes: recomputes,
		Runner:     runner,
		Gatherer:   reg,
		Log:        logger.Named("http"),
	})

	var wg sync.WaitGroup
	if cfg.RecomputeWorkers > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runner.Run(ctx, cfg.RecomputeWorkers, cfg.RecomputePoll)
		}()
		logger.Info("recompute workers started", zap.Int("workers", cfg.RecomputeWorkers))
	}

	if cfg.HistoryCron != "" {
		sched, err := snapshots.New(cfg.HistoryCron, recomputes, logger.Named("snapshots"))
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("env", cfg.Env))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		cancel()
		wg.Wait()
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	cancel()
	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}
