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

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"dealgate/internal/investor/handler"
	investormetrics "dealgate/internal/investor/metrics"
	"dealgate/internal/investor/rules"
	"dealgate/internal/investor/service"
	"dealgate/internal/investor/store"
	accreditationstore "dealgate/internal/investor/store/accreditation"
	"dealgate/internal/investor/store/cache"
	documentstore "dealgate/internal/investor/store/document"
	investorstore "dealgate/internal/investor/store/investor"
	"dealgate/internal/jwttoken"
	"dealgate/internal/platform/config"
	"dealgate/internal/platform/httpserver"
	"dealgate/internal/platform/logger"
	"dealgate/internal/platform/metrics"
	platformredis "dealgate/internal/platform/redis"
	"dealgate/pkg/platform/audit"
	auditkafka "dealgate/pkg/platform/audit/kafka"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		investors      service.InvestorStore
		documents      service.DocumentStore
		accreditations service.AccreditationStore
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("pgx", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("ping postgres", "error", err.Error())
			os.Exit(1)
		}
		if err := store.Migrate(ctx, db); err != nil {
			log.Error("migrate schema", "error", err.Error())
			os.Exit(1)
		}
		investors = investorstore.NewPostgres(db)
		documents = documentstore.NewPostgres(db)
		accreditations = accreditationstore.NewPostgres(db)
		log.Info("using postgres stores")
	} else {
		investors = investorstore.NewInMemory()
		documents = documentstore.NewInMemory()
		accreditations = accreditationstore.NewInMemory()
		log.Warn("POSTGRES_DSN not set, using in-memory stores")
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		investors = cache.New(investors, redisClient)
		log.Info("investor read cache enabled")
	}

	var publisher audit.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := auditkafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("connect kafka", "error", err.Error())
			os.Exit(1)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("audit events publishing to kafka", "topic", cfg.Kafka.Topic)
	} else {
		publisher = audit.NewMemoryPublisher()
		log.Warn("KAFKA_BROKERS not set, audit events held in memory")
	}

	rulesCfg := rules.DefaultConfig()
	if len(cfg.RestrictedCountries) > 0 {
		rulesCfg.RestrictedCountries = cfg.RestrictedCountries
	}
	classifier := rules.NewClassifier(rulesCfg)
	platformMetrics := metrics.New()
	investorMetrics := investormetrics.New()

	compliance := service.New(
		investors, documents, accreditations, classifier,
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(investorMetrics),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "dealgate")
	jwtValidator := jwttoken.NewJWTServiceAdapter(jwtService)

	router := chi.NewRouter()
	handler.New(compliance, log, platformMetrics, jwtValidator).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting dealgate", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
