package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"intern-match/internal/config"
	"intern-match/internal/database"
	"intern-match/internal/database/migration"
	dbpostgres "intern-match/internal/database/postgres"
	"intern-match/internal/database/seeder"
	"intern-match/internal/domain/matching"
	"intern-match/internal/domain/profile"
	"intern-match/internal/domain/resume"
	"intern-match/internal/domain/user"
	"intern-match/internal/infrastructure/cache"
	"intern-match/internal/infrastructure/decoder"
	"intern-match/internal/metrics"
	"intern-match/internal/pkg/jwt"
	"intern-match/internal/repository"
	"intern-match/internal/usecase"
	"intern-match/internal/ws"
	"intern-match/migrations"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	// DB is nil when no database is configured.
	DB       database.DB
	Cache    *cache.Redis
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Hub      *ws.Hub
	JWT      jwt.Service

	Users      user.Repository
	Candidates profile.CandidateRepository
	Postings   profile.PostingRepository

	AuthUC     *usecase.Auth
	ProfileUC  *usecase.Profiles
	MatchingUC *usecase.Matching
	ResumeUC   *usecase.Resume
	StatsUC    *usecase.StatsService
}

func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}

	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = metrics.NewMetrics()
	if err := c.Metrics.Register(c.Registry); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.Registry.MustRegister(metrics.CacheCounters(func() (uint64, uint64) {
		s := c.Cache.Stats()
		return s.Hits, s.Misses
	})...)
	c.Hub = ws.NewHub(logger)
	c.JWT = jwt.NewHMACService(
		cfg.App.AppName,
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	ranker := matching.NewRanker(cfg.Matching.MaxFeatures, logger, c.Metrics)

	c.AuthUC = usecase.NewAuthUsecase(c.Users, c.JWT, logger)
	c.ProfileUC = usecase.NewProfileUsecase(c.Candidates, c.Postings, ws.NewPublisher(c.Hub, logger), c.Metrics, logger)
	c.MatchingUC = usecase.NewMatchingUsecase(c.Candidates, c.Postings, ranker, cfg.Matching.TopN, logger)
	c.ResumeUC = usecase.NewResumeUsecase(decoder.New(), resume.NewAnalyzer(nil), c.Cache, cfg.Redis.TTL, c.Metrics, logger)
	c.StatsUC = usecase.NewStatsUsecase(c.Users, c.Candidates, c.Postings, logger)

	if cfg.App.SeedSampleData {
		r := seeder.Runner{Seeders: seeder.Defaults(c.Candidates, c.Postings), Logger: logger}
		if err := r.Run(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	if !c.Config.Database.Enabled() {
		c.Logger.Printf("[Storage] no database configured, keeping profiles in memory")
		c.Users = repository.NewMemoryUserRepository()
		c.Candidates = repository.NewMemoryCandidateRepository()
		c.Postings = repository.NewMemoryPostingRepository()
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, c.Config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	runner := newMigrationRunner(c.Config.App.MigrationsDir, c.Logger)
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return fmt.Errorf("run migrations: %w", err)
	}

	c.DB = db
	c.Users = repository.NewPostgresUserRepository(db)
	c.Candidates = repository.NewPostgresCandidateRepository(db)
	c.Postings = repository.NewPostgresPostingRepository(db)
	c.Logger.Printf("[Storage] using postgres host=%s db=%s", c.Config.Database.DBHost, c.Config.Database.DBName)
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

// newMigrationRunner reads dir when set and the embedded files otherwise.
func newMigrationRunner(dir string, logger *log.Logger) migration.Runner {
	if dir != "" {
		return migration.Runner{Dir: dir, Logger: logger}
	}
	return migration.Runner{FS: migrations.Files, Logger: logger}
}
