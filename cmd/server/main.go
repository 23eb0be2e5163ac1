package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aeobro.backend/internal/config"
	"aeobro.backend/internal/infrastructure/dns"
	"aeobro.backend/internal/infrastructure/jobs"
	"aeobro.backend/internal/infrastructure/mail"
	"aeobro.backend/internal/infrastructure/metrics"
	"aeobro.backend/internal/infrastructure/platform"
	"aeobro.backend/internal/infrastructure/repositories"
	"aeobro.backend/internal/interfaces/http/handlers"
	"aeobro.backend/internal/interfaces/http/middleware"
	"aeobro.backend/internal/usecases"
	"aeobro.backend/pkg/jwt"
	"aeobro.backend/pkg/logger"
	"aeobro.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	newMetrics = metrics.New
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	claimRepo := repositories.NewDomainClaimRepository(db)
	accountRepo := repositories.NewPlatformAccountRepository(db)
	bioCodeRepo := repositories.NewBioCodeRepository(db)
	changeLogRepo := repositories.NewChangeLogRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Metrics registry
	m := newMetrics()

	// Verification infrastructure
	var fallback dns.TXTResolver
	if cfg.Verification.DoHEndpoint != "" {
		fallback = dns.NewDoHResolver(cfg.Verification.DoHEndpoint, cfg.Verification.DNSTimeout)
	}
	domainChecker := dns.NewChecker(nil, fallback, cfg.Verification.DNSTimeout)
	providerRegistry := platform.DefaultRegistry()
	bioFetcher := platform.NewHTTPBioFetcher(cfg.Verification.BioFetchTimeout)
	bioCache := redis.NewCodeCache()
	mailer := mail.NewLogMailer(cfg.Server.BaseURL)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	profileUsecase := usecases.NewProfileUsecase(profileRepo, changeLogRepo, uow)
	verificationUsecase := usecases.NewVerificationUsecase(
		profileRepo, claimRepo, accountRepo, bioCodeRepo, changeLogRepo, uow,
		domainChecker, providerRegistry, bioFetcher, bioCache, mailer, m,
		usecases.VerificationSettings{
			BioCodeTTL:               cfg.Verification.BioCodeTTL,
			BioCodeMaxTTL:            cfg.Verification.BioCodeMaxTTL,
			DomainEmailProofRequired: cfg.Verification.DomainEmailProofRequired,
		},
	)
	syndicationUsecase := usecases.NewSyndicationUsecase(profileRepo, usecases.SyndicationGate{
		EnforcePlan:           cfg.Syndication.EnforcePlan,
		AllowPlatformVerified: cfg.Syndication.AllowPlatformVerified,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	syndicationHandler := handlers.NewSyndicationHandler(syndicationUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewRetentionSweepJob(profileRepo, m,
		cfg.Retention.Interval, cfg.Retention.BatchSize, cfg.Retention.LeaseStaleness)
	go sweepJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		verificationHandler: verificationHandler,
		syndicationHandler:  syndicationHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sweepJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 aeobro Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
