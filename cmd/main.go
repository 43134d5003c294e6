package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-social-accounts/internal/config"
	"github.com/sbilibin2017/gw-social-accounts/internal/handlers"
	"github.com/sbilibin2017/gw-social-accounts/internal/jwt"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
	"github.com/sbilibin2017/gw-social-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-social-accounts/internal/migrations"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"github.com/sbilibin2017/gw-social-accounts/internal/repositories"
	"github.com/sbilibin2017/gw-social-accounts/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-social-accounts/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-social-accounts API
// @version 1.0.0
// @description Accounts, follow graph and moderation service
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newEventWriter builds an asynchronous Kafka writer so publishing never holds
// up a request. Delivery failures are reported through logDeliveryErrors.
func newEventWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
		MaxAttempts:  cfg.MaxAttempts,
		Async:        true,
		Completion:   logDeliveryErrors,
	}
}

func logDeliveryErrors(messages []kafka.Message, err error) {
	if err != nil {
		logger.Log.Errorw("failed to deliver account events", "count", len(messages), "error", err)
	}
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Run(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}

	// Kafka
	var events services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		writer := newEventWriter(cfg.Kafka)
		defer writer.Close()
		events = writer
		logger.Log.Infow("Publishing account events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Log.Warn("Kafka brokers not configured, account events disabled")
	}

	// Tokens
	userJWT := jwt.New(
		jwt.WithSecretKey(cfg.JWT.UserSecretKey),
		jwt.WithRole(models.RoleUser),
		jwt.WithExpiration(cfg.JWT.UserSignupTTL),
	)
	modJWT := jwt.New(
		jwt.WithSecretKey(cfg.JWT.ModeratorSecretKey),
		jwt.WithRole(models.RoleModerator),
		jwt.WithExpiration(cfg.JWT.ModeratorTTL),
	)

	// Repositories
	txManager := repositories.NewTxManager(db)
	userReadRepo := repositories.NewUserReadRepository(db, repositories.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	followReadRepo := repositories.NewFollowReadRepository(db)
	followWriteRepo := repositories.NewFollowWriteRepository(db)
	postReadRepo := repositories.NewPostReadRepository(db)
	postWriteRepo := repositories.NewPostWriteRepository(db, repositories.GetTxFromContext)
	modReadRepo := repositories.NewModeratorReadRepository(db)
	modWriteRepo := repositories.NewModeratorWriteRepository(db)
	sessions := repositories.NewSessionRepository(rdb)

	// Services
	userService := services.NewUserService(
		userReadRepo, userWriteRepo,
		followReadRepo, followWriteRepo,
		postWriteRepo, txManager, userJWT,
		services.WithSessions(sessions),
		services.WithEventWriter(events),
		services.WithTokenTTL(cfg.JWT.UserSignupTTL, cfg.JWT.UserLoginTTL),
	)
	moderatorService := services.NewModeratorService(modReadRepo, modWriteRepo, postReadRepo, modJWT, events)
	postService := services.NewPostService(postWriteRepo)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Post("/users/signup", handlers.NewUserSignupHandler(userService))
	r.Post("/users/login", handlers.NewUserLoginHandler(userService))
	r.Post("/moderator/signup", handlers.NewModeratorSignupHandler(moderatorService))
	r.Post("/moderator/login", handlers.NewModeratorLoginHandler(moderatorService))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(userJWT, sessions))
		r.Get("/users/{id}", handlers.NewUserGetHandler(userService))
		r.Put("/users/{id}", handlers.NewUserUpdateHandler(userService))
		r.Delete("/users/{id}", handlers.NewUserDeleteHandler(userService))
		r.Post("/users/{id}/follow", handlers.NewFollowHandler(userService))
		r.Post("/users/{id}/unfollow", handlers.NewUnfollowHandler(userService))
		r.Post("/posts", handlers.NewPostCreateHandler(postService))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(modJWT, nil))
		r.Get("/moderator/posts", handlers.NewModeratorPostsHandler(moderatorService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
