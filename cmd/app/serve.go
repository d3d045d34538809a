package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/vibe-gaming/registration/internal/api/http"
	"github.com/vibe-gaming/registration/internal/cache"
	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/db"
	"github.com/vibe-gaming/registration/internal/identity"
	"github.com/vibe-gaming/registration/internal/queue/asynqserver"
	queueclient "github.com/vibe-gaming/registration/internal/queue/client"
	"github.com/vibe-gaming/registration/internal/repository"
	"github.com/vibe-gaming/registration/internal/server"
	"github.com/vibe-gaming/registration/internal/service"
	"github.com/vibe-gaming/registration/internal/storage"
	"github.com/vibe-gaming/registration/internal/worker"
	emailProvider "github.com/vibe-gaming/registration/pkg/email"
	"github.com/vibe-gaming/registration/pkg/email/smtp"
	"github.com/vibe-gaming/registration/pkg/hash"
	"github.com/vibe-gaming/registration/pkg/logger"
	"github.com/vibe-gaming/registration/pkg/token"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the registration HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	appLogger.Info("starting registration api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("mysql connect problem: %w", err)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	if cfg.Database.AutoMigrate {
		if err := db.MigrateUp(ctx, dbMySQL.DB); err != nil {
			return err
		}
	}

	healthChecks := []service.HealthCheck{
		{Name: "mysql", Ping: dbMySQL.PingContext},
	}

	if cfg.Cache.Configured() {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			return fmt.Errorf("redis connect problem: %w", err)
		}
		defer redisClient.Close()
		healthChecks = append(healthChecks, service.HealthCheck{Name: "redis", Ping: cache.Ping(redisClient)})
		appLogger.Info("redis connection done")
	}

	uploader, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	if s, ok := uploader.(*storage.Storage); ok {
		if err := s.EnsureBucket(ctx); err != nil {
			appLogger.Warn("ensure storage bucket failed", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}
	}

	emailSender, err := newEmailSender(cfg.SMTP, appLogger)
	if err != nil {
		return fmt.Errorf("smtp sender creation failed: %w", err)
	}

	var emailQueue service.EmailQueue
	if cfg.Email.Async {
		asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
		defer asynqClient.Close()
		restore := queueclient.SetClient(asynqClient)
		defer restore()
		emailQueue = queueclient.NewEnqueuer()
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:           cfg,
		Repos:            repos,
		Transactor:       repository.NewTransactor(dbMySQL),
		IdentityVerifier: identity.New(cfg.Identity),
		Uploader:         uploader,
		EmailSender:      emailSender,
		EmailQueue:       emailQueue,
		TokenGenerator:   token.NewRandomGenerator(),
		TokenHasher:      hash.NewSHA256Hasher(""),
		HealthChecks:     healthChecks,
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	var asynqSrv *asynq.Server
	if cfg.Email.Async {
		workers := worker.NewWorkers(worker.Deps{Services: services})

		var mux *asynq.ServeMux
		asynqSrv, mux = asynqserver.New(cfg.Cache, workers)
		if err := asynqSrv.Start(mux); err != nil {
			return fmt.Errorf("asynq server start failed: %w", err)
		}
		appLogger.Info("email worker started")
	}

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init())
	runErr := make(chan error, 1)
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			runErr <- err
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serveErr := awaitStop(quit, runErr)
	if serveErr != nil {
		appLogger.Error("error occurred while running http server", zap.Error(serveErr))
	}

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdown()

	if err := srv.Stop(shutdownCtx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}
	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	appLogger.Info("app stopped")

	if serveErr != nil {
		return fmt.Errorf("http server failed: %w", serveErr)
	}

	return nil
}

// awaitStop blocks until a shutdown signal arrives or the server stops on its
// own, returning the server error in the latter case.
func awaitStop(quit <-chan os.Signal, runErr <-chan error) error {
	select {
	case <-quit:
		return nil
	case err := <-runErr:
		return err
	}
}

func newEmailSender(cfg config.SMTPConfig, l *zap.Logger) (emailProvider.Sender, error) {
	if !cfg.Configured() {
		l.Warn("SMTP_HOST is empty, verification emails will be logged instead of sent")
		return emailProvider.NewLogSender(l), nil
	}

	sender, err := smtp.NewSMTPSender(cfg.From, cfg.FromName, cfg.User, cfg.Pass, cfg.Host, cfg.Port)
	if err != nil {
		return nil, err
	}
	return sender, nil
}
