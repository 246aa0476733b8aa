package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ayurnidaan/ayurnidaan/internal/config"
	"github.com/ayurnidaan/ayurnidaan/internal/domain/account"
	"github.com/ayurnidaan/ayurnidaan/internal/domain/articles"
	"github.com/ayurnidaan/ayurnidaan/internal/domain/chat"
	"github.com/ayurnidaan/ayurnidaan/internal/domain/diagnosis"
	"github.com/ayurnidaan/ayurnidaan/internal/domain/patient"
	"github.com/ayurnidaan/ayurnidaan/internal/domain/payment"
	"github.com/ayurnidaan/ayurnidaan/internal/platform/auth"
	"github.com/ayurnidaan/ayurnidaan/internal/platform/db"
	"github.com/ayurnidaan/ayurnidaan/internal/platform/middleware"
	"github.com/ayurnidaan/ayurnidaan/internal/platform/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ayurnidaan-server",
		Short: "Ayurnidaan API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Ayurnidaan API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	// Record stores
	var (
		patientRepo patient.Repository
		accountRepo account.Repository
		healthCheck echo.HandlerFunc
	)
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")

		patientRepo = patient.NewPGRepo(pool)
		accountRepo = account.NewPGRepo(pool)
		healthCheck = db.HealthHandler(pool)
	default:
		store, err := storage.NewFileStore(cfg.StoreDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open file store")
		}
		patientRepo, err = patient.NewSlotRepo(store)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load patient slot")
		}
		accountRepo, err = account.NewSlotRepo(store)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load account slot")
		}
		logger.Info().Str("dir", cfg.StoreDir).Msg("using file store")
		healthCheck = func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
		}
	}

	// Collaborators: live Gemini when an API key is configured, static
	// stubs otherwise.
	var (
		suggester diagnosis.Suggester
		streamer  chat.Streamer
	)
	if cfg.GeminiEnabled() {
		suggester, err = diagnosis.NewGeminiSuggester(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create diagnosis client")
		}
		streamer, err = chat.NewGeminiStreamer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create chat client")
		}
		logger.Info().Str("model", cfg.GeminiModel).Msg("live collaborators enabled")
	} else {
		suggester = diagnosis.NewStaticSuggester()
		streamer = chat.NewStaticStreamer(time.Duration(cfg.ChatChunkDelayMS) * time.Millisecond)
		logger.Info().Msg("no GEMINI_API_KEY set; using static collaborators")
	}

	// Payment gateway
	var orderCreator payment.OrderCreator
	if cfg.RazorpayKeyID != "" {
		orderCreator, err = payment.NewRazorpayCreator(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create payment client")
		}
	} else {
		logger.Warn().Msg("no RAZORPAY_KEY_ID set; payment orders disabled")
	}

	// Sessions
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Services
	patientSvc := patient.NewService(patientRepo, suggester, logger)
	accountSvc := account.NewService(accountRepo, tokens, logger)
	paymentSvc := payment.NewService(orderCreator, cfg.RazorpayKeyID, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", healthCheck)

	// API groups: auth endpoints are public, everything else needs a session.
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	protected := apiV1.Group("", tokens.Middleware())

	account.NewHandler(accountSvc).RegisterRoutes(apiV1, protected)
	patient.NewHandler(patientSvc).RegisterRoutes(protected)
	articles.NewHandler(articles.NewStaticFeed()).RegisterRoutes(protected)
	chat.NewHandler(streamer, logger).RegisterRoutes(protected)
	payment.NewHandler(paymentSvc).RegisterRoutes(protected)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
