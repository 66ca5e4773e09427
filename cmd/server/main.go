package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/ignite/bulkmail/internal/api"
	"github.com/ignite/bulkmail/internal/auth"
	"github.com/ignite/bulkmail/internal/config"
	"github.com/ignite/bulkmail/internal/mailing"
	"github.com/ignite/bulkmail/internal/pkg/logger"
	"github.com/ignite/bulkmail/internal/repository/postgres"
	"github.com/ignite/bulkmail/internal/service/account"
	"github.com/ignite/bulkmail/internal/service/dashboard"
	"github.com/ignite/bulkmail/internal/service/group"
	"github.com/ignite/bulkmail/internal/service/sending"
	"github.com/ignite/bulkmail/internal/service/template"
)

func extractHost(dsn string) string {
	at := strings.Index(dsn, "@")
	if at < 0 {
		return "(unknown)"
	}
	rest := dsn[at+1:]
	if slash := strings.Index(rest, "/"); slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}

func main() {
	log.Println("bulkmail server starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	logger.SetRedactPII(!cfg.Logging.DisableRedaction)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	log.Printf("DB URL host portion: ...@%s/...", extractHost(cfg.Database.URL))
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime())

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		pingCancel()
		log.Fatalf("Database ping failed: %v", err)
	}
	pingCancel()
	log.Println("Database connected")

	// Redis (optional, token revocations)
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})
		} else {
			redisClient = redis.NewClient(opts)
		}
		pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed: %v, revocations kept in memory", err)
			redisClient.Close()
			redisClient = nil
		} else {
			log.Println("Redis connected")
		}
		pingCancel()
	} else {
		log.Println("Redis not configured (REDIS_URL not set), revocations kept in memory")
	}

	// Mail transport
	transport, err := mailing.NewTransport(cfg.Mail)
	if err != nil {
		log.Fatalf("Failed to create mail transport: %v", err)
	}
	dispatcher := mailing.NewDispatcher(transport, cfg.Mail.From, cfg.Mail.Timeout())
	log.Printf("Mail transport: %s (from %s)", transport.Name(), cfg.Mail.From)

	// Repositories
	groupRepo := postgres.NewGroupRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)
	sentRepo := postgres.NewSentRepo(db)
	userRepo := postgres.NewUserRepo(db)
	dashboardRepo := postgres.NewDashboardRepo(db)

	// Auth
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), auth.NewRevocationStore(redisClient))
	authMW := auth.NewMiddleware(issuer, cfg.Auth.CookieName)

	// Services
	accountSvc := account.NewService(userRepo, issuer, cfg.Auth.BcryptCost)
	groupSvc := group.NewService(groupRepo)
	templateSvc := template.NewService(templateRepo)
	sendSvc := sending.NewService(groupRepo, templateRepo, sentRepo, dispatcher,
		sending.WithOwnershipEnforcement(cfg.Sending.EnforceOwnership))
	dashboardSvc := dashboard.NewService(dashboardRepo)
	if cfg.Sending.EnforceOwnership {
		log.Println("Send ownership enforcement enabled")
	}

	handlers := api.NewHandlers(accountSvc, groupSvc, templateSvc, sendSvc, dashboardSvc, authMW)
	health := api.NewHealthChecker(db, redisClient, transport.Name())
	server := api.NewServer(cfg.Server, handlers, health)

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// In-flight submissions finish on their own timeout.
	dispatcher.Wait()
	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("Server stopped")
}
