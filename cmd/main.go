package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	httpctx "github.com/bookly-app/bookly-server/internal/api/http/context"
	"github.com/bookly-app/bookly-server/internal/api/http/router"
	httpserver "github.com/bookly-app/bookly-server/internal/api/http/server"
	"github.com/bookly-app/bookly-server/internal/config"
	"github.com/bookly-app/bookly-server/internal/logger"
	"github.com/bookly-app/bookly-server/internal/model"
	"github.com/bookly-app/bookly-server/internal/repository/postgres"
	redisrepo "github.com/bookly-app/bookly-server/internal/repository/redis"
	"github.com/bookly-app/bookly-server/internal/security"
	"github.com/bookly-app/bookly-server/internal/service"
	"github.com/bookly-app/bookly-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	blocklist := redisrepo.NewBlocklist(redisClient, cfg.JWT.AccessTTL)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := security.NewPasswordHasher()
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, hasher, tokenManager, blocklist, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, logger)
	bookService := service.NewBook(bookRepo, logger)

	r := router.New(authService, bookService, tokenManager, blocklist, ctxMgr, logger)
	engine := r.Register()

	httpServer := httpserver.NewHTTPServer(&http.Server{
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}, cfg.HTTP.Address)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = httpserver.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = httpserver.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
