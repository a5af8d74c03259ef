package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/config"
	"github.com/angel1410/score-backend/internal/database"
	httpapi "github.com/angel1410/score-backend/internal/http"
	"github.com/angel1410/score-backend/internal/logger"
	"github.com/angel1410/score-backend/internal/repository"
	"github.com/angel1410/score-backend/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "score-backend")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	registryDB, err := database.NewPostgresDB(&cfg.Registry)
	if err != nil {
		log.Fatal("Failed to connect to registry database", zap.Error(err))
	}
	defer database.Close(registryDB)

	accountsDB, err := database.NewPostgresDB(&cfg.Accounts)
	if err != nil {
		log.Fatal("Failed to connect to accounts database", zap.Error(err))
	}
	defer database.Close(accountsDB)

	registryRepo := repository.NewPostgresRegistryRepository(registryDB, log)
	usersRepo := repository.NewPostgresUsersRepository(accountsDB, log)

	electorService := service.NewElectorService(registryRepo, log)
	authService := service.NewAuthService(usersRepo, cfg.JWTSecret, log)
	userService := service.NewUserService(usersRepo, log)

	router := httpapi.NewRouter(log)
	router.RegisterAuthRoutes(httpapi.NewAuthHandler(authService, log))
	router.RegisterElectorRoutes(httpapi.NewElectorHandler(electorService, log))
	router.RegisterUserRoutes(httpapi.NewUsersHandler(userService, log))

	handler := httpapi.RequestLogger(log, httpapi.CORS(cfg.HTTP.AllowedOrigin, router))
	srv := service.NewServer(cfg.HTTP.Addr, handler, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}
