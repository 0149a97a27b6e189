package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tijaniyah/backend/internal/config"
	"tijaniyah/backend/internal/httpserver"
	"tijaniyah/backend/internal/infrastructure/postgres"
	"tijaniyah/backend/internal/infrastructure/token"
	authusecase "tijaniyah/backend/internal/usecase/auth"
	postusecase "tijaniyah/backend/internal/usecase/post"
	prayerusecase "tijaniyah/backend/internal/usecase/prayer"
	userusecase "tijaniyah/backend/internal/usecase/user"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	tokenManager := token.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)
	userRepo := postgres.NewUserRepository(db.Pool)

	authService := authusecase.NewService(userRepo, tokenManager)
	userService := userusecase.NewService(userRepo)
	postService := postusecase.NewService(postgres.NewPostRepository(db.Pool))
	prayerService := prayerusecase.NewService(postgres.NewPrayerRepository(db.Pool))

	server := httpserver.NewServer(cfg, authService, userService, postService, prayerService)
	log.Printf("HTTP server listening on %s", server.Addr())

	g, gCtx := errgroup.WithContext(rootCtx)
	g.Go(func() error {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Printf("graceful shutdown completed")
}
