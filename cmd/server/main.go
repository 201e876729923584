package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/papertrade/dashboard-backend/internal/api"
	"github.com/papertrade/dashboard-backend/internal/classifier"
	"github.com/papertrade/dashboard-backend/internal/config"
	"github.com/papertrade/dashboard-backend/internal/database"
	"github.com/papertrade/dashboard-backend/internal/ledger"
	"github.com/papertrade/dashboard-backend/internal/market"
	"github.com/papertrade/dashboard-backend/internal/repository"
	"github.com/papertrade/dashboard-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create repositories
	stateRepo := repository.NewStateRepository(db)

	// The exchange catalog and the ledger it prices
	mkt := market.New()
	ldg := ledger.New()

	// Create services
	systemService := service.NewSystemService(db)
	portfolioService := service.NewPortfolioService(ldg, mkt, stateRepo)
	portfolioService.LoadState()

	inquiryClassifier, err := classifier.NewFromEnv(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Failed to create inquiry classifier: %v", err)
	}
	contactService := service.NewContactService(inquiryClassifier)

	// Create router
	router := api.NewRouter(systemService, portfolioService, contactService, mkt, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	simulator := market.NewSimulator(mkt, portfolioService.Ledger(), cfg.Oracle.Schedule)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting price simulator (%s)", cfg.Oracle.Schedule)
		return simulator.Run(gctx)
	})

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
