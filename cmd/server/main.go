package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/quotedesk/quotedesk/internal/api/v1"
	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/document"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/repository"
	"github.com/quotedesk/quotedesk/internal/rest"
	"github.com/quotedesk/quotedesk/internal/service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.Fatalf("failed to load configuration: %v", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.L.Fatalf("failed to initialize logger: %v", err)
	}

	client, err := postgres.NewClient(cfg, log)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer client.Close()

	repos := repository.NewPostgresRepositories(client, log)

	params := service.ServiceParams{
		Logger:           log,
		Config:           cfg,
		QuotationRepo:    repos.Quotation,
		InteriorItemRepo: repos.InteriorItem,
		CeilingItemRepo:  repos.CeilingItem,
		OtherItemRepo:    repos.OtherItem,
		RateRepo:         repos.RateEntry,
		AdderRepo:        repos.BrandAdder,
		CatalogRepo:      repos.CatalogItem,
		Sections:         document.NewSectionRegistry(),
		Renderer:         document.NewRenderer(cfg.Document),
	}

	rateCardSvc := service.NewRateCardService(params)
	quotationSvc := service.NewQuotationService(params)
	itemSvc := service.NewItemService(params, rateCardSvc, quotationSvc)
	documentSvc := service.NewDocumentService(params, quotationSvc)

	router := rest.NewRouter(cfg, log, rest.Handlers{
		Quotation: v1.NewQuotationHandler(quotationSvc, log),
		Item:      v1.NewItemHandler(itemSvc, log),
		RateCard:  v1.NewRateCardHandler(rateCardSvc, log),
		Document:  v1.NewDocumentHandler(documentSvc, log),
	})

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		log.Infow("starting server", "address", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Flush pending debounced rate writes before the pool closes.
	rateCardSvc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}

	log.Info("server stopped")
}
