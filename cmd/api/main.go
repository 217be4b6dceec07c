package main

import (
	"context"
	"embed"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/activities/internal/api"
	"example.com/activities/internal/catalog"
	"example.com/activities/internal/config"
	"example.com/activities/internal/domain"
	"example.com/activities/internal/notify"
	"example.com/activities/internal/observability"
	httptransport "example.com/activities/internal/transport/http"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := catalog.NewInMemoryCatalog()
	seedRosterGauges(ctx, store)

	settings := notify.Settings{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		UseTLS:    cfg.SMTPUseTLS,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
	}
	if !settings.IsConfigured() {
		log.Printf("smtp not configured, enrollment emails will be skipped")
	}

	dispatcher := notify.NewDispatcher(notify.NewMailer(settings), notify.WithQueueSize(cfg.NotifyQueueSize))
	go dispatcher.Start(ctx)

	service := domain.NewService(store, dispatcher)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/static/", http.FileServer(http.FS(staticFiles)))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:           cfg.HTTPAddress,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, logger(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("activities api listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	cancel()
	dispatcher.Wait()
}

// seedRosterGauges publishes the initial participant counts so the gauges
// are accurate before the first enrollment change.
func seedRosterGauges(ctx context.Context, store *catalog.InMemoryCatalog) {
	activities, err := store.All(ctx)
	if err != nil {
		return
	}
	for name, activity := range activities {
		observability.RecordRoster(name, len(activity.Participants))
	}
}
