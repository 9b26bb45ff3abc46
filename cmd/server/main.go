package main

import (
	"context"
	"errors"
	"location-registry-service/internal/adapters/authsdk"
	"location-registry-service/internal/adapters/mapembed"
	"location-registry-service/internal/adapters/sessions"
	"location-registry-service/internal/api"
	"location-registry-service/internal/platform/config"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := mapembed.NewProvider(cfg.MapProviderHost, cfg.MapZoom)
	if err != nil {
		log.Fatal(err)
	}

	store := sessions.NewMemoryStore(cfg.SessionTTL)
	go func() {
		if err := store.Run(ctx, cfg.SessionSweepInterval); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("session sweeper stopped: %v", err)
		}
	}()

	var keys map[string]any
	if cfg.AuthKeysFile != "" {
		keys, err = authsdk.LoadKeys(cfg.AuthKeysFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	sdk := authsdk.New(authsdk.Config{
		ProjectIDs:       cfg.AuthProjectIDs,
		APIKey:           cfg.AuthAPIKey,
		RecaptchaSiteKey: cfg.RecaptchaSiteKey,
		Keys:             keys,
	})

	router := api.NewRouter(api.Deps{
		Sessions:      store,
		Embeds:        provider,
		AuthSDK:       sdk,
		SessionCookie: cfg.SessionCookie,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("Received termination signal, starting graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s map_host=%s session_ttl=%s", cfg.Port, cfg.MapProviderHost, cfg.SessionTTL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
