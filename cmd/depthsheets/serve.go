package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/fortuna/depthsheets/internal/api/rest"
	"github.com/fortuna/depthsheets/internal/api/websocket"
	"github.com/fortuna/depthsheets/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the REST and WebSocket servers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Printf("Starting %s v%s", serviceName, serviceVersion)

		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := buildApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		restServer := rest.NewServer(cfg.RESTPort, a.sheets, cfg.SeasonYear, a.checks)
		go func() {
			log.Printf("Starting REST API server on port %s", cfg.RESTPort)
			if err := restServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("REST server error: %v", err)
			}
		}()

		log.Printf("✓ REST API server listening on :%s", cfg.RESTPort)

		wsServer := websocket.NewServer(cfg.WSPort, a.sheets, cfg.SeasonYear)
		go func() {
			log.Printf("Starting WebSocket server on port %s", cfg.WSPort)
			if err := wsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("WebSocket server error: %v", err)
			}
		}()

		log.Printf("✓ WebSocket server listening on :%s", cfg.WSPort)
		log.Printf("  REST API: http://0.0.0.0:%s", cfg.RESTPort)
		log.Printf("  WebSocket: ws://0.0.0.0:%s/ws/sheets", cfg.WSPort)

		<-ctx.Done()
		log.Println("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := restServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("REST API server shutdown error: %v", err)
		}
		if err := wsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("WebSocket server shutdown error: %v", err)
		}

		log.Println("Stopped")
		return nil
	},
}
