package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/stoich/internal/adapters/http"
	"github.com/aretw0/stoich/internal/config"
	"github.com/aretw0/stoich/internal/logging"
	"github.com/aretw0/stoich/internal/observability"
	"github.com/aretw0/stoich/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/stoich/pkg/adapters/redis"
	"github.com/aretw0/stoich/pkg/ports"
	"github.com/aretw0/stoich/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the balancing engine in server mode, exposing a JSON API over HTTP:
POST /balance, POST /work, GET /elements/{symbol}, GET /history, GET /healthz,
and Prometheus metrics on GET /metrics.

Configuration comes from STOICH_* environment variables or a stoich.yaml file;
flags override both.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetString("port")
			cfg.Server.Port, err = strconv.Atoi(port)
			if err != nil {
				fmt.Printf("Invalid --port: %v\n", err)
				os.Exit(1)
			}
		}
		if cmd.Flags().Changed("redis-url") {
			cfg.History.RedisURL, _ = cmd.Flags().GetString("redis-url")
		}

		logger := logging.New(logging.ParseLevel(cfg.Server.LogLevel))

		var store ports.HistoryStore
		if cfg.History.RedisURL != "" {
			store, err = redisAdapter.New(cfg.History.RedisURL,
				redisAdapter.WithCap(int64(cfg.History.Size)))
			if err != nil {
				fmt.Printf("Redis error: %v\n", err)
				os.Exit(1)
			}
			logger.Info("history backed by redis")
		} else {
			store = memory.NewStore(cfg.History.Size)
		}

		sessions := session.NewManager(
			session.WithHistory(store),
			session.WithLogger(logger),
		)
		metrics := observability.NewMetrics()
		handler := httpAdapter.NewHandler(sessions, metrics)

		srv := &http.Server{
			Addr:    ":" + strconv.Itoa(cfg.Server.Port),
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Stoich Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Stoich Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().String("redis-url", "", "Redis URL for the balance history (overrides config)")
}
