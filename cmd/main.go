/**
 * @description
 * This is the main entry point for the accounts-service. It is responsible for
 * initializing all components of the service, including configuration, the
 * in-memory account store, the notification producer, the core application
 * service, and the HTTP server. It wires everything together and starts the
 * service.
 *
 * @dependencies
 * - log, net/http: Standard Go libraries for logging and HTTP server functionality.
 * - github.com/go-chi/chi/v5: For HTTP routing.
 * - internal/api, internal/app, internal/config, internal/store: Internal packages for the service.
 * - pkg/rabbitmq: Client for RabbitMQ.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpay/accounts-service/internal/api"
	"github.com/vaultpay/accounts-service/internal/app"
	"github.com/vaultpay/accounts-service/internal/config"
	"github.com/vaultpay/accounts-service/internal/store"
	"github.com/vaultpay/accounts-service/pkg/rabbitmq"
)

func main() {
	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}

	log.Printf("level=info component=bootstrap msg=\"starting accounts-service\" port=%s", cfg.ServerPort)

	// Initialize the notification producer. A missing or unreachable broker
	// must not prevent the service from booting; transfers degrade to local
	// notification logging.
	var notifier app.Notifier
	if strings.TrimSpace(cfg.RabbitMQURL) == "" {
		log.Println("level=warn component=bootstrap msg=\"rabbitmq url missing; transfer notifications will be logged locally\" env=RABBITMQ_URL")
		notifier = &app.LogNotifier{}
	} else {
		producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL, cfg.NotificationExchange, cfg.NotificationRoutingKey)
		if err != nil {
			log.Printf("level=warn component=bootstrap msg=\"rabbitmq producer unavailable; using fallback\" err=%v", err)
			notifier = &app.LogNotifier{}
		} else {
			defer producer.Close()
			log.Println("level=info component=bootstrap msg=\"rabbitmq producer connected\"")
			notifier = producer
		}
	}

	// Initialize the in-memory account store. State lives for the lifetime of
	// the process; durable persistence is out of scope for this service.
	repository := store.NewMemoryRepository()

	// Initialize the core application service with its dependencies.
	accountService := app.NewService(repository, notifier)

	// Initialize the API handlers.
	accountHandlers := api.NewAccountHandlers(accountService)

	// Set up the HTTP router and define the API routes.
	router := chi.NewRouter()
	router.Mount("/v1/accounts", api.AccountRoutes(accountHandlers))

	// Start the HTTP server.
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)

	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
