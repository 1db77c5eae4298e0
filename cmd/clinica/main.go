package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinica/internal/amqp"
	"clinica/internal/cli"
	"clinica/internal/config"
	apphttp "clinica/internal/http"
	"clinica/internal/services"
	"clinica/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	// Optional record-change event publishing. nil keeps the services
	// fully in-memory with no side channel.
	var events services.EventPublisher
	if cfg.EventsBackend == config.EventsAMQP {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Publishing is fire-and-forget, so a missing broker must not
			// stop the clinic from operating.
			logger.Warn("AMQP unavailable, record-change events disabled", "error", err)
		} else {
			defer client.Close()
			events = client
			logger.Info("Record-change events enabled", "exchange", cfg.AMQPExchange)
		}
	}

	transactionStore := store.NewTransactions()
	professionalStore := store.NewProfessionals()
	roomStore := store.NewRooms()

	if cfg.SeedDemoData {
		services.SeedDemoData(context.Background(), professionalStore, roomStore, time.Now())
		logger.Info("Demo data seeded")
	}

	transactions := services.NewTransactionService(transactionStore, events)
	professionals := services.NewProfessionalService(professionalStore, events)
	rooms := services.NewRoomService(roomStore, events)

	srv := apphttp.NewServer(":"+cfg.Port, transactions, professionals, rooms)
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting clinica server", "port", cfg.Port, "events", cfg.EventsBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
