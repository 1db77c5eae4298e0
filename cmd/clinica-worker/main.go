package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"clinica/internal/amqp"
	"clinica/internal/cli"
	"clinica/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting clinica-worker")

	journal := cli.InitJournal(logger, cfg.JournalDBPath)
	defer journal.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The broker may come up after the worker in compose setups, so dial
	// with backoff instead of failing fast.
	amqpClient, err := amqp.DialWithRetry(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	journalWorker := worker.NewJournalWorker(journal)
	journalWorker.ReportStatus(ctx)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeRecordChanges(gctx, journalWorker.HandleChange)
	})

	// Periodic journal status report so operators can see events flowing.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.ReportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				journalWorker.ReportStatus(gctx)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
