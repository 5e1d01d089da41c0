package application

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgergames/battleship/internal/config"
	"github.com/ledgergames/battleship/internal/processor"
	"github.com/ledgergames/battleship/internal/repository"
	"github.com/ledgergames/battleship/internal/repository/storage"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// envelope is one line of the host ledger's serial transaction feed: the
// already-verified signer identity plus the raw transaction record.
type envelope struct {
	Signer      string          `json:"signer"`
	Transaction json.RawMessage `json:"transaction"`
}

// RunApp - runs the transaction processor against the host ledger's feed.
// Transactions arrive one JSON envelope per line on stdin, in the globally
// agreed order; a verdict per transaction is written to stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	proc := processor.New(logger, gameRepo)

	log.Info("Processing transactions")

	return processFeed(ctx, proc, os.Stdin, os.Stdout)
}

// processFeed executes envelopes strictly in arrival order, one at a time.
func processFeed(ctx context.Context, proc *processor.Processor, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var env envelope
		if err := json.Unmarshal(line, &env); err != nil {
			verdict := &processor.Verdict{
				Status:     processor.StatusRejected,
				Reason:     "malformed envelope: " + err.Error(),
				Structural: true,
			}
			if err = encoder.Encode(verdict); err != nil {
				return fmt.Errorf("failed to write verdict: %w", err)
			}
			continue
		}

		verdict, err := proc.Execute(ctx, env.Transaction, env.Signer)
		if err != nil {
			return fmt.Errorf("failed to execute transaction: %w", err)
		}

		if err = encoder.Encode(verdict); err != nil {
			return fmt.Errorf("failed to write verdict: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read transaction feed: %w", err)
	}

	return nil
}
