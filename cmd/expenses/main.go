package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/expenses-tracker/internal/clients/term"
	"max.ks1230/expenses-tracker/internal/config"
	"max.ks1230/expenses-tracker/internal/logger"
	"max.ks1230/expenses-tracker/internal/model/commands"
	"max.ks1230/expenses-tracker/internal/model/ledger"
	"max.ks1230/expenses-tracker/internal/model/stats"
	"max.ks1230/expenses-tracker/internal/model/storage"
)

func main() {
	// .env is optional, it only overrides LOG_ENV and friends
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	book := ledger.New(newSettingsStorage(conf), conf.App())
	book.Load(ctx)

	client := term.New()
	reporter := stats.NewReporter(book)
	svc := commands.NewService(client, book, reporter, conf.App())

	client.ListenUpdates(ctx, svc)
}

// newSettingsStorage opens the sqlite settings store, falling back to a
// session-only store when the file cannot be opened. Losing persistence
// is not fatal: the in-memory collection stays authoritative either way.
func newSettingsStorage(conf *config.Service) ledger.SettingsStorage {
	store, err := storage.NewSqliteStorage(conf.Storage())
	if err != nil {
		logger.Warn("failed to open settings storage, expenses will not be saved",
			zap.Error(err), zap.String("path", conf.Storage().Path()))
		return storage.NewInMemStorage()
	}
	return store
}
