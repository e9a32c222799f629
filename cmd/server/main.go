package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-pass-god/internal/adapter"
	"github.com/MKhiriev/go-pass-god/internal/config"
	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/exchange"
	"github.com/MKhiriev/go-pass-god/internal/handler"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/server"
	"github.com/MKhiriev/go-pass-god/internal/service"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/token"
	"github.com/MKhiriev/go-pass-god/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pass-god-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	keys, err := provisionKeys(ctx, cfg.App, db.HasCiphertext, log)
	if err != nil {
		return err
	}

	cipher, err := crypto.NewSecretCipher(keys.encryption)
	if err != nil {
		return fmt.Errorf("error creating secret cipher: %w", err)
	}

	issuer, err := token.NewIssuer(keys.signing, cfg.App.TokenIssuer, cfg.App.TokenDuration)
	if err != nil {
		return fmt.Errorf("error creating token issuer: %w", err)
	}

	breach, err := adapter.NewHTTPBreachAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating breach adapter: %w", err)
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(service.Dependencies{
		Storages: storages,
		Cipher:   cipher,
		Hasher:   crypto.NewCredentialHasher(crypto.DefaultArgon2Params),
		Issuer:   issuer,
		Exchange: exchange.New(storages.SharedSecretRepository, cfg.App.ShareDefaultTTL, cfg.App.ShareMaxTTL),
		Breach:   breach,
		Config:   *cfg,
	}, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	background := workers.NewWorkers(
		workers.NewSharedSecretSweeper(storages.SharedSecretRepository, cfg.Workers.SweepInterval, cfg.Workers.SweepRetention, log),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		background.Run(ctx)
	}()

	srv.RunServer(ctx)
	wg.Wait()

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
