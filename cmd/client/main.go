package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/client"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/tui"
	"github.com/MKhiriev/go-otp-keeper/models"
	_ "github.com/joho/godotenv/autoload"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewClientLogger("go-otp-keeper", cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var moved string
	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, log)
	if errors.Is(err, store.ErrCorruptedFile) {
		kv, moved, err = store.RecoverFileStore(cfg.Storage.Path, log)
		if err == nil {
			fmt.Fprintf(os.Stderr, "vault file %s is unreadable and was moved to %s, starting with an empty vault\n", cfg.Storage.Path, moved)
		}
	}
	if err != nil {
		fatal(log, err, "create vault store")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Err(err).Msg("close vault store")
		}
	}()

	services := service.NewClientServices(kv, cfg, log)

	ui, err := tui.New(services, cfg.TOTP, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log.GetChildLogger("tui"))
	if err != nil {
		fatal(log, err, "error creating ui")
	}
	if moved != "" {
		ui.Notify(app.MsgStorageRecovered)
	}

	clientApp, err := client.NewApp(services, ui, log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	if err = clientApp.Run(ctx); err != nil {
		fatal(log, err, "client run error")
	}
}

// fatal reports err on stderr, since the log file is not visible to the
// user, and exits through the logger.
func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
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
