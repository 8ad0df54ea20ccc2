package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"visualdeck/cloudsync"
	"visualdeck/config"
	"visualdeck/db"
	"visualdeck/events"
	"visualdeck/gateway"
	"visualdeck/library"
	"visualdeck/media"
	"visualdeck/migrations"
	"visualdeck/playback"
	"visualdeck/routes"
	"visualdeck/upload"
)

func main() {

	if err := godotenv.Load(); err != nil {
		fmt.Println(err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel(),
	})))

	database, err := db.Initialize(cfg.Deck.DBPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := db.ApplyMigrations(database, migrations.GetMigrations()); err != nil {
		panic(err)
	}

	settings := config.NewStore(database)
	if cfg.Deck.GatewayURL != "" {
		if current, _ := settings.GatewayURL(); current == "" {
			if err := settings.SetGatewayURL(cfg.Deck.GatewayURL); err != nil {
				slog.Warn("Ignoring invalid GATEWAY_URL from environment", slog.String("stack", err.Error()))
			}
		}
	}

	events.Init()

	lib, err := library.Open(database)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if lib.Len() == 0 {
		if err := lib.ReplaceAll(media.Seed()); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		slog.Info("Seeded demo library")
	}

	gw := gateway.NewClient(settings)
	notifier := upload.NewNotifier(cfg.Pushover.Token, cfg.Pushover.Recipient)
	pipeline := upload.NewPipeline(gw, lib, notifier)
	engine := cloudsync.New(gw, lib, cloudsync.DefaultWindow)
	ps := playback.NewSystem(lib.Snapshot())

	// Subscription order matters: the cursor has to settle before the
	// snapshot is replicated.
	lib.Subscribe(ps.OnLibraryChanged)
	lib.Subscribe(engine.Notify)
	settings.OnChange(engine.GatewayChanged)

	// One-shot cloud load; failure keeps the local/seed contents.
	engine.Load(context.Background())

	jobScheduler, err := SetupInBackground(pipeline, lib)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	jobScheduler.Start()

	router := routes.Register(http.NewServeMux(), routes.Deps{
		Library:  lib,
		Playback: ps,
		Uploads:  pipeline,
		Gateway:  gw,
		Settings: settings,
	})

	addr := fmt.Sprintf(":%d", cfg.Deck.Port)
	fmt.Printf("VisualDeck is running at http://localhost%s\n", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println(err)
		jobScheduler.Shutdown()
		os.Exit(1)
	}
}
