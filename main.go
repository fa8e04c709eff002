package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"onlinegame/client"
	"onlinegame/session"
	"onlinegame/store"
	"onlinegame/utils"
)

func main() {
	cfg, err := utils.ReadTOML("config.toml")
	if err != nil {
		log.Fatal(err)
	}
	logger, err := utils.NewLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger.Infof("%+v", cfg)

	sessionID := session.NewID()
	st := store.NewClient(cfg.Server.URL, sessionID, cfg.RequestTimeout(), logger.Named("store"))
	s := session.New(st, session.Options{
		ID:           sessionID,
		Speed:        cfg.Player.Speed,
		SyncInterval: cfg.SyncInterval(),
	}, logger.Named("session"))

	// Requests are never cancelled, so the session gets a context that
	// outlives the signal handling below.
	s.Start(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ebiten.SetWindowSize(cfg.UI.Resolution.X, cfg.UI.Resolution.Y)
	ebiten.SetWindowTitle("Online Game")
	ebiten.SetWindowResizable(true)

	game := client.NewGame(ctx, s, cfg.UI.Margin)
	err = ebiten.RunGame(game)

	s.Release()
	if !st.Flush(cfg.BeaconGrace()) {
		logger.Warnw("release beacon still in flight at exit")
	}
	if err != nil && !errors.Is(err, client.ErrQuit) {
		logger.Errorw("game stopped", "err", err)
		logger.Sync()
		os.Exit(1)
	}
}
