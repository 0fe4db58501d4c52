package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/StoreStation/blockserver/internal/config"
	"github.com/StoreStation/blockserver/internal/core"
	"github.com/StoreStation/blockserver/internal/logging"
	"github.com/StoreStation/blockserver/internal/registry"
	"github.com/StoreStation/blockserver/internal/worker"
	"github.com/StoreStation/blockserver/internal/worldsrc"
)

func main() {
	configPath := flag.String("config", "server.yaml", "Path to the YAML configuration file")
	development := flag.Bool("dev", false, "Use the console log encoder instead of JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockserver: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, *development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockserver: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	snapshot, err := registry.Load(cfg.ResourceRoot)
	if err != nil {
		logger.Fatalw("failed to load resources", "err", err)
	}

	biomeRegistry := snapshot.Registry("minecraft:worldgen/biome")
	world := worldsrc.NewFlatSource(snapshot.BlockStates, biomeRegistry, worldsrc.DefaultLayers, cfg.WorldBiome)

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		logger.Fatalw("failed to listen", "addr", cfg.ListenAddr, "err", err)
	}

	spawnWorker := worker.New(snapshot, logger, worker.StatusInfo{
		MOTD:       cfg.MOTD,
		MaxPlayers: cfg.MaxPlayers,
	})

	srv := core.New(core.Config{
		Snapshot:    snapshot,
		World:       world,
		Listener:    listener,
		Logger:      logger,
		SpawnWorker: spawnWorker,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go srv.Run(ctx)

	logger.Infow("server started",
		"addr", cfg.ListenAddr, "motd", cfg.MOTD, "max_players", cfg.MaxPlayers,
		"resource_root", cfg.ResourceRoot)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Infow("shutting down", "signal", sig.String())

	cancel()
	listener.Close()
}
