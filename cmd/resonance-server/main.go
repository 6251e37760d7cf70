package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/auralab/resonance/pkg/api"
	"github.com/auralab/resonance/pkg/catalog"
	"github.com/auralab/resonance/pkg/config"
	"github.com/auralab/resonance/pkg/discovery"
	"github.com/auralab/resonance/pkg/logging"
	"github.com/auralab/resonance/pkg/metrics"
	"github.com/auralab/resonance/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	galaxyPath := flag.String("galaxy", "", "Path to exported galaxy JSON (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *galaxyPath != "" {
		cfg.Catalog.GalaxyPath = *galaxyPath
	}

	log := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	log.Info("resonance server starting",
		logging.String("galaxy", cfg.Catalog.GalaxyPath),
		logging.String("store", cfg.Catalog.StorePath))

	cat, edges, err := loadCatalog(cfg, log)
	if err != nil {
		log.Error("catalog load failed", logging.Error(err))
		os.Exit(1)
	}

	reg := metrics.NewRegistry()
	engine := discovery.NewEngine(nil, nil, log)
	engine.SetPathOptions(discovery.PathOptions{
		TargetLength: cfg.Discovery.TargetPathLength,
		MaxLength:    cfg.Discovery.MaxPathLength,
	})

	buildStart := time.Now()
	engine.LoadGraph(cat, edges)
	g := engine.Graph()
	reg.RecordGraphBuild(g.TrackCount(), g.EdgeCount(), g.DroppedEdges(), time.Since(buildStart))

	apiServer := api.NewServer(engine, reg, log)

	gs := server.NewGracefulServer(fmt.Sprintf(":%d", cfg.Server.Port), apiServer.Handler(), log)
	gs.SetShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeout) * time.Second)

	if err := gs.Start(); err != nil {
		log.Error("server error", logging.Error(err))
		os.Exit(1)
	}
}

// loadCatalog reads the galaxy export when configured, refreshing the
// snapshot store; otherwise it falls back to the last snapshot.
func loadCatalog(cfg config.Config, log logging.Logger) (*catalog.Catalog, []catalog.Edge, error) {
	if cfg.Catalog.GalaxyPath != "" {
		cat, edges, err := catalog.LoadGalaxyFile(cfg.Catalog.GalaxyPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("galaxy loaded",
			logging.Int("tracks", cat.Len()),
			logging.Int("edges", len(edges)))

		if cfg.Catalog.StorePath != "" {
			if err := snapshot(cfg.Catalog.StorePath, cat, edges); err != nil {
				log.Warn("snapshot save failed", logging.Error(err))
			}
		}
		return cat, edges, nil
	}

	if cfg.Catalog.StorePath == "" {
		return nil, nil, fmt.Errorf("no catalog source configured")
	}

	store, err := catalog.OpenStore(cfg.Catalog.StorePath)
	if err != nil {
		return nil, nil, err
	}
	defer store.Close()

	cat, edges, err := store.LoadSnapshot()
	if err != nil {
		return nil, nil, err
	}
	log.Info("snapshot loaded",
		logging.Int("tracks", cat.Len()),
		logging.Int("edges", len(edges)))
	return cat, edges, nil
}

func snapshot(path string, cat *catalog.Catalog, edges []catalog.Edge) error {
	store, err := catalog.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveSnapshot(cat, edges)
}
