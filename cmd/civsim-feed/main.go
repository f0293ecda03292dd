package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/juneparke/civsim/internal/feed"
)

func main() {
	cfg, err := feed.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment.
	addr := flag.String("addr", cfg.Addr, "listen address")
	scenario := flag.String("scenario", cfg.ScenarioFile, "path to scenario file")
	flag.Parse()

	cfg.Addr = *addr
	cfg.ScenarioFile = *scenario

	srv := feed.NewServer(cfg)
	fmt.Printf("civsim feed listening on %s (scenario: %s)\n", cfg.Addr, cfg.ScenarioFile)
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
