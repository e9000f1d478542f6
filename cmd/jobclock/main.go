package main

import (
	"fmt"
	"os"

	"jobclock/internal/api"
	"jobclock/internal/cli"
	"jobclock/internal/config"
	"jobclock/internal/store/sqlite"
)

func main() {
	cfg, err := config.NewLoader("").Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Database.Dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database directory: %v\n", err)
		os.Exit(1)
	}

	st, err := sqlite.New(cfg.GetDatabasePath(), cfg.Owner.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	app := cli.NewApp(api.New(st, cfg.TimeFormat()), st, cfg)
	if err := cli.NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
