package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"postbox/app/config"
	"postbox/app/repositories"
	"postbox/app/repositories/badgerstore"
	"postbox/app/repositories/gormstore"
	"postbox/app/repositories/memory"
	"postbox/app/routes"
	"postbox/app/services"
	"postbox/app/validation"
)

const cliVersion = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "postbox",
		Short: "Record management service for users and their posts",
	}

	rootCmd.AddCommand(serveCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("postbox version %s\n", cliVersion)
		},
	}
}

func serveCmd() *cobra.Command {
	var addr, backend, dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.Addr = addr
			}
			if backend != "" {
				cfg.Backend = backend
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			store, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
			}
			defer store.Close()

			v := validation.New(cfg.Bounds)
			userService, postService := services.NewServices(
				store.Users(), store.Posts(), v,
				services.Policy{StrictDelete: cfg.StrictDelete},
			)

			router := routes.SetupRoutes(userService, postService)
			log.Printf("Starting record service on %s (backend: %s)", cfg.Addr, cfg.Backend)
			return routes.StartServer(cfg.Addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	cmd.Flags().StringVar(&backend, "backend", "", "storage backend: memory, badger, sqlite, postgres")
	cmd.Flags().StringVar(&dbPath, "db-path", "", "database path or DSN")

	return cmd
}

func openStore(cfg config.Config) (repositories.Store, error) {
	switch cfg.Backend {
	case "memory":
		return memory.NewStore(), nil
	case "badger":
		return badgerstore.Open(cfg.DBPath)
	case "sqlite":
		return gormstore.Open(cfg.DBPath)
	case "postgres":
		return gormstore.OpenPostgres(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
