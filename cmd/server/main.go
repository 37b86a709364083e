package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	// Register migrations and seeders via their init() funcs.
	_ "github.com/moyashi0060/kittchen-POS-app/database/migrations"
	_ "github.com/moyashi0060/kittchen-POS-app/database/seeders"

	"github.com/moyashi0060/kittchen-POS-app/config"
	"github.com/moyashi0060/kittchen-POS-app/database/seeders"
	"github.com/moyashi0060/kittchen-POS-app/internal/server"
	"github.com/moyashi0060/kittchen-POS-app/pkg/database"
	"github.com/moyashi0060/kittchen-POS-app/pkg/migration"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Kitchen POS back office",
	Long:  "Back office API for the kitchen point of sale: catalog, orders, daily sales totals, image uploads.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		return migration.New(db).Run()
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the most recent migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		return migration.New(db).Rollback()
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		return migration.New(db).Status()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect()
		if err != nil {
			return err
		}
		return seeders.RunAll(db)
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stores are never touched when only listing routes.
		r := server.NewRouter(nil, nil)

		routes := r.Routes()
		names := make([]string, 0, len(routes))
		for name := range routes {
			names = append(names, name)
		}
		sort.Strings(names)

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPATH")
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\n", name, routes[name])
		}
		return tw.Flush()
	},
}

func connect() (*gorm.DB, error) {
	config.Load()
	return database.Connect()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(routeListCmd)
}
