// Package cli implements the journey CLI commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rcliao/aiplayland-journey/internal/catalog"
	"github.com/rcliao/aiplayland-journey/internal/config"
	"github.com/rcliao/aiplayland-journey/internal/journey"
	"github.com/rcliao/aiplayland-journey/internal/logging"
	"github.com/rcliao/aiplayland-journey/internal/store"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	dbPath      string
	logLevel    string
	catalogPath string
	visitorID   string

	cfg *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "journey",
	Short: "AIPlayLand visitor journey recommender",
	Long:  "Problem catalog, visitor memory and next-problem picks for AIPlayLand. SQLite-backed, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		c, err := config.Load(configPath)
		if err != nil {
			exitErr("load config", err)
		}
		if dbPath != "" {
			c.DB.Path = dbPath
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}
		if catalogPath != "" {
			c.Catalog.Path = catalogPath
		}
		cfg = c
		logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $JOURNEY_CONFIG or ./journey.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $JOURNEY_DB_PATH or ~/.aiplayland/journey.db)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog file replacing the built-in registry")
}

// addVisitorFlag registers the --visitor flag on a command that acts for one visitor.
func addVisitorFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&visitorID, "visitor", "v", "", "Visitor ID (required)")
	cmd.MarkFlagRequired("visitor")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DB.Path)
}

func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

// openNavigator opens the store and catalog. The caller closes the store.
func openNavigator() (*journey.Navigator, *store.SQLiteStore) {
	c, err := loadCatalog()
	if err != nil {
		exitErr("load catalog", err)
	}
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	return journey.NewNavigator(journey.New(c), store.NewRecorder(s)), s
}

func printJSON(w io.Writer, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode output", err)
	}
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
