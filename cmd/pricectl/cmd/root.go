// Package cmd provides the CLI commands for pricectl.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/light-bringer/cleanprice-service/internal/config"
	"github.com/light-bringer/cleanprice-service/internal/logging"
	"github.com/light-bringer/cleanprice-service/internal/services"
)

var (
	cfgFile  string
	verbose  bool
	useStore bool

	cfg = config.Default()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricectl",
	Short: "Price cleaning bookings and hour-credit packages",
	Long: `pricectl quotes cleaning-service bookings through the dynamic pricing
pipeline and hour-based bookings through the credit billing engine.

Without --store, quotes run locally from the flags alone. With --store,
service prices, loyalty history, and credit balances are read from
Spanner, and hour purchases and redemptions are persisted.

Examples:
  pricectl quote --base-price 120 --area 80 --type deep
  pricectl simulate --base-price 200 --frequency weekly
  pricectl hours quote --hours 45
  pricectl hours buy --customer cust-1 --hours 40 --store`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default pricectl.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&useStore, "store", false, "read catalog, loyalty, and credit data from Spanner")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = "pricectl.json"
	}

	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	loaded.FromEnv()
	cfg = loaded

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newOptions wires the application either locally or against Spanner,
// depending on the --store flag.
func newOptions(ctx context.Context) (*services.ServiceOptions, error) {
	if !useStore {
		return services.NewLocalOptions(cfg), nil
	}
	return services.NewServiceOptions(ctx, cfg)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pricectl version 0.1.0")
	},
}
