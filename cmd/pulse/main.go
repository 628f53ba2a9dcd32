package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CommodityPulse/internal/collector"
	"CommodityPulse/internal/config"
	"CommodityPulse/internal/logging"
)

var (
	cfgPath  string
	dataFile string
	dataURL  string
	demo     bool
	verbose  bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Weekly commodity price index dashboard",
	Long: `pulse reads a weekly commodity price index document, derives
year-over-year changes and shows them in an interactive terminal
dashboard. Subcommands print one-shot reports, audit the data and run
scheduled monitoring.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = os.Getenv("PULSE_CONFIG")
		}
		if path == "" {
			path = "configs/config.yaml"
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if dataFile != "" {
			cfg.Source.File = dataFile
			cfg.Source.URL = ""
		}
		if dataURL != "" {
			cfg.Source.URL = dataURL
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Log.File)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "read observations from this JSON file")
	rootCmd.PersistentFlags().StringVar(&dataURL, "url", "", "fetch observations from this URL")
	rootCmd.PersistentFlags().BoolVar(&demo, "demo", false, "use generated demo data")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(dashboardCmd, trendsCmd, checkCmd, monitorCmd, versionCmd)
}

// newSource picks the collector for the current invocation: demo data,
// an HTTP endpoint when a URL is configured, otherwise the local file.
func newSource() collector.Source {
	if demo {
		return &collector.MockSource{}
	}
	if cfg.Source.URL != "" {
		timeout := time.Duration(cfg.Source.TimeoutSeconds) * time.Second
		return collector.NewHTTPSource(cfg.Source.URL, cfg.Proxy, timeout, logger)
	}
	return collector.NewFileSource(cfg.Source.File, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
