package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/config"
	"github.com/snakearcade/engine/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	promEnable = false
	promListen = ":9000"

	// cfg is resolved once by the root command before any subcommand runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake is a terminal arcade snake game",
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides the config")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(highScoreCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setup(c *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := applyFlags(c); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	prometheus()
	return nil
}

// applyFlags copies the game flags the user set on the command line over
// the loaded configuration.
func applyFlags(c *cobra.Command) error {
	flags := c.Flags()
	var err error
	set := func(name string, fn func() error) {
		if err == nil && flags.Lookup(name) != nil && flags.Changed(name) {
			err = fn()
		}
	}
	set("difficulty", func() (e error) { cfg.Difficulty, e = flags.GetString("difficulty"); return })
	set("width", func() (e error) { cfg.Width, e = flags.GetInt("width"); return })
	set("height", func() (e error) { cfg.Height, e = flags.GetInt("height"); return })
	set("cell-size", func() (e error) { cfg.CellSize, e = flags.GetInt("cell-size"); return })
	set("store", func() (e error) { cfg.Store, e = flags.GetString("store"); return })
	set("dsn", func() (e error) { cfg.StoreDSN, e = flags.GetString("dsn"); return })
	set("mute", func() (e error) { cfg.Muted, e = flags.GetBool("mute"); return })
	set("max-fps", func() (e error) { cfg.MaxFPS, e = flags.GetFloat64("max-fps"); return })
	return err
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
