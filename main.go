package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trendwatch/yt-trending/client"
	"github.com/trendwatch/yt-trending/common"
	"github.com/trendwatch/yt-trending/trending"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "yt-trending",
	Short: "Fetch, filter, and display trending YouTube videos",
	Long: `yt-trending fetches a region's most popular YouTube videos, keeps
those published within a recent window, and prints the top entries
with their watch links.

The YouTube Data API key is read from the YOUTUBE_API_KEY environment
variable; a .env file in the working directory is honored. Flags can
also be set through TRENDING_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
	},
	RunE: runTrending,
}

func init() {
	rootCmd.Flags().StringP("region", "r", "US", "YouTube region code (e.g. US, GB, JP)")
	rootCmd.Flags().Int("hours", 12, "how many hours back to keep videos")
	rootCmd.Flags().Int("fetch", 25, "number of videos to request from the API")
	rootCmd.Flags().IntP("count", "n", 5, "number of top videos to display")
	rootCmd.Flags().Duration("timeout", 30*time.Second, "HTTP timeout for the API request")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTrending(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.RunID = common.GenerateRunID()
	log.Logger = log.With().Str("run_id", cfg.RunID).Logger()
	log.Info().
		Str("region_code", cfg.RegionCode).
		Int("window_hours", cfg.WindowHours).
		Int("fetch_limit", cfg.FetchLimit).
		Int("display_count", cfg.DisplayCount).
		Msg("Starting trending run")

	// Halt before any client exists when there is no credential
	if cfg.APIKey == "" {
		log.Error().Msg("No API key configured")
		fmt.Fprintln(cmd.OutOrStdout(), "API key not found. Set YOUTUBE_API_KEY in your .env file or environment.")
		return nil
	}

	factory := client.NewDefaultClientFactory()
	c, err := factory.CreateClient(cmd.Context(), "youtube", map[string]interface{}{
		"api_key": cfg.APIKey,
		"timeout": cfg.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating youtube client: %w", err)
	}

	runner := &trending.Runner{
		Config: cfg,
		Client: c,
		Out:    cmd.OutOrStdout(),
	}
	return runner.Run(cmd.Context())
}

// loadConfig resolves the run configuration: flags win, then the
// environment (including a .env file), then the defaults baked into
// the flag definitions.
func loadConfig(cmd *cobra.Command) (common.TrendingConfig, error) {
	cfg := common.DefaultTrendingConfig()

	// Load .env first so the environment lookups below can see it
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cfg, fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix("TRENDING")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api-key", "YOUTUBE_API_KEY"); err != nil {
		return cfg, fmt.Errorf("binding API key variable: %w", err)
	}

	cfg.RegionCode = v.GetString("region")
	cfg.WindowHours = v.GetInt("hours")
	cfg.FetchLimit = v.GetInt("fetch")
	cfg.DisplayCount = v.GetInt("count")
	cfg.RequestTimeout = v.GetDuration("timeout")
	cfg.APIKey = v.GetString("api-key")

	return cfg, nil
}
