// Package cli provides the server's command line interface. Flags can
// also be provided as PARTYGAMES_* environment variables.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the server's runtime configuration
type Config struct {
	Bind           string
	Port           int
	DictionaryPath string
	StorageType    string
	RedisURL       string
	GraceWindow    time.Duration
	RoundDuration  time.Duration
	Verbose        bool
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.StorageType != "memory" && c.StorageType != "redis" {
		return fmt.Errorf("invalid storage type (must be 'memory' or 'redis'): %s", c.StorageType)
	}
	if c.StorageType == "redis" && c.RedisURL == "" {
		return fmt.Errorf("--redis-url is required when --storage is redis")
	}
	return nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := &Config{}

	v := viper.New()
	v.SetEnvPrefix("PARTYGAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "partygames",
		Short: "Realtime party game server with websocket rooms",
		Long: `partygames serves multiplayer party games over websockets.

Players create six-character room codes, friends join with them, and
the host drives the game. Disconnected players keep their seat for a
grace window so a dropped phone connection does not end their game.`,
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: PARTYGAMES_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", 8080, "port to listen on (env: PARTYGAMES_PORT)")
	fs.StringVar(&cfg.DictionaryPath, "dictionary", "data/words.txt", "path to the word list (env: PARTYGAMES_DICTIONARY)")
	fs.StringVar(&cfg.StorageType, "storage", "memory", "dictionary storage backend: memory or redis (env: PARTYGAMES_STORAGE)")
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "redis connection URL (env: PARTYGAMES_REDIS_URL)")
	fs.DurationVar(&cfg.GraceWindow, "grace-window", 30*time.Second, "how long a disconnected player keeps their seat (env: PARTYGAMES_GRACE_WINDOW)")
	fs.DurationVar(&cfg.RoundDuration, "round-duration", 80*time.Second, "word hunt round length (env: PARTYGAMES_ROUND_DURATION)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging (env: PARTYGAMES_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
