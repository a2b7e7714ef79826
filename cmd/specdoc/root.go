package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/specdoc/internal/cli"
	"github.com/aretw0/specdoc/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// flagKeys maps config keys to the flag names that set them.
var flagKeys = map[string]string{
	"schema":         "schema",
	"descriptions":   "descriptions",
	"log_level":      "log-level",
	"log_json":       "log-json",
	"format":         "format",
	"output":         "output",
	"port":           "port",
	"store":          "store",
	"document.title": "title",
	"redis.addr":     "redis",
	"redis.password": "redis-password",
	"redis.db":       "redis-db",
	"redis.prefix":   "redis-prefix",
	"redis.ttl":      "redis-ttl",
}

var rootCmd = &cobra.Command{
	Use:   "specdoc",
	Short: "specdoc turns a schema definition into reference documentation",
	Long: `specdoc compiles a schema tree (YAML, TOML or JSON) and generates a
reference of every configuration key it accepts, with descriptions, formats,
aliases and required/experimental markers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultFile+")")
	flags.StringP("schema", "s", "schema.yaml", "Schema definition file (.yaml, .toml or .json)")
	flags.StringP("descriptions", "d", "", "Extra description table layered over the schema's own")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("log-json", false, "Write logs as JSON")
}

// setup resolves the configuration for cmd and builds its logger. Every
// call starts from a fresh viper so nothing carries over between runs. A
// positional schema argument, when given, wins over flags and files.
func setup(cmd *cobra.Command, schemaArg ...string) (*config.Config, *slog.Logger, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags(), flagKeys); err != nil {
		return nil, nil, err
	}
	if len(schemaArg) > 0 {
		v.Set("schema", schemaArg[0])
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
