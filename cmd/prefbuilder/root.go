package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/worldpref/internal/config"
	"github.com/katalvlaran/worldpref/parser"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	sig     signature.Signature
	mode    preference.Mode
	format  parser.Format
	logger  *zap.Logger
	verbose bool
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:          "prefbuilder",
		Short:        "Build and convert world preferences",
		Long:         "prefbuilder builds total preorders over the worlds of a propositional signature and converts them between the JSON, worldlist and ranklist encodings.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	defaults := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default ./"+config.FileName+".yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringSlice("vars", defaults.Variables, "Signature variables, in bit order")
	flags.String("mode", defaults.Mode, "Contiguity mode: cpo or tpo")
	flags.StringP("format", "f", defaults.Format, "Output format: json, worldlist or ranklist")
	flags.Int("indent", defaults.Indent, "JSON indent width (0 for compact)")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")

	// Bind flags to viper.
	_ = a.v.BindPFlag("variables", flags.Lookup("vars"))
	_ = a.v.BindPFlag("mode", flags.Lookup("mode"))
	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("indent", flags.Lookup("indent"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newMoveCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load resolves defaults, config file, PREFBUILDER_* env and flags, in that order.
func (a *app) load() error {
	v := a.v
	d := config.Default()
	v.SetDefault("variables", d.Variables)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("indent", d.Indent)

	// Env vars: PREFBUILDER_MODE, PREFBUILDER_VARIABLES, etc.
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
		}
	} else {
		v.SetConfigName(config.FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// The default config file is optional.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	cfg.Variables = splitVariables(cfg.Variables)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.sig, _ = cfg.Signature()
	a.mode, _ = cfg.PreferenceMode()
	a.format, _ = cfg.OutputFormat()

	return nil
}

// splitVariables accepts both list entries and comma-joined env values.
func splitVariables(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

func (a *app) initLogger() error {
	zc := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	if a.cfg.LogLevel != "" {
		if err := level.Set(a.cfg.LogLevel); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.Stringer("signature", a.sig),
		zap.Stringer("mode", a.mode),
		zap.Stringer("format", a.format),
		zap.String("config_file", a.v.ConfigFileUsed()))

	return nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print prefbuilder version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prefbuilder %s\n", version)
		},
	}
}
