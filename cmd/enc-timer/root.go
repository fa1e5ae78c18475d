package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/enc-timer/config"
	"github.com/lixenwraith/enc-timer/constant"
	"github.com/lixenwraith/enc-timer/logging"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

type rootFlags struct {
	configPath string
	debug      bool
	decimal    bool
	items      int
	autoplay   bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   constant.AppName + " [duration]",
		Short: "Terminal countdown with falling markers",
		Long: `enc-timer counts down a duration while markers on a circle fall away
and a seven-segment readout shows the time left.

Classic durations are m, m:ss or m.d (0:01 to 10:00); decimal durations
are decimal minutes of a 10000-minute day (0.1 to 100.0).`,
		Example: `  enc-timer
  enc-timer --decimal=false 2:30
  enc-timer --autoplay 12.5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			logger, closer, err := logging.Setup(cfg.Debug, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			defer closer.Close()

			session, err := resolveSession(cfg, args)
			if err != nil {
				return err
			}
			logger.Info("starting", "version", version, "duration", session.Duration, "items", session.Items, "decimal", session.Decimal)

			return runTUI(cmd.Context(), cfg, session, logger)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default: ~/.config/enc-timer/config.yml)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write debug logs to a rotating file")
	cmd.Flags().BoolVar(&flags.decimal, "decimal", constant.DefaultDecimal, "Use the decimal-day readout")
	cmd.Flags().IntVar(&flags.items, "items", 0, "Number of markers (default: derived from the duration)")
	cmd.Flags().BoolVar(&flags.autoplay, "autoplay", constant.DefaultAutoplay, "Start counting immediately")

	cmd.AddCommand(newConfigCmd(&flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load merges explicitly set flags over the file and environment configuration
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("debug") {
		cfg.Debug = f.debug
	}
	if fs.Changed("decimal") {
		cfg.Timer.Decimal = f.decimal
	}
	if fs.Changed("items") {
		cfg.Timer.Items = f.items
	}
	if fs.Changed("autoplay") {
		cfg.Timer.Autoplay = f.autoplay
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version %s\n", constant.AppName, version)
}
