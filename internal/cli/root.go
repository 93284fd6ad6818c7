package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduling/config"
	"os-scheduling/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	debug      bool

	config *config.SchedulerConfig
	logger *slog.Logger
}

// NewRootCmd creates the schedmetrics command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "schedmetrics",
		Short: "Waiting and turnaround time for FCFS and round robin scheduling",
		Long: "schedmetrics computes per-process waiting and turnaround times and their averages\n" +
			"for first-come first-serve and round robin cpu scheduling.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml if present)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newFirstComeFirstServeCmd(opts),
		newRoundRobinCmd(opts),
		newCompareCmd(opts),
		newServeCmd(opts),
	)

	return root
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	var err error
	if o.configPath != "" {
		o.config, err = config.LoadSchedulerConfig(o.configPath)
	} else {
		o.config, err = config.GetSchedulerConfig()
	}
	if err != nil {
		return err
	}

	// flags win over the config file
	level := o.config.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = o.logLevel
	}
	if o.debug {
		level = "debug"
	}
	format := o.config.LogFormat
	if cmd.Flags().Changed("log-format") {
		format = o.logFormat
	}

	o.logger = logging.NewLoggerWithWriter(logging.ParseLevel(level), format, cmd.ErrOrStderr())
	slog.SetDefault(o.logger)
	return nil
}
