package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "collviz",
		Short:         "Collision visualiser settings tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			if shouldSkipSettings(cmd) {
				return nil
			}
			_, err := ctx.ensureSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Settings file path (overrides runtime directory lookup)")
	pf.StringVar(&flags.runtimeDir, "runtime-dir", "", "Game runtime directory (default $"+runtimeDirEnv+" or the executable's directory)")
	pf.StringVar(&flags.logFormat, "log-format", "console", "Log output format: console or json")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file instead of stderr")
	pf.BoolVar(&flags.logSource, "log-source", false, "Include source file and line in log records")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level regardless of the logLevel setting")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))

	return rootCmd
}
