package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"collviz/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "check",
		Short:       "Check that the settings file can be found, read and loaded",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := preflight.Target{RuntimeDir: ctx.runtimeDir()}
			if ctx.flags.config == "" && target.RuntimeDir == "" {
				if dir, err := ctx.baseDir(); err == nil {
					target.RuntimeDir = dir
				}
			}
			if path, err := ctx.settingsPath(); err == nil {
				target.Path = path
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			failed := 0
			for _, result := range preflight.RunAll(target, ctx.log()) {
				if !result.Passed {
					failed++
				}
				fmt.Fprintln(out, renderCheckLine(result.Name, result.Passed, result.Detail, colorize))
			}
			if failed > 0 {
				return errors.New("settings checks failed")
			}
			return nil
		},
	}
}
