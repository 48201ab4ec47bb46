package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"collviz/internal/fileutil"
	"collviz/internal/settings"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings file utilities",
	}

	configCmd.AddCommand(newConfigPathCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the resolved settings file path",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.settingsPath()
			if err != nil {
				return fmt.Errorf("resolve settings path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample settings file",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				resolved, err := ctx.settingsPath()
				if err != nil {
					return fmt.Errorf("determine settings path: %w", err)
				}
				target = resolved
			} else {
				abs, err := filepath.Abs(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = abs
			}

			_, statErr := os.Stat(target)
			replacing := overwrite && statErr == nil
			if err := settings.WriteSample(target, overwrite); err != nil {
				if errors.Is(err, settings.ErrExists) {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				}
				return fmt.Errorf("create sample settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", target)
			if replacing {
				fmt.Fprintf(cmd.OutOrStdout(), "Previous settings saved to %s\n", fileutil.BackupPath(target))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing settings file")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the settings file",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := ctx.settingsPath()
			if err != nil {
				return fmt.Errorf("resolve settings path: %w", err)
			}
			fmt.Fprintf(out, "Settings path: %s\n", path)

			if _, err := ctx.ensureSettings(); err != nil {
				return fmt.Errorf("settings invalid [%s]: %w", settings.KindOf(err), err)
			}
			fmt.Fprintln(out, "Settings valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the loaded settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ctx.settingsValue()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch strings.ToLower(strings.TrimSpace(format)) {
			case "", "table":
				fmt.Fprintln(out, renderTable(
					[]string{"Option", "Type", "Value"},
					optionRows(opts),
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				return nil
			default:
				data, err := settings.Export(opts, format)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, toml or yaml")
	return cmd
}

func optionRows(opts settings.Options) [][]string {
	float := func(f float32) string {
		return strconv.FormatFloat(float64(f), 'f', -1, 32)
	}
	color := func(c settings.Color4) string {
		return fmt.Sprintf("%s, %s, %s (a=%s)", float(c.R), float(c.G), float(c.B), float(c.A))
	}
	return [][]string{
		{settings.KeyLogLevel, "int", strconv.Itoa(opts.LogLevel)},
		{settings.KeyDrawDistance, "float", float(opts.DrawDistance)},
		{settings.KeyWireframe, "bool", flagValue(opts.Wireframe)},
		{settings.KeyInflateByConvexRadius, "bool", flagValue(opts.InflateByConvexRadius)},
		{settings.KeyDedupConvexVertices, "bool", flagValue(opts.DedupConvexVertices)},
		{settings.KeyDedupConvexVerticesThreshold, "float", float(opts.DedupConvexVerticesThreshold)},
		{settings.KeyDedupConvexVerticesThresholdCleanup, "float", float(opts.DedupConvexVerticesThresholdCleanup)},
		{settings.KeyDuplicatePlanarShapeVertices, "bool", flagValue(opts.DuplicatePlanarShapeVertices)},
		{settings.KeyResetOnToggle, "bool", flagValue(opts.ResetOnToggle)},
		{settings.KeyDynamicColor, "color", color(opts.DynamicColor)},
		{settings.KeyFixedColor, "color", color(opts.FixedColor)},
	}
}
