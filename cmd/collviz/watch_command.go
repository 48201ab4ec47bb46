package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"collviz/internal/settings"
)

func watchLockPath(settingsPath string) string {
	return settingsPath + ".watch.lock"
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the settings file whenever it changes",
		Long: "Watch the settings file and reload it after every edit. A reload " +
			"that fails keeps the previously loaded settings in effect.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ctx.settingsValue()
			if err != nil {
				return err
			}
			path, err := ctx.settingsPath()
			if err != nil {
				return err
			}

			lock := flock.New(watchLockPath(path))
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire watch lock: %w", err)
			}
			if !ok {
				return errors.New("another collviz watcher is already running for this settings file")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			holder := settings.NewHolder(opts, path, ctx.log())
			updates := make(chan settings.Options, 1)
			holder.Subscribe(updates)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", path)

			watchCtx, cancel := context.WithCancel(cmd.Context())
			printed := make(chan struct{})
			go func() {
				defer close(printed)
				for {
					select {
					case <-watchCtx.Done():
						return
					case next := <-updates:
						fmt.Fprintf(out, "Applied settings: logLevel=%d drawDistance=%g wireframe=%s\n",
							next.LogLevel, next.DrawDistance, flagValue(next.Wireframe))
					}
				}
			}()

			err = holder.Watch(watchCtx)
			cancel()
			<-printed
			return err
		},
	}
}
