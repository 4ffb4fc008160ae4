package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/guikit/backend/opengl"
	"github.com/go-theft-auto/guikit/shell"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the demo window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, flags)
		},
	}
}

func runDemo(cmd *cobra.Command, flags *rootFlags) (err error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	platform, err := opengl.NewPlatform(cfg.Window)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer func() {
		err = errors.Join(err, platform.Close())
	}()

	d := newDemo()
	app, err := shell.New(platform, cfg,
		shell.WithBeforeLoop(func() error {
			d.log.add("ready")
			return nil
		}),
		shell.WithBeforeQuit(func() {
			logger.Info("quitting", "events", d.log.total)
		}),
	)
	if err != nil {
		return err
	}
	if err := d.install(app.Dock()); err != nil {
		return err
	}
	return app.Run(ctx)
}
