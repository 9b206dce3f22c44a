// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the command-line entry point. The bare command opens the
// terminal UI; subcommands manage remembered accounts and text rules
// without it.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-markdo/internal/client"
	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/models"
)

const skipAppAnnotation = "markdo/skip-app"

// appFactory builds the client application for a command run.
type appFactory func(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*client.App, error)

// runtime carries state shared by the root command and its subcommands.
type runtime struct {
	info   models.AppBuildInfo
	flags  *config.Flags
	newApp appFactory

	cfg    *config.ClientConfig
	logger *logger.Logger
	app    *client.App
}

// NewRootCommand returns the markdo command tree.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	return newRootCommand(info, client.NewApp)
}

func newRootCommand(info models.AppBuildInfo, newApp appFactory) *cobra.Command {
	rt := &runtime{
		info:   info,
		flags:  config.NewFlags("markdo"),
		newApp: newApp,
	}

	cmd := &cobra.Command{
		Use:          "markdo",
		Short:        "Terminal client for Moodle",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.app.Run(cmd.Context())
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipAppAnnotation] == "true" {
				return nil
			}
			return rt.open(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return rt.close()
		},
	}
	cmd.PersistentFlags().AddGoFlagSet(rt.flags.FlagSet())

	cmd.AddCommand(newAccountsCmd(rt))
	cmd.AddCommand(newRulesCmd(rt))
	cmd.AddCommand(newVersionCmd(rt))

	return cmd
}

// open loads configuration, starts logging and builds the application.
func (rt *runtime) open(cmd *cobra.Command) error {
	cfg, err := config.GetClientConfig(rt.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	rt.cfg = cfg

	rt.logger = logger.NewClientLogger("markdo", cfg.App.LogFile, cfg.App.LogLevel)
	ctx := rt.logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	app, err := rt.newApp(ctx, cfg, rt.info, rt.logger)
	if err != nil {
		rt.logger.Err(err).Str("func", "cli.open").Msg("init client app error")
		return fmt.Errorf("init client app: %w", err)
	}
	rt.app = app
	return nil
}

func (rt *runtime) close() error {
	if rt.app == nil {
		return nil
	}
	err := rt.app.Close()
	rt.app = nil
	return err
}
