// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/relabs-tech/gyro_hue/internal/app"
	"github.com/relabs-tech/gyro_hue/internal/config"
	"github.com/relabs-tech/gyro_hue/internal/logging"
)

// SDL expects every call on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "gyrohue",
		Short:         "Paint a window with a colour steered by a gamepad gyroscope",
		Long:          "Yaw picks the hue, roll the saturation and pitch the lightness.\nPress the south face button to reset, Escape or close the window to quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitGlobal(configPath); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return app.RunGyroHue()
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to configuration file (built-in defaults when empty)")

	var interval time.Duration
	console := &cobra.Command{
		Use:   "console",
		Short: "Run headless from the mock gyro and log the colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunMockConsole(logging.NewWithWriter("info", os.Stdout), interval)
		},
	}
	console.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "log interval")

	root.AddCommand(console)
	return root
}
