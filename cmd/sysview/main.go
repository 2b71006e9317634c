/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command sysview shows live host metrics as a heterogeneous list.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dirpx.dev/adapt"
	"dirpx.dev/adapt/config"
	"dirpx.dev/adapt/internal/sysview"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sysview: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath   string
		diff         bool
		interval     time.Duration
		maxProcesses int
	)

	cmd := &cobra.Command{
		Use:          "sysview",
		Short:        "Live system metrics in a terminal list",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := sysview.LoadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("diff") {
				cfg.Diff = diff
			}
			if flags.Changed("interval") {
				cfg.RefreshInterval = sysview.Duration(interval)
			}
			if flags.Changed("max-processes") {
				cfg.MaxProcesses = maxProcesses
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("SYSVIEW_CONFIG"), "config file (default $SYSVIEW_CONFIG)")
	cmd.Flags().BoolVar(&diff, "diff", true, "send minimal change notifications instead of full resets")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 2*time.Second, "refresh interval")
	cmd.Flags().IntVarP(&maxProcesses, "max-processes", "n", 5, "number of processes to show, 0 hides them")
	return cmd
}

func run(cfg sysview.Config) error {
	log, flush, err := sysview.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer flush()

	opts := []adapt.Option{adapt.WithLogger(log.WithName("adapt"))}
	if cfg.Diff {
		opts = append(opts, adapt.WithUpdateStrategy(sysview.DiffStrategy()))
	}
	ctrl, err := sysview.NewController(config.NewConfig(config.WithLogger(log.WithName("registry"))), opts...)
	if err != nil {
		return err
	}

	m := sysview.NewModel(ctrl, sysview.HostCollector(cfg.MaxProcesses),
		time.Duration(cfg.RefreshInterval), sysview.WithLogger(log))
	defer m.Close()

	log.Info("starting", "interval", time.Duration(cfg.RefreshInterval).String(), "diff", cfg.Diff)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
