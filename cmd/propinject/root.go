// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/propinject/cmd/propinject/commands"
	"github.com/walteh/propinject/cmd/propinject/opts"
	"github.com/walteh/propinject/pkg/config"
	"github.com/walteh/propinject/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
}

// newRootCmd builds the command tree. RootOpts is filled in before any subcommand runs.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "propinject",
		Short:         "Inject a prop into component declarations and their root elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(flags.debug)
			ctx := zlog.WithContext(cmd.Context())
			ctx = log.NewContext(ctx, log.New(cmd.OutOrStdout(), zlog))
			cmd.SetContext(ctx)

			// version never reads the config, so a broken -c must not fail it
			if cmd.Name() == versionCmdName {
				return nil
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			rootOpts.Config = cfg
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .hcl or .json)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// loadConfig reads the config file if one was given, otherwise starts from defaults
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	if flags.configFile == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(cmd.Context(), flags.configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}
