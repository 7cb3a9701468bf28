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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/propinject/cmd/propinject/opts"
	"github.com/walteh/propinject/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Check if any candidate file still needs the injection",
		Long: `Check runs the same rules as run without writing anything.
It exits with an error when at least one file would change, which makes it
usable as a CI gate after the migration has been applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, args, opts.Config)
			opts.Config.DryRun = true
			opts.Config.Backup = false

			ctx := cmd.Context()
			summary, err := execute(ctx, opts.Config)
			if err != nil {
				return err
			}

			logger := log.FromContext(ctx)
			if summary.Updated > 0 {
				logger.Warningf("%d of %d files need updating", summary.Updated, len(summary.Files))
				return errors.Errorf("%d files need updating", summary.Updated)
			}

			logger.Success("All files are up to date")
			return nil
		},
	}

	flags.bind(cmd, false)
	return cmd
}
