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
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/propinject/cmd/propinject/opts"
	"github.com/walteh/propinject/pkg/config"
	"github.com/walteh/propinject/pkg/log"
	"github.com/walteh/propinject/pkg/rewrite"
	"github.com/walteh/propinject/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Inject the parameter and attribute into candidate files",
		Long: `Run rewrites every candidate file in the directory.
It will:
1. Select files named <prefix>*<ext>
2. Add the parameter to the first "const <prefix>Name = ({" declaration
3. Add attr={param} to the root element of every "return (" statement
4. Write back only the files whose content changed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, args, opts.Config)

			ctx := cmd.Context()
			summary, err := execute(ctx, opts.Config)
			if err != nil {
				return err
			}

			logger := log.FromContext(ctx)
			switch {
			case summary.Updated == 0:
				logger.Success("Nothing to update")
			case opts.Config.DryRun:
				logger.Successf("%d of %d files would be updated", summary.Updated, len(summary.Files))
			default:
				logger.Successf("Updated %d of %d files", summary.Updated, len(summary.Files))
			}
			return nil
		},
	}

	flags.bind(cmd, true)
	return cmd
}

// execute validates the config and runs a transformer over it, reporting
// through the logger stored in ctx
func execute(ctx context.Context, cfg *config.Config) (*transform.Summary, error) {
	logger := log.FromContext(ctx)

	if err := config.Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	rw, err := rewrite.NewInjector(cfg.RewriteOptions())
	if err != nil {
		return nil, errors.Errorf("creating rewriter: %w", err)
	}

	names := make([]string, 0, len(rw.Rules()))
	for _, rule := range rw.Rules() {
		names = append(names, rule.Name())
	}
	zerolog.Ctx(ctx).Debug().Strs("rules", names).Str("directory", cfg.Directory).Msg("starting transform")

	tr, err := transform.New(transform.Options{
		Directory: cfg.Directory,
		Matcher: transform.Matcher{
			Prefix:    cfg.Prefix,
			Extension: cfg.Extension,
			Exclude:   cfg.Exclude,
		},
		Rewriter: rw,
		Reporter: logger,
		DryRun:   cfg.DryRun,
		Diff:     cfg.Diff,
		Backup:   cfg.Backup,
	})
	if err != nil {
		return nil, errors.Errorf("creating transformer: %w", err)
	}

	logger.Header(cfg.String())

	summary, err := tr.Run(ctx)
	logger.Summary(ctx)
	if err != nil {
		return nil, errors.Errorf("transforming %s: %w", cfg.Directory, err)
	}

	return summary, nil
}
