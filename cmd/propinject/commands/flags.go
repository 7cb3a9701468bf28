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
	"github.com/walteh/propinject/pkg/config"
)

// runFlags are the per-run overrides shared by run and check
type runFlags struct {
	prefix               string
	extension            string
	param                string
	attribute            string
	exclude              []string
	dryRun               bool
	diff                 bool
	backup               bool
	allowDuplicateParams bool
}

func (f *runFlags) bind(cmd *cobra.Command, withWrites bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.prefix, "prefix", config.DefaultPrefix, "file and declaration name prefix")
	fs.StringVar(&f.extension, "ext", config.DefaultExtension, "file extension")
	fs.StringVar(&f.param, "param", config.DefaultParam, "parameter injected into the props")
	fs.StringVar(&f.attribute, "attr", "", "attribute set on the root element (defaults to --param)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "glob of candidate file names to skip (repeatable)")
	fs.BoolVar(&f.diff, "diff", false, "print the changed lines of each updated file")
	fs.BoolVar(&f.allowDuplicateParams, "allow-duplicate-params", false, "inject the parameter even if it is already destructured")
	if withWrites {
		fs.BoolVar(&f.dryRun, "dry-run", false, "report changes without writing")
		fs.BoolVar(&f.backup, "backup", false, "write <name>.bak before overwriting a file")
	}
}

// apply copies every flag the user set onto cfg, plus the directory argument
func (f *runFlags) apply(cmd *cobra.Command, args []string, cfg *config.Config) {
	fs := cmd.Flags()
	if len(args) > 0 {
		cfg.Directory = args[0]
	}
	if fs.Changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if fs.Changed("ext") {
		cfg.Extension = f.extension
	}
	if fs.Changed("param") {
		// an attribute that followed the old param keeps following it
		if cfg.Attribute == cfg.Param {
			cfg.Attribute = f.param
		}
		cfg.Param = f.param
	}
	if fs.Changed("attr") {
		cfg.Attribute = f.attribute
	}
	if fs.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, f.exclude...)
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if fs.Changed("diff") {
		cfg.Diff = f.diff
	}
	if fs.Changed("backup") {
		cfg.Backup = f.backup
	}
	if fs.Changed("allow-duplicate-params") {
		cfg.AllowDuplicateParams = f.allowDuplicateParams
	}
}
