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

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/propinject/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultPrefix    = "Design"
	DefaultExtension = ".js"
	DefaultParam     = "id"
)

// Replacement is a literal string replacement applied after injection
type Replacement struct {
	Old string `json:"old" yaml:"old" hcl:"old"`
	New string `json:"new" yaml:"new" hcl:"new"`
}

// Config is the complete run configuration
type Config struct {
	Directory            string        `json:"directory,omitempty" yaml:"directory,omitempty" hcl:"directory,optional"`
	Prefix               string        `json:"prefix,omitempty" yaml:"prefix,omitempty" hcl:"prefix,optional"`
	Extension            string        `json:"extension,omitempty" yaml:"extension,omitempty" hcl:"extension,optional"`
	Param                string        `json:"param,omitempty" yaml:"param,omitempty" hcl:"param,optional"`
	Attribute            string        `json:"attribute,omitempty" yaml:"attribute,omitempty" hcl:"attribute,optional"`
	Exclude              []string      `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	DryRun               bool          `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Diff                 bool          `json:"diff,omitempty" yaml:"diff,omitempty" hcl:"diff,optional"`
	Backup               bool          `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	AllowDuplicateParams bool          `json:"allow_duplicate_params,omitempty" yaml:"allow_duplicate_params,omitempty" hcl:"allow_duplicate_params,optional"`
	Replacements         []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block"`

	location string
}

// Default returns a config that reproduces the original migration
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills every empty field that has a default
func (cfg *Config) SetDefaults() {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if cfg.Param == "" {
		cfg.Param = DefaultParam
	}
	if cfg.Attribute == "" {
		cfg.Attribute = cfg.Param
	}
}

// Location is the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// Validate checks if the configuration is usable for a run
func Validate(ctx context.Context, cfg *Config) error {
	logger := zerolog.Ctx(ctx)

	if cfg.Directory == "" {
		return errors.Errorf("directory is required")
	}
	if cfg.Prefix == "" {
		return errors.Errorf("prefix is required")
	}
	if cfg.Extension == "" {
		return errors.Errorf("extension is required")
	}
	for i, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude[%d]: invalid pattern %q", i, pattern)
		}
	}
	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacements[%d]: old is required", i)
		}
	}

	if _, err := rewrite.NewInjector(cfg.RewriteOptions()); err != nil {
		return errors.Errorf("building rules: %w", err)
	}

	cfg.Directory = filepath.Clean(cfg.Directory)

	logger.Debug().Str("config", cfg.String()).Msg("validated configuration")
	return nil
}

// RewriteOptions converts the config into rule options
func (cfg *Config) RewriteOptions() rewrite.Options {
	opts := rewrite.Options{
		Prefix:               cfg.Prefix,
		Param:                cfg.Param,
		Attr:                 cfg.Attribute,
		AllowDuplicateParams: cfg.AllowDuplicateParams,
	}
	for _, r := range cfg.Replacements {
		opts.Literals = append(opts.Literals, rewrite.LiteralReplacement{Old: r.Old, New: r.New})
	}
	return opts
}

// String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s/%s*%s +%s %s={%s}", cfg.Directory, cfg.Prefix, cfg.Extension, cfg.Param, cfg.Attribute, cfg.Param)
}
