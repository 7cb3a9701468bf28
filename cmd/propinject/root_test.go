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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const designOne = `const DesignOne = ({ title }) => {
  return (
    <section className="x">{title}</section>
  );
};
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})

	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func writeSection(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        func(dir string) []string
		want        string
		wantOutput  []string
		errContains string
	}{
		{
			name: "defaults",
			args: func(dir string) []string { return []string{"run", dir} },
			want: `const DesignOne = ({ id, title }) => {
  return (
    <section id={id} className="x">{title}</section>
  );
};
`,
			wantOutput: []string{"Updating DesignOne.js", "Updated 1 of 1 files"},
		},
		{
			name: "custom_param",
			args: func(dir string) []string { return []string{"run", dir, "--param", "sectionId"} },
			want: `const DesignOne = ({ sectionId, title }) => {
  return (
    <section sectionId={sectionId} className="x">{title}</section>
  );
};
`,
			wantOutput: []string{"Updating DesignOne.js"},
		},
		{
			name: "custom_param_and_attr",
			args: func(dir string) []string { return []string{"run", dir, "--param", "sectionId", "--attr", "id"} },
			want: `const DesignOne = ({ sectionId, title }) => {
  return (
    <section id={sectionId} className="x">{title}</section>
  );
};
`,
			wantOutput: []string{"Updating DesignOne.js"},
		},
		{
			name:       "dry_run",
			args:       func(dir string) []string { return []string{"run", dir, "--dry-run"} },
			want:       designOne,
			wantOutput: []string{"Updating DesignOne.js (dry run)", "1 of 1 files would be updated"},
		},
		{
			name:       "excluded",
			args:       func(dir string) []string { return []string{"run", dir, "--exclude", "DesignOne*"} },
			want:       designOne,
			wantOutput: []string{"Nothing to update"},
		},
		{
			name:        "missing_directory_argument",
			args:        func(dir string) []string { return []string{"run"} },
			want:        designOne,
			errContains: "directory is required",
		},
		{
			name:        "directory_does_not_exist",
			args:        func(dir string) []string { return []string{"run", filepath.Join(dir, "missing")} },
			want:        designOne,
			errContains: "reading directory",
		},
		{
			name:        "invalid_param",
			args:        func(dir string) []string { return []string{"run", dir, "--param", "not valid"} },
			want:        designOne,
			errContains: "not a valid parameter name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeSection(t, dir, "DesignOne.js", designOne)

			out, err := runCLI(t, tt.args(dir)...)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, readFile(t, path))
			for _, want := range tt.wantOutput {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSection(t, dir, "DesignOne.js", designOne)

	out, err := runCLI(t, "check", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 files need updating")
	assert.Contains(t, out, "Updating DesignOne.js (dry run)")
	assert.Equal(t, designOne, readFile(t, path), "check should never write")

	_, err = runCLI(t, "run", dir)
	require.NoError(t, err)

	out, err = runCLI(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No changes for DesignOne.js")
	assert.Contains(t, out, "All files are up to date")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	root := t.TempDir()
	sections := filepath.Join(root, "sections")
	require.NoError(t, os.Mkdir(sections, 0755))
	path := writeSection(t, sections, "HeroOne.jsx", "const HeroOne = ({ title }) => {\n  return (<div className=\"hero\">{title}</div>);\n};\n")
	writeSection(t, sections, "DesignOne.js", designOne)

	configPath := writeSection(t, root, "propinject.yaml", `
directory: sections
prefix: Hero
extension: .jsx
backup: true
replacements:
  - old: className="hero"
    new: className="hero hero--wide"
`)

	out, err := runCLI(t, "run", "--config", configPath)
	require.NoError(t, err)

	assert.Equal(t, "const HeroOne = ({ id, title }) => {\n  return (<div id={id} className=\"hero hero--wide\">{title}</div>);\n};\n", readFile(t, path))
	assert.FileExists(t, path+".bak")
	assert.Equal(t, designOne, readFile(t, filepath.Join(sections, "DesignOne.js")), "non-candidates stay untouched")
	assert.Contains(t, out, "Updating HeroOne.jsx")
	assert.NotContains(t, out, "DesignOne.js")
}

func TestRunCommand_BadConfigFile(t *testing.T) {
	configPath := writeSection(t, t.TempDir(), "propinject.yaml", "nope: true\n")

	_, err := runCLI(t, "run", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "propinject version info")
	assert.Contains(t, out, "Go:")
}

func TestVersionCommand_IgnoresConfig(t *testing.T) {
	tests := []struct {
		name   string
		config func(dir string) string
	}{
		{
			name:   "missing_file",
			config: func(dir string) string { return filepath.Join(dir, "missing.yaml") },
		},
		{
			name: "invalid_file",
			config: func(dir string) string {
				return writeSection(t, dir, "propinject.yaml", "nope: true\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "--config", tt.config(t.TempDir()), "version")
			require.NoError(t, err)
			assert.Contains(t, out, "propinject version info")
		})
	}
}
