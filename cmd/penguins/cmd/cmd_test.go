package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/cintel/penguins/internal/config"
	"github.com/cintel/penguins/internal/dashboard"
	perrors "github.com/cintel/penguins/internal/errors"
)

// newTestRoot creates a fresh command hierarchy for testing.
// This is necessary because Cobra commands maintain state between runs.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "penguins",
		Short:         "Palmer Penguins dashboard",
		Long:          "Penguins is a terminal dashboard for the Palmer Penguins dataset.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = "test"
	root.SetVersionTemplate("penguins {{.Version}}\n")
	addGlobalFlags(root)

	filter := &cobra.Command{Use: "filter", Args: cobra.NoArgs, RunE: runFilter}
	addSelectionFlags(filter)
	filter.Flags().StringP("format", "f", formatTable, "Output format")
	root.AddCommand(filter)

	export := &cobra.Command{Use: "export", Args: cobra.NoArgs, RunE: runExport}
	addSelectionFlags(export)
	export.Flags().StringP("out", "o", "", "")
	export.Flags().StringP("attribute", "a", "", "")
	export.Flags().Int("plotly-bins", 0, "")
	export.Flags().Int("seaborn-bins", 0, "")
	export.Flags().Int("width", 0, "")
	export.Flags().Int("height", 0, "")
	root.AddCommand(export)

	initC := &cobra.Command{Use: "init", Args: cobra.NoArgs, RunE: runInit}
	initC.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	root.AddCommand(initC)

	versionC := &cobra.Command{Use: "version", Args: cobra.NoArgs, RunE: runVersion}
	versionC.Flags().Bool("json", false, "")
	root.AddCommand(versionC)

	return root
}

// execute runs args against a fresh root inside a temporary working
// directory and returns the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := newTestRoot()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantErr:    false,
			wantOutput: "Available Commands:",
		},
		{
			name:       "help shows long description",
			args:       []string{"--help"},
			wantErr:    false,
			wantOutput: "terminal dashboard for the Palmer Penguins",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantErr:    false,
			wantOutput: "penguins test",
		},
		{
			name:    "unknown command",
			args:    []string{"unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOutput != "" && !strings.Contains(out, tt.wantOutput) {
				t.Errorf("Execute() output = %q, want to contain %q", out, tt.wantOutput)
			}
		})
	}
}

func TestRegisteredCommands(t *testing.T) {
	want := []string{"dashboard", "export", "filter", "init", "version"}
	for _, name := range want {
		c, _, err := Root().Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, c.Name(), err)
		}
	}

	for _, flag := range []string{"config", "data", "verbose"} {
		if Root().PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
	if dashboardCmd.Flags().Lookup("watch") == nil {
		t.Error("dashboard is missing --watch")
	}
}

func TestFilterCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
		wantLines  int
	}{
		{
			name:       "default selection as table",
			args:       []string{"filter"},
			wantOutput: "33 of 69 rows",
		},
		{
			name:       "table has headers",
			args:       []string{"filter", "--species", "Adelie"},
			wantOutput: "bill_length_mm",
		},
		{
			name:      "csv with header",
			args:      []string{"filter", "--species", "Adelie", "--island", "Dream", "--format", "csv"},
			wantLines: 11,
		},
		{
			name:      "comma separated species",
			args:      []string{"filter", "--species", "Gentoo,Chinstrap", "--island", "Dream", "--format", "csv"},
			wantLines: 15,
		},
		{
			name:       "empty species selects nothing",
			args:       []string{"filter", "--species", ""},
			wantOutput: "0 of 69 rows",
		},
		{
			name:       "unknown species selects nothing",
			args:       []string{"filter", "--species", "Emperor"},
			wantOutput: "0 of 69 rows",
		},
		{
			name:    "unknown format",
			args:    []string{"filter", "--format", "xml"},
			wantErr: true,
		},
		{
			name:    "extra argument",
			args:    []string{"filter", "Adelie"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOutput != "" && !strings.Contains(out, tt.wantOutput) {
				t.Errorf("output = %q, want to contain %q", out, tt.wantOutput)
			}
			if tt.wantLines > 0 {
				if got := strings.Count(out, "\n"); got != tt.wantLines {
					t.Errorf("output has %d lines, want %d:\n%s", got, tt.wantLines, out)
				}
			}
		})
	}
}

func TestFilterJSON(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "filter", "--species", "Adelie", "--island", "Dream", "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, out)
	}
	if len(rows) != 10 {
		t.Fatalf("len(rows) = %d, want 10", len(rows))
	}
	for _, r := range rows {
		if r["species"] != "Adelie" || r["island"] != "Dream" {
			t.Errorf("row outside the selection: %v", r)
		}
	}
}

func TestFilterUsesConfigSelection(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg := config.NewConfig()
	cfg.Controls.Species = []string{"Adelie"}
	cfg.Controls.Islands = []string{"Torgersen"}
	path := filepath.Join(dir, "custom.yaml")
	if err := config.Save(cfg, path); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "filter", "--format", "csv")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		if !strings.HasPrefix(line, "Adelie,Torgersen,") {
			t.Errorf("unexpected row %q", line)
		}
	}
}

func TestMissingInputs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantKind error
	}{
		{"missing dataset", []string{"--data", "nope.csv", "filter"}, perrors.ErrNotFound},
		{"missing explicit config", []string{"--config", "nope.yaml", "filter"}, perrors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Execute() error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	outDir := filepath.Join(dir, "plots")

	out, err := execute(t, "export", "--out", outDir, "--width", "320", "--height", "240",
		"--attribute", "body_mass_g", "--plotly-bins", "10", "--seaborn-bins", "99")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}

	files := []string{
		dashboard.DataGridFile,
		dashboard.PlotlyHistogramFile,
		dashboard.SeabornHistogramFile,
		dashboard.ScatterFile,
	}
	for _, name := range files {
		path := filepath.Join(outDir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
		if !strings.Contains(out, "Wrote "+path) {
			t.Errorf("output does not mention %s:\n%s", path, out)
		}
	}
}

func TestExportEmptySelection(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	outDir := filepath.Join(dir, "plots")

	_, err := execute(t, "export", "--out", outDir, "--species", "")
	if err == nil {
		t.Fatal("Execute() error = nil, want empty chart errors")
	}
	if _, statErr := os.Stat(filepath.Join(outDir, dashboard.DataGridFile)); statErr != nil {
		t.Errorf("data grid not written: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, dashboard.ScatterFile)); statErr == nil {
		t.Error("scatter written for an empty selection")
	}
}

func TestExportRejectsBadControls(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantKind error
	}{
		{"unknown attribute", []string{"export", "--attribute", "wingspan"}, perrors.ErrAttribute},
		{"zero plotly bins", []string{"export", "--plotly-bins", "0"}, perrors.ErrConfig},
		{"huge plotly bins", []string{"export", "--plotly-bins", "9223372036854775807"}, perrors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Execute() error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, config.DefaultConfigPath)

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(out, "Created "+config.DefaultConfigPath) {
		t.Errorf("output = %q", out)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Controls.Attribute != dashboard.DefaultSelection().Attribute {
		t.Errorf("Attribute = %q", cfg.Controls.Attribute)
	}

	if _, err := execute(t, "init"); !errors.Is(err, perrors.ErrConfig) {
		t.Errorf("second init error = %v, want ErrConfig", err)
	}
	if _, err := execute(t, "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestInitCustomPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "nested", "demo.yaml")

	if _, err := execute(t, "--config", path, "init"); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "penguins "+Version) || !strings.Contains(out, "OS/Arch:") {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json error = %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if info["version"] != Version {
		t.Errorf("version = %q, want %q", info["version"], Version)
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: []string{"Error: boom"},
		},
		{
			name: "penguin error",
			err:  perrors.WithSuggestion(perrors.ErrConfig, "bad value", "fix it"),
			want: []string{"Error: ", "bad value", "Suggestion: fix it"},
		},
		{
			name: "joined errors",
			err:  errors.Join(perrors.EmptyChart("a"), perrors.EmptyChart("b")),
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			printError(buf, tt.err)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output = %q, want to contain %q", buf.String(), w)
				}
			}
		})
	}
	buf := new(bytes.Buffer)
	printError(buf, errors.Join(perrors.EmptyChart("a"), perrors.EmptyChart("b")))
	if n := strings.Count(buf.String(), "Error: "); n != 2 {
		t.Errorf("joined errors printed %d times, want 2:\n%s", n, buf.String())
	}
}
