package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cintel/penguins/internal/logging"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("controls:\n  seaborn_bins: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	type result struct {
		cfg *Config
		err error
	}
	results := make(chan result, 8)

	w, err := Watch(path, func(cfg *Config, err error) {
		results <- result{cfg, err}
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("controls:\n  seaborn_bins: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-results:
		if r.err != nil {
			t.Fatalf("reload error = %v", r.err)
		}
		if r.cfg.Controls.SeabornBins != 9 {
			t.Errorf("expected seaborn_bins 9, got %d", r.cfg.Controls.SeabornBins)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatch_ReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("title: ok\n"), 0644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 8)
	w, err := Watch(path, func(_ *Config, err error) { errs <- err })
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("controls:\n  plotly_bins: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if err == nil {
			t.Error("expected a validation error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no callback after write")
	}
}

func TestWatch_LogsReloadOnce(t *testing.T) {
	var buf bytes.Buffer
	logging.SetGlobal(logging.NewWriter(&buf, &logging.Config{Level: logging.LevelInfo}))
	t.Cleanup(func() { logging.SetGlobal(nil) })

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("title: ok\n"), 0644); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{}, 8)
	w, err := Watch(path, func(*Config, error) { done <- struct{}{} })
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("title: changed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	w.Stop()

	if n := strings.Count(buf.String(), "config reloaded"); n != 1 {
		t.Errorf("logged %d reload lines, want 1:\n%s", n, buf.String())
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("title: ok\n"), 0644); err != nil {
		t.Fatal(err)
	}

	called := make(chan struct{}, 1)
	w, err := Watch(path, func(*Config, error) { called <- struct{}{} })
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-called:
		t.Error("callback fired for an unrelated file")
	case <-time.After(4 * DefaultDebounce):
	}
}

func TestWatcher_StopTwice(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "config.yaml"), func(*Config, error) {})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("first Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}
