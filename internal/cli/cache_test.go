package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(xdg, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheCommands(t *testing.T) {
	stdout, err := execute(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Cache is empty") {
		t.Errorf("clear on a fresh cache:\n%s", stdout)
	}

	graph := filepath.Join(t.TempDir(), "graph.json")
	if _, err := execute(t, "generate", "-n", "100", "-o", graph); err != nil {
		t.Fatal(err)
	}
	stdout, err = execute(t, "generate", "-n", "100", "-o", graph)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "loaded from cache") {
		t.Errorf("second generate should hit the cache:\n%s", stdout)
	}

	stdout, err = execute(t, "generate", "-n", "100", "--refresh", "-o", graph)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stdout, "loaded from cache") {
		t.Error("--refresh should bypass the cache")
	}

	stdout, err = execute(t, "cache", "info")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "graphs") || !strings.Contains(stdout, "KiB") {
		t.Errorf("info output:\n%s", stdout)
	}

	stdout, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Cleared 1 cached graphs") {
		t.Errorf("clear output:\n%s", stdout)
	}

	stdout, err = execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(stdout), appName) {
		t.Errorf("cache path = %q", stdout)
	}
}
