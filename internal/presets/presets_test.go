package presets

import (
	"os"
	"path/filepath"
	"testing"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write presets file: %v", err)
	}
	return path
}

func TestResolve(t *testing.T) {
	path := writePresets(t, `feeds:
  nasa: https://www.nasa.gov/rss/dyn/breaking_news.rss
  hackernews: https://news.ycombinator.com/rss
`)

	url, err := Resolve(path, "nasa")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if url != "https://www.nasa.gov/rss/dyn/breaking_news.rss" {
		t.Errorf("Resolve() = %q", url)
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	path := writePresets(t, `feeds:
  nasa: https://www.nasa.gov/rss/dyn/breaking_news.rss
`)

	if _, err := Resolve(path, "missing"); err == nil {
		t.Error("Resolve() should fail for an unknown preset name")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "feeds.yaml")); err == nil {
		t.Error("Load() should fail when the presets file is absent")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writePresets(t, "feeds: [not a map")

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}
