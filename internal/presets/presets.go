// Package presets resolves named feed shortcuts from a YAML file, so the
// scheduler can say `--feed nasa` instead of carrying URLs around.
package presets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of the presets file:
//
//	feeds:
//	  nasa: https://www.nasa.gov/rss/dyn/breaking_news.rss
type File struct {
	Feeds map[string]string `yaml:"feeds"`
}

// Load reads the presets file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}

	return &f, nil
}

// Resolve returns the feed URL registered under name.
func Resolve(path, name string) (string, error) {
	f, err := Load(path)
	if err != nil {
		return "", err
	}

	url, ok := f.Feeds[name]
	if !ok {
		return "", fmt.Errorf("unknown feed preset %q in %s", name, path)
	}

	return url, nil
}
