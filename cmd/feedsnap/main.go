// Package main provides the CLI entry point for feedsnap.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"feedsnap/internal/config"
	"feedsnap/internal/normalizer"
	"feedsnap/internal/presets"
	"feedsnap/pkg/feedtypes"
	httputil "feedsnap/pkg/http"
	"feedsnap/pkg/jsonfeed"
	"feedsnap/pkg/preview"
	"feedsnap/pkg/urlutils"
)

// CLI structure
var CLI struct {
	Config string `help:"Configuration file path" default:"config.yaml"`
	Debug  bool   `help:"Enable debug logging" default:"false"`

	Fetch struct {
		URL      string `help:"Feed URL to fetch" name:"url"`
		Output   string `help:"Output JSON file path" name:"output" short:"o"`
		Feed     string `help:"Named feed preset from the presets file"`
		Metadata bool   `help:"Wrap entries in an envelope with feed metadata"`
		Timeout  int    `help:"Fetch timeout in seconds (0 uses the configured default)" default:"0"`
	} `cmd:"" default:"withargs" help:"Fetch a feed and write normalized JSON."`

	Preview struct {
		URL  string `help:"Feed URL to fetch" name:"url"`
		Feed string `help:"Named feed preset from the presets file"`
	} `cmd:"preview" help:"Preview normalized entries interactively."`
}

func main() {
	// Parse CLI with Kong YAML configuration file loading
	ctx := kong.Parse(&CLI,
		kong.Configuration(kongyaml.Loader, "config.yaml", "~/.feedsnap/config.yaml"),
	)

	// Configure logging level based on debug flag
	if CLI.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "fetch":
		runFetch(cfg)

	case "preview":
		runPreview(cfg)

	default:
		panic(ctx.Command())
	}
}

// runFetch normalizes one feed and writes the output file
func runFetch(cfg *config.Config) {
	feedURL := resolveFeedURL(CLI.Fetch.URL, CLI.Fetch.Feed, cfg)

	outPath := CLI.Fetch.Output
	if outPath == "" {
		outPath = cfg.OutputPath
	}

	timeout := cfg.Timeout()
	if CLI.Fetch.Timeout > 0 {
		timeout = time.Duration(CLI.Fetch.Timeout) * time.Second
	}

	entries, err := fetchEntries(feedURL, timeout, cfg.UserAgent)
	if err != nil {
		slog.Error("Failed to normalize feed", "url", feedURL, "error", err)
		os.Exit(1)
	}

	if CLI.Fetch.Metadata {
		err = jsonfeed.WriteDocument(jsonfeed.NewDocument(feedURL, entries), outPath)
	} else {
		err = jsonfeed.Write(entries, outPath)
	}
	if err != nil {
		slog.Error("Failed to write output file", "path", outPath, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %d entries to %s\n", len(entries), outPath)
	fmt.Printf("Sample entry: %s\n", truncate(entries[0].Title, 50))
}

// runPreview normalizes one feed and opens the interactive preview
func runPreview(cfg *config.Config) {
	feedURL := resolveFeedURL(CLI.Preview.URL, CLI.Preview.Feed, cfg)

	entries, err := fetchEntries(feedURL, cfg.Timeout(), cfg.UserAgent)
	if err != nil {
		slog.Error("Failed to normalize feed", "url", feedURL, "error", err)
		os.Exit(1)
	}

	if err := preview.Run(entries, feedURL); err != nil {
		slog.Error("Preview failed", "error", err)
		os.Exit(1)
	}
}

// resolveFeedURL picks the feed URL from the flag, a named preset, or the
// configured fallback, then validates it before any fetch is attempted.
func resolveFeedURL(flagURL, presetName string, cfg *config.Config) string {
	feedURL := flagURL
	if feedURL == "" && presetName != "" {
		resolved, err := presets.Resolve(cfg.PresetsPath, presetName)
		if err != nil {
			slog.Error("Failed to resolve feed preset", "preset", presetName, "error", err)
			os.Exit(1)
		}
		feedURL = resolved
	}
	if feedURL == "" {
		feedURL = cfg.FeedURL
	}

	if !urlutils.IsHTTPURL(feedURL) {
		slog.Error("Invalid feed URL format", "url", feedURL)
		os.Exit(1)
	}

	return feedURL
}

// fetchEntries wires the HTTP client, parser and normalizer together
func fetchEntries(feedURL string, timeout time.Duration, userAgent string) ([]feedtypes.Entry, error) {
	httpConfig := httputil.DefaultConfig()
	httpConfig.Timeout = timeout
	if userAgent != "" {
		httpConfig.UserAgent = userAgent
	}

	n := normalizer.New(normalizer.NewGofeedParser(httputil.NewClient(httpConfig)))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return n.Normalize(ctx, feedURL)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
