// Copyright 2026 Skein Labs
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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/skeinlabs/skein"
	"github.com/skeinlabs/skein/config"
	"github.com/skeinlabs/skein/core"
	"github.com/skeinlabs/skein/reader/directory"
)

func main() {
	app := &cli.App{
		Name:  "skein",
		Usage: "Ingest conversational and file data into documents for indexing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "slack",
				Usage:  "Ingest Slack channels, one document per channel",
				Action: slackCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML configuration file",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "Slack bot token (overrides config and SKEIN_SLACK_TOKEN)",
					},
					&cli.StringSliceFlag{
						Name:  "channel",
						Usage: "Channel ID to ingest (repeatable, overrides config)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of channels to ingest concurrently",
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "Records requested per API page (0 = API default)",
					},
				},
			},
			{
				Name:   "dir",
				Usage:  "Ingest the regular files of a directory",
				Action: dirCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Aliases:  []string{"p"},
						Usage:    "Directory to read",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "concatenate",
						Usage: "Concatenate all files into one document",
					},
					&cli.BoolFlag{
						Name:  "include-hidden",
						Usage: "Include dot-prefixed files",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func slackCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags override file and environment values.
	if c.String("token") != "" {
		cfg.Slack.Token = c.String("token")
	}
	if channels := c.StringSlice("channel"); len(channels) > 0 {
		cfg.Slack.Channels = channels
	}
	if c.Int("workers") > 0 {
		cfg.Reader.Workers = c.Int("workers")
	}
	if c.Int("page-size") > 0 {
		cfg.Slack.PageSize = c.Int("page-size")
	}

	docs, err := skein.LoadSlackDocuments(context.Background(), cfg)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if !doc.Complete {
			slog.Warn("document truncated by upstream failure", "channel", doc.ExtraInfo["channel"])
		}
	}

	return writeDocuments(c.App.Writer, docs)
}

func dirCommand(c *cli.Context) error {
	opts := []directory.Option{}
	if c.Bool("include-hidden") {
		opts = append(opts, directory.WithHiddenFiles())
	}

	docs, err := skein.LoadDirectoryDocuments(c.String("path"), c.Bool("concatenate"), opts...)
	if err != nil {
		return err
	}

	return writeDocuments(c.App.Writer, docs)
}

// documentJSON is the CLI's output shape for a core.Document.
type documentJSON struct {
	Id        core.ID           `json:"id"`
	Body      string            `json:"body"`
	ExtraInfo map[string]string `json:"extra_info,omitempty"`
	Complete  bool              `json:"complete"`
}

func writeDocuments(w io.Writer, docs []core.Document) error {
	out := make([]documentJSON, 0, len(docs))
	for _, doc := range docs {
		out = append(out, documentJSON{
			Id:        doc.Id,
			Body:      doc.Body,
			ExtraInfo: doc.ExtraInfo,
			Complete:  doc.Complete,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
