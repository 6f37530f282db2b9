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


// Package config loads tool configuration from a YAML file and the
// environment. Environment variables use the SKEIN_ prefix and override file
// values, e.g. SKEIN_SLACK_TOKEN sets slack.token.
package config

import (
	"errors"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidWorkers indicates a non-positive worker count.
var ErrInvalidWorkers = errors.New("reader workers must be positive")

type Config struct {
	Slack  SlackConfig  `koanf:"slack"`
	Reader ReaderConfig `koanf:"reader"`
	Log    LogConfig    `koanf:"log"`
}

type SlackConfig struct {
	Token    string   `koanf:"token"`
	Channels []string `koanf:"channels"`
	PageSize int      `koanf:"pagesize"`
}

type ReaderConfig struct {
	Workers int `koanf:"workers"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Default returns the configuration used when neither file nor environment
// set a value.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{Workers: 2},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads configuration from the given YAML file, if any, then overlays
// SKEIN_-prefixed environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("SKEIN_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SKEIN_")), "_", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Reader.Workers < 1 {
		return nil, ErrInvalidWorkers
	}
	return cfg, nil
}
