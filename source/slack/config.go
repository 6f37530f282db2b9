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


package slack

// Config holds configuration for the Slack Web API binding.
//
// The token is always passed explicitly; the binding never consults process
// environment variables itself.
type Config struct {
	// Token is the bot or user token used to authenticate API calls.
	// Required.
	Token string

	// APIURL overrides the Slack Web API base URL. Used to point the
	// client at a test server; leave empty for the production endpoint.
	APIURL string

	// PageSize is the number of records requested per page.
	// Zero lets the API apply its own default.
	PageSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIURL overrides the Slack Web API base URL.
func WithAPIURL(url string) ConfigOption {
	return func(c *Config) {
		c.APIURL = url
	}
}

// WithPageSize sets the number of records requested per page.
func WithPageSize(size int) ConfigOption {
	return func(c *Config) {
		c.PageSize = size
	}
}

// NewConfig creates a Config for the given token with the provided options.
func NewConfig(token string, opts ...ConfigOption) *Config {
	c := &Config{Token: token}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c == nil || c.Token == "" {
		return ErrTokenRequired
	}
	if c.PageSize < 0 {
		return ErrInvalidPageSize
	}
	return nil
}
