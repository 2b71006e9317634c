/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"github.com/go-logr/logr"

	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/keyprovider"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure a usable KeyProvider.
	if cfg.KeyProvider == nil {
		cfg.KeyProvider = keyprovider.Default()
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		KeyProvider: keyprovider.Default(),
		Logger:      logr.Discard(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithKeyProvider sets the KeyProvider option.
// A nil provider resets to the default.
func WithKeyProvider(kp apis.KeyProvider) Option {
	return func(c *apis.Config) {
		if kp == nil {
			c.KeyProvider = keyprovider.Default()
			return
		}
		c.KeyProvider = kp
	}
}

// WithLogger sets the Logger option.
func WithLogger(l logr.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
