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

package sysview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned for a config file that cannot be used.
var ErrInvalidConfig = errors.New("sysview: invalid config")

// Config is the sysview configuration file.
//
//	refresh_interval = "2s"
//	max_processes = 5
//	log_file = "/tmp/sysview.log"
//	log_level = "debug"
//	diff = true
type Config struct {
	RefreshInterval Duration `toml:"refresh_interval"`
	MaxProcesses    int      `toml:"max_processes"`
	LogFile         string   `toml:"log_file"`
	LogLevel        string   `toml:"log_level"`
	Diff            bool     `toml:"diff"`
}

// Duration is a time.Duration written as a string such as "1500ms".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: Duration(2 * time.Second),
		MaxProcesses:    5,
		LogLevel:        "info",
		Diff:            true,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the
// defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: refresh_interval must be positive, got %s",
			ErrInvalidConfig, time.Duration(c.RefreshInterval)))
	}
	if c.MaxProcesses < 0 {
		errs = append(errs, fmt.Errorf("%w: max_processes must not be negative, got %d",
			ErrInvalidConfig, c.MaxProcesses))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}
