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
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a file logger for cfg. The terminal belongs to the
// widget, so without a log file everything is discarded. The returned
// function flushes the logger.
func NewLogger(cfg Config) (logr.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logr.Discard(), func() {}, nil
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logr.Logger{}, nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := zc.Build()
	if err != nil {
		return logr.Logger{}, nil, err
	}
	return zapr.NewLogger(zl).WithName("sysview"), func() { _ = zl.Sync() }, nil
}
