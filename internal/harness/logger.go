// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

package harness

import (
	"context"
	"log/slog"
)

// Logger is the interface used to get log output from the harness.
type Logger interface {
	// Info logs a progress message with optional key-value pairs.
	Info(ctx context.Context, msg string, args ...any)
	// Warn logs a message at the warn level with an error.
	Warn(ctx context.Context, msg string, err error)
	// Error logs a message at the error level with an error.
	Error(ctx context.Context, msg string, err error)
}

// NewLogger returns a Logger that writes to log. A nil log means slog.Default().
func NewLogger(log *slog.Logger) Logger {
	return &defaultLogger{
		log: log,
	}
}

type defaultLogger struct {
	log *slog.Logger
}

func (dl *defaultLogger) logger() *slog.Logger {
	if dl.log == nil {
		return slog.Default()
	}
	return dl.log
}

func (dl *defaultLogger) Info(ctx context.Context, msg string, args ...any) {
	dl.logger().InfoContext(ctx, msg, args...)
}

func (dl *defaultLogger) Warn(ctx context.Context, msg string, err error) {
	dl.logger().WarnContext(ctx, msg, slog.Any("err", err))
}

func (dl *defaultLogger) Error(ctx context.Context, msg string, err error) {
	dl.logger().ErrorContext(ctx, msg, slog.Any("err", err))
}

// NoopLogger is a stub implementation of Logger interface. It may be useful if logging is not required.
type NoopLogger struct{}

func (nl *NoopLogger) Info(ctx context.Context, msg string, args ...any) {}
func (nl *NoopLogger) Warn(ctx context.Context, msg string, err error)   {}
func (nl *NoopLogger) Error(ctx context.Context, msg string, err error)  {}
