// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package logger

import "log"

// Logger provides a simple logging interface
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(format string, args ...interface{})
	With(tag string) Logger
}

type defaultLogger struct {
	prefix string
}

func New(prefix string) Logger {
	return &defaultLogger{prefix: prefix}
}

// With returns a derived logger whose lines carry an extra tag,
// e.g. the operation ID of one request.
func (l *defaultLogger) With(tag string) Logger {
	return &defaultLogger{prefix: l.prefix + "[" + tag + "] "}
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	log.Printf("[INFO] "+l.prefix+format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	log.Printf("[ERROR] "+l.prefix+format, args...)
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	log.Printf("[DEBUG] "+l.prefix+format, args...)
}
