// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务
//
// Package process wraps exec.Cmd for running one FFmpeg invocation
// to completion.

package process

import (
	"bytes"
	"container/ring"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// Runner executes an external tool as a child process and waits for it
// to exit. Every call blocks for the full run; callers that must stay
// responsive dispatch through a Pool.
type Runner interface {
	Run(binary string, args []string) (Result, error)
}

// Result of one finished invocation.
type Result struct {
	Output     string        // combined stdout/stderr text
	ExitCode   int
	Elapsed    time.Duration
	PeakCPU    float64 // percent
	PeakMemory uint64  // bytes, RSS
}

// Logger interface
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// BinaryNotFoundError means the executable could not be located or spawned.
type BinaryNotFoundError struct {
	Binary string
	Err    error
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("binary %q could not be spawned: %v", e.Binary, e.Err)
}

func (e *BinaryNotFoundError) Unwrap() error { return e.Err }

// ProcessFailedError means the child exited non-zero. Excerpt holds the
// tail of the captured output for diagnostics.
type ProcessFailedError struct {
	ExitCode int
	Excerpt  string
}

func (e *ProcessFailedError) Error() string {
	return fmt.Sprintf("process exited with code %d: %s", e.ExitCode, e.Excerpt)
}

// Config for a Runner
type Config struct {
	MaxLogLines int           // output lines kept for failure excerpts
	SampleEvery time.Duration // CPU/memory sampling interval
	Sampler     Sampler
	Logger      Logger
}

type runner struct {
	logLines    int
	sampleEvery time.Duration
	sampler     Sampler
	logger      Logger
}

// NewRunner creates a Runner
func NewRunner(config Config) Runner {
	r := &runner{
		logLines:    config.MaxLogLines,
		sampleEvery: config.SampleEvery,
		sampler:     config.Sampler,
		logger:      config.Logger,
	}
	if r.logLines <= 0 {
		r.logLines = 100
	}
	if r.sampleEvery <= 0 {
		r.sampleEvery = 200 * time.Millisecond
	}
	if r.sampler == nil {
		r.sampler = NewSysSampler()
	}
	if r.logger == nil {
		r.logger = &nopLogger{}
	}
	return r
}

func (r *runner) Run(binary string, args []string) (Result, error) {
	if len(binary) == 0 {
		return Result{}, &BinaryNotFoundError{Binary: binary, Err: fmt.Errorf("no binary given")}
	}

	cmd := exec.Command(binary, args...)
	cmd.Env = []string{}

	// The same buffer on both fds makes exec serialize writes, giving
	// combined output without a second reader goroutine.
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{}, &BinaryNotFoundError{Binary: binary, Err: err}
	}

	pid := cmd.Process.Pid
	r.logger.Debug("spawned %s pid=%d args=%q", binary, pid, strings.Join(args, " "))

	sampleDone := make(chan struct{})
	peaksCh := make(chan peaks, 1)
	sampling := false
	if err := r.sampler.Start(pid); err == nil {
		sampling = true
		go r.samplePeaks(sampleDone, peaksCh)
	}

	waitErr := cmd.Wait()
	close(sampleDone)

	var pk peaks
	if sampling {
		pk = <-peaksCh
	}

	res := Result{
		Output:     buf.String(),
		Elapsed:    time.Since(start),
		PeakCPU:    pk.cpu,
		PeakMemory: pk.mem,
	}

	if waitErr != nil {
		if exiterr, ok := waitErr.(*exec.ExitError); ok {
			res.ExitCode = exiterr.ExitCode()
			return res, &ProcessFailedError{
				ExitCode: res.ExitCode,
				Excerpt:  r.excerpt(res.Output),
			}
		}
		return res, fmt.Errorf("wait for %s: %w", binary, waitErr)
	}

	return res, nil
}

type peaks struct {
	cpu float64
	mem uint64
}

func (r *runner) samplePeaks(done <-chan struct{}, out chan<- peaks) {
	defer r.sampler.Stop()

	var pk peaks
	ticker := time.NewTicker(r.sampleEvery)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			out <- pk
			return
		case <-ticker.C:
			cpu, mem := r.sampler.Sample()
			if cpu > pk.cpu {
				pk.cpu = cpu
			}
			if mem > pk.mem {
				pk.mem = mem
			}
		}
	}
}

// excerpt keeps the last MaxLogLines lines of the output.
func (r *runner) excerpt(output string) string {
	tail := ring.New(r.logLines)
	for _, line := range SplitLines(output) {
		tail.Value = line
		tail = tail.Next()
	}
	var lines []string
	tail.Do(func(v interface{}) {
		if v != nil {
			lines = append(lines, v.(string))
		}
	})
	return strings.Join(lines, "\n")
}

// SplitLines splits tool output on both \n and \r, since FFmpeg
// separates in-place progress updates with bare carriage returns.
func SplitLines(text string) []string {
	var lines []string
	data := []byte(text)
	for len(data) > 0 {
		advance, token, _ := scanLine(data, true)
		if advance == 0 {
			break
		}
		if len(token) > 0 {
			lines = append(lines, string(token))
		}
		data = data[advance:]
	}
	return lines
}

func scanLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, w := utf8.DecodeRune(data[start:])
		if r != '\n' && r != '\r' {
			break
		}
		start += w
	}

	for i := start; i < len(data); {
		r, w := utf8.DecodeRune(data[i:])
		if r == '\n' || r == '\r' {
			return i + w, data[start:i], nil
		}
		i += w
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, args ...interface{})  {}
func (l *nopLogger) Error(format string, args ...interface{}) {}
func (l *nopLogger) Debug(format string, args ...interface{}) {}
