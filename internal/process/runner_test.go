// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package process

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner() Runner {
	return NewRunner(Config{Sampler: NewNullSampler()})
}

func TestRunCapturesCombinedOutput(t *testing.T) {
	r := newTestRunner()

	res, err := r.Run("/bin/sh", []string{"-c", "echo to-stdout; echo to-stderr 1>&2"})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Output, "to-stdout")
	assert.Contains(t, res.Output, "to-stderr")
	assert.Greater(t, res.Elapsed.Nanoseconds(), int64(0))
}

func TestRunNonZeroExit(t *testing.T) {
	r := newTestRunner()

	res, err := r.Run("/bin/sh", []string{"-c", "echo boom 1>&2; exit 3"})

	var pf *ProcessFailedError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, 3, pf.ExitCode)
	assert.Contains(t, pf.Excerpt, "boom")

	// The captured output is still returned alongside the error.
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Output, "boom")
}

func TestRunBinaryNotFound(t *testing.T) {
	r := newTestRunner()

	_, err := r.Run("/nonexistent/ffmpeg", []string{"-i", "x"})

	var bnf *BinaryNotFoundError
	require.ErrorAs(t, err, &bnf)
	assert.Equal(t, "/nonexistent/ffmpeg", bnf.Binary)
}

func TestRunEmptyBinary(t *testing.T) {
	r := newTestRunner()

	_, err := r.Run("", nil)

	var bnf *BinaryNotFoundError
	assert.ErrorAs(t, err, &bnf)
}

func TestExcerptKeepsTail(t *testing.T) {
	r := NewRunner(Config{MaxLogLines: 2, Sampler: NewNullSampler()}).(*runner)

	got := r.excerpt("one\ntwo\nthree\nfour\n")
	assert.Equal(t, "three\nfour", got)
}

func TestSplitLinesHandlesCarriageReturns(t *testing.T) {
	lines := SplitLines("frame=1\rframe=2\rdone\nbye")
	assert.Equal(t, []string{"frame=1", "frame=2", "done", "bye"}, lines)
}

func TestSplitLinesSkipsBlankRuns(t *testing.T) {
	lines := SplitLines("\n\r\nfirst\n\n\nsecond\n")
	assert.Equal(t, []string{"first", "second"}, lines)
	assert.False(t, strings.ContainsAny(strings.Join(lines, ""), "\r\n"))
}
