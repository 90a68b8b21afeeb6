// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfo(t *testing.T) {
	args, err := NewCommand().WithInput("media/audio.mp3").Build(OpInfo)
	require.NoError(t, err)
	assert.Equal(t, []string{"-i", "media/audio.mp3"}, args)
}

func TestBuildSplit(t *testing.T) {
	args, err := NewCommand().
		WithInput("media/audio.mp3").
		WithOutputDir("media/chunks").
		WithChunkDuration(2 * time.Second).
		Build(OpSplit)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-i", "media/audio.mp3",
		"-f", "segment",
		"-segment_time", "2",
		"-c", "copy",
		"-reset_timestamps", "1",
		"media/chunks/chunk_%03d.mp3",
	}, args)
}

func TestBuildSplitFractionalSeconds(t *testing.T) {
	args, err := NewCommand().
		WithInput("in.wav").
		WithOutputDir("out").
		WithChunkDuration(2500 * time.Millisecond).
		WithExtension("wav").
		Build(OpSplit)
	require.NoError(t, err)
	assert.Equal(t, "2.5", args[4])
	assert.Equal(t, "out/chunk_%03d.wav", args[len(args)-1])
}

func TestBuildMerge(t *testing.T) {
	args, err := NewCommand().
		WithManifest("/tmp/concat-1.txt").
		WithOutputFile("media/merged.mp3").
		Build(OpMerge)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-f", "concat",
		"-safe", "0",
		"-i", "/tmp/concat-1.txt",
		"-c", "copy",
		"media/merged.mp3",
	}, args)
}

func TestBuildMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Command
		op    Op
		field string
	}{
		{"info without input", NewCommand(), OpInfo, "input_file"},
		{"split without input", NewCommand().WithOutputDir("out").WithChunkDuration(time.Second), OpSplit, "input_file"},
		{"split without output dir", NewCommand().WithInput("in.mp3").WithChunkDuration(time.Second), OpSplit, "output_dir"},
		{"split without duration", NewCommand().WithInput("in.mp3").WithOutputDir("out"), OpSplit, "chunk_duration"},
		{"merge without manifest", NewCommand().WithOutputFile("out.mp3"), OpMerge, "manifest"},
		{"merge without output", NewCommand().WithManifest("list.txt"), OpMerge, "output_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := tt.cmd.Build(tt.op)
			assert.Nil(t, args)

			var mf *MissingFieldError
			require.ErrorAs(t, err, &mf)
			assert.Equal(t, tt.field, mf.Field)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestBuildInvalidDuration(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		_, err := NewCommand().
			WithInput("in.mp3").
			WithOutputDir("out").
			WithChunkDuration(d).
			Build(OpSplit)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.True(t, IsConfigError(err))
	}
}

// Configuration calls never validate; the same half-built command can
// be completed later and only Build decides.
func TestDeferredValidation(t *testing.T) {
	cmd := NewCommand().WithOutputDir("out").WithChunkDuration(time.Second)

	_, err := cmd.Build(OpSplit)
	require.Error(t, err)

	args, err := cmd.WithInput("in.mp3").Build(OpSplit)
	require.NoError(t, err)
	assert.Equal(t, "in.mp3", args[1])
}

func TestWithMethodsCopy(t *testing.T) {
	base := NewCommand().WithInput("a.mp3")
	other := base.WithInput("b.mp3")

	argsA, err := base.Build(OpInfo)
	require.NoError(t, err)
	argsB, err := other.Build(OpInfo)
	require.NoError(t, err)

	assert.Equal(t, "a.mp3", argsA[1])
	assert.Equal(t, "b.mp3", argsB[1])
}
