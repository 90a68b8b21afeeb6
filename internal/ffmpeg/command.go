// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// Op selects which argument vector Build produces.
type Op int

const (
	// OpInfo requests the diagnostic dump of an input file.
	OpInfo Op = iota
	// OpSplit cuts the input into fixed-duration segments, codec-copy.
	OpSplit
	// OpMerge concatenates the files named in a manifest, codec-copy.
	OpMerge
)

func (o Op) String() string {
	switch o {
	case OpInfo:
		return "info"
	case OpSplit:
		return "split"
	case OpMerge:
		return "merge"
	}
	return "unknown"
}

// Command collects the parameters of one FFmpeg invocation. The With*
// methods have value receivers and return an updated copy, so a Command
// is never shared between operations. No configuration call fails;
// required fields are checked by Build, and only for the operation
// actually requested.
type Command struct {
	input       string
	outputDir   string
	outputFile  string
	manifest    string
	duration    time.Duration
	durationSet bool
	extension   string
}

// NewCommand returns an empty command.
func NewCommand() Command {
	return Command{extension: "mp3"}
}

// WithInput sets the input file.
func (c Command) WithInput(path string) Command {
	c.input = path
	return c
}

// WithOutputDir sets the directory split chunks are written to.
func (c Command) WithOutputDir(dir string) Command {
	c.outputDir = dir
	return c
}

// WithOutputFile sets the single output path of a merge.
func (c Command) WithOutputFile(path string) Command {
	c.outputFile = path
	return c
}

// WithManifest sets the concat list file a merge reads from.
func (c Command) WithManifest(path string) Command {
	c.manifest = path
	return c
}

// WithChunkDuration sets the segment length.
func (c Command) WithChunkDuration(d time.Duration) Command {
	c.duration = d
	c.durationSet = true
	return c
}

// WithExtension sets the chunk file extension, without the dot.
func (c Command) WithExtension(ext string) Command {
	if ext != "" {
		c.extension = ext
	}
	return c
}

// ChunkPattern is the zero-padded output pattern handed to the segment
// muxer, e.g. "chunks/chunk_%03d.mp3".
func (c Command) ChunkPattern() string {
	return filepath.Join(c.outputDir, "chunk_%03d."+c.extension)
}

// Build validates the fields the given operation needs and returns the
// exact argument vector. It has no side effects.
func (c Command) Build(op Op) ([]string, error) {
	switch op {
	case OpInfo:
		if c.input == "" {
			return nil, &MissingFieldError{Field: "input_file"}
		}
		return []string{"-i", c.input}, nil

	case OpSplit:
		if c.input == "" {
			return nil, &MissingFieldError{Field: "input_file"}
		}
		if c.outputDir == "" {
			return nil, &MissingFieldError{Field: "output_dir"}
		}
		if !c.durationSet {
			return nil, &MissingFieldError{Field: "chunk_duration"}
		}
		if c.duration <= 0 {
			return nil, ErrInvalidDuration
		}
		return []string{
			"-i", c.input,
			"-f", "segment",
			"-segment_time", formatSeconds(c.duration),
			"-c", "copy",
			"-reset_timestamps", "1",
			c.ChunkPattern(),
		}, nil

	case OpMerge:
		if c.manifest == "" {
			return nil, &MissingFieldError{Field: "manifest"}
		}
		if c.outputFile == "" {
			return nil, &MissingFieldError{Field: "output_file"}
		}
		return []string{
			"-f", "concat",
			"-safe", "0",
			"-i", c.manifest,
			"-c", "copy",
			c.outputFile,
		}, nil
	}

	return nil, fmt.Errorf("unknown operation: %d", int(op))
}

// formatSeconds renders a duration in seconds with the shortest decimal
// form FFmpeg accepts: "2" for two seconds, "2.5" for two and a half.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
