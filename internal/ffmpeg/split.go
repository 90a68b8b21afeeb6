// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var chunkName = regexp.MustCompile(`^chunk_([0-9]{3})\.`)

// Split cuts the input into fixed-duration, codec-copied segments and
// returns the produced chunks in ascending index order. The output
// directory is created if needed; a failed run leaves any chunks
// written so far in place.
func (c *client) Split(input, outputDir string, chunkSeconds float64) ([]Chunk, error) {
	ext := chunkExt(input, c.ext)

	args, err := NewCommand().
		WithInput(input).
		WithOutputDir(outputDir).
		WithChunkDuration(time.Duration(chunkSeconds * float64(time.Second))).
		WithExtension(ext).
		Build(OpSplit)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	res, err := c.runner.Run(c.binary, args)
	if err != nil {
		return nil, err
	}
	c.logRun(OpSplit, input, res)

	return listChunks(outputDir, ext)
}

// listChunks enumerates chunk files. os.ReadDir sorts entries by
// filename, which equals index order because of the zero-padded
// pattern; the index itself is taken from the name, not the position.
func listChunks(dir, ext string) ([]Chunk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list output dir: %w", err)
	}

	var chunks []Chunk
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		m := chunkName.FindStringSubmatch(name)
		if m == nil || !strings.HasSuffix(name, "."+ext) {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		chunks = append(chunks, Chunk{Index: idx, Path: filepath.Join(dir, name)})
	}
	return chunks, nil
}

// chunkExt keeps the input's container extension so codec-copy output
// stays in a matching container; fallback is the configured default.
func chunkExt(input, fallback string) string {
	if ext := strings.TrimPrefix(filepath.Ext(input), "."); ext != "" {
		return ext
	}
	return fallback
}
