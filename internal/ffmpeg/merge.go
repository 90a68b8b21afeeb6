// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

import (
	"fmt"
	"os"
	"strings"
)

// Merge concatenates the given chunk files into output. The caller's
// order is authoritative: the manifest lists the chunks exactly as
// given, with no sorting. Chunk existence and codec compatibility are
// not checked here; mismatches surface as a failed FFmpeg exit.
func (c *client) Merge(chunks []string, output string) (string, error) {
	if len(chunks) == 0 {
		return "", ErrEmptyChunkList
	}
	if output == "" {
		return "", &MissingFieldError{Field: "output_file"}
	}

	manifest, err := writeManifest(chunks)
	if err != nil {
		return "", err
	}
	// The manifest is one invocation's scratch state; it goes away no
	// matter how the subprocess exits.
	defer os.Remove(manifest)

	args, err := NewCommand().
		WithManifest(manifest).
		WithOutputFile(output).
		Build(OpMerge)
	if err != nil {
		return "", err
	}

	res, err := c.runner.Run(c.binary, args)
	if err != nil {
		return "", err
	}
	c.logRun(OpMerge, output, res)

	return output, nil
}

// writeManifest materializes the concat list file, one reference line
// per chunk in caller order. Single quotes are escaped the way the
// concat demuxer expects.
func writeManifest(chunks []string) (string, error) {
	f, err := os.CreateTemp("", "concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()

	for _, path := range chunks {
		escaped := strings.ReplaceAll(path, "'", `'\''`)
		if _, err := fmt.Fprintf(f, "file '%s'\n", escaped); err != nil {
			os.Remove(f.Name())
			return "", fmt.Errorf("write manifest: %w", err)
		}
	}
	return f.Name(), nil
}
