// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

import (
	"errors"
	"fmt"
	"os"

	"github.com/ZSC714725/mediachunker/internal/ffmpeg/parse"
	"github.com/ZSC714725/mediachunker/internal/process"
)

// Info dumps the input's metadata and parses it into a MediaInfo.
// A missing input fails here, before any subprocess is spawned.
func (c *client) Info(input string) (parse.MediaInfo, error) {
	if _, err := os.Stat(input); err != nil {
		return parse.MediaInfo{}, fmt.Errorf("input file: %w", err)
	}

	args, err := NewCommand().WithInput(input).Build(OpInfo)
	if err != nil {
		return parse.MediaInfo{}, err
	}

	res, runErr := c.runner.Run(c.binary, args)
	if runErr != nil {
		// With no output file requested FFmpeg exits non-zero after
		// printing the full dump, so a failed exit still carries the
		// text we want. Spawn failures carry nothing.
		var pf *process.ProcessFailedError
		if !errors.As(runErr, &pf) {
			return parse.MediaInfo{}, runErr
		}
	}
	c.logRun(OpInfo, input, res)

	return parse.Info(res.Output)
}
