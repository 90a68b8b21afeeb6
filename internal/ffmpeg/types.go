// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

// Chunk is one file produced by a split operation. Index is zero-based
// and matches ascending start time in the source; filenames render it
// zero-padded to three digits, so lexicographic filename order equals
// index order.
type Chunk struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}
