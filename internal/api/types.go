// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package api

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// MediaInfoResponse for GET /media/info. Optional metadata the parser
// could not find is omitted rather than reported as zero.
type MediaInfoResponse struct {
	File            string  `json:"file"`
	DurationSeconds float64 `json:"duration_seconds"`
	BitrateBPS      int64   `json:"bitrate_bps,omitempty"`
	Format          string  `json:"format,omitempty"`
	SampleRateHz    int     `json:"sample_rate_hz,omitempty"`
	Channels        int     `json:"channels,omitempty"`
}

// ChunkInfo is one split chunk in API responses
type ChunkInfo struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}

// SplitResponse for GET /split
type SplitResponse struct {
	Message string      `json:"message"`
	Chunks  []ChunkInfo `json:"chunks"`
}

// MergeRequest for POST /merge. Chunks are merged in exactly this
// order.
type MergeRequest struct {
	Chunks []string `json:"chunks" binding:"required"`
	Output string   `json:"output" binding:"required"`
}

// MergeResponse for POST /merge
type MergeResponse struct {
	Message string `json:"message"`
	Output  string `json:"output"`
}

// ErrorResponse for API errors
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
