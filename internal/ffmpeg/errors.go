// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration means a chunk duration was configured but is
	// zero or negative.
	ErrInvalidDuration = errors.New("chunk duration must be positive")

	// ErrEmptyChunkList means a merge was requested with no chunks.
	ErrEmptyChunkList = errors.New("no chunks to merge")
)

// MissingFieldError reports a field required by the requested operation
// that was never configured. Configuration calls themselves never fail;
// the check happens when the argument vector is built.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsConfigError reports whether err is a configuration error, i.e. one
// raised before any subprocess was spawned or manifest written.
func IsConfigError(err error) bool {
	var mf *MissingFieldError
	return errors.As(err, &mf) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrEmptyChunkList)
}
