// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const versionOutput = `ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers
built with gcc 13 (GCC) 13.2.1
configuration: --prefix=/usr --enable-gpl
libavutil      58. 29.100 / 58. 29.100
libavcodec     60. 31.102 / 60. 31.102
`

const formatsOutput = `File formats:
 D. = Demuxing supported
 .E = Muxing supported
 --
 D  aac             raw ADTS AAC (Advanced Audio Coding)
 DE mp3             MP3 (MPEG audio layer 3)
  E segment         segment
 D  concat          Virtual concatenation script
 DE mov,mp4,m4a,3gp,3g2,mj2 QuickTime / MOV
`

func TestParseVersion(t *testing.T) {
	info := parseVersion([]byte(versionOutput))

	assert.Equal(t, "6.1.1", info.Version)
	assert.Contains(t, info.Compiler, "gcc 13")
	assert.Contains(t, info.Configuration, "--enable-gpl")
	require.Len(t, info.Libraries, 2)
	assert.Equal(t, "libavutil", info.Libraries[0].Name)
}

func TestParseVersionNormalizesTwoPart(t *testing.T) {
	info := parseVersion([]byte("ffmpeg version 7.0 Copyright\n"))
	assert.Equal(t, "7.0.0", info.Version)
}

func TestParseFormats(t *testing.T) {
	f := parseFormats([]byte(formatsOutput))

	s := Skills{}
	s.Formats = f

	assert.True(t, s.HasMuxer("segment"))
	assert.False(t, s.HasDemuxer("segment"))
	assert.True(t, s.HasDemuxer("concat"))
	assert.False(t, s.HasMuxer("concat"))
	assert.True(t, s.HasMuxer("mp3"))
	assert.True(t, s.HasDemuxer("aac"))

	// Comma lists keep only the primary id.
	assert.True(t, s.HasMuxer("mov"))
	assert.False(t, s.HasMuxer("mp4"))
}
