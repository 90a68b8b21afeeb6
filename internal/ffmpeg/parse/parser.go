// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务
//
// Package parse turns FFmpeg's diagnostic dump of an input file into a
// MediaInfo record. The dump is meant for humans, so parsing is
// line-oriented and tolerant: a field whose pattern is absent stays
// unset instead of failing the whole parse.

package parse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// MediaInfo holds the metadata extracted from the dump. Duration is the
// one field that must be present; everything else stays zero when the
// dump does not mention it and is omitted from JSON.
type MediaInfo struct {
	DurationSeconds float64 `json:"duration_seconds"`
	BitrateBPS      int64   `json:"bitrate_bps,omitempty"`
	Format          string  `json:"format,omitempty"`
	SampleRateHz    int     `json:"sample_rate_hz,omitempty"`
	Channels        int     `json:"channels,omitempty"`
}

// ErrNoDuration means the duration pattern was absent. Without a
// duration the dump carries no meaningful result.
var ErrNoDuration = errors.New("no duration found in ffmpeg output")

type parser struct {
	re struct {
		duration *regexp.Regexp
		bitrate  *regexp.Regexp
		format   *regexp.Regexp
		audio    *regexp.Regexp
		channels *regexp.Regexp
		number   *regexp.Regexp
	}
}

func newParser() *parser {
	p := &parser{}
	p.re.duration = regexp.MustCompile(`Duration:\s*([0-9]+):([0-9]{2}):([0-9]{2})(?:\.([0-9]+))?`)
	p.re.bitrate = regexp.MustCompile(`bitrate:\s*([0-9]+)\s*kb/s`)
	p.re.format = regexp.MustCompile(`Input #0,\s*([^,]+),`)
	p.re.audio = regexp.MustCompile(`Audio:\s*[A-Za-z0-9_]+[^,]*,\s*([0-9]+)\s*Hz,\s*([^,]+)`)
	p.re.channels = regexp.MustCompile(`([0-9]+)\s*channels`)
	p.re.number = regexp.MustCompile(`[0-9]+`)
	return p
}

var std = newParser()

// Info parses the diagnostic text captured from an info invocation.
func Info(text string) (MediaInfo, error) {
	return std.parse(text)
}

func (p *parser) parse(text string) (MediaInfo, error) {
	info := MediaInfo{}
	haveDuration := false

	for _, line := range strings.Split(text, "\n") {
		if !haveDuration {
			if m := p.re.duration.FindStringSubmatch(line); m != nil {
				info.DurationSeconds = toSeconds(m)
				haveDuration = true
			}
		}
		if info.BitrateBPS == 0 {
			if m := p.re.bitrate.FindStringSubmatch(line); m != nil {
				if kb, err := strconv.ParseInt(m[1], 10, 64); err == nil {
					info.BitrateBPS = kb * 1000
				}
			}
		}
		if info.Format == "" {
			if m := p.re.format.FindStringSubmatch(line); m != nil {
				info.Format = strings.TrimSpace(m[1])
			}
		}
		if info.SampleRateHz == 0 {
			if m := p.re.audio.FindStringSubmatch(line); m != nil {
				if hz, err := strconv.Atoi(m[1]); err == nil {
					info.SampleRateHz = hz
				}
				info.Channels = p.channelCount(strings.TrimSpace(m[2]))
			}
		}
	}

	if !haveDuration {
		return MediaInfo{}, ErrNoDuration
	}
	return info, nil
}

func toSeconds(m []string) float64 {
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	frac := 0.0
	if len(m) > 4 && len(m[4]) > 0 {
		if x, err := strconv.ParseUint(m[4], 10, 64); err == nil {
			div := 1.0
			for range m[4] {
				div *= 10
			}
			frac = float64(x) / div
		}
	}
	return float64(h*3600+mm*60+s) + frac
}

// channelCount maps a channel-layout token to a count: the well-known
// keywords first, then an explicit "N channels", then the first numeric
// literal in the token. Unknown layouts yield 0 (unset).
func (p *parser) channelCount(layout string) int {
	switch {
	case strings.HasPrefix(layout, "mono"):
		return 1
	case strings.HasPrefix(layout, "stereo"):
		return 2
	}
	if m := p.re.channels.FindStringSubmatch(layout); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := p.re.number.FindString(layout); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return 0
}
