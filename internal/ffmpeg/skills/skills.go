// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务
//
// Package skills probes what the installed FFmpeg binary can do. The
// service needs the segment muxer for splits and the concat demuxer for
// merges, so the probe is limited to version info and formats.

package skills

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Format represents a supported container format
type Format struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Library represents a linked av library
type Library struct {
	Name     string `json:"name"`
	Compiled string `json:"compiled"`
	Linked   string `json:"linked"`
}

type ffmpegInfo struct {
	Version       string    `json:"version"`
	Compiler      string    `json:"compiler"`
	Configuration string    `json:"configuration"`
	Libraries     []Library `json:"libraries"`
}

// Skills are the detected capabilities of FFmpeg
type Skills struct {
	FFmpeg  ffmpegInfo `json:"ffmpeg"`
	Formats struct {
		Demuxers []Format `json:"demuxers"`
		Muxers   []Format `json:"muxers"`
	} `json:"formats"`
}

// HasMuxer reports whether FFmpeg can write the given format.
func (s Skills) HasMuxer(id string) bool {
	for _, f := range s.Formats.Muxers {
		if f.Id == id {
			return true
		}
	}
	return false
}

// HasDemuxer reports whether FFmpeg can read the given format.
func (s Skills) HasDemuxer(id string) bool {
	for _, f := range s.Formats.Demuxers {
		if f.Id == id {
			return true
		}
	}
	return false
}

// New probes the binary for its skills
func New(binary string) (Skills, error) {
	c := Skills{}

	ff, err := getVersion(binary)
	if ff.Version == "" || err != nil {
		if err != nil {
			return Skills{}, fmt.Errorf("can't parse ffmpeg version: %w", err)
		}
		return Skills{}, fmt.Errorf("can't parse ffmpeg version")
	}
	c.FFmpeg = ff
	c.Formats = getFormats(binary)

	return c, nil
}

func getVersion(binary string) (ffmpegInfo, error) {
	cmd := exec.Command(binary, "-version")
	cmd.Env = []string{}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return ffmpegInfo{}, err
	}
	return parseVersion(out), nil
}

func parseVersion(data []byte) ffmpegInfo {
	f := ffmpegInfo{}
	reVersion := regexp.MustCompile(`^ffmpeg version ([0-9]+\.[0-9]+(\.[0-9]+)?)`)
	reCompiler := regexp.MustCompile(`(?m)^\s*built with (.*)$`)
	reConfiguration := regexp.MustCompile(`(?m)^\s*configuration: (.*)$`)
	reLibrary := regexp.MustCompile(`(?m)^\s*(lib(?:[a-z]+))\s+([0-9]+\.\s*[0-9]+\.\s*[0-9]+) /\s+([0-9]+\.\s*[0-9]+\.\s*[0-9]+)`)

	if m := reVersion.FindSubmatch(data); m != nil {
		f.Version = string(m[1])
		if len(m[2]) == 0 {
			f.Version += ".0"
		}
	}
	if m := reCompiler.FindSubmatch(data); m != nil {
		f.Compiler = string(m[1])
	}
	if m := reConfiguration.FindSubmatch(data); m != nil {
		f.Configuration = string(m[1])
	}
	for _, m := range reLibrary.FindAllSubmatch(data, -1) {
		f.Libraries = append(f.Libraries, Library{
			Name:     string(m[1]),
			Compiled: string(m[2]),
			Linked:   string(m[3]),
		})
	}
	return f
}

func getFormats(binary string) struct {
	Demuxers []Format `json:"demuxers"`
	Muxers   []Format `json:"muxers"`
} {
	cmd := exec.Command(binary, "-formats")
	cmd.Env = []string{}
	stdout, _ := cmd.Output()
	return parseFormats(stdout)
}

func parseFormats(data []byte) struct {
	Demuxers []Format `json:"demuxers"`
	Muxers   []Format `json:"muxers"`
} {
	f := struct {
		Demuxers []Format `json:"demuxers"`
		Muxers   []Format `json:"muxers"`
	}{}
	re := regexp.MustCompile(`^\s([D ])([E ]) ([0-9A-Za-z_,]+)\s+(.*?)$`)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		id := strings.Split(m[3], ",")[0]
		format := Format{Id: id, Name: m[4]}
		if m[1] == "D" {
			f.Demuxers = append(f.Demuxers, format)
		}
		if m[2] == "E" {
			f.Muxers = append(f.Muxers, format)
		}
	}
	return f
}
