// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package ffmpeg

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/ZSC714725/mediachunker/internal/ffmpeg/parse"
	"github.com/ZSC714725/mediachunker/internal/ffmpeg/skills"
	"github.com/ZSC714725/mediachunker/internal/logger"
	"github.com/ZSC714725/mediachunker/internal/process"
)

// Client drives FFmpeg for the three media operations. Each call builds
// one argument vector, runs one child process to completion and returns
// structured results. Calls block; dispatching them off the request
// path is the caller's job.
type Client interface {
	Info(input string) (parse.MediaInfo, error)
	Split(input, outputDir string, chunkSeconds float64) ([]Chunk, error)
	Merge(chunks []string, output string) (string, error)
	Skills() skills.Skills
	ReloadSkills() error
}

// Config for a Client
type Config struct {
	Binary      string
	Extension   string // chunk extension used when the input has none
	MaxLogLines int
	Runner      process.Runner
	Logger      logger.Logger
}

type client struct {
	binary     string
	ext        string
	runner     process.Runner
	logger     logger.Logger
	skills     skills.Skills
	skillsLock sync.RWMutex
}

// New locates the binary, probes its capabilities and rejects builds of
// FFmpeg that lack the segment muxer or concat demuxer.
func New(config Config) (Client, error) {
	binary, err := exec.LookPath(config.Binary)
	if err != nil {
		return nil, fmt.Errorf("invalid ffmpeg binary: %w", err)
	}

	c := &client{
		binary: binary,
		ext:    config.Extension,
		runner: config.Runner,
		logger: config.Logger,
	}

	if c.ext == "" {
		c.ext = "mp3"
	}
	if c.logger == nil {
		c.logger = &nopLogger{}
	}
	if c.runner == nil {
		c.runner = process.NewRunner(process.Config{
			MaxLogLines: config.MaxLogLines,
			Logger:      c.logger,
		})
	}

	s, err := skills.New(binary)
	if err != nil {
		return nil, fmt.Errorf("invalid ffmpeg: %w", err)
	}
	if !s.HasMuxer("segment") {
		return nil, fmt.Errorf("ffmpeg at %s has no segment muxer", binary)
	}
	if !s.HasDemuxer("concat") {
		return nil, fmt.Errorf("ffmpeg at %s has no concat demuxer", binary)
	}
	c.skills = s

	return c, nil
}

func (c *client) Skills() skills.Skills {
	c.skillsLock.RLock()
	defer c.skillsLock.RUnlock()
	return c.skills
}

func (c *client) ReloadSkills() error {
	s, err := skills.New(c.binary)
	if err != nil {
		return fmt.Errorf("reload skills: %w", err)
	}
	c.skillsLock.Lock()
	c.skills = s
	c.skillsLock.Unlock()
	return nil
}

func (c *client) logRun(op Op, target string, res process.Result) {
	c.logger.Debug("%s %s: exit=%d elapsed=%s peak_cpu=%.1f%% peak_rss=%d",
		op, target, res.ExitCode, res.Elapsed, res.PeakCPU, res.PeakMemory)
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, args ...interface{})  {}
func (l *nopLogger) Error(format string, args ...interface{}) {}
func (l *nopLogger) Debug(format string, args ...interface{}) {}
func (l *nopLogger) With(tag string) logger.Logger            { return l }
