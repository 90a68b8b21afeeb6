// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务
//
// Package media sits between the HTTP layer and the FFmpeg client. It
// tags every request with an operation ID, checks paths against the
// configured guard and hands each blocking invocation to the worker
// pool so one slow run cannot stall unrelated requests.

package media

import (
	"errors"

	"github.com/ZSC714725/mediachunker/internal/ffmpeg"
	"github.com/ZSC714725/mediachunker/internal/ffmpeg/parse"
	"github.com/ZSC714725/mediachunker/internal/ffmpeg/skills"
	"github.com/ZSC714725/mediachunker/internal/logger"
	"github.com/ZSC714725/mediachunker/internal/process"

	"github.com/lithammer/shortuuid/v4"
)

// ErrPathNotAllowed means a request referenced a path outside the
// configured allow/block rules.
var ErrPathNotAllowed = errors.New("path not allowed")

// Service executes media operations for the HTTP layer.
type Service interface {
	Info(input string) (parse.MediaInfo, error)
	Split(input, outputDir string, chunkSeconds float64) ([]ffmpeg.Chunk, error)
	Merge(chunks []string, output string) (string, error)
	Skills() skills.Skills
	ReloadSkills() error
}

// Config for a Service
type Config struct {
	Client ffmpeg.Client
	Pool   *process.Pool
	Guard  ffmpeg.Validator
	Logger logger.Logger
}

type service struct {
	client ffmpeg.Client
	pool   *process.Pool
	guard  ffmpeg.Validator
	logger logger.Logger
}

// NewService creates a Service
func NewService(config Config) Service {
	s := &service{
		client: config.Client,
		pool:   config.Pool,
		guard:  config.Guard,
		logger: config.Logger,
	}
	if s.guard == nil {
		s.guard, _ = ffmpeg.NewValidator(nil, nil)
	}
	if s.logger == nil {
		s.logger = logger.New("media")
	}
	return s
}

func (s *service) Info(input string) (parse.MediaInfo, error) {
	if !s.guard.IsAllowed(input) {
		return parse.MediaInfo{}, ErrPathNotAllowed
	}

	id := shortuuid.New()
	log := s.logger.With(id)
	log.Info("info: input=%s", input)

	var info parse.MediaInfo
	var err error
	<-s.pool.Submit(func() {
		info, err = s.client.Info(input)
	})
	if err != nil {
		log.Error("info failed: %v", err)
		return parse.MediaInfo{}, err
	}

	log.Info("info: duration=%.2fs format=%s", info.DurationSeconds, info.Format)
	return info, nil
}

func (s *service) Split(input, outputDir string, chunkSeconds float64) ([]ffmpeg.Chunk, error) {
	if !s.guard.IsAllowed(input) || !s.guard.IsAllowed(outputDir) {
		return nil, ErrPathNotAllowed
	}

	id := shortuuid.New()
	log := s.logger.With(id)
	log.Info("split: input=%s dir=%s seconds=%g", input, outputDir, chunkSeconds)

	var chunks []ffmpeg.Chunk
	var err error
	<-s.pool.Submit(func() {
		chunks, err = s.client.Split(input, outputDir, chunkSeconds)
	})
	if err != nil {
		log.Error("split failed: %v", err)
		return nil, err
	}

	log.Info("split: %d chunks", len(chunks))
	return chunks, nil
}

func (s *service) Merge(chunks []string, output string) (string, error) {
	for _, chunk := range chunks {
		if !s.guard.IsAllowed(chunk) {
			return "", ErrPathNotAllowed
		}
	}
	if output != "" && !s.guard.IsAllowed(output) {
		return "", ErrPathNotAllowed
	}

	id := shortuuid.New()
	log := s.logger.With(id)
	log.Info("merge: %d chunks -> %s", len(chunks), output)

	var result string
	var err error
	<-s.pool.Submit(func() {
		result, err = s.client.Merge(chunks, output)
	})
	if err != nil {
		log.Error("merge failed: %v", err)
		return "", err
	}

	log.Info("merge: wrote %s", result)
	return result, nil
}

func (s *service) Skills() skills.Skills {
	return s.client.Skills()
}

func (s *service) ReloadSkills() error {
	return s.client.ReloadSkills()
}
