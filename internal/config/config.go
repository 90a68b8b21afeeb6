// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`
	Media  MediaConfig  `yaml:"media"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Bind string `yaml:"bind"`
}

// FFmpegConfig FFmpeg 配置
type FFmpegConfig struct {
	Path string `yaml:"path"`
}

// MediaConfig 媒体文件与切分配置
type MediaConfig struct {
	InputFile    string   `yaml:"input_file"`
	ChunksDir    string   `yaml:"chunks_dir"`
	ChunkSeconds float64  `yaml:"chunk_seconds"`
	Extension    string   `yaml:"extension"`
	Workers      int      `yaml:"workers"`
	AllowPaths   []string `yaml:"allow_paths"`
	BlockPaths   []string `yaml:"block_paths"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{Bind: ":3000"},
		FFmpeg: FFmpegConfig{Path: "ffmpeg"},
		Media: MediaConfig{
			InputFile:    "media/audio.mp3",
			ChunksDir:    "media/chunks",
			ChunkSeconds: 2,
			Extension:    "mp3",
			Workers:      4,
		},
	}
}

// Load 从 YAML 文件加载配置
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// 填充空值
	if cfg.Server.Bind == "" {
		cfg.Server.Bind = ":3000"
	}
	if cfg.FFmpeg.Path == "" {
		cfg.FFmpeg.Path = "ffmpeg"
	}
	if cfg.Media.InputFile == "" {
		cfg.Media.InputFile = "media/audio.mp3"
	}
	if cfg.Media.ChunksDir == "" {
		cfg.Media.ChunksDir = "media/chunks"
	}
	if cfg.Media.ChunkSeconds <= 0 {
		cfg.Media.ChunkSeconds = 2
	}
	if cfg.Media.Extension == "" {
		cfg.Media.Extension = "mp3"
	}
	if cfg.Media.Workers <= 0 {
		cfg.Media.Workers = 4
	}

	return cfg, nil
}
