// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package main

import (
	"flag"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ZSC714725/mediachunker/internal/api"
	"github.com/ZSC714725/mediachunker/internal/config"
	"github.com/ZSC714725/mediachunker/internal/ffmpeg"
	"github.com/ZSC714725/mediachunker/internal/logger"
	"github.com/ZSC714725/mediachunker/internal/media"
	"github.com/ZSC714725/mediachunker/internal/process"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	bind := flag.String("bind", "", "Bind address (overrides config)")
	ffmpegBin := flag.String("ffmpeg", "", "FFmpeg binary path (overrides config)")
	inputFile := flag.String("input", "", "Default input file (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Load config: %v", err)
		}
	}

	bindAddr := cfg.Server.Bind
	if *bind != "" {
		bindAddr = *bind
	}
	ffmpegPath := cfg.FFmpeg.Path
	if *ffmpegBin != "" {
		ffmpegPath = *ffmpegBin
	}
	if *inputFile != "" {
		cfg.Media.InputFile = *inputFile
	}

	logger := logger.New("mediachunker ")

	guard, err := ffmpeg.NewValidator(cfg.Media.AllowPaths, cfg.Media.BlockPaths)
	if err != nil {
		log.Fatalf("Path rules: %v", err)
	}

	client, err := ffmpeg.New(ffmpeg.Config{
		Binary:      ffmpegPath,
		Extension:   cfg.Media.Extension,
		MaxLogLines: 100,
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("FFmpeg init: %v", err)
	}

	pool := process.NewPool(cfg.Media.Workers)
	defer pool.Close()

	svc := media.NewService(media.Config{
		Client: client,
		Pool:   pool,
		Guard:  guard,
		Logger: logger,
	})
	handler := api.NewHandler(svc, cfg.Media)

	r := gin.Default()
	r.Use(gin.Recovery(), cors.Default())

	r.GET("/hello", handler.Hello)
	r.GET("/media/info", handler.MediaInfo)
	r.GET("/split", handler.Split)
	r.POST("/merge", handler.Merge)
	r.GET("/skills", handler.Skills)
	r.POST("/skills/reload", handler.ReloadSkills)

	log.Printf("MediaChunker listening on %s", bindAddr)
	if err := r.Run(bindAddr); err != nil {
		log.Fatalf("Server: %v", err)
	}
}
