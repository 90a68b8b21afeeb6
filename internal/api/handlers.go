// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package api

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZSC714725/mediachunker/internal/config"
	"github.com/ZSC714725/mediachunker/internal/ffmpeg"
	"github.com/ZSC714725/mediachunker/internal/ffmpeg/parse"
	"github.com/ZSC714725/mediachunker/internal/media"
	"github.com/ZSC714725/mediachunker/internal/process"
)

// Handler holds dependencies
type Handler struct {
	svc      media.Service
	defaults config.MediaConfig
}

// NewHandler creates API handler
func NewHandler(svc media.Service, defaults config.MediaConfig) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

func errResp(c *gin.Context, code int, msg, detail string) {
	c.JSON(code, ErrorResponse{Code: code, Message: msg, Detail: detail})
}

// opError maps the error taxonomy to a status code and message.
func opError(c *gin.Context, err error) {
	var notFound *process.BinaryNotFoundError
	var failed *process.ProcessFailedError

	switch {
	case errors.Is(err, media.ErrPathNotAllowed):
		errResp(c, http.StatusForbidden, "Path not allowed", err.Error())
	case ffmpeg.IsConfigError(err):
		errResp(c, http.StatusBadRequest, "Invalid configuration", err.Error())
	case errors.Is(err, fs.ErrNotExist):
		errResp(c, http.StatusNotFound, "Input not found", err.Error())
	case errors.Is(err, parse.ErrNoDuration):
		errResp(c, http.StatusInternalServerError, "Unparseable ffmpeg output", err.Error())
	case errors.As(err, &notFound):
		errResp(c, http.StatusInternalServerError, "FFmpeg unavailable", err.Error())
	case errors.As(err, &failed):
		errResp(c, http.StatusInternalServerError, "FFmpeg failed", err.Error())
	default:
		errResp(c, http.StatusInternalServerError, "Operation failed", err.Error())
	}
}

// Hello GET /hello
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello, World!"})
}

// MediaInfo GET /media/info
func (h *Handler) MediaInfo(c *gin.Context) {
	input := c.DefaultQuery("input", h.defaults.InputFile)

	info, err := h.svc.Info(input)
	if err != nil {
		opError(c, err)
		return
	}

	c.JSON(http.StatusOK, MediaInfoResponse{
		File:            input,
		DurationSeconds: info.DurationSeconds,
		BitrateBPS:      info.BitrateBPS,
		Format:          info.Format,
		SampleRateHz:    info.SampleRateHz,
		Channels:        info.Channels,
	})
}

// Split GET /split
func (h *Handler) Split(c *gin.Context) {
	input := c.DefaultQuery("input", h.defaults.InputFile)
	outputDir := c.DefaultQuery("dir", h.defaults.ChunksDir)

	seconds := h.defaults.ChunkSeconds
	if raw := c.Query("seconds"); raw != "" {
		var err error
		seconds, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			errResp(c, http.StatusBadRequest, "Invalid seconds", err.Error())
			return
		}
	}

	chunks, err := h.svc.Split(input, outputDir, seconds)
	if err != nil {
		opError(c, err)
		return
	}

	resp := SplitResponse{
		Message: "Audio split successfully",
		Chunks:  make([]ChunkInfo, 0, len(chunks)),
	}
	for _, chunk := range chunks {
		resp.Chunks = append(resp.Chunks, ChunkInfo{Index: chunk.Index, Path: chunk.Path})
	}

	c.JSON(http.StatusOK, resp)
}

// Merge POST /merge
func (h *Handler) Merge(c *gin.Context) {
	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp(c, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	output, err := h.svc.Merge(req.Chunks, req.Output)
	if err != nil {
		opError(c, err)
		return
	}

	c.JSON(http.StatusOK, MergeResponse{
		Message: "Chunks merged successfully",
		Output:  output,
	})
}

// Skills GET /skills
func (h *Handler) Skills(c *gin.Context) {
	c.JSON(http.StatusOK, skillsToAPI(h.svc.Skills()))
}

// ReloadSkills POST /skills/reload
func (h *Handler) ReloadSkills(c *gin.Context) {
	if err := h.svc.ReloadSkills(); err != nil {
		errResp(c, http.StatusInternalServerError, "Reload failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, skillsToAPI(h.svc.Skills()))
}
