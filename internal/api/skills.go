// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package api

import "github.com/ZSC714725/mediachunker/internal/ffmpeg/skills"

// FormatInfo is one container format in API responses
type FormatInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SkillsResponse for GET /skills
type SkillsResponse struct {
	Version       string       `json:"version"`
	Compiler      string       `json:"compiler,omitempty"`
	Configuration string       `json:"configuration,omitempty"`
	Muxers        []FormatInfo `json:"muxers"`
	Demuxers      []FormatInfo `json:"demuxers"`
}

func skillsToAPI(sk skills.Skills) SkillsResponse {
	resp := SkillsResponse{
		Version:       sk.FFmpeg.Version,
		Compiler:      sk.FFmpeg.Compiler,
		Configuration: sk.FFmpeg.Configuration,
		Muxers:        make([]FormatInfo, 0, len(sk.Formats.Muxers)),
		Demuxers:      make([]FormatInfo, 0, len(sk.Formats.Demuxers)),
	}
	for _, f := range sk.Formats.Muxers {
		resp.Muxers = append(resp.Muxers, FormatInfo{ID: f.Id, Name: f.Name})
	}
	for _, f := range sk.Formats.Demuxers {
		resp.Demuxers = append(resp.Demuxers, FormatInfo{ID: f.Id, Name: f.Name})
	}
	return resp
}
