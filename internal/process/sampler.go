// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package process

import (
	"sync"

	gopsutilprocess "github.com/shirou/gopsutil/v3/process"
)

// Sampler reads CPU/memory usage of a running child process.
// NullSampler reports nothing.
type Sampler interface {
	Start(pid int) error
	Stop()
	Sample() (cpu float64, memory uint64)
}

type nullSampler struct{}

// NewNullSampler returns a no-op sampler
func NewNullSampler() Sampler {
	return &nullSampler{}
}

func (s *nullSampler) Start(pid int) error       { return nil }
func (s *nullSampler) Stop()                     {}
func (s *nullSampler) Sample() (float64, uint64) { return 0, 0 }

// sysSampler 使用 gopsutil 采集进程 CPU 和内存
type sysSampler struct {
	mu   sync.RWMutex
	pid  int32
	proc *gopsutilprocess.Process
}

// NewSysSampler 创建基于系统调用的采样器
func NewSysSampler() Sampler {
	return &sysSampler{}
}

func (s *sysSampler) Start(pid int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	proc, err := gopsutilprocess.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	s.pid = int32(pid)
	s.proc = proc
	return nil
}

func (s *sysSampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pid = 0
	s.proc = nil
}

func (s *sysSampler) Sample() (cpu float64, memory uint64) {
	s.mu.RLock()
	proc := s.proc
	s.mu.RUnlock()
	if proc == nil {
		return 0, 0
	}
	if cpuPct, err := proc.CPUPercent(); err == nil {
		cpu = cpuPct
	}
	if memInfo, err := proc.MemoryInfo(); err == nil && memInfo != nil {
		memory = memInfo.RSS
	}
	return cpu, memory
}
