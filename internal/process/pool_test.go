// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package process

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsJobs(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var result int
	<-p.Submit(func() { result = 42 })
	assert.Equal(t, 42, result)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var running, peak int32
	var wg sync.WaitGroup
	var mu sync.Mutex

	job := func() {
		n := atomic.AddInt32(&running, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&running, -1)
	}

	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-p.Submit(job)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int32(2))
}

func TestPoolCloseWaits(t *testing.T) {
	p := NewPool(1)

	var done atomic.Bool
	ch := p.Submit(func() {
		time.Sleep(10 * time.Millisecond)
		done.Store(true)
	})

	p.Close()
	assert.True(t, done.Load())
	<-ch
}

func TestPoolZeroWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()

	<-p.Submit(func() {})
}
