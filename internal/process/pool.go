// Copyright (c) 2026 Kevin Zang (kevinzang). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// MediaChunker - FFmpeg 媒体切分合并服务

package process

import "sync"

// Pool runs blocking jobs on a fixed set of workers. Subprocess
// execution blocks until the child exits, so requests hand their
// invocation to the pool and wait on the returned channel instead of
// tying up anything shared.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{jobs: make(chan func())}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// Submit enqueues a job and returns a channel that is closed once the
// job has run. Submitting blocks while all workers are busy and the
// queue is full.
func (p *Pool) Submit(job func()) <-chan struct{} {
	done := make(chan struct{})
	p.jobs <- func() {
		defer close(done)
		job()
	}
	return done
}

// Close stops accepting jobs and waits for running ones to finish.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
