// seehuhn.de/go/svgrender - render SVG documents into pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package engine renders parsed SVG documents into caller-provided pixel
// memory.
//
// A [Picture] holds a document and its scale, a [Canvas] is bound to a pixel
// buffer and draws pictures into it, and a [Pool] of worker goroutines is
// shared by all canvases.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	// ErrInvalidThreads is returned by NewPool for a thread count below one.
	ErrInvalidThreads = errors.New("engine: thread count must be at least 1")

	// ErrPanic is reported by Group.Wait if a task panicked.
	ErrPanic = errors.New("engine: task panicked")
)

// Pool is a fixed set of worker goroutines.
// Each worker has its own queue; tasks are distributed round-robin.
// Work is submitted through a [Group].
//
// A Pool is safe for concurrent use.
type Pool struct {
	queues []chan func()
	next   atomic.Uint64
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given number of workers.
func NewPool(threads int) (*Pool, error) {
	if threads < 1 {
		return nil, ErrInvalidThreads
	}

	p := &Pool{
		queues: make([]chan func(), threads),
	}
	qSize := max(threads*4, 8)
	for i := range p.queues {
		p.queues[i] = make(chan func(), qSize)
	}
	p.wg.Add(threads)
	for i := range threads {
		go p.worker(p.queues[i])
	}
	return p, nil
}

// Threads returns the number of workers.
func (p *Pool) Threads() int {
	return len(p.queues)
}

func (p *Pool) worker(queue chan func()) {
	defer p.wg.Done()
	for task := range queue {
		task()
	}
}

// submit runs task on one of the workers. After Close, the task is run
// on the calling goroutine.
func (p *Pool) submit(task func()) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		task()
		return
	}
	i := p.next.Add(1) % uint64(len(p.queues))
	p.queues[i] <- task
}

// Close stops the workers once the queued tasks are done.
// Close is idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, q := range p.queues {
		close(q)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Group is a set of tasks running on a pool which can be waited for
// together. The zero Group is not usable; use [Pool.NewGroup].
type Group struct {
	pool *Pool
	wg   sync.WaitGroup

	mu  sync.Mutex
	err error
}

// NewGroup returns an empty task group running on p.
func (p *Pool) NewGroup() *Group {
	return &Group{pool: p}
}

// Go runs fn on the pool. A panic in fn is reported by Wait as an error
// wrapping ErrPanic.
func (g *Group) Go(fn func() error) {
	g.wg.Add(1)
	g.pool.submit(func() {
		defer g.wg.Done()
		if err := run(fn); err != nil {
			g.mu.Lock()
			if g.err == nil {
				g.err = err
			}
			g.mu.Unlock()
		}
	})
}

func run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}

// Wait blocks until all tasks of the group have finished and returns the
// first error. The error is cleared, so that the group can be reused.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	err := g.err
	g.err = nil
	return err
}
