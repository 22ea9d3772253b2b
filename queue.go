// Copyright 2015-2018 HenryLee. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rilbinder

import (
	"sync"
	"time"

	"github.com/henrylee2cn/goutil/pool"
)

var (
	_maxGoroutinesAmount      = (1024 * 1024 * 8) / 8 // max memory 8GB (8KB/goroutine)
	_maxGoroutineIdleDuration time.Duration
	_gopool                   = pool.NewGoPool(_maxGoroutinesAmount, _maxGoroutineIdleDuration)
)

// SetGopool set or reset go pool config.
// Note: Make sure to call it before creating any transport.
func SetGopool(maxGoroutinesAmount int, maxGoroutineIdleDuration time.Duration) {
	if _gopool != nil {
		_gopool.Stop()
	}
	_gopool = pool.NewGoPool(maxGoroutinesAmount, maxGoroutineIdleDuration)
}

// Go similar to go func, but return false if insufficient resources.
func Go(fn func()) bool {
	if err := _gopool.Go(fn); err != nil {
		Warnf("%s", err.Error())
		return false
	}
	return true
}

// idleQueue runs callbacks one at a time, in the order they were added,
// never on the goroutine that adds them.
type idleQueue struct {
	mu      sync.Mutex
	items   []func()
	running bool
	idle    *sync.Cond
}

func newIdleQueue() *idleQueue {
	q := new(idleQueue)
	q.idle = sync.NewCond(&q.mu)
	return q
}

// Add schedules fn.
func (q *idleQueue) Add(fn func()) {
	q.mu.Lock()
	q.items = append(q.items, fn)
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.mu.Unlock()
	if !Go(q.run) {
		go q.run()
	}
}

func (q *idleQueue) run() {
	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			q.running = false
			q.idle.Broadcast()
			q.mu.Unlock()
			return
		}
		fn := q.items[0]
		q.items[0] = nil
		q.items = q.items[1:]
		q.mu.Unlock()
		fn()
	}
}

// Wait blocks until the queue is drained.
func (q *idleQueue) Wait() {
	q.mu.Lock()
	for q.running {
		q.idle.Wait()
	}
	q.mu.Unlock()
}
