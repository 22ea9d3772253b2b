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
	"sort"
	"sync"
	"time"

	"github.com/henrylee2cn/goutil"
	"github.com/montanaflynn/stats"
)

// maxSamples is the number of latest samples kept per name.
const maxSamples = 512

// CallStats summarises the traffic of one call or event.
// Latency is the time spent encoding and handing a request to binder,
// or decoding a response or indication.
type CallStats struct {
	Name     string
	Count    int
	Failures int
	// Bytes is the total size of the legacy payloads.
	Bytes  int
	Mean   time.Duration
	Median time.Duration
	P95    time.Duration
}

type statEntry struct {
	mu       sync.Mutex
	count    int
	failures int
	bytes    int
	samples  []float64
	next     int
}

type statsRecorder struct {
	// key: call or event name
	// value: *statEntry
	entries goutil.Map
}

func newStatsRecorder() *statsRecorder {
	return &statsRecorder{entries: goutil.AtomicMap()}
}

func (r *statsRecorder) record(name string, cost time.Duration, size int, failed bool) {
	v, _ := r.entries.LoadOrStore(name, new(statEntry))
	e := v.(*statEntry)
	e.mu.Lock()
	e.count++
	e.bytes += size
	if failed {
		e.failures++
	}
	if len(e.samples) < maxSamples {
		e.samples = append(e.samples, float64(cost))
	} else {
		e.samples[e.next] = float64(cost)
		e.next = (e.next + 1) % maxSamples
	}
	e.mu.Unlock()
}

func (r *statsRecorder) snapshot() []CallStats {
	var list []CallStats
	r.entries.Range(func(k, v interface{}) bool {
		e := v.(*statEntry)
		e.mu.Lock()
		cs := CallStats{
			Name:     k.(string),
			Count:    e.count,
			Failures: e.failures,
			Bytes:    e.bytes,
		}
		data := stats.Float64Data(append([]float64(nil), e.samples...))
		e.mu.Unlock()
		if mean, err := stats.Mean(data); err == nil {
			cs.Mean = time.Duration(mean)
		}
		if median, err := stats.Median(data); err == nil {
			cs.Median = time.Duration(median)
		}
		if p95, err := stats.Percentile(data, 95); err == nil {
			cs.P95 = time.Duration(p95)
		}
		list = append(list, cs)
		return true
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
