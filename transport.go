// Package rilbinder implements a legacy socket-RIL transport on top of the
// binder IRadio and IOemHook HAL services.
//
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
//
package rilbinder

import (
	"sort"
	"sync"

	"github.com/henrylee2cn/goutil/errors"

	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/ril"
)

// Sink receives what a transport produces. It is implemented by the host.
// The data passed to Response and Indication is only valid during the call.
// Generic failures are delivered from a queue goroutine while binder
// callbacks run on their own, so implementations must be safe for
// concurrent use.
type Sink interface {
	// Connected reports the RIL version once the radio is up.
	Connected(rilVersion int)
	// Disconnected reports that the transport is gone for good.
	Disconnected()
	// Response delivers a legacy response payload.
	Response(typ ril.ResponseType, serial int32, status int32, data []byte)
	// Indication delivers a legacy unsolicited payload.
	Indication(typ ril.IndicationType, code uint32, data []byte)
}

// Channel is the host channel a transport is attached to.
type Channel interface {
	// Enabled reports whether the host wants radio traffic.
	Enabled() bool
	// AddEnabledHandler registers fn to run when Enabled changes.
	AddEnabledHandler(fn func(enabled bool)) uint64
	// RemoveHandler removes a handler added by AddEnabledHandler.
	RemoveHandler(id uint64)
}

// Transport carries legacy RIL requests to a radio and its replies back.
type Transport interface {
	// Send submits a legacy request. Unless the returned status is a
	// connection error, the host gets exactly one response for serial:
	// the radio's, or a generic failure delivered asynchronously.
	Send(code uint32, serial int32, data []byte) *Status
	// Shutdown releases the radio. Disconnected is reported at most once.
	Shutdown(flush bool)
	// SetChannel attaches the host channel, or detaches it if nil.
	SetChannel(ch Channel)
	// Connected reports whether the radio is up.
	Connected() bool
	// RilVersion returns the RIL version reported to the host.
	RilVersion() int
	// Stats returns the traffic statistics sorted by name.
	Stats() []CallStats
}

// ConnectFunc creates a transport.
type ConnectFunc func(cfg *Config, sink Sink) (Transport, error)

var transportMap = struct {
	sync.RWMutex
	m map[string]ConnectFunc
}{m: make(map[string]ConnectFunc)}

// BinderTransport is the name the binder transport is registered under.
const BinderTransport = "binder"

func init() {
	RegTransport(BinderTransport, connectBinder)
}

// RegTransport registers a transport under name.
func RegTransport(name string, fn ConnectFunc) {
	if name == "" || fn == nil {
		panic("rilbinder: empty transport registration")
	}
	transportMap.Lock()
	defer transportMap.Unlock()
	if _, ok := transportMap.m[name]; ok {
		panic("multi-register transport: " + name)
	}
	transportMap.m[name] = fn
}

// GetTransport returns the transport registered under name.
func GetTransport(name string) (ConnectFunc, bool) {
	transportMap.RLock()
	defer transportMap.RUnlock()
	fn, ok := transportMap.m[name]
	return fn, ok
}

// Transports returns the sorted names of the registered transports.
func Transports() []string {
	transportMap.RLock()
	names := make([]string, 0, len(transportMap.m))
	for name := range transportMap.m {
		names = append(names, name)
	}
	transportMap.RUnlock()
	sort.Strings(names)
	return names
}

// Connect creates a transport of the named kind from the host's
// key/value arguments.
func Connect(name string, args map[string]string, sink Sink) (Transport, error) {
	fn, ok := GetTransport(name)
	if !ok {
		return nil, errors.Errorf("unsupported transport: %s", name)
	}
	cfg, err := ConfigFromMap(args)
	if err != nil {
		return nil, err
	}
	return fn(cfg, sink)
}

func connectBinder(cfg *Config, sink Sink) (Transport, error) {
	sm, err := binder.Open(cfg.Dev)
	if err != nil {
		Errorf("%s: %s: %v", CodeText(CodeConnectFailed), cfg.Dev, err)
		return nil, err
	}
	s, err := NewSession(sm, cfg, sink)
	if err != nil {
		return nil, err
	}
	return s, nil
}
