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
	"github.com/henrylee2cn/goutil"
)

// sessionHub sessions hub
type sessionHub struct {
	// key: modem path
	// value: *Session
	sessions goutil.Map
}

// Sessions holds the sessions that still have a radio attached.
var Sessions = newSessionHub()

func newSessionHub() *sessionHub {
	return &sessionHub{
		sessions: goutil.AtomicMap(),
	}
}

// Set sets a session. An older session of the same modem is shut down.
func (h *sessionHub) Set(modem string, s *Session) {
	old, loaded := h.sessions.LoadOrStore(modem, s)
	if !loaded {
		return
	}
	if oldSess := old.(*Session); oldSess != s {
		h.sessions.Store(modem, s)
		oldSess.Shutdown(false)
	}
}

// Get gets the session of a modem.
// If second returned arg is false, mean the session is not found.
func (h *sessionHub) Get(modem string) (*Session, bool) {
	s, ok := h.sessions.Load(modem)
	if !ok {
		return nil, false
	}
	return s.(*Session), true
}

// Range calls f sequentially for each modem and session present in the hub.
// If f returns false, range stops the iteration.
func (h *sessionHub) Range(f func(string, *Session) bool) {
	h.sessions.Range(func(key, value interface{}) bool {
		return f(key.(string), value.(*Session))
	})
}

// Len returns the length of the session hub.
// Note: the count implemented using sync.Map may be inaccurate.
func (h *sessionHub) Len() int {
	return h.sessions.Len()
}

// Delete deletes the session of a modem if it is s.
func (h *sessionHub) Delete(modem string, s *Session) {
	if cur, ok := h.Get(modem); ok && cur == s {
		h.sessions.Delete(modem)
	}
}
