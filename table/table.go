// Package table holds the call and event descriptors of every IRadio
// revision and resolves them for a negotiated revision.
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
package table

import (
	"fmt"
	"sort"

	"github.com/henrylee2cn/goutil/errors"
	"github.com/henrylee2cn/rilbinder/codec"
	"github.com/henrylee2cn/rilbinder/radio"
)

// Call describes one legacy request.
//
// A Call with zero Code and ReqTx only binds a decoder to a newer
// response transaction of a request that kept its legacy code.
type Call struct {
	// Code is the legacy request code.
	Code uint32
	// ReqTx is the IRadio transaction, zero if the call can not be sent.
	ReqTx uint32
	// RespTx is the IRadioResponse transaction, zero if there is none.
	RespTx uint32
	// Encoder names the request encoder, "" sends an empty parcel.
	Encoder string
	// Decoder names the response decoder, "" forwards no data.
	Decoder string
	// Name is the IRadio method name.
	Name string
}

// Event describes one legacy unsolicited response.
type Event struct {
	// Code is the legacy unsolicited code.
	Code uint32
	// IndTx is the IRadioIndication transaction.
	IndTx uint32
	// Decoder names the indication decoder, "" forwards no data.
	Decoder string
	// Name is the IRadioIndication method name.
	Name string
}

// Layer is the set of descriptors introduced by one revision.
type Layer struct {
	Version radio.Version
	Calls   []Call
	Events  []Event
}

// Layers returns the built-in layers, oldest first.
func Layers() []Layer {
	return []Layer{
		{Version: radio.V1_0, Calls: calls10, Events: events10},
		{Version: radio.V1_2, Calls: calls12, Events: events12},
		{Version: radio.V1_4, Calls: calls14, Events: events14},
	}
}

// CallEntry is a Call with its codecs resolved.
type CallEntry struct {
	Call
	Version radio.Version
	Encode  codec.Encoder
	Decode  codec.Decoder
}

// EventEntry is an Event with its decoder resolved.
type EventEntry struct {
	Event
	Version radio.Version
	Decode  codec.Decoder
}

func (e *CallEntry) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, e.Version)
}

func (e *EventEntry) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, e.Version)
}

type layerMaps struct {
	req  map[uint32]*CallEntry
	resp map[uint32]*CallEntry
	ind  map[uint32]*EventEntry
}

// Set is the searchable form of the layers up to one revision.
// It is read only once built.
type Set struct {
	version radio.Version
	layers  [radio.VersionCount]*layerMaps
}

// NewSet builds the Set for version from layers. Layers newer than
// version are ignored. Unknown codec names and duplicate keys inside a
// layer are reported together.
func NewSet(version radio.Version, layers ...Layer) (*Set, error) {
	if !version.Valid() {
		return nil, errors.Errorf("table: invalid version %d", int(version))
	}
	s := &Set{version: version}
	var errs []error
	for i := range layers {
		l := &layers[i]
		if l.Version > version {
			continue
		}
		if !l.Version.Valid() {
			errs = append(errs, errors.Errorf("table: invalid layer version %d", int(l.Version)))
			continue
		}
		m := s.layers[l.Version]
		if m == nil {
			m = &layerMaps{
				req:  make(map[uint32]*CallEntry),
				resp: make(map[uint32]*CallEntry),
				ind:  make(map[uint32]*EventEntry),
			}
			s.layers[l.Version] = m
		}
		for _, c := range l.Calls {
			e := &CallEntry{Call: c, Version: l.Version}
			var err error
			if c.Encoder != "" {
				if e.Encode, err = codec.GetEncoder(c.Encoder); err != nil {
					errs = append(errs, errors.Errorf("table: %s: %v", c.Name, err))
				}
			}
			if c.Decoder != "" {
				if e.Decode, err = codec.GetDecoder(c.Decoder); err != nil {
					errs = append(errs, errors.Errorf("table: %s: %v", c.Name, err))
				}
			}
			if c.Code != 0 && c.ReqTx != 0 {
				if old, ok := m.req[c.Code]; ok {
					errs = append(errs, errors.Errorf("table: request conflict: %s and %s", old, e))
				}
				m.req[c.Code] = e
			}
			if c.RespTx != 0 {
				if old, ok := m.resp[c.RespTx]; ok {
					errs = append(errs, errors.Errorf("table: response conflict: %s and %s", old, e))
				}
				m.resp[c.RespTx] = e
			}
		}
		for _, ev := range l.Events {
			e := &EventEntry{Event: ev, Version: l.Version}
			if ev.Decoder != "" {
				var err error
				if e.Decode, err = codec.GetDecoder(ev.Decoder); err != nil {
					errs = append(errs, errors.Errorf("table: %s: %v", ev.Name, err))
				}
			}
			if old, ok := m.ind[ev.IndTx]; ok {
				errs = append(errs, errors.Errorf("table: indication conflict: %s and %s", old, e))
			}
			m.ind[ev.IndTx] = e
		}
	}
	if len(errs) > 0 {
		return nil, errors.Merge(errs...)
	}
	return s, nil
}

// For returns the Set of the built-in layers for version. It panics if
// the built-in tables are inconsistent.
func For(version radio.Version) *Set {
	s, err := NewSet(version, Layers()...)
	if err != nil {
		panic(err)
	}
	return s
}

// Version returns the revision the set was built for.
func (s *Set) Version() radio.Version {
	return s.version
}

// LookupRequest returns the sendable descriptor of a legacy request
// code, searching from the set's revision downward.
func (s *Set) LookupRequest(code uint32) (*CallEntry, bool) {
	for v := s.version; v >= radio.V1_0; v-- {
		if m := s.layers[v]; m != nil {
			if e, ok := m.req[code]; ok {
				return e, true
			}
		}
	}
	return nil, false
}

// LookupResponse returns the descriptor of an IRadioResponse transaction.
func (s *Set) LookupResponse(tx uint32) (*CallEntry, bool) {
	for v := s.version; v >= radio.V1_0; v-- {
		if m := s.layers[v]; m != nil {
			if e, ok := m.resp[tx]; ok {
				return e, true
			}
		}
	}
	return nil, false
}

// LookupEvent returns the descriptor of an IRadioIndication transaction.
func (s *Set) LookupEvent(tx uint32) (*EventEntry, bool) {
	for v := s.version; v >= radio.V1_0; v-- {
		if m := s.layers[v]; m != nil {
			if e, ok := m.ind[tx]; ok {
				return e, true
			}
		}
	}
	return nil, false
}

// Requests returns the descriptor each sendable legacy code resolves
// to, ordered by code.
func (s *Set) Requests() []*CallEntry {
	codes := make(map[uint32]bool)
	for _, m := range s.layers {
		if m != nil {
			for code := range m.req {
				codes[code] = true
			}
		}
	}
	list := make([]*CallEntry, 0, len(codes))
	for code := range codes {
		e, _ := s.LookupRequest(code)
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}

// Events returns the descriptor each indication transaction resolves
// to, ordered by transaction.
func (s *Set) Events() []*EventEntry {
	txs := make(map[uint32]bool)
	for _, m := range s.layers {
		if m != nil {
			for tx := range m.ind {
				txs[tx] = true
			}
		}
	}
	list := make([]*EventEntry, 0, len(txs))
	for tx := range txs {
		e, _ := s.LookupEvent(tx)
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].IndTx < list[j].IndTx })
	return list
}
