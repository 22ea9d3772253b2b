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

	"github.com/henrylee2cn/goutil/errors"

	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/codec"
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/ril"
	"github.com/henrylee2cn/rilbinder/table"
	"github.com/henrylee2cn/rilbinder/wire"
)

// Session is the binder transport of one radio slot.
type Session struct {
	cfg   Config
	sink  Sink
	log   Logger
	queue *idleQueue
	stats *statsRecorder

	mu         sync.Mutex
	radio      *radio.Instance
	oemhook    *oemHook
	tables     *table.Set
	connected  bool
	rilVersion int
	// nil while a decoder is writing to it
	scratch *wire.Writer
	channel Channel
	chanID  uint64
}

var _ Transport = (*Session)(nil)

// NewSession connects to the IRadio service named by cfg on sm. The
// IOemHook service of the same slot is optional.
func NewSession(sm binder.ServiceManager, cfg *Config, sink Sink) (*Session, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	c := *cfg
	if err := c.check(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:     c,
		sink:    sink,
		log:     newPrefixLogger("[" + c.Name + "] "),
		queue:   newIdleQueue(),
		stats:   newStatsRecorder(),
		scratch: wire.NewWriter(),
	}
	s.log.Debugf("%s %s %s %s", c.Modem, c.Dev, c.Name, c.Version())
	inst, err := radio.NewInstance(sm, c.Name, c.Version(), radio.Handlers{
		Indication: s.handleIndication,
		Response:   s.handleResponse,
		Ack:        s.handleAck,
		Death:      s.handleDeath,
	})
	if err != nil {
		s.log.Errorf("%v", err)
		return nil, err
	}
	tables, err := table.NewSet(inst.Version(), table.Layers()...)
	if err != nil {
		inst.Close()
		return nil, err
	}
	s.log.Infof("connected to %s", radio.FQName(inst.Version(), c.Name))
	hook := newOemHook(sm, inst, s.log, s.handleOemHookResponse)

	s.mu.Lock()
	s.radio = inst
	s.tables = tables
	s.oemhook = hook
	s.mu.Unlock()
	Sessions.Set(c.Modem, s)
	return s, nil
}

// Config returns the effective config.
func (s *Session) Config() Config {
	return s.cfg
}

// Version returns the negotiated IRadio revision.
func (s *Session) Version() radio.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tables == nil {
		return radio.V1_0
	}
	return s.tables.Version()
}

// Connected reports whether the radio is up.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// RilVersion returns the RIL version reported to the host, zero until
// connected.
func (s *Session) RilVersion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rilVersion
}

// HasOemHook reports whether the IOemHook service is attached.
func (s *Session) HasOemHook() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.oemhook != nil
}

// Stats returns the traffic statistics sorted by name.
func (s *Session) Stats() []CallStats {
	return s.stats.snapshot()
}

// Send looks up code in the call tables of the negotiated revision,
// encodes data and issues the oneway IRadio transaction. OEM_HOOK_RAW
// goes to the IOemHook service. Every failure after the radio is
// attached is answered with a GENERIC_FAILURE response for serial,
// delivered from the idle queue.
func (s *Session) Send(code uint32, serial int32, data []byte) *Status {
	s.mu.Lock()
	inst, tables, hook := s.radio, s.tables, s.oemhook
	s.mu.Unlock()
	if inst == nil {
		return NewStatusByCodeText(CodeNotConnected, nil, false)
	}
	start := time.Now()
	var stat *Status
	if call, ok := tables.LookupRequest(code); ok {
		stat = s.sendCall(inst, call, serial, data)
		s.stats.record(call.Name, time.Since(start), len(data), stat != nil)
	} else if code == ril.RequestOemHookRaw {
		if hook != nil {
			if err := hook.sendRequestRaw(serial, data); err != nil {
				stat = NewStatusByCodeText(CodeTransactionFailed, err, false)
			}
		} else {
			s.log.Warnf("No OEM hook to handle OEM_HOOK_RAW request")
			stat = NewStatusByCodeText(CodeNoOemHook, nil, false)
		}
		s.stats.record("sendRequestRaw", time.Since(start), len(data), stat != nil)
	} else {
		s.log.Warnf("Unknown RIL command %d", code)
		stat = NewStatusByCodeText(CodeUnknownCommand, ril.RequestName(code), false)
	}
	if stat != nil {
		s.genericFailure(serial)
	}
	return stat
}

func (s *Session) sendCall(inst *radio.Instance, call *table.CallEntry, serial int32, data []byte) *Status {
	var parcel *hidl.Parcel
	if call.Encode != nil {
		w := hidl.NewWriter()
		if err := call.Encode(serial, wire.NewParser(data), w); err != nil {
			s.log.Warnf("Failed to encode %s() arguments: %v", call.Name, err)
			return NewStatusByCodeText(CodeEncodeFailed, err, false)
		}
		parcel = w.Parcel()
	}
	s.log.Debugf("IRadio %d %s", call.ReqTx, call.Name)
	if err := inst.Send(call.ReqTx, parcel); err != nil {
		s.log.Warnf("%s() transaction failed: %v", call.Name, err)
		return NewStatusByCodeText(CodeTransactionFailed, err, false)
	}
	return nil
}

// genericFailure answers serial with GENERIC_FAILURE once Send has
// returned.
func (s *Session) genericFailure(serial int32) {
	s.queue.Add(func() {
		if s.sink != nil {
			s.sink.Response(ril.ResponseSolicited, serial, ril.ErrGenericFailure, nil)
		}
	})
}

// Shutdown releases the radio and the OEM hook. Disconnected is reported
// only if the radio was still attached. With flush set it also waits for
// the queued generic failures, so it must not be called from a Sink.
func (s *Session) Shutdown(flush bool) {
	if s.dropRadio() {
		s.log.Debugf("shutdown")
		s.signalDisconnected()
	}
	if flush {
		s.queue.Wait()
	}
}

// Flush blocks until every queued generic failure is delivered.
func (s *Session) Flush() {
	s.queue.Wait()
}

// SetChannel follows the enabled flag of ch, or disables the radio if ch
// is nil.
func (s *Session) SetChannel(ch Channel) {
	s.mu.Lock()
	old, oldID := s.channel, s.chanID
	s.channel, s.chanID = ch, 0
	s.mu.Unlock()
	if old != nil {
		old.RemoveHandler(oldID)
	}
	if ch == nil {
		s.setEnabled(false)
		return
	}
	id := ch.AddEnabledHandler(s.enabledChanged)
	s.mu.Lock()
	if s.channel == ch {
		s.chanID = id
	}
	s.mu.Unlock()
	s.setEnabled(ch.Enabled())
}

// Enabled reports whether the radio is enabled for traffic.
func (s *Session) Enabled() bool {
	s.mu.Lock()
	inst := s.radio
	s.mu.Unlock()
	return inst != nil && inst.Enabled()
}

func (s *Session) enabledChanged(enabled bool) {
	if enabled {
		s.log.Debugf("enabled")
	} else {
		s.log.Debugf("disabled")
	}
	s.setEnabled(enabled)
}

func (s *Session) setEnabled(enabled bool) {
	s.mu.Lock()
	inst := s.radio
	s.mu.Unlock()
	if inst != nil {
		inst.SetEnabled(enabled)
	}
}

// dropRadio detaches the radio and the OEM hook. It reports whether
// there was anything to drop.
func (s *Session) dropRadio() bool {
	s.mu.Lock()
	inst, hook := s.radio, s.oemhook
	s.radio, s.oemhook = nil, nil
	s.connected = false
	s.mu.Unlock()
	if hook != nil {
		hook.drop()
	}
	if inst == nil {
		return false
	}
	inst.Close()
	Sessions.Delete(s.cfg.Modem, s)
	return true
}

func (s *Session) signalDisconnected() {
	if s.sink != nil {
		s.sink.Disconnected()
	}
}

func (s *Session) signalConnected() {
	s.mu.Lock()
	if s.connected || s.radio == nil {
		s.mu.Unlock()
		return
	}
	s.connected = true
	s.rilVersion = int(s.radio.Version()) + ril.VersionOffset
	version := s.rilVersion
	s.mu.Unlock()
	s.log.Debugf("connected")
	if s.sink != nil {
		s.sink.Connected(version)
	}
}

func (s *Session) lookupTables() *table.Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.radio == nil {
		return nil
	}
	return s.tables
}

func (s *Session) handleResponse(code uint32, info radio.ResponseInfo, r *hidl.Reader) bool {
	tables := s.lookupTables()
	if tables == nil {
		return false
	}
	call, ok := tables.LookupResponse(code)
	if !ok {
		s.log.Debugf("IRadioResponse %d", code)
		s.log.Warnf("Unexpected response transaction %d", code)
		return false
	}
	s.log.Debugf("IRadioResponse %d %s", code, call.Name)
	if !s.Connected() {
		s.log.Debugf("Simulating rilConnected")
		s.signalConnected()
	}
	typ := responseType(info.Type)
	start := time.Now()
	ok = s.decode(call.Decode, r.Copy(), func(data []byte) bool {
		if typ == ril.ResponseNone {
			s.log.Debugf("Unexpected response type %d", info.Type)
			return false
		}
		if s.sink != nil {
			s.sink.Response(typ, info.Serial, info.Error, data)
		}
		return true
	})
	s.stats.record(call.Name, time.Since(start), 0, !ok)
	if !ok {
		s.log.Warnf("Failed to decode %s response", call.Name)
	}
	return ok
}

func (s *Session) handleIndication(code uint32, typ radio.IndType, r *hidl.Reader) bool {
	tables := s.lookupTables()
	if tables == nil {
		return false
	}
	if code == radio.IndRilConnected {
		s.log.Debugf("IRadioIndication %d rilConnected", code)
		s.signalConnected()
		return true
	}
	event, ok := tables.LookupEvent(code)
	if !ok {
		s.log.Debugf("IRadioIndication %d", code)
		return false
	}
	if !s.Connected() {
		s.log.Debugf("Simulating rilConnected")
		s.signalConnected()
	}
	s.log.Debugf("IRadioIndication %d %s", code, event.Name)
	indType := ril.IndicationUnsolicited
	if typ == radio.IndAckExp {
		indType = ril.IndicationUnsolicitedAckExp
	}
	start := time.Now()
	ok = s.decode(event.Decode, r.Copy(), func(data []byte) bool {
		if s.sink != nil {
			s.sink.Indication(indType, event.Code, data)
		}
		return true
	})
	s.stats.record(event.Name, time.Since(start), 0, !ok)
	if !ok {
		s.log.Warnf("Failed to decode %s indication", event.Name)
	}
	return ok
}

// decode runs dec into the scratch buffer and hands the result to emit.
// A nested decode gets a buffer of its own.
func (s *Session) decode(dec codec.Decoder, r *hidl.Reader, emit func(data []byte) bool) bool {
	s.mu.Lock()
	buf := s.scratch
	s.scratch = nil
	s.mu.Unlock()
	if buf == nil {
		buf = wire.NewWriter()
	}
	buf.Reset()
	signaled := false
	var err error
	if dec != nil {
		err = dec(r, buf)
	}
	if err == nil {
		signaled = emit(buf.Bytes())
	} else {
		s.log.Debugf("%v", err)
	}
	buf.Reset()
	s.mu.Lock()
	s.scratch = buf
	s.mu.Unlock()
	return signaled
}

func (s *Session) handleAck(serial int32) {
	s.log.Debugf("IRadioResponse acknowledgeRequest")
	if s.sink != nil {
		s.sink.Response(ril.ResponseSolicitedAck, serial, ril.ErrSuccess, nil)
	}
}

func (s *Session) handleDeath() {
	s.log.Errorf("radio died")
	if s.dropRadio() {
		s.signalDisconnected()
	}
}

func (s *Session) handleOemHookResponse(info radio.ResponseInfo, data []byte) {
	typ := responseType(info.Type)
	if typ == ril.ResponseNone {
		s.log.Debugf("Unexpected response type %d", info.Type)
		return
	}
	if s.sink != nil {
		s.sink.Response(typ, info.Serial, info.Error, data)
	}
}

func responseType(t radio.RespType) ril.ResponseType {
	switch t {
	case radio.RespSolicited:
		return ril.ResponseSolicited
	case radio.RespSolicitedAck:
		return ril.ResponseSolicitedAck
	case radio.RespSolicitedAckExp:
		return ril.ResponseSolicitedAckExp
	}
	return ril.ResponseNone
}

// ErrNoRadio is returned when a session has no radio attached.
var ErrNoRadio = errors.New("rilbinder: no radio")
