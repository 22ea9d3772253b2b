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
	"fmt"
	"strings"
	"sync"

	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
)

// oemHook is the IOemHook side channel of a slot.
type oemHook struct {
	log           Logger
	radio         *radio.Instance
	remote        binder.RemoteObject
	response      binder.LocalObject
	indication    binder.LocalObject
	onRawResponse func(info radio.ResponseInfo, data []byte)

	mu      sync.Mutex
	deathID uint64
	dropped bool
}

// newOemHook attaches to the IOemHook service of the slot of inst. It
// returns nil if there is none.
func newOemHook(sm binder.ServiceManager, inst *radio.Instance, log Logger, onRawResponse func(radio.ResponseInfo, []byte)) *oemHook {
	fqname := radio.IOemHook + "/" + inst.Slot()
	remote, err := sm.GetService(fqname)
	if err != nil || remote == nil {
		log.Debugf("no %s: %v", fqname, err)
		return nil
	}
	log.Debugf("Connected to %s", fqname)
	h := &oemHook{
		log:           log,
		radio:         inst,
		remote:        remote,
		onRawResponse: onRawResponse,
	}
	h.deathID = remote.AddDeathHandler(h.died)
	h.indication = sm.NewLocalObject(radio.IOemHookIndication, h.handleIndication)
	h.response = sm.NewLocalObject(radio.IOemHookResponse, h.handleResponse)

	w := hidl.NewWriter()
	w.AppendLocalObject(h.response)
	w.AppendLocalObject(h.indication)
	_, err = remote.Transact(radio.IOemHook, radio.OemHookReqSetResponseFunctions, w.Parcel(), 0)
	log.Debugf("setResponseFunctions status %v", err)
	return h
}

// sendRequestRaw issues IOemHook.sendRequestRaw(serial, data).
func (h *oemHook) sendRequestRaw(serial int32, data []byte) error {
	h.mu.Lock()
	dropped := h.dropped
	h.mu.Unlock()
	if dropped {
		return ErrNoRadio
	}
	w := hidl.NewWriter()
	w.AppendInt32(serial)
	w.AppendByteVec(data)
	_, err := h.remote.Transact(radio.IOemHook, radio.OemHookReqSendRequestRaw, w.Parcel(), binder.FlagOneway)
	return err
}

// drop releases the callback objects and the death handler. It is safe
// to call more than once.
func (h *oemHook) drop() {
	h.mu.Lock()
	if h.dropped {
		h.mu.Unlock()
		return
	}
	h.dropped = true
	h.mu.Unlock()
	h.indication.Drop()
	h.response.Drop()
	h.remote.RemoveHandler(h.deathID)
}

func (h *oemHook) died() {
	h.log.Errorf("oemhook died")
	h.drop()
}

func (h *oemHook) handleResponse(iface string, code, flags uint32, r *hidl.Reader) int32 {
	if iface != radio.IOemHookResponse {
		h.log.Debugf("%s %d (unexpected interface)", iface, code)
		return binder.StatusFailed
	}
	info, err := radio.ReadResponseInfo(r)
	if err != nil {
		h.log.Warnf("Failed to decode %s %d: %v", iface, code, err)
		return binder.StatusOK
	}
	switch code {
	case radio.OemHookRespSendRequestRaw:
		h.log.Debugf("%s %d sendRequestRawResponse", iface, code)
		data, err := r.ReadByteVec()
		if err != nil {
			h.log.Warnf("Failed to decode sendRequestRawResponse: %v", err)
			break
		}
		if h.onRawResponse != nil {
			h.onRawResponse(info, data)
		}
	default:
		// sendRequestStrings is never called
		h.log.Debugf("%s %d", iface, code)
	}
	return binder.StatusOK
}

func (h *oemHook) handleIndication(iface string, code, flags uint32, r *hidl.Reader) int32 {
	if iface != radio.IOemHookIndication {
		h.log.Debugf("%s %d", iface, code)
		return binder.StatusFailed
	}
	t, err := r.ReadUint32()
	typ := radio.IndType(t)
	if err != nil || (typ != radio.IndUnsolicited && typ != radio.IndAckExp) {
		h.log.Warnf("Failed to decode indication %d", code)
		return binder.StatusOK
	}
	if code == radio.OemHookIndOemHookRaw {
		h.log.Debugf("%s %d oemHookRaw", iface, code)
		if data, err := r.ReadByteVec(); err == nil {
			h.dump(data)
		} else {
			h.log.Warnf("Failed to decode oemHookRaw: %v", err)
		}
	} else {
		h.log.Debugf("%s %d", iface, code)
	}
	if typ == radio.IndAckExp {
		h.log.Tracef("ack")
		h.radio.Ack()
	}
	return binder.StatusOK
}

// dump logs data 16 bytes per line at debug level.
func (h *oemHook) dump(data []byte) {
	if lv, _ := levelOf(h.log.Level()); lv < levelDebug {
		return
	}
	prefix := '>'
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		h.log.Debugf("%c %04x: %s", prefix, off, hexLine(data[off:end]))
		prefix = ' '
	}
}

func hexLine(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i == 8 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%02x ", c)
	}
	sb.WriteString(" ")
	for _, c := range b {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
