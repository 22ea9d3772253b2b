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

package radio

import (
	"sync"

	"github.com/henrylee2cn/goutil/errors"
	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/hidl"
)

// ResponseInfo is RadioResponseInfo.
type ResponseInfo struct {
	Type   RespType
	Serial int32
	Error  int32
}

// ReadResponseInfo reads the RadioResponseInfo that leads every response.
func ReadResponseInfo(r *hidl.Reader) (ResponseInfo, error) {
	s, err := r.ReadStruct(ResponseInfoShape)
	if err != nil {
		return ResponseInfo{}, err
	}
	return ResponseInfo{
		Type:   RespType(s.Uint32("type")),
		Serial: s.Int32("serial"),
		Error:  s.Int32("error"),
	}, nil
}

// Handlers receives the traffic of an Instance. Every field is optional.
type Handlers struct {
	// Indication handles an IRadioIndication transaction. The reader is
	// positioned after the indication type.
	Indication func(code uint32, typ IndType, r *hidl.Reader) bool
	// Response handles an IRadioResponse transaction. The reader is
	// positioned after RadioResponseInfo.
	Response func(code uint32, info ResponseInfo, r *hidl.Reader) bool
	// Ack handles IRadioResponse.acknowledgeRequest.
	Ack func(serial int32)
	// Death runs once when the remote IRadio dies.
	Death func()
}

// Instance is a live connection to one IRadio service.
type Instance struct {
	sm       binder.ServiceManager
	slot     string
	version  Version
	remote   binder.RemoteObject
	handlers Handlers

	response   binder.LocalObject
	indication binder.LocalObject

	mu      sync.Mutex
	deathID uint64
	enabled bool
	dead    bool
	closed  bool
}

// ErrNoService is returned when no IRadio revision is registered for a slot.
var ErrNoService = errors.New("radio: no IRadio service")

// ErrClosed is returned by transactions on a closed or dead Instance.
var ErrClosed = errors.New("radio: instance is gone")

// FQName returns the service name of IRadio v for slot.
func FQName(v Version, slot string) string {
	return v.Iface(IRadio) + "/" + slot
}

// Negotiate finds the newest IRadio revision, not above ceiling, that is
// registered for slot.
func Negotiate(sm binder.ServiceManager, slot string, ceiling Version) (Version, binder.RemoteObject, error) {
	if !ceiling.Valid() {
		ceiling = MaxVersion
	}
	errs := []error{ErrNoService}
	for v := ceiling; v >= V1_0; v-- {
		remote, err := sm.GetService(FQName(v, slot))
		if err == nil && remote != nil {
			return v, remote, nil
		}
		errs = append(errs, err)
	}
	return V1_0, nil, errors.Merge(errs...)
}

// NewInstance connects to the IRadio service of slot, registers the
// response and indication objects and calls setResponseFunctions.
func NewInstance(sm binder.ServiceManager, slot string, ceiling Version, h Handlers) (*Instance, error) {
	v, remote, err := Negotiate(sm, slot, ceiling)
	if err != nil {
		return nil, err
	}
	inst := &Instance{
		sm:       sm,
		slot:     slot,
		version:  v,
		remote:   remote,
		handlers: h,
	}
	inst.response = sm.NewLocalObject(v.Iface(IRadioResponse), inst.handleResponse)
	inst.indication = sm.NewLocalObject(v.Iface(IRadioIndication), inst.handleIndication)
	inst.deathID = remote.AddDeathHandler(inst.died)

	w := hidl.NewWriter()
	w.AppendLocalObject(inst.response)
	w.AppendLocalObject(inst.indication)
	if _, err = remote.Transact(v.Iface(IRadio), ReqSetResponseFunctions, w.Parcel(), 0); err != nil {
		inst.Close()
		return nil, errors.Errorf("radio: setResponseFunctions on %s: %v", FQName(v, slot), err)
	}
	return inst, nil
}

// Version returns the negotiated revision.
func (inst *Instance) Version() Version {
	return inst.version
}

// Slot returns the service instance name.
func (inst *Instance) Slot() string {
	return inst.slot
}

// ServiceManager returns the service manager the instance was created on.
func (inst *Instance) ServiceManager() binder.ServiceManager {
	return inst.sm
}

// Send issues a oneway IRadio transaction.
func (inst *Instance) Send(code uint32, req *hidl.Parcel) error {
	if inst.gone() {
		return ErrClosed
	}
	if req == nil {
		req = hidl.NewParcel(nil)
	}
	_, err := inst.remote.Transact(inst.version.Iface(IRadio), code, req, binder.FlagOneway)
	return err
}

// Ack sends IRadio.responseAcknowledgement.
func (inst *Instance) Ack() error {
	return inst.Send(ReqResponseAcknowledgement, nil)
}

// SetEnabled records whether the owner wants traffic.
func (inst *Instance) SetEnabled(enabled bool) {
	inst.mu.Lock()
	inst.enabled = enabled
	inst.mu.Unlock()
}

// Enabled reports the flag set by SetEnabled.
func (inst *Instance) Enabled() bool {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.enabled
}

// Dead reports whether the remote service died.
func (inst *Instance) Dead() bool {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.dead
}

// Close drops the callback objects and the death handler. It is safe to
// call more than once.
func (inst *Instance) Close() {
	inst.mu.Lock()
	if inst.closed {
		inst.mu.Unlock()
		return
	}
	inst.closed = true
	dead := inst.dead
	inst.mu.Unlock()
	if !dead {
		inst.remote.RemoveHandler(inst.deathID)
	}
	inst.response.Drop()
	inst.indication.Drop()
}

func (inst *Instance) gone() bool {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.closed || inst.dead
}

func (inst *Instance) died() {
	inst.mu.Lock()
	if inst.dead || inst.closed {
		inst.mu.Unlock()
		return
	}
	inst.dead = true
	inst.mu.Unlock()
	inst.response.Drop()
	inst.indication.Drop()
	if fn := inst.handlers.Death; fn != nil {
		fn()
	}
}

// isIface reports whether iface is name of any revision up to the
// negotiated one.
func (inst *Instance) isIface(iface, name string) bool {
	for v := V1_0; v <= inst.version; v++ {
		if iface == v.Iface(name) {
			return true
		}
	}
	return false
}

func (inst *Instance) handleResponse(iface string, code, flags uint32, r *hidl.Reader) int32 {
	if !inst.isIface(iface, IRadioResponse) {
		return binder.StatusFailed
	}
	if code == RespAcknowledgeRequest {
		serial, err := r.ReadInt32()
		if err != nil {
			return binder.StatusFailed
		}
		if fn := inst.handlers.Ack; fn != nil {
			fn(serial)
		}
		return binder.StatusOK
	}
	info, err := ReadResponseInfo(r)
	if err != nil {
		return binder.StatusFailed
	}
	handled := false
	if fn := inst.handlers.Response; fn != nil {
		handled = fn(code, info, r)
	}
	if !handled && info.Type == RespSolicitedAckExp {
		inst.Ack()
	}
	return binder.StatusOK
}

func (inst *Instance) handleIndication(iface string, code, flags uint32, r *hidl.Reader) int32 {
	if !inst.isIface(iface, IRadioIndication) {
		return binder.StatusFailed
	}
	t, err := r.ReadUint32()
	if err != nil {
		return binder.StatusFailed
	}
	typ := IndType(t)
	handled := false
	if fn := inst.handlers.Indication; fn != nil {
		handled = fn(code, typ, r)
	}
	if !handled && typ == IndAckExp {
		inst.Ack()
	}
	return binder.StatusOK
}
