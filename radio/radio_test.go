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

package radio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/binder/bindertest"
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
)

func responseParcel(typ radio.RespType, serial, errno int32) *hidl.Parcel {
	w := hidl.NewWriter()
	w.AppendStruct(hidl.NewStruct(radio.ResponseInfoShape).
		SetInt("type", int64(typ)).
		SetInt("serial", int64(serial)).
		SetInt("error", int64(errno)))
	return w.Parcel()
}

func TestVersionNames(t *testing.T) {
	assert.Equal(t, "radio@1.2", radio.V1_2.Name())
	assert.Equal(t, "android.hardware.radio@1.4::IRadio", radio.V1_4.Iface(radio.IRadio))
	assert.Equal(t, "android.hardware.radio@1.0::IRadio/slot2", radio.FQName(radio.V1_0, "slot2"))
	v, ok := radio.ParseVersion(" radio@1.1 ")
	assert.True(t, ok)
	assert.Equal(t, radio.V1_1, v)
	v, ok = radio.ParseVersion("radio@2.0")
	assert.False(t, ok)
	assert.Equal(t, radio.MaxVersion, v)
}

func TestNegotiateDescends(t *testing.T) {
	sm := bindertest.NewServiceManager()
	sm.AddService(radio.FQName(radio.V1_0, "slot1"))
	sm.AddService(radio.FQName(radio.V1_2, "slot1"))

	v, _, err := radio.Negotiate(sm, "slot1", radio.MaxVersion)
	assert.NoError(t, err)
	assert.Equal(t, radio.V1_2, v)

	v, _, err = radio.Negotiate(sm, "slot1", radio.V1_1)
	assert.NoError(t, err)
	assert.Equal(t, radio.V1_0, v)

	_, _, err = radio.Negotiate(sm, "slot9", radio.MaxVersion)
	assert.Error(t, err)
}

func TestNewInstanceRegistersCallbacks(t *testing.T) {
	sm := bindertest.NewServiceManager()
	remote := sm.AddService(radio.FQName(radio.V1_4, "slot1"))
	inst, err := radio.NewInstance(sm, "slot1", radio.MaxVersion, radio.Handlers{})
	if !assert.NoError(t, err) {
		return
	}
	defer inst.Close()
	assert.Equal(t, radio.V1_4, inst.Version())

	tx, ok := remote.Last()
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, radio.ReqSetResponseFunctions, tx.Code)
	assert.Equal(t, uint32(0), tx.Flags&binder.FlagOneway)
	assert.Equal(t, radio.V1_4.Iface(radio.IRadio), tx.Iface)

	locals := sm.Locals()
	if !assert.Len(t, locals, 2) {
		return
	}
	r := tx.Reader()
	resp, err := r.ReadObject()
	assert.NoError(t, err)
	ind, err := r.ReadObject()
	assert.NoError(t, err)
	assert.Equal(t, binder.LocalObject(locals[0]), resp)
	assert.Equal(t, binder.LocalObject(locals[1]), ind)
	assert.Equal(t, radio.V1_4.Iface(radio.IRadioResponse), locals[0].Iface())
}

func TestResponseDispatch(t *testing.T) {
	sm := bindertest.NewServiceManager()
	remote := sm.AddService(radio.FQName(radio.V1_2, "slot1"))
	var infos []radio.ResponseInfo
	var acks []int32
	inst, err := radio.NewInstance(sm, "slot1", radio.MaxVersion, radio.Handlers{
		Response: func(code uint32, info radio.ResponseInfo, r *hidl.Reader) bool {
			infos = append(infos, info)
			return code == radio.RespSetRadioPower
		},
		Ack: func(serial int32) { acks = append(acks, serial) },
	})
	if !assert.NoError(t, err) {
		return
	}
	defer inst.Close()
	resp := sm.Locals()[0]

	st := resp.Deliver(radio.V1_0.Iface(radio.IRadioResponse), radio.RespSetRadioPower,
		responseParcel(radio.RespSolicited, 5, radio.ErrorNone))
	assert.Equal(t, binder.StatusOK, st)
	assert.Equal(t, []radio.ResponseInfo{{Type: radio.RespSolicited, Serial: 5}}, infos)

	// Unhandled ACK_EXP responses are acknowledged right away.
	n := len(remote.Transactions())
	resp.Deliver(radio.V1_2.Iface(radio.IRadioResponse), radio.RespGetMute,
		responseParcel(radio.RespSolicitedAckExp, 6, radio.ErrorNone))
	txs := remote.Transactions()
	if assert.Len(t, txs, n+1) {
		assert.Equal(t, radio.ReqResponseAcknowledgement, txs[n].Code)
		assert.Equal(t, binder.FlagOneway, txs[n].Flags)
	}

	w := hidl.NewWriter()
	w.AppendInt32(42)
	resp.Deliver(radio.V1_2.Iface(radio.IRadioResponse), radio.RespAcknowledgeRequest, w.Parcel())
	assert.Equal(t, []int32{42}, acks)

	// Interfaces above the negotiated revision are refused.
	st = resp.Deliver(radio.V1_4.Iface(radio.IRadioResponse), radio.RespSetRadioPower,
		responseParcel(radio.RespSolicited, 7, radio.ErrorNone))
	assert.Equal(t, binder.StatusFailed, st)
	assert.Len(t, infos, 2)
}

func TestIndicationDispatch(t *testing.T) {
	sm := bindertest.NewServiceManager()
	remote := sm.AddService(radio.FQName(radio.V1_0, "slot1"))
	var got []radio.IndType
	inst, err := radio.NewInstance(sm, "slot1", radio.MaxVersion, radio.Handlers{
		Indication: func(code uint32, typ radio.IndType, r *hidl.Reader) bool {
			got = append(got, typ)
			v, err := r.ReadInt32()
			return err == nil && v == 10
		},
	})
	if !assert.NoError(t, err) {
		return
	}
	defer inst.Close()
	ind := sm.Locals()[1]

	w := hidl.NewWriter()
	w.AppendUint32(uint32(radio.IndAckExp))
	w.AppendInt32(10)
	n := len(remote.Transactions())
	assert.Equal(t, binder.StatusOK, ind.Deliver(radio.V1_0.Iface(radio.IRadioIndication), radio.IndRadioStateChanged, w.Parcel()))
	assert.Len(t, remote.Transactions(), n)

	w = hidl.NewWriter()
	w.AppendUint32(uint32(radio.IndAckExp))
	ind.Deliver(radio.V1_0.Iface(radio.IRadioIndication), radio.IndRadioStateChanged, w.Parcel())
	tx, _ := remote.Last()
	assert.Equal(t, radio.ReqResponseAcknowledgement, tx.Code)
	assert.Equal(t, []radio.IndType{radio.IndAckExp, radio.IndAckExp}, got)

	assert.Equal(t, binder.StatusFailed, ind.Deliver(radio.IOemHookIndication, 1, w.Parcel()))
}

func TestDeathAndClose(t *testing.T) {
	sm := bindertest.NewServiceManager()
	remote := sm.AddService(radio.FQName(radio.V1_4, "slot1"))
	deaths := 0
	inst, err := radio.NewInstance(sm, "slot1", radio.MaxVersion, radio.Handlers{
		Death: func() { deaths++ },
	})
	if !assert.NoError(t, err) {
		return
	}
	inst.SetEnabled(true)
	assert.True(t, inst.Enabled())

	remote.Kill()
	remote.Kill()
	assert.Equal(t, 1, deaths)
	assert.True(t, inst.Dead())
	for _, l := range sm.Locals() {
		assert.True(t, l.Dropped())
	}
	assert.Equal(t, radio.ErrClosed, inst.Send(radio.ReqGetMute, nil))
	inst.Close()
	inst.Close()
	assert.Equal(t, 1, deaths)
}

func TestSetResponseFunctionsFailure(t *testing.T) {
	sm := bindertest.NewServiceManager()
	remote := sm.AddService(radio.FQName(radio.V1_0, "slot1"))
	remote.Fail = binder.ErrDead
	_, err := radio.NewInstance(sm, "slot1", radio.V1_0, radio.Handlers{})
	assert.Error(t, err)
	for _, l := range sm.Locals() {
		assert.True(t, l.Dropped())
	}
}

func TestPrefNetOf(t *testing.T) {
	cases := []struct {
		raf  radio.Raf
		want int32
	}{
		{radio.RafOf(radio.TechGSM), radio.PrefNetGsmOnly},
		{radio.RafOf(radio.TechGSM) | radio.RafOf(radio.TechUMTS), radio.PrefNetGsmWcdma},
		{radio.RafOf(radio.TechLTE) | radio.RafOf(radio.TechUMTS) | radio.RafOf(radio.TechGPRS), radio.PrefNetLteGsmWcdma},
		{radio.RafOf(radio.TechLTE) | radio.RafOf(radio.TechHSPA), radio.PrefNetLteWcdma},
		{radio.RafOf(radio.TechLTE), radio.PrefNetLteOnly},
		{0, radio.PrefNetGsmOnly},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, radio.PrefNetOf(c.raf), "raf %#x", c.raf)
	}
}
