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

package codec

import (
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/ril"
	"github.com/henrylee2cn/rilbinder/wire"
)

func init() {
	for name, enc := range map[string]Encoder{
		"serial":                            EncodeSerial,
		"int":                               EncodeInt,
		"bool":                              EncodeBool,
		"ints":                              EncodeInts,
		"string":                            EncodeString,
		"strings":                           EncodeStrings,
		"ints_to_bool_int":                  EncodeIntsToBoolInt,
		"deactivate_data_call":              EncodeDeactivateDataCall,
		"deactivate_data_call_1_2":          EncodeDeactivateDataCall12,
		"dial":                              EncodeDial,
		"gsm_sms_message":                   EncodeGsmSmsMessage,
		"setup_data_call":                   EncodeSetupDataCall,
		"setup_data_call_1_2":               EncodeSetupDataCall12,
		"setup_data_call_1_4":               EncodeSetupDataCall14,
		"sms_write_args":                    EncodeSmsWriteArgs,
		"icc_io":                            EncodeIccIo,
		"call_forward_info":                 EncodeCallForwardInfo,
		"get_facility_lock":                 EncodeGetFacilityLock,
		"set_facility_lock":                 EncodeSetFacilityLock,
		"screen_state":                      EncodeScreenState,
		"device_state":                      EncodeDeviceState,
		"gsm_broadcast_sms_config":          EncodeGsmBroadcastSmsConfig,
		"uicc_sub":                          EncodeUiccSub,
		"initial_attach_apn":                EncodeInitialAttachApn,
		"data_profiles":                     EncodeDataProfiles,
		"radio_capability":                  EncodeRadioCapability,
		"icc_open_logical_channel":          EncodeIccOpenLogicalChannel,
		"icc_transmit_apdu_logical_channel": EncodeIccTransmitApduLogicalChannel,
	} {
		RegEncoder(name, enc)
	}
}

// EncodeSerial writes the serial only.
func EncodeSerial(serial int32, _ *wire.Parser, w *hidl.Writer) error {
	w.AppendInt32(serial)
	return nil
}

// EncodeInt reads one bare int32, with no count in front of it.
func EncodeInt(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	v := a.int32()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendInt32(v)
	return nil
}

// EncodeBool reads an int array of one element and writes it as a bool.
func EncodeBool(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.count(1)
	v := a.int32()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendBool(v != 0)
	return nil
}

// EncodeInts writes every element of an int array.
func EncodeInts(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	n := a.int32()
	if a.ok() && n < 0 {
		a.fail(ErrBadCount)
	}
	var v []int32
	for i := int32(0); i < n && a.ok(); i++ {
		v = append(v, a.int32())
	}
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	for _, i := range v {
		w.AppendInt32(i)
	}
	return nil
}

// EncodeString writes one non-null string.
func EncodeString(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	s := a.str()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendString(s)
	return nil
}

// EncodeStrings writes every element of a string array, null as "".
func EncodeStrings(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	n := a.int32()
	if a.ok() && n < 0 {
		a.fail(ErrBadCount)
	}
	var v []string
	for i := int32(0); i < n && a.ok(); i++ {
		v = append(v, deref(a.nullable()))
	}
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	for _, s := range v {
		w.AppendString(s)
	}
	return nil
}

// EncodeIntsToBoolInt writes a two element int array as (bool, int32).
func EncodeIntsToBoolInt(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.count(2)
	v1, v2 := a.int32(), a.int32()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendBool(v1 != 0)
	w.AppendInt32(v2)
	return nil
}

// deactivateArgs reads the (cid, reason) string pair.
func deactivateArgs(p *wire.Parser) (cid, reason int32, err error) {
	a := newArgs(p)
	a.count(2)
	cidStr, reasonStr := a.str(), a.str()
	cid = a.intOf(&cidStr)
	reason = a.intOf(&reasonStr)
	return cid, reason, a.done()
}

// EncodeDeactivateDataCall writes (cid, bool reasonRadioShutDown).
func EncodeDeactivateDataCall(serial int32, p *wire.Parser, w *hidl.Writer) error {
	cid, reason, err := deactivateArgs(p)
	if err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendInt32(cid)
	w.AppendBool(reason != 0)
	return nil
}

// DeactivateReason maps a legacy deactivate reason to DataRequestReason.
func DeactivateReason(reason int32) int32 {
	switch reason {
	case 0:
		return radio.DataRequestReasonNormal
	case 1:
		return radio.DataRequestReasonShutdown
	}
	return radio.DataRequestReasonHandover
}

// EncodeDeactivateDataCall12 writes (cid, DataRequestReason).
func EncodeDeactivateDataCall12(serial int32, p *wire.Parser, w *hidl.Writer) error {
	cid, reason, err := deactivateArgs(p)
	if err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendInt32(cid)
	w.AppendInt32(DeactivateReason(reason))
	return nil
}

// EncodeDial writes a Dial struct. User-to-user information is dropped.
func EncodeDial(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	number := a.str()
	clir := a.int32()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(hidl.NewStruct(radio.DialShape).
		SetStr("address", number).
		SetInt("clir", int64(clir)))
	return nil
}

// EncodeGsmSmsMessage writes a GsmSmsMessage from (smsc, pdu).
func EncodeGsmSmsMessage(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.count(2)
	smsc := a.nullable()
	pdu := a.str()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(hidl.NewStruct(radio.GsmSmsMessageShape).
		SetStr("smscPdu", deref(smsc)).
		SetStr("pdu", pdu))
	return nil
}

// setupArgs are the seven strings of SETUP_DATA_CALL.
type setupArgs struct {
	tech      radio.Tech
	profileID int32
	apn       string
	user      string
	password  string
	auth      int32
	proto     string
}

func readSetupArgs(p *wire.Parser) (*setupArgs, error) {
	a := newArgs(p)
	a.count(7)
	s := new(setupArgs)
	techStr := a.str()
	tech := a.intOf(&techStr)
	profileStr := a.str()
	s.profileID = a.intOf(&profileStr)
	s.apn = a.str()
	s.user = a.str()
	s.password = a.str()
	authStr := a.str()
	s.auth = a.intOf(&authStr)
	s.proto = a.str()
	if err := a.done(); err != nil {
		return nil, err
	}
	if tech > ril.TechOffsetThreshold {
		tech -= ril.TechOffset
	}
	s.tech = radio.Tech(tech)
	return s, nil
}

func (s *setupArgs) profile() *hidl.Struct {
	return hidl.NewStruct(radio.DataProfileInfoShape).
		SetInt("profileId", int64(s.profileID)).
		SetStr("apn", s.apn).
		SetStr("protocol", s.proto).
		SetStr("roamingProtocol", s.proto).
		SetInt("authType", int64(s.auth)).
		SetStr("user", s.user).
		SetStr("password", s.password).
		SetBool("enabled", true).
		SetInt("supportedApnTypesBitmap", int64(radio.ApnTypesOf(s.profileID)))
}

func (s *setupArgs) profile14() *hidl.Struct {
	proto := radio.PdpProtocolOf(s.proto)
	return hidl.NewStruct(radio.DataProfileInfo14Shape).
		SetInt("profileId", int64(s.profileID)).
		SetStr("apn", s.apn).
		SetInt("protocol", int64(proto)).
		SetInt("roamingProtocol", int64(proto)).
		SetInt("authType", int64(s.auth)).
		SetStr("user", s.user).
		SetStr("password", s.password).
		SetBool("enabled", true).
		SetInt("supportedApnTypesBitmap", int64(radio.ApnTypesOf(s.profileID))).
		SetBool("preferred", true)
}

// EncodeSetupDataCall writes (tech, DataProfileInfo, modemCognitive,
// roamingAllowed, isRoaming).
func EncodeSetupDataCall(serial int32, p *wire.Parser, w *hidl.Writer) error {
	s, err := readSetupArgs(p)
	if err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendInt32(int32(s.tech))
	w.AppendStruct(s.profile())
	w.AppendBool(false)
	w.AppendBool(true)
	w.AppendBool(false)
	return nil
}

// EncodeSetupDataCall12 writes the @1.2 arguments, addressed by access
// network and carrying a NORMAL request reason.
func EncodeSetupDataCall12(serial int32, p *wire.Parser, w *hidl.Writer) error {
	s, err := readSetupArgs(p)
	if err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendInt32(int32(radio.AccessNetworkOf(s.tech)))
	w.AppendStruct(s.profile())
	w.AppendBool(false)
	w.AppendBool(true)
	w.AppendBool(false)
	w.AppendInt32(radio.DataRequestReasonNormal)
	w.AppendStringVec(nil)
	w.AppendStringVec(nil)
	return nil
}

// EncodeSetupDataCall14 writes the @1.4 arguments.
func EncodeSetupDataCall14(serial int32, p *wire.Parser, w *hidl.Writer) error {
	s, err := readSetupArgs(p)
	if err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendInt32(int32(radio.AccessNetworkOf(s.tech)))
	w.AppendStruct(s.profile14())
	w.AppendBool(true)
	w.AppendInt32(radio.DataRequestReasonNormal)
	w.AppendStringVec(nil)
	w.AppendStringVec(nil)
	return nil
}

// EncodeSmsWriteArgs writes SmsWriteArgs from (status, pdu, smsc).
func EncodeSmsWriteArgs(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	status := a.int32()
	pdu := a.str()
	smsc := a.nullable()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(hidl.NewStruct(radio.SmsWriteArgsShape).
		SetInt("status", int64(status)).
		SetStr("pdu", pdu).
		SetStr("smsc", deref(smsc)))
	return nil
}

// EncodeIccIo writes an IccIo struct.
func EncodeIccIo(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	io := hidl.NewStruct(radio.IccIoShape)
	io.SetInt("command", int64(a.int32()))
	io.SetInt("fileId", int64(a.int32()))
	io.SetStr("path", deref(a.nullable()))
	io.SetInt("p1", int64(a.int32()))
	io.SetInt("p2", int64(a.int32()))
	io.SetInt("p3", int64(a.int32()))
	io.SetStr("data", deref(a.nullable()))
	io.SetStr("pin2", deref(a.nullable()))
	io.SetStr("aid", deref(a.nullable()))
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(io)
	return nil
}

// EncodeCallForwardInfo writes a CallForwardInfo struct.
func EncodeCallForwardInfo(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	info := hidl.NewStruct(radio.CallForwardInfoShape)
	info.SetInt("status", int64(a.int32()))
	info.SetInt("reason", int64(a.int32()))
	info.SetInt("serviceClass", int64(a.int32()))
	info.SetInt("toa", int64(a.int32()))
	info.SetStr("number", deref(a.nullable()))
	info.SetInt("timeSeconds", int64(a.int32()))
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(info)
	return nil
}

// EncodeGetFacilityLock writes (facility, password, serviceClass, appId)
// from exactly four strings.
func EncodeGetFacilityLock(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.count(4)
	fac, pwd, cls, aid := a.nullable(), a.nullable(), a.nullable(), a.nullable()
	class := a.intOf(cls)
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendString(deref(fac))
	w.AppendString(deref(pwd))
	w.AppendInt32(class)
	w.AppendString(deref(aid))
	return nil
}

// EncodeSetFacilityLock writes (facility, lockState, password,
// serviceClass, appId) from exactly five strings.
func EncodeSetFacilityLock(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.count(5)
	fac, lock, pwd, cls, aid := a.nullable(), a.nullable(), a.nullable(), a.nullable(), a.nullable()
	lockState := a.intOf(lock)
	class := a.intOf(cls)
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendString(deref(fac))
	w.AppendBool(lockState != 0)
	w.AppendString(deref(pwd))
	w.AppendInt32(class)
	w.AppendString(deref(aid))
	return nil
}

func appendDeviceState(w *hidl.Writer, serial, typ int32, state bool) {
	w.AppendInt32(serial)
	w.AppendInt32(typ)
	w.AppendBool(state)
}

// EncodeScreenState turns SCREEN_STATE into a power save device state,
// enabled while the screen is off.
func EncodeScreenState(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.count(1)
	on := a.int32()
	if err := a.done(); err != nil {
		return err
	}
	appendDeviceState(w, serial, radio.DeviceStatePowerSaveMode, on == 0)
	return nil
}

// EncodeDeviceState writes (DeviceStateType, bool state).
func EncodeDeviceState(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.count(2)
	typ, state := a.int32(), a.int32()
	if err := a.done(); err != nil {
		return err
	}
	appendDeviceState(w, serial, typ, state != 0)
	return nil
}

// EncodeGsmBroadcastSmsConfig writes vec<GsmBroadcastSmsConfigInfo>.
// Five ints per config, nothing may follow.
func EncodeGsmBroadcastSmsConfig(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	n := a.int32()
	if a.ok() && n < 0 {
		a.fail(ErrBadCount)
	}
	var configs []*hidl.Struct
	for i := int32(0); i < n && a.ok(); i++ {
		configs = append(configs, hidl.NewStruct(radio.GsmBroadcastSmsConfigInfoShape).
			SetInt("fromServiceId", int64(a.int32())).
			SetInt("toServiceId", int64(a.int32())).
			SetInt("fromCodeScheme", int64(a.int32())).
			SetInt("toCodeScheme", int64(a.int32())).
			SetInt("selected", int64(uint8(a.int32()))))
	}
	a.atEnd()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStructVec(radio.GsmBroadcastSmsConfigInfoShape, configs)
	return nil
}

// EncodeUiccSub writes a SelectUiccSub struct from four ints.
func EncodeUiccSub(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	sub := hidl.NewStruct(radio.SelectUiccSubShape).
		SetInt("slot", int64(a.int32())).
		SetInt("appIndex", int64(a.int32())).
		SetInt("subType", int64(a.int32())).
		SetInt("actStatus", int64(a.int32()))
	a.atEnd()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(sub)
	return nil
}

// EncodeInitialAttachApn writes (DataProfileInfo, modemCognitive,
// isRoaming) for the initial attach APN.
func EncodeInitialAttachApn(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	apn, proto := a.nullable(), a.nullable()
	auth := a.int32()
	user, password := a.nullable(), a.nullable()
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(hidl.NewStruct(radio.DataProfileInfoShape).
		SetStr("apn", deref(apn)).
		SetStr("protocol", deref(proto)).
		SetStr("roamingProtocol", deref(proto)).
		SetInt("authType", int64(auth)).
		SetStr("user", deref(user)).
		SetStr("password", deref(password)).
		SetBool("enabled", true).
		SetInt("supportedApnTypesBitmap", int64(radio.ApnTypeIa)))
	w.AppendBool(false)
	w.AppendBool(false)
	return nil
}

// EncodeDataProfiles writes (vec<DataProfileInfo>, isRoaming).
func EncodeDataProfiles(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	n := a.uint32()
	var profiles []*hidl.Struct
	for i := uint32(0); i < n && a.ok(); i++ {
		id := a.int32()
		apn, proto := a.nullable(), a.nullable()
		auth := a.int32()
		user, password := a.nullable(), a.nullable()
		dp := hidl.NewStruct(radio.DataProfileInfoShape).
			SetInt("profileId", int64(id)).
			SetStr("apn", deref(apn)).
			SetStr("protocol", deref(proto)).
			SetStr("roamingProtocol", deref(proto)).
			SetInt("authType", int64(auth)).
			SetStr("user", deref(user)).
			SetStr("password", deref(password)).
			SetInt("type", int64(a.int32())).
			SetInt("maxConnsTime", int64(a.int32())).
			SetInt("maxConns", int64(a.int32())).
			SetInt("waitTime", int64(a.int32())).
			SetBool("enabled", a.int32() != 0).
			SetInt("supportedApnTypesBitmap", int64(radio.ApnTypesOf(id)))
		profiles = append(profiles, dp)
	}
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStructVec(radio.DataProfileInfoShape, profiles)
	w.AppendBool(false)
	return nil
}

// EncodeRadioCapability writes a RadioCapability struct. The legacy
// version field is dropped.
func EncodeRadioCapability(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	a.int32()
	rc := hidl.NewStruct(radio.RadioCapabilityShape).
		SetInt("session", int64(a.int32())).
		SetInt("phase", int64(a.int32())).
		SetInt("raf", int64(a.int32())).
		SetStr("logicalModemUuid", a.str()).
		SetInt("status", int64(a.int32()))
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(rc)
	return nil
}

// EncodeIccOpenLogicalChannel writes (aid, p2). p2 is optional.
func EncodeIccOpenLogicalChannel(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	aid := a.str()
	var p2 int32
	if a.ok() && !p.AtEnd() {
		p2 = a.int32()
	}
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendString(aid)
	w.AppendInt32(p2)
	return nil
}

// EncodeIccTransmitApduLogicalChannel writes a SimApdu struct.
func EncodeIccTransmitApduLogicalChannel(serial int32, p *wire.Parser, w *hidl.Writer) error {
	a := newArgs(p)
	apdu := hidl.NewStruct(radio.SimApduShape).
		SetInt("sessionId", int64(a.int32())).
		SetInt("cla", int64(a.int32())).
		SetInt("instruction", int64(a.int32())).
		SetInt("p1", int64(a.int32())).
		SetInt("p2", int64(a.int32())).
		SetInt("p3", int64(a.int32())).
		SetStr("data", deref(a.nullable()))
	if err := a.done(); err != nil {
		return err
	}
	w.AppendInt32(serial)
	w.AppendStruct(apdu)
	return nil
}
