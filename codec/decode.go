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
	"encoding/hex"
	"strings"

	"github.com/henrylee2cn/goutil/errors"
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/wire"
)

func init() {
	for name, dec := range map[string]Decoder{
		"int32":                      DecodeInt32,
		"int_1":                      DecodeInt1,
		"int_2":                      DecodeInt2,
		"bool_to_int_array":          DecodeBoolToIntArray,
		"string":                     DecodeString,
		"string_3":                   DecodeString3,
		"int_array":                  DecodeIntArray,
		"byte_array":                 DecodeByteArray,
		"byte_array_to_hex":          DecodeByteArrayToHex,
		"icc_card_status_1_0":        DecodeIccCardStatus,
		"icc_card_status_1_2":        DecodeIccCardStatus12,
		"icc_card_status_1_4":        DecodeIccCardStatus14,
		"voice_reg_state":            DecodeVoiceRegState,
		"voice_reg_state_1_2":        DecodeVoiceRegState12,
		"data_reg_state":             DecodeDataRegState,
		"data_reg_state_1_2":         DecodeDataRegState12,
		"data_reg_state_1_4":         DecodeDataRegState14,
		"ims_registration_state":     DecodeImsRegistrationState,
		"call_list":                  DecodeCallList,
		"call_list_1_2":              DecodeCallList12,
		"last_call_fail_cause":       DecodeLastCallFailCause,
		"call_waiting":               DecodeCallWaiting,
		"call_forward_info_array":    DecodeCallForwardInfoArray,
		"operator_info_list":         DecodeOperatorInfoList,
		"pref_network_type":          DecodeInt1,
		"pref_network_type_bitmap":   DecodePrefNetworkTypeBitmap,
		"sms_send_result":            DecodeSmsSendResult,
		"icc_io_result":              DecodeIccIoResult,
		"gsm_broadcast_sms_config":   DecodeGsmBroadcastSmsConfig,
		"icc_open_logical_channel":   DecodeIccOpenLogicalChannel,
		"device_identity":            DecodeDeviceIdentity,
		"radio_capability":           DecodeRadioCapability,
		"ussd":                       DecodeUssd,
		"supp_svc_notification":      DecodeSuppSvcNotification,
		"sim_refresh":                DecodeSimRefresh,
		"data_call_list":             DecodeDataCallList,
		"data_call_list_1_4":         DecodeDataCallList14,
		"setup_data_call_result":     DecodeSetupDataCallResult,
		"setup_data_call_result_1_4": DecodeSetupDataCallResult14,
		"signal_strength":            DecodeSignalStrength,
		"signal_strength_1_2":        DecodeSignalStrength12,
		"signal_strength_1_4":        DecodeSignalStrength14,
		"cell_info_list":             DecodeCellInfoList,
		"cell_info_list_1_2":         DecodeCellInfoList12,
		"cell_info_list_1_4":         DecodeCellInfoList14,
	} {
		RegDecoder(name, dec)
	}
}

// DataCallVersion is the RIL_Data_Call_Response version of data call lists.
const DataCallVersion = 11

// CellInvalidValue replaces cell identity numbers that do not parse.
const CellInvalidValue = 0x7fffffff

// ErrNoIdentity is returned when a device identity carries no value at all.
var ErrNoIdentity = errors.New("codec: empty device identity")

// DecodeInt32 copies one int32.
func DecodeInt32(r *hidl.Reader, out *wire.Writer) error {
	v, err := r.ReadInt32()
	if err != nil {
		return err
	}
	out.AppendInt32(v)
	return nil
}

// DecodeInt1 writes one int32 as an int array.
func DecodeInt1(r *hidl.Reader, out *wire.Writer) error {
	v, err := r.ReadInt32()
	if err != nil {
		return err
	}
	out.AppendInt32s(v)
	return nil
}

// DecodeInt2 writes two int32 values as an int array.
func DecodeInt2(r *hidl.Reader, out *wire.Writer) error {
	v1, err := r.ReadInt32()
	if err != nil {
		return err
	}
	v2, err := r.ReadInt32()
	if err != nil {
		return err
	}
	out.AppendInt32s(v1, v2)
	return nil
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// DecodeBoolToIntArray writes a bool as a one element int array.
func DecodeBoolToIntArray(r *hidl.Reader, out *wire.Writer) error {
	v, err := r.ReadBool()
	if err != nil {
		return err
	}
	out.AppendInt32s(boolInt(v))
	return nil
}

// DecodeString copies one string.
func DecodeString(r *hidl.Reader, out *wire.Writer) error {
	s, err := r.ReadString()
	if err != nil {
		return err
	}
	out.AppendUtf8(s)
	return nil
}

// DecodeString3 writes three strings as a string array.
func DecodeString3(r *hidl.Reader, out *wire.Writer) error {
	var v [3]string
	for i := range v {
		s, err := r.ReadString()
		if err != nil {
			return err
		}
		v[i] = s
	}
	out.AppendInt32(int32(len(v)))
	for _, s := range v {
		out.AppendUtf8(s)
	}
	return nil
}

// DecodeIntArray writes vec<int32_t> as an int array.
func DecodeIntArray(r *hidl.Reader, out *wire.Writer) error {
	v, err := r.ReadInt32Vec()
	if err != nil {
		return err
	}
	out.AppendInt32s(v...)
	return nil
}

// DecodeByteArray copies the raw bytes of vec<uint8_t>.
func DecodeByteArray(r *hidl.Reader, out *wire.Writer) error {
	b, err := r.ReadByteVec()
	if err != nil {
		return err
	}
	out.AppendBytes(b)
	return nil
}

// DecodeByteArrayToHex writes vec<uint8_t> as an upper case hex string.
func DecodeByteArrayToHex(r *hidl.Reader, out *wire.Writer) error {
	b, err := r.ReadByteVec()
	if err != nil {
		return err
	}
	out.AppendUtf8(strings.ToUpper(hex.EncodeToString(b)))
	return nil
}

func writeCardStatus(card *hidl.Struct, out *wire.Writer) {
	apps := card.Structs("applications")
	out.AppendInt32(card.Int32("cardState"))
	out.AppendInt32(card.Int32("universalPinState"))
	out.AppendInt32(card.Int32("gsmUmtsSubscriptionAppIndex"))
	out.AppendInt32(card.Int32("cdmaSubscriptionAppIndex"))
	out.AppendInt32(card.Int32("imsSubscriptionAppIndex"))
	out.AppendInt32(int32(len(apps)))
	for _, app := range apps {
		out.AppendInt32(app.Int32("appType"))
		out.AppendInt32(app.Int32("appState"))
		out.AppendInt32(app.Int32("persoSubstate"))
		out.AppendUtf8(app.Str("aidPtr"))
		out.AppendUtf8(app.Str("appLabelPtr"))
		out.AppendInt32(app.Int32("pin1Replaced"))
		out.AppendInt32(app.Int32("pin1"))
		out.AppendInt32(app.Int32("pin2"))
	}
}

// DecodeIccCardStatus writes a CardStatus as RIL_CardStatus_v6.
func DecodeIccCardStatus(r *hidl.Reader, out *wire.Writer) error {
	card, err := r.ReadStruct(radio.CardStatusShape)
	if err != nil {
		return err
	}
	writeCardStatus(card, out)
	return nil
}

// DecodeIccCardStatus12 projects CardStatus_1_2 onto RIL_CardStatus_v6.
func DecodeIccCardStatus12(r *hidl.Reader, out *wire.Writer) error {
	card, err := r.ReadStruct(radio.CardStatus12Shape)
	if err != nil {
		return err
	}
	writeCardStatus(card.Struct("base"), out)
	return nil
}

// DecodeIccCardStatus14 projects CardStatus_1_4 onto RIL_CardStatus_v6.
func DecodeIccCardStatus14(r *hidl.Reader, out *wire.Writer) error {
	card, err := r.ReadStruct(radio.CardStatus14Shape)
	if err != nil {
		return err
	}
	writeCardStatus(card.Struct("base").Struct("base"), out)
	return nil
}

func writeVoiceRegState(reg *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(5)
	out.AppendFormat("%d", reg.Int32("regState"))
	out.AppendUtf8("") // lac
	out.AppendUtf8("") // cid
	out.AppendFormat("%d", reg.Int32("rat"))
	out.AppendFormat("%d", reg.Int32("reasonForDenial"))
}

func writeDataRegState(reg *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(6)
	out.AppendFormat("%d", reg.Int32("regState"))
	out.AppendUtf8("") // lac
	out.AppendUtf8("") // cid
	out.AppendFormat("%d", reg.Int32("rat"))
	out.AppendFormat("%d", reg.Int32("reasonDataDenied"))
	out.AppendFormat("%d", reg.Int32("maxDataCalls"))
}

func regStateDecoder(shape *hidl.Shape, base bool, write func(*hidl.Struct, *wire.Writer)) Decoder {
	return func(r *hidl.Reader, out *wire.Writer) error {
		reg, err := r.ReadStruct(shape)
		if err != nil {
			return err
		}
		if base {
			reg = reg.Struct("base")
		}
		write(reg, out)
		return nil
	}
}

// Registration state decoders. The legacy reply is an array of strings.
var (
	DecodeVoiceRegState   = regStateDecoder(radio.VoiceRegStateResultShape, false, writeVoiceRegState)
	DecodeVoiceRegState12 = regStateDecoder(radio.VoiceRegStateResult12Shape, false, writeVoiceRegState)
	DecodeDataRegState    = regStateDecoder(radio.DataRegStateResultShape, false, writeDataRegState)
	DecodeDataRegState12  = regStateDecoder(radio.DataRegStateResult12Shape, false, writeDataRegState)
	DecodeDataRegState14  = regStateDecoder(radio.DataRegStateResult14Shape, true, writeDataRegState)
)

// DecodeImsRegistrationState writes (isRegistered, ratFamily).
func DecodeImsRegistrationState(r *hidl.Reader, out *wire.Writer) error {
	reg, err := r.ReadBool()
	if err != nil {
		return err
	}
	family, err := r.ReadInt32()
	if err != nil {
		return err
	}
	out.AppendInt32s(boolInt(reg), family)
	return nil
}

func writeCall(call *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(call.Int32("state"))
	out.AppendInt32(call.Int32("index"))
	out.AppendInt32(call.Int32("toa"))
	out.AppendInt32(call.Int32("isMpty"))
	out.AppendInt32(call.Int32("isMT"))
	out.AppendInt32(call.Int32("als"))
	out.AppendInt32(call.Int32("isVoice"))
	out.AppendInt32(call.Int32("isVoicePrivacy"))
	out.AppendUtf8(call.Str("number"))
	out.AppendInt32(call.Int32("numberPresentation"))
	out.AppendUtf8(call.Str("name"))
	out.AppendInt32(call.Int32("namePresentation"))
	out.AppendInt32(0) // uusInfo
}

// DecodeCallList writes vec<Call> as a list of RIL_Call.
func DecodeCallList(r *hidl.Reader, out *wire.Writer) error {
	calls, err := r.ReadStructVec(radio.CallShape)
	if err != nil {
		return err
	}
	out.AppendInt32(int32(len(calls)))
	for _, call := range calls {
		writeCall(call, out)
	}
	return nil
}

// DecodeCallList12 writes vec<Call_1_2>, dropping the audio quality.
func DecodeCallList12(r *hidl.Reader, out *wire.Writer) error {
	calls, err := r.ReadStructVec(radio.Call12Shape)
	if err != nil {
		return err
	}
	out.AppendInt32(int32(len(calls)))
	for _, call := range calls {
		writeCall(call.Struct("base"), out)
	}
	return nil
}

// DecodeLastCallFailCause writes (causeCode, vendorCause).
func DecodeLastCallFailCause(r *hidl.Reader, out *wire.Writer) error {
	info, err := r.ReadStruct(radio.LastCallFailCauseInfoShape)
	if err != nil {
		return err
	}
	out.AppendInt32(info.Int32("causeCode"))
	out.AppendUtf8(info.Str("vendorCause"))
	return nil
}

// DecodeCallWaiting writes (enable, serviceClass) as an int array.
func DecodeCallWaiting(r *hidl.Reader, out *wire.Writer) error {
	enable, err := r.ReadBool()
	if err != nil {
		return err
	}
	class, err := r.ReadInt32()
	if err != nil {
		return err
	}
	out.AppendInt32s(boolInt(enable), class)
	return nil
}

// DecodeCallForwardInfoArray writes vec<CallForwardInfo>.
func DecodeCallForwardInfoArray(r *hidl.Reader, out *wire.Writer) error {
	infos, err := r.ReadStructVec(radio.CallForwardInfoShape)
	if err != nil {
		return err
	}
	out.AppendInt32(int32(len(infos)))
	for _, info := range infos {
		out.AppendInt32(info.Int32("status"))
		out.AppendInt32(info.Int32("reason"))
		out.AppendInt32(info.Int32("serviceClass"))
		out.AppendInt32(info.Int32("toa"))
		out.AppendUtf8(info.Str("number"))
		out.AppendInt32(info.Int32("timeSeconds"))
	}
	return nil
}

// OperatorStatusName returns the legacy name of an operator status.
func OperatorStatusName(status int32) string {
	switch status {
	case radio.OperatorAvailable:
		return "available"
	case radio.OperatorCurrent:
		return "current"
	case radio.OperatorForbidden:
		return "forbidden"
	}
	return "unknown"
}

// DecodeOperatorInfoList writes four strings per operator.
func DecodeOperatorInfoList(r *hidl.Reader, out *wire.Writer) error {
	ops, err := r.ReadStructVec(radio.OperatorInfoShape)
	if err != nil {
		return err
	}
	out.AppendInt32(int32(4 * len(ops)))
	for _, op := range ops {
		out.AppendUtf8(op.Str("alphaLong"))
		out.AppendUtf8(op.Str("alphaShort"))
		out.AppendUtf8(op.Str("operatorNumeric"))
		out.AppendUtf8(OperatorStatusName(op.Int32("status")))
	}
	return nil
}

// DecodePrefNetworkTypeBitmap projects an access family bitmap onto a
// legacy preferred network type.
func DecodePrefNetworkTypeBitmap(r *hidl.Reader, out *wire.Writer) error {
	raf, err := r.ReadUint32()
	if err != nil {
		return err
	}
	out.AppendInt32s(radio.PrefNetOf(radio.Raf(raf)))
	return nil
}

// DecodeSmsSendResult writes (messageRef, ackPDU, errorCode).
func DecodeSmsSendResult(r *hidl.Reader, out *wire.Writer) error {
	res, err := r.ReadStruct(radio.SendSmsResultShape)
	if err != nil {
		return err
	}
	out.AppendInt32(res.Int32("messageRef"))
	out.AppendUtf8(res.Str("ackPDU"))
	out.AppendInt32(res.Int32("errorCode"))
	return nil
}

// DecodeIccIoResult writes (sw1, sw2, response).
func DecodeIccIoResult(r *hidl.Reader, out *wire.Writer) error {
	res, err := r.ReadStruct(radio.IccIoResultShape)
	if err != nil {
		return err
	}
	out.AppendInt32(res.Int32("sw1"))
	out.AppendInt32(res.Int32("sw2"))
	out.AppendUtf8(res.Str("simResponse"))
	return nil
}

// DecodeGsmBroadcastSmsConfig writes five ints per config.
func DecodeGsmBroadcastSmsConfig(r *hidl.Reader, out *wire.Writer) error {
	configs, err := r.ReadStructVec(radio.GsmBroadcastSmsConfigInfoShape)
	if err != nil {
		return err
	}
	out.AppendInt32(int32(len(configs)))
	for _, c := range configs {
		out.AppendInt32(c.Int32("fromServiceId"))
		out.AppendInt32(c.Int32("toServiceId"))
		out.AppendInt32(c.Int32("fromCodeScheme"))
		out.AppendInt32(c.Int32("toCodeScheme"))
		out.AppendInt32(c.Int32("selected"))
	}
	return nil
}

// DecodeIccOpenLogicalChannel writes the channel id. The select response
// that follows it is not forwarded.
func DecodeIccOpenLogicalChannel(r *hidl.Reader, out *wire.Writer) error {
	ch, err := r.ReadUint32()
	if err != nil {
		return err
	}
	out.AppendInt32s(int32(ch))
	return nil
}

// DecodeDeviceIdentity writes (imei, imeisv, esn, meid). Values that can
// not be read are written as null. It fails only if none can be read.
func DecodeDeviceIdentity(r *hidl.Reader, out *wire.Writer) error {
	var (
		ids   [4]*string
		found bool
	)
	for i := range ids {
		if s, err := r.ReadString(); err == nil {
			ids[i] = &s
			found = true
		}
	}
	if !found {
		return ErrNoIdentity
	}
	out.AppendInt32(int32(len(ids)))
	for _, s := range ids {
		out.AppendNullableUtf8(s)
	}
	return nil
}

// DecodeRadioCapability writes RIL_RadioCapability.
func DecodeRadioCapability(r *hidl.Reader, out *wire.Writer) error {
	rc, err := r.ReadStruct(radio.RadioCapabilityShape)
	if err != nil {
		return err
	}
	out.AppendInt32(1) // RIL_RADIO_CAPABILITY_VERSION
	out.AppendInt32(rc.Int32("session"))
	out.AppendInt32(rc.Int32("phase"))
	out.AppendInt32(rc.Int32("raf"))
	out.AppendUtf8(rc.Str("logicalModemUuid"))
	out.AppendInt32(rc.Int32("status"))
	return nil
}

// DecodeUssd writes (mode, message) as a string array. A message that
// can not be read is written as null.
func DecodeUssd(r *hidl.Reader, out *wire.Writer) error {
	code, err := r.ReadUint32()
	if err != nil {
		return err
	}
	var msg *string
	if s, err := r.ReadString(); err == nil {
		msg = &s
	}
	out.AppendInt32(2)
	out.AppendFormat("%d", code)
	out.AppendNullableUtf8(msg)
	return nil
}

// DecodeSuppSvcNotification writes RIL_SuppSvcNotification.
func DecodeSuppSvcNotification(r *hidl.Reader, out *wire.Writer) error {
	n, err := r.ReadStruct(radio.SuppSvcNotificationShape)
	if err != nil {
		return err
	}
	out.AppendInt32(n.Int32("isMT"))
	out.AppendInt32(n.Int32("code"))
	out.AppendInt32(n.Int32("index"))
	out.AppendInt32(n.Int32("type"))
	out.AppendUtf8(n.Str("number"))
	return nil
}

// DecodeSimRefresh writes RIL_SimRefreshResponse_v7.
func DecodeSimRefresh(r *hidl.Reader, out *wire.Writer) error {
	res, err := r.ReadStruct(radio.SimRefreshResultShape)
	if err != nil {
		return err
	}
	out.AppendInt32(res.Int32("type"))
	out.AppendInt32(res.Int32("efId"))
	out.AppendUtf8(res.Str("aid"))
	return nil
}

func writeDataCall(call *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(call.Int32("status"))
	out.AppendInt32(call.Int32("suggestedRetryTime"))
	out.AppendInt32(call.Int32("cid"))
	out.AppendInt32(call.Int32("active"))
	out.AppendUtf8(call.Str("type"))
	out.AppendUtf8(call.Str("ifname"))
	out.AppendUtf8(call.Str("addresses"))
	out.AppendUtf8(call.Str("dnses"))
	out.AppendUtf8(call.Str("gateways"))
	out.AppendUtf8(call.Str("pcscf"))
	out.AppendInt32(call.Int32("mtu"))
}

func writeDataCall14(call *hidl.Struct, out *wire.Writer) {
	out.AppendInt32(call.Int32("cause"))
	out.AppendInt32(call.Int32("suggestedRetryTime"))
	out.AppendInt32(call.Int32("cid"))
	out.AppendInt32(call.Int32("active"))
	if name := radio.PdpProtocolName(call.Int32("type")); name != "" {
		out.AppendUtf8(name)
	} else {
		out.AppendNullableUtf8(nil)
	}
	out.AppendUtf8(call.Str("ifname"))
	out.AppendUtf8(strings.Join(call.Strings("addresses"), " "))
	out.AppendUtf8(strings.Join(call.Strings("dnses"), " "))
	out.AppendUtf8(strings.Join(call.Strings("gateways"), " "))
	out.AppendUtf8(strings.Join(call.Strings("pcscf"), " "))
	out.AppendInt32(call.Int32("mtu"))
}

// DecodeDataCallList writes vec<SetupDataCallResult> as
// RIL_Data_Call_Response_v11 list.
func DecodeDataCallList(r *hidl.Reader, out *wire.Writer) error {
	calls, err := r.ReadStructVec(radio.SetupDataCallResultShape)
	if err != nil {
		return err
	}
	out.AppendInt32(DataCallVersion)
	out.AppendInt32(int32(len(calls)))
	for _, call := range calls {
		writeDataCall(call, out)
	}
	return nil
}

// DecodeDataCallList14 writes vec<SetupDataCallResult_1_4>. Address
// lists are joined with spaces.
func DecodeDataCallList14(r *hidl.Reader, out *wire.Writer) error {
	calls, err := r.ReadStructVec(radio.SetupDataCallResult14Shape)
	if err != nil {
		return err
	}
	out.AppendInt32(DataCallVersion)
	out.AppendInt32(int32(len(calls)))
	for _, call := range calls {
		writeDataCall14(call, out)
	}
	return nil
}

// DecodeSetupDataCallResult writes a single element data call list.
func DecodeSetupDataCallResult(r *hidl.Reader, out *wire.Writer) error {
	call, err := r.ReadStruct(radio.SetupDataCallResultShape)
	if err != nil {
		return err
	}
	out.AppendInt32(DataCallVersion)
	out.AppendInt32(1)
	writeDataCall(call, out)
	return nil
}

// DecodeSetupDataCallResult14 writes a single element data call list.
func DecodeSetupDataCallResult14(r *hidl.Reader, out *wire.Writer) error {
	call, err := r.ReadStruct(radio.SetupDataCallResult14Shape)
	if err != nil {
		return err
	}
	out.AppendInt32(DataCallVersion)
	out.AppendInt32(1)
	writeDataCall14(call, out)
	return nil
}
