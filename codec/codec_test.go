package codec_test

import (
	"testing"

	"github.com/henrylee2cn/rilbinder/codec"
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/wire"
	"github.com/stretchr/testify/assert"
)

func legacy(f func(w *wire.Writer)) []byte {
	w := wire.NewWriter()
	f(w)
	return w.Bytes()
}

func ints(t *testing.T, b []byte, n int) []int32 {
	p := wire.NewParser(b)
	v := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		x, ok := p.Int32()
		if !assert.True(t, ok, "int #%d", i) {
			return v
		}
		v = append(v, x)
	}
	return v
}

func TestEncodeRadioPower(t *testing.T) {
	p, err := codec.Encode("bool", 7, legacy(func(w *wire.Writer) { w.AppendInt32s(1) }))
	if !assert.NoError(t, err) {
		return
	}
	r := hidl.NewReader(p)
	serial, err := r.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(7), serial)
	on, err := r.ReadBool()
	assert.NoError(t, err)
	assert.True(t, on)
	assert.True(t, r.AtEnd())

	_, err = codec.Encode("bool", 7, legacy(func(w *wire.Writer) { w.AppendInt32s(1, 0) }))
	assert.Equal(t, codec.ErrBadCount, err)
	_, err = codec.Encode("bool", 7, nil)
	assert.Error(t, err)
}

func TestDecodeOperator(t *testing.T) {
	w := hidl.NewWriter()
	for _, s := range []string{"Acme", "ACM", "12345"} {
		w.AppendString(s)
	}
	got, err := codec.Decode("string_3", w.Parcel())
	assert.NoError(t, err)
	assert.Equal(t, legacy(func(w *wire.Writer) {
		w.AppendInt32(3)
		w.AppendUtf8("Acme")
		w.AppendUtf8("ACM")
		w.AppendUtf8("12345")
	}), got)
}

func TestDeactivateDataCall(t *testing.T) {
	req := legacy(func(w *wire.Writer) {
		w.AppendInt32(2)
		w.AppendUtf8("3")
		w.AppendUtf8("1")
	})

	p, err := codec.Encode("deactivate_data_call_1_2", 1, req)
	if !assert.NoError(t, err) {
		return
	}
	r := hidl.NewReader(p)
	r.ReadInt32()
	cid, _ := r.ReadInt32()
	reason, err := r.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(3), cid)
	assert.Equal(t, int32(radio.DataRequestReasonShutdown), reason)

	p, err = codec.Encode("deactivate_data_call", 1, req)
	if !assert.NoError(t, err) {
		return
	}
	r = hidl.NewReader(p)
	r.ReadInt32()
	r.ReadInt32()
	shutdown, err := r.ReadBool()
	assert.NoError(t, err)
	assert.True(t, shutdown)

	assert.Equal(t, int32(radio.DataRequestReasonNormal), codec.DeactivateReason(0))
	assert.Equal(t, int32(radio.DataRequestReasonHandover), codec.DeactivateReason(2))

	_, err = codec.Encode("deactivate_data_call_1_2", 1, legacy(func(w *wire.Writer) {
		w.AppendInt32(2)
		w.AppendUtf8("x")
		w.AppendUtf8("1")
	}))
	assert.Equal(t, codec.ErrNotInt, err)
}

func TestFacilityLockCount(t *testing.T) {
	strs := func(v ...string) []byte {
		return legacy(func(w *wire.Writer) {
			w.AppendInt32(int32(len(v)))
			for _, s := range v {
				w.AppendUtf8(s)
			}
		})
	}
	_, err := codec.Encode("get_facility_lock", 1, strs("SC", "", "7", ""))
	assert.NoError(t, err)
	_, err = codec.Encode("get_facility_lock", 1, strs("SC", "1", "", "7", ""))
	assert.Equal(t, codec.ErrBadCount, err)
	_, err = codec.Encode("set_facility_lock", 1, strs("SC", "", "7", ""))
	assert.Equal(t, codec.ErrBadCount, err)

	p, err := codec.Encode("set_facility_lock", 9, strs("SC", "1", "1234", "7", ""))
	if !assert.NoError(t, err) {
		return
	}
	r := hidl.NewReader(p)
	r.ReadInt32()
	fac, _ := r.ReadString()
	lock, _ := r.ReadBool()
	pwd, _ := r.ReadString()
	class, _ := r.ReadInt32()
	aid, err := r.ReadString()
	assert.NoError(t, err)
	assert.Equal(t, "SC", fac)
	assert.True(t, lock)
	assert.Equal(t, "1234", pwd)
	assert.Equal(t, int32(7), class)
	assert.Equal(t, "", aid)
}

func TestTrailingArgs(t *testing.T) {
	fields := func(n int) []byte {
		return legacy(func(w *wire.Writer) {
			for i := 0; i < n; i++ {
				w.AppendInt32(int32(i))
			}
		})
	}
	_, err := codec.Encode("uicc_sub", 1, fields(4))
	assert.NoError(t, err)
	_, err = codec.Encode("uicc_sub", 1, fields(5))
	assert.Equal(t, codec.ErrTrailing, err)
	_, err = codec.Encode("uicc_sub", 1, fields(3))
	assert.Error(t, err)
}

func TestStructSizeMismatch(t *testing.T) {
	w := hidl.NewWriter()
	w.AppendStruct(hidl.NewStruct(radio.CallForwardInfoShape).SetStr("number", "123"))
	out, err := codec.Decode("sim_refresh", w.Parcel())
	assert.Equal(t, hidl.ErrSizeMismatch, err)
	assert.Nil(t, out)
}

func TestSuppSvcNotificationFailure(t *testing.T) {
	w := hidl.NewWriter()
	w.AppendInt32(1)
	_, err := codec.Decode("supp_svc_notification", w.Parcel())
	assert.Error(t, err)
}

func signal12(gsm uint32, wcdma int32) *hidl.Parcel {
	s := hidl.NewStruct(radio.SignalStrength12Shape)
	s.Struct("gsm").SetInt("signalStrength", int64(gsm)).SetInt("bitErrorRate", 1)
	s.Struct("wcdma").Struct("base").SetInt("signalStrength", int64(wcdma)).SetInt("bitErrorRate", 3)
	s.Struct("lte").SetInt("rsrp", 100).SetInt("rssnr", -5)
	s.Struct("tdScdma").SetInt("rscp", 42)
	w := hidl.NewWriter()
	w.AppendStruct(s)
	return w.Parcel()
}

func TestSignalStrengthWcdma(t *testing.T) {
	out, err := codec.Decode("signal_strength_1_2", signal12(99, 20))
	if !assert.NoError(t, err) {
		return
	}
	v := ints(t, out, 14)
	if !assert.Len(t, v, 14) {
		return
	}
	assert.Equal(t, []int32{20, 3}, v[:2])
	assert.Equal(t, int32(100), v[8])
	assert.Equal(t, int32(-5), v[10])
	assert.Equal(t, int32(42), v[13])
	assert.Len(t, out, 14*4)

	out, err = codec.Decode("signal_strength_1_2", signal12(12, 20))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []int32{12, 1}, ints(t, out, 2))

	out, err = codec.Decode("signal_strength_1_2", signal12(99, 99))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []int32{99, 1}, ints(t, out, 2))
}

func TestSignalStrength14(t *testing.T) {
	s := hidl.NewStruct(radio.SignalStrength14Shape)
	s.Struct("gsm").SetInt("signalStrength", 15)
	s.Struct("tdscdma").SetInt("rscp", 77)
	w := hidl.NewWriter()
	w.AppendStruct(s)
	out, err := codec.Decode("signal_strength_1_4", w.Parcel())
	if !assert.NoError(t, err) {
		return
	}
	v := ints(t, out, 16)
	assert.Equal(t, int32(15), v[0])
	assert.Equal(t, int32(77), v[15])
}

func TestCellInfoList(t *testing.T) {
	gsm := hidl.NewStruct(radio.CellInfoGsmShape)
	gsm.Struct("cellIdentityGsm").
		SetStr("mcc", "abc").SetStr("mnc", " 01").
		SetInt("lac", 10).SetInt("cid", 20).SetInt("arfcn", 30).SetInt("bsic", 5)
	gsm.Struct("signalStrengthGsm").SetInt("signalStrength", 18).SetInt("bitErrorRate", 2).SetInt("timingAdvance", 4)
	cell := hidl.NewStruct(radio.CellInfoShape).
		SetInt("cellInfoType", int64(radio.CellInfoTypeGsm)).
		SetBool("registered", true).
		SetInt("timeStampType", 3).
		SetInt("timeStamp", 0x100000002).
		SetStructs("gsm", []*hidl.Struct{gsm})
	unknown := hidl.NewStruct(radio.CellInfoShape).SetInt("cellInfoType", 9)

	w := hidl.NewWriter()
	w.AppendStructVec(radio.CellInfoShape, []*hidl.Struct{cell, unknown})
	out, err := codec.Decode("cell_info_list", w.Parcel())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []int32{
		1,
		radio.CellInfoTypeGsm, 1, 3, 2, 1,
		codec.CellInvalidValue, 1, 10, 20, 30, 5, 18, 2, 4,
	}, ints(t, out, 15))
	assert.Len(t, out, 15*4)
}

func TestCellInfoList14(t *testing.T) {
	lte := hidl.NewStruct(radio.CellInfoLte14Shape)
	base := lte.Struct("base")
	base.Struct("cellIdentityLte").Struct("base").
		SetStr("mcc", "244").SetStr("mnc", "91").
		SetInt("ci", 1).SetInt("pci", 2).SetInt("tac", 3).SetInt("earfcn", 4)
	base.Struct("signalStrengthLte").SetInt("signalStrength", 25).SetInt("rssnr", -1)
	cells := []*hidl.Struct{
		hidl.NewStruct(radio.CellInfo14Shape).
			SetBool("isRegistered", true).
			SetUnion("info", radio.CellInfo14Lte, lte),
		hidl.NewStruct(radio.CellInfo14Shape).
			SetUnion("info", radio.CellInfo14Nr, hidl.NewStruct(radio.CellInfoNrShape)),
	}
	w := hidl.NewWriter()
	w.AppendStructVec(radio.CellInfo14Shape, cells)
	out, err := codec.Decode("cell_info_list_1_4", w.Parcel())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []int32{
		1,
		radio.CellInfoTypeLte, 1, 0, 0, 0,
		244, 91, 1, 2, 3, 4, 25, 0, 0, -1, 0, 0,
	}, ints(t, out, 18))
	assert.Len(t, out, 18*4)
}

func TestDialRoundTrip(t *testing.T) {
	p, err := codec.Encode("dial", 3, legacy(func(w *wire.Writer) {
		w.AppendUtf8("+3581234")
		w.AppendInt32(1)
	}))
	if !assert.NoError(t, err) {
		return
	}
	r := hidl.NewReader(p)
	r.ReadInt32()
	dial, err := r.ReadStruct(radio.DialShape)
	if !assert.NoError(t, err) {
		return
	}

	call := hidl.NewStruct(radio.CallShape).
		SetInt("state", 2).
		SetInt("index", 1).
		SetStr("number", dial.Str("address")).
		SetBool("isVoice", true)
	w := hidl.NewWriter()
	w.AppendStructVec(radio.CallShape, []*hidl.Struct{call})
	out, err := codec.Decode("call_list", w.Parcel())
	if !assert.NoError(t, err) {
		return
	}
	lp := wire.NewParser(out)
	for _, want := range []int32{1, 2, 1, 0, 0, 0, 0, 1, 0} {
		v, _ := lp.Int32()
		assert.Equal(t, want, v)
	}
	number, ok := lp.Utf8()
	assert.True(t, ok)
	assert.Equal(t, "+3581234", number)
}

func TestSmsRoundTrip(t *testing.T) {
	p, err := codec.Encode("gsm_sms_message", 4, legacy(func(w *wire.Writer) {
		w.AppendInt32(2)
		w.AppendNullableUtf8(nil)
		w.AppendUtf8("0011000b91")
	}))
	if !assert.NoError(t, err) {
		return
	}
	r := hidl.NewReader(p)
	r.ReadInt32()
	msg, err := r.ReadStruct(radio.GsmSmsMessageShape)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "", msg.Str("smscPdu"))

	w := hidl.NewWriter()
	w.AppendStruct(hidl.NewStruct(radio.SendSmsResultShape).
		SetInt("messageRef", 12).
		SetStr("ackPDU", msg.Str("pdu")).
		SetInt("errorCode", -1))
	out, err := codec.Decode("sms_send_result", w.Parcel())
	if !assert.NoError(t, err) {
		return
	}
	lp := wire.NewParser(out)
	ref, _ := lp.Int32()
	ack, _ := lp.Utf8()
	code, _ := lp.Int32()
	assert.Equal(t, int32(12), ref)
	assert.Equal(t, "0011000b91", ack)
	assert.Equal(t, int32(-1), code)
	assert.True(t, lp.AtEnd())
}

func TestDataProfiles(t *testing.T) {
	p, err := codec.Encode("data_profiles", 5, legacy(func(w *wire.Writer) {
		w.AppendInt32(1)
		w.AppendInt32(radio.DataProfileIms)
		w.AppendUtf8("ims")
		w.AppendUtf8("IPV6")
		w.AppendInt32(0)
		w.AppendNullableUtf8(nil)
		w.AppendNullableUtf8(nil)
		w.AppendInt32s(1, 2, 3, 4)
	}))
	if !assert.NoError(t, err) {
		return
	}
	r := hidl.NewReader(p)
	r.ReadInt32()
	profiles, err := r.ReadStructVec(radio.DataProfileInfoShape)
	if !assert.NoError(t, err) || !assert.Len(t, profiles, 1) {
		return
	}
	dp := profiles[0]
	assert.Equal(t, "ims", dp.Str("apn"))
	assert.Equal(t, "IPV6", dp.Str("roamingProtocol"))
	assert.Equal(t, int32(radio.ApnTypesOf(radio.DataProfileIms)), dp.Int32("supportedApnTypesBitmap"))
	assert.Equal(t, int32(2), dp.Int32("maxConnsTime"))
	assert.True(t, dp.Bool("enabled"))
	roaming, err := r.ReadBool()
	assert.NoError(t, err)
	assert.False(t, roaming)
}

func TestSetupDataCallTech(t *testing.T) {
	p, err := codec.Encode("setup_data_call", 1, legacy(func(w *wire.Writer) {
		w.AppendInt32(7)
		for _, s := range []string{"16", "0", "internet", "", "", "0", "IP"} {
			w.AppendUtf8(s)
		}
	}))
	if !assert.NoError(t, err) {
		return
	}
	r := hidl.NewReader(p)
	r.ReadInt32()
	tech, err := r.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(14), tech)
}

func TestRegistry(t *testing.T) {
	assert.Panics(t, func() { codec.RegEncoder("bool", codec.EncodeBool) })
	assert.Panics(t, func() { codec.RegDecoder("int32", codec.DecodeInt32) })
	assert.Panics(t, func() { codec.RegDecoder("", codec.DecodeInt32) })
	_, err := codec.GetEncoder("no_such")
	assert.Error(t, err)
	assert.Contains(t, codec.Encoders(), "dial")
	assert.Contains(t, codec.Decoders(), "cell_info_list_1_4")
}

func TestParseInt(t *testing.T) {
	for _, c := range []struct {
		in string
		v  int32
		ok bool
	}{
		{"12", 12, true},
		{" -3 ", -3, true},
		{"", 0, false},
		{"0x10", 0, false},
		{"99999999999", 0, false},
	} {
		v, ok := codec.ParseInt(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.v, v, c.in)
	}
}
