package codec_test

import (
	"testing"

	"github.com/henrylee2cn/rilbinder/codec"
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/wire"
	"github.com/stretchr/testify/assert"
)

func structParcel(s *hidl.Struct) *hidl.Parcel {
	w := hidl.NewWriter()
	w.AppendStruct(s)
	return w.Parcel()
}

func strPtr(s string) *string {
	return &s
}

func TestDecodeCardStatus(t *testing.T) {
	app := hidl.NewStruct(radio.AppStatusShape).
		SetInt("appType", 2).
		SetInt("appState", 5).
		SetInt("persoSubstate", 2).
		SetStr("aidPtr", "A0000000871002").
		SetStr("appLabelPtr", "USIM").
		SetInt("pin1", 1).
		SetInt("pin2", 1)
	card := hidl.NewStruct(radio.CardStatusShape).
		SetInt("cardState", 1).
		SetInt("gsmUmtsSubscriptionAppIndex", 0).
		SetInt("cdmaSubscriptionAppIndex", -1).
		SetInt("imsSubscriptionAppIndex", -1).
		SetStructs("applications", []*hidl.Struct{app})
	card12 := hidl.NewStruct(radio.CardStatus12Shape).
		SetStruct("base", card).
		SetInt("physicalSlotId", 1).
		SetStr("atr", "3B9F96801F").
		SetStr("iccid", "89490200001234567890")
	card14 := hidl.NewStruct(radio.CardStatus14Shape).
		SetStruct("base", card12).
		SetStr("eid", "89049032000001000000")

	want := legacy(func(w *wire.Writer) {
		w.AppendInt32(1)  // cardState
		w.AppendInt32(0)  // universalPinState
		w.AppendInt32(0)  // gsm/umts app
		w.AppendInt32(-1) // cdma app
		w.AppendInt32(-1) // ims app
		w.AppendInt32(1)
		w.AppendInt32(2)
		w.AppendInt32(5)
		w.AppendInt32(2)
		w.AppendUtf8("A0000000871002")
		w.AppendUtf8("USIM")
		w.AppendInt32(0)
		w.AppendInt32(1)
		w.AppendInt32(1)
	})

	var cases = []struct {
		decoder string
		card    *hidl.Struct
	}{
		{"icc_card_status_1_0", card},
		{"icc_card_status_1_2", card12},
		{"icc_card_status_1_4", card14},
	}
	for _, c := range cases {
		got, err := codec.Decode(c.decoder, structParcel(c.card))
		if assert.NoError(t, err, c.decoder) {
			assert.Equal(t, want, got, c.decoder)
		}
	}

	_, err := codec.Decode("icc_card_status_1_2", structParcel(card))
	assert.Error(t, err)
}

func TestDecodeRegState(t *testing.T) {
	voice := hidl.NewStruct(radio.VoiceRegStateResultShape).
		SetInt("regState", 1).
		SetInt("rat", 14).
		SetInt("reasonForDenial", 0)
	voice12 := hidl.NewStruct(radio.VoiceRegStateResult12Shape).
		SetInt("regState", 1).
		SetInt("rat", 14).
		SetInt("reasonForDenial", 0)
	data := hidl.NewStruct(radio.DataRegStateResultShape).
		SetInt("regState", 5).
		SetInt("rat", 14).
		SetInt("maxDataCalls", 16)
	data12 := hidl.NewStruct(radio.DataRegStateResult12Shape).
		SetInt("regState", 5).
		SetInt("rat", 14).
		SetInt("maxDataCalls", 16)
	data14 := hidl.NewStruct(radio.DataRegStateResult14Shape).
		SetStruct("base", data12)

	strs := func(v ...string) []byte {
		return legacy(func(w *wire.Writer) {
			w.AppendInt32(int32(len(v)))
			for _, s := range v {
				w.AppendUtf8(s)
			}
		})
	}
	voiceWant := strs("1", "", "", "14", "0")
	dataWant := strs("5", "", "", "14", "0", "16")

	var cases = []struct {
		decoder string
		reg     *hidl.Struct
		want    []byte
	}{
		{"voice_reg_state", voice, voiceWant},
		{"voice_reg_state_1_2", voice12, voiceWant},
		{"data_reg_state", data, dataWant},
		{"data_reg_state_1_2", data12, dataWant},
		{"data_reg_state_1_4", data14, dataWant},
	}
	for _, c := range cases {
		got, err := codec.Decode(c.decoder, structParcel(c.reg))
		if assert.NoError(t, err, c.decoder) {
			assert.Equal(t, c.want, got, c.decoder)
		}
	}
}

func TestDecodeDataCallList14(t *testing.T) {
	up := hidl.NewStruct(radio.SetupDataCallResult14Shape).
		SetInt("suggestedRetryTime", -1).
		SetInt("cid", 1).
		SetInt("active", 2).
		SetInt("type", int64(radio.PdpProtocolIPv4v6)).
		SetStr("ifname", "rmnet0").
		SetStrings("addresses", []string{"10.0.0.2/24", "fe80::2/64"}).
		SetStrings("dnses", []string{"8.8.8.8", "8.8.4.4"}).
		SetStrings("gateways", []string{"10.0.0.1"}).
		SetInt("mtu", 1500)
	unknown := hidl.NewStruct(radio.SetupDataCallResult14Shape).
		SetInt("cid", 2).
		SetInt("type", int64(radio.PdpProtocolUnknown))
	w := hidl.NewWriter()
	w.AppendStructVec(radio.SetupDataCallResult14Shape, []*hidl.Struct{up, unknown})

	got, err := codec.Decode("data_call_list_1_4", w.Parcel())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, legacy(func(w *wire.Writer) {
		w.AppendInt32(codec.DataCallVersion)
		w.AppendInt32(2)

		w.AppendInt32(0)
		w.AppendInt32(-1)
		w.AppendInt32(1)
		w.AppendInt32(2)
		w.AppendUtf8("IPV4V6")
		w.AppendUtf8("rmnet0")
		w.AppendUtf8("10.0.0.2/24 fe80::2/64")
		w.AppendUtf8("8.8.8.8 8.8.4.4")
		w.AppendUtf8("10.0.0.1")
		w.AppendUtf8("")
		w.AppendInt32(1500)

		w.AppendInt32(0)
		w.AppendInt32(0)
		w.AppendInt32(2)
		w.AppendInt32(0)
		w.AppendNullableUtf8(nil)
		w.AppendUtf8("")
		w.AppendUtf8("")
		w.AppendUtf8("")
		w.AppendUtf8("")
		w.AppendUtf8("")
		w.AppendInt32(0)
	}), got)
}

func TestDecodeDeviceIdentity(t *testing.T) {
	var cases = []struct {
		name string
		ids  []string
		want []*string
		err  error
	}{
		{
			name: "full",
			ids:  []string{"356938035643809", "01", "80000000", "A0000000000001"},
			want: []*string{strPtr("356938035643809"), strPtr("01"), strPtr("80000000"), strPtr("A0000000000001")},
		},
		{
			name: "partial",
			ids:  []string{"356938035643809", "01"},
			want: []*string{strPtr("356938035643809"), strPtr("01"), nil, nil},
		},
		{
			name: "empty",
			err:  codec.ErrNoIdentity,
		},
	}
	for _, c := range cases {
		w := hidl.NewWriter()
		for _, s := range c.ids {
			w.AppendString(s)
		}
		got, err := codec.Decode("device_identity", w.Parcel())
		if c.err != nil {
			assert.Equal(t, c.err, err, c.name)
			assert.Nil(t, got, c.name)
			continue
		}
		if !assert.NoError(t, err, c.name) {
			continue
		}
		assert.Equal(t, legacy(func(w *wire.Writer) {
			w.AppendInt32(int32(len(c.want)))
			for _, s := range c.want {
				w.AppendNullableUtf8(s)
			}
		}), got, c.name)
	}
}
