package table_test

import (
	"testing"

	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/ril"
	"github.com/henrylee2cn/rilbinder/table"
	"github.com/stretchr/testify/assert"
)

func TestBuiltinTables(t *testing.T) {
	for v := radio.V1_0; v <= radio.MaxVersion; v++ {
		s, err := table.NewSet(v, table.Layers()...)
		if !assert.NoError(t, err, v.Name()) {
			continue
		}
		assert.Equal(t, v, s.Version())
		for _, e := range s.Requests() {
			assert.NotZero(t, e.ReqTx, e.String())
			if e.Encoder != "" {
				assert.NotNil(t, e.Encode, e.String())
			}
			assert.True(t, e.Version <= v, e.String())
		}
		assert.NotEmpty(t, s.Events())
	}
}

func TestLookupRequestFallback(t *testing.T) {
	s := table.For(radio.V1_4)

	e, ok := s.LookupRequest(ril.RequestSetupDataCall)
	assert.True(t, ok)
	assert.Equal(t, radio.V1_4, e.Version)
	assert.Equal(t, radio.ReqSetupDataCall_1_4, e.ReqTx)

	e, ok = s.LookupRequest(ril.RequestDeactivateDataCall)
	assert.True(t, ok)
	assert.Equal(t, radio.V1_2, e.Version)
	assert.Equal(t, radio.ReqDeactivateDataCall_1_2, e.ReqTx)

	e, ok = s.LookupRequest(ril.RequestRadioPower)
	assert.True(t, ok)
	assert.Equal(t, radio.V1_0, e.Version)
	assert.Equal(t, "setRadioPower", e.Name)

	// response-only rows never answer request lookups
	e, ok = s.LookupRequest(ril.RequestSetPreferredNetworkType)
	assert.True(t, ok)
	assert.Equal(t, radio.ReqSetPreferredNetworkType, e.ReqTx)

	_, ok = s.LookupRequest(ril.RequestOemHookRaw)
	assert.False(t, ok)
	_, ok = s.LookupRequest(0)
	assert.False(t, ok)
}

func TestLookupByVersion(t *testing.T) {
	s := table.For(radio.V1_0)
	e, ok := s.LookupRequest(ril.RequestSetupDataCall)
	assert.True(t, ok)
	assert.Equal(t, radio.ReqSetupDataCall, e.ReqTx)
	_, ok = s.LookupResponse(radio.RespGetSignalStrength_1_2)
	assert.False(t, ok)

	// @1.1 and @1.3 add no layer of their own
	s = table.For(radio.V1_3)
	e, ok = s.LookupRequest(ril.RequestSetupDataCall)
	assert.True(t, ok)
	assert.Equal(t, radio.V1_2, e.Version)
	_, ok = s.LookupEvent(radio.IndCurrentSignalStrength_1_4)
	assert.False(t, ok)
}

func TestLookupResponse(t *testing.T) {
	s := table.For(radio.V1_4)

	e, ok := s.LookupResponse(radio.RespGetOperator)
	assert.True(t, ok)
	assert.Equal(t, radio.V1_0, e.Version)
	assert.Equal(t, ril.RequestOperator, e.Code)

	e, ok = s.LookupResponse(radio.RespGetSignalStrength_1_2)
	assert.True(t, ok)
	assert.Equal(t, "signal_strength_1_2", e.Decoder)
	assert.NotNil(t, e.Decode)

	e, ok = s.LookupResponse(radio.RespSetupDataCall)
	assert.True(t, ok)
	assert.Equal(t, "setup_data_call_result", e.Decoder)

	e, ok = s.LookupResponse(radio.RespSetPreferredNetworkTypeBitmap)
	assert.True(t, ok)
	assert.Equal(t, ril.RequestSetPreferredNetworkType, e.Code)
	assert.Nil(t, e.Decode)

	_, ok = s.LookupResponse(0xffff)
	assert.False(t, ok)
}

func TestLookupEvent(t *testing.T) {
	s := table.For(radio.V1_4)
	e, ok := s.LookupEvent(radio.IndCurrentSignalStrength_1_4)
	assert.True(t, ok)
	assert.Equal(t, ril.UnsolSignalStrength, e.Code)

	e, ok = s.LookupEvent(radio.IndCurrentSignalStrength)
	assert.True(t, ok)
	assert.Equal(t, radio.V1_0, e.Version)
	assert.Equal(t, "signal_strength", e.Decoder)

	e, ok = s.LookupEvent(radio.IndCallRing)
	assert.True(t, ok)
	assert.Nil(t, e.Decode)

	_, ok = s.LookupEvent(radio.IndRilConnected)
	assert.False(t, ok)
}

func TestNewSetErrors(t *testing.T) {
	_, err := table.NewSet(radio.Version(9))
	assert.Error(t, err)

	_, err = table.NewSet(radio.V1_0, table.Layer{
		Version: radio.V1_0,
		Calls: []table.Call{
			{Code: 1, ReqTx: 2, RespTx: 2, Encoder: "no_such", Name: "a"},
			{Code: 1, ReqTx: 3, RespTx: 2, Decoder: "no_such", Name: "b"},
		},
		Events: []table.Event{
			{Code: 1000, IndTx: 1, Name: "c"},
			{Code: 1001, IndTx: 1, Name: "d"},
		},
	})
	if assert.Error(t, err) {
		msg := err.Error()
		assert.Contains(t, msg, "unsupported encoder: no_such")
		assert.Contains(t, msg, "unsupported decoder: no_such")
		assert.Contains(t, msg, "request conflict")
		assert.Contains(t, msg, "response conflict")
		assert.Contains(t, msg, "indication conflict")
	}

	s, err := table.NewSet(radio.V1_0, table.Layer{
		Version: radio.V1_2,
		Calls:   []table.Call{{Code: 1, ReqTx: 2, Name: "newer"}},
	})
	assert.NoError(t, err)
	_, ok := s.LookupRequest(1)
	assert.False(t, ok)
}
