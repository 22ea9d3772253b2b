package ril_test

import (
	"testing"

	"github.com/henrylee2cn/rilbinder/ril"
	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "GENERIC_FAILURE", ril.ErrorText(ril.ErrGenericFailure))
	assert.Equal(t, "ERROR(-1)", ril.ErrorText(-1))
	assert.Equal(t, "ERROR(99)", ril.ErrorText(99))
	assert.Equal(t, "GET_SIM_STATUS", ril.RequestName(ril.RequestGetSimStatus))
	assert.Equal(t, "REQUEST(9999)", ril.RequestName(9999))
	assert.Equal(t, "RIL_CONNECTED", ril.UnsolName(ril.UnsolRilConnected))
	assert.Equal(t, "UNSOL(42)", ril.UnsolName(42))
}

func TestTypes(t *testing.T) {
	var cases = []struct {
		typ  ril.ResponseType
		want string
	}{
		{ril.ResponseNone, "NONE"},
		{ril.ResponseSolicited, "SOLICITED"},
		{ril.ResponseSolicitedAck, "SOLICITED_ACK"},
		{ril.ResponseSolicitedAckExp, "SOLICITED_ACK_EXP"},
		{ril.ResponseType(7), "RESPONSE_TYPE(7)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.typ.String())
	}
	assert.Equal(t, "UNSOLICITED", ril.IndicationUnsolicited.String())
	assert.Equal(t, "UNSOLICITED_ACK_EXP", ril.IndicationUnsolicitedAckExp.String())
	assert.Equal(t, -1, int(ril.ResponseNone))
}
