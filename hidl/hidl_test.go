package hidl_test

import (
	"testing"

	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/stretchr/testify/assert"
)

var (
	uusShape  = hidl.NewShape("UusInfo", 24, hidl.I32("uusType"), hidl.I32("uusDcs"), hidl.Str("uusData"))
	dialShape = hidl.NewShape("Dial", 40, hidl.Str("address"), hidl.I32("clir"), hidl.Vec("uusInfo", uusShape))
	lteVops   = hidl.NewShape("LteVopsInfo", 2, hidl.Bool("isVopsSupported"), hidl.Bool("isEmcBearerSupported"))
	named     = hidl.NewShape("Named", 16, hidl.Str("name"))
	choice    = hidl.NewShape("Choice", 48,
		hidl.I32("id"),
		hidl.SafeUnion("value", lteVops, named),
		hidl.ScalarVec("names", hidl.KindString))
)

func TestShapeLayout(t *testing.T) {
	assert.Equal(t, 16, dialShape.Field("clir").Offset)
	assert.Equal(t, 24, dialShape.Field("uusInfo").Offset)
	assert.Equal(t, 8, choice.Field("value").Offset)
	assert.Panics(t, func() {
		hidl.NewShape("Bad", 8, hidl.U8("a"), hidl.I32("b"), hidl.U8("c"))
	})
	assert.Panics(t, func() { dialShape.Field("nope") })
}

func TestStructRoundTrip(t *testing.T) {
	w := hidl.NewWriter()
	w.AppendInt32(7)
	w.AppendBool(true)
	dial := hidl.NewStruct(dialShape).
		SetStr("address", "+123").
		SetInt("clir", 2).
		SetStructs("uusInfo", []*hidl.Struct{
			hidl.NewStruct(uusShape).SetInt("uusType", 1).SetStr("uusData", "x"),
		})
	w.AppendStruct(dial)
	w.AppendStruct(hidl.NewStruct(choice).
		SetInt("id", -1).
		SetUnion("value", 1, hidl.NewStruct(named).SetStr("name", "nr")).
		SetStrings("names", []string{"a", ""}))
	w.AppendByteVec([]byte{1, 2, 3})

	r := hidl.NewReader(w.Parcel())
	serial, err := r.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(7), serial)
	on, err := r.ReadBool()
	assert.NoError(t, err)
	assert.True(t, on)

	got, err := r.ReadStruct(dialShape)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "+123", got.Str("address"))
	assert.Equal(t, int32(2), got.Int32("clir"))
	uus := got.Structs("uusInfo")
	assert.Len(t, uus, 1)
	assert.Equal(t, "x", uus[0].Str("uusData"))

	c, err := r.ReadStruct(choice)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, int32(-1), c.Int32("id"))
	u := c.Union("value")
	assert.Equal(t, uint8(1), u.Tag)
	assert.Equal(t, "nr", u.Value.Str("name"))
	assert.Equal(t, []string{"a", ""}, c.Strings("names"))

	b, err := r.ReadByteVec()
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.True(t, r.AtEnd())
}

func TestStructSizeMismatch(t *testing.T) {
	w := hidl.NewWriter()
	w.AppendStruct(hidl.NewStruct(uusShape))
	_, err := hidl.NewReader(w.Parcel()).ReadStruct(dialShape)
	assert.Equal(t, hidl.ErrSizeMismatch, err)

	w = hidl.NewWriter()
	w.AppendStructVec(uusShape, []*hidl.Struct{hidl.NewStruct(uusShape)})
	_, err = hidl.NewReader(w.Parcel()).ReadStructVec(dialShape)
	assert.Equal(t, hidl.ErrSizeMismatch, err)
}

func TestBufferLinks(t *testing.T) {
	w := hidl.NewWriter()
	w.AppendString("Acme")
	p := w.Parcel()
	assert.Len(t, p.Buffers, 2)
	assert.Equal(t, []byte("Acme\x00"), p.Buffers[1])

	// relink the character buffer to a wrong parent offset
	p.Data[hidl.BufferObjectSize+32] = 4
	_, err := hidl.NewReader(p).ReadString()
	assert.Equal(t, hidl.ErrBadParent, err)
}

func TestLocalObject(t *testing.T) {
	w := hidl.NewWriter()
	w.AppendLocalObject("response")
	w.AppendLocalObject("indication")
	r := hidl.NewReader(w.Parcel())
	o, err := r.ReadObject()
	assert.NoError(t, err)
	assert.Equal(t, "response", o)
	o, err = r.ReadObject()
	assert.NoError(t, err)
	assert.Equal(t, "indication", o)
	_, err = r.ReadObject()
	assert.Equal(t, hidl.ErrShortParcel, err)
}
